package parquetexport

// DefaultRoster is the fixed set of 52 ML-relevant variable names used when
// Export/ExportMulti is called without an explicit projection and without
// WithIncludeAll. Names are resolved case-insensitively against each file's
// dictionary; names that do not resolve are silently dropped.
//
// Per-tire columns are listed individually (LF/RF/LR/RR) rather than as one
// aggregated "tire temps" column, since downstream lap-time prediction
// selects each corner's temperature columns separately.
var DefaultRoster = []string{
	// session time/position
	"SessionTime", "Lap", "LapDistPct",

	// vehicle dynamics
	"Speed", "RPM", "Gear", "VelocityX", "VelocityY", "VelocityZ",
	"YawRate", "Roll", "Pitch", "Yaw",

	// driver inputs
	"Throttle", "Brake", "Clutch", "SteeringWheelAngle",

	// accelerations
	"LatAccel", "LongAccel", "VertAccel",

	// per-tire temperatures
	"LFtempCL", "LFtempCM", "LFtempCR",
	"RFtempCL", "RFtempCM", "RFtempCR",
	"LRtempCL", "LRtempCM", "LRtempCR",
	"RRtempCL", "RRtempCM", "RRtempCR",

	// per-tire wear
	"LFwearL", "LFwearM", "LFwearR",
	"RFwearL", "RFwearM", "RFwearR",
	"LRwearL", "LRwearM", "LRwearR",
	"RRwearL", "RRwearM", "RRwearR",

	// per-tire pressure
	"LFpressure", "RFpressure", "LRpressure", "RRpressure",

	// fuel
	"FuelLevel", "FuelUsePerHour",

	// track temperature
	"TrackTempCrew", "TrackTemp",
}
