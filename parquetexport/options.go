package parquetexport

import "context"

// OnMissingVariable selects how a projected name that does not resolve
// against the base dictionary is handled when building the output schema.
type OnMissingVariable int

const (
	// DropMissing removes an unresolved name from the schema entirely. This
	// is the default.
	DropMissing OnMissingVariable = iota
	// NullColumn keeps an unresolved name as a column of nulls. Since no
	// VarHeader is available to infer a type, the column is typed float64.
	NullColumn
)

// ProgressFunc is invoked once per completed file during ExportMulti.
type ProgressFunc func(current, total int, path string)

// Option configures Export and ExportMulti.
type Option func(*config)

type config struct {
	ctx         context.Context
	includeAll  bool
	projection  []string
	onMissing   OnMissingVariable
	progress    ProgressFunc
}

func newConfig(opts []Option) config {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext makes the export cooperatively cancellable through ctx. The
// default is context.Background(), i.e. never cancelled.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithIncludeAll projects every variable in the base file's dictionary,
// in dictionary declaration order, instead of the default roster or an
// explicit projection.
func WithIncludeAll() Option {
	return func(c *config) {
		c.includeAll = true
	}
}

// WithProjection sets an explicit, ordered, case-insensitive list of
// variable names to export, overriding the default roster.
func WithProjection(names []string) Option {
	return func(c *config) {
		c.projection = names
	}
}

// WithOnMissingVariable selects how names that do not resolve against the
// base dictionary are handled. The default is DropMissing.
func WithOnMissingVariable(policy OnMissingVariable) Option {
	return func(c *config) {
		c.onMissing = policy
	}
}

// WithProgress registers a callback fired once per completed file during
// ExportMulti. It has no effect on single-file Export.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}
