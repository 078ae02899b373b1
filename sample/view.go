package sample

import "github.com/ibtelemetry/ibt/section"

// View is a typed accessor over one sample frame. It borrows a frame buffer
// owned by the iterator that produced it: once the iterator advances, the
// bytes behind a View are no longer guaranteed to hold that frame's data.
// Views returned by SampleAt, which use a dedicated buffer per call, remain
// valid for their own lifetime.
type View struct {
	dict  section.Dictionary
	index int
	frame []byte
}

// NewView wraps frame (exactly buf_len bytes) as the sample at index,
// readable through dict's variable dictionary.
func NewView(dict section.Dictionary, index int, frame []byte) View {
	return View{dict: dict, index: index, frame: frame}
}

// Index returns the frame's position in the file, in [0, num_buf).
func (v View) Index() int {
	return v.index
}

// Get looks up name case-insensitively against the dictionary and decodes
// its value out of the frame. It reports false if name is not declared.
func (v View) Get(name string) (Value, bool) {
	vh, _, err := v.dict.Lookup(name)
	if err != nil {
		return Value{}, false
	}

	return extract(vh, v.frame), true
}

// ToMap decodes every variable in the dictionary into an ordered ValueMap,
// in dictionary declaration order.
func (v View) ToMap() ValueMap {
	vars := v.dict.Vars()
	out := make(ValueMap, 0, len(vars))

	for _, vh := range vars {
		out = append(out, extract(vh, v.frame))
	}

	return out
}
