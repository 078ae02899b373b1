// Package session decodes the YAML session-metadata blob embedded in an
// .ibt file into a loose, schema-free tree, and derives the stable session
// identifier the exporter groups rows by.
//
// Session info varies across iRacing releases; a tagged-variant tree
// (map / list / scalar) keeps the decoder schema-free rather than forcing a
// fixed Go struct that would need updating on every SDK revision.
package session

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ibtelemetry/ibt/errs"
)

// OnError selects how a malformed session-info blob is handled.
type OnError int

const (
	// OnErrorFail surfaces errs.ErrSessionInfoMalformed and aborts the open.
	OnErrorFail OnError = iota
	// OnErrorEmpty proceeds with an empty tree instead of failing.
	OnErrorEmpty
)

// Info wraps the parsed session-info tree. The zero value is an empty tree.
type Info struct {
	tree map[string]any
}

// Parse decodes raw as UTF-8, right-trims trailing NUL padding, and parses
// the result as YAML into a loose string-keyed tree.
//
// On a parse failure, onErr selects the fallback: OnErrorFail returns
// errs.ErrSessionInfoMalformed (the default per spec.md §4.C); OnErrorEmpty
// returns a zero-value Info with no error.
func Parse(raw []byte, onErr OnError) (Info, error) {
	trimmed := strings.TrimRight(string(raw), "\x00")

	var tree map[string]any
	if err := yaml.Unmarshal([]byte(trimmed), &tree); err != nil {
		if onErr == OnErrorEmpty {
			return Info{tree: map[string]any{}}, nil
		}

		return Info{}, fmt.Errorf("%w: %w", errs.ErrSessionInfoMalformed, err)
	}

	if tree == nil {
		tree = map[string]any{}
	}

	return Info{tree: tree}, nil
}

// Tree returns the parsed tree verbatim. Unknown keys at any depth are
// preserved exactly as parsed: values are map[string]any, []any, string,
// int, float64, bool, or nil.
func (i Info) Tree() map[string]any {
	return i.tree
}

// Get performs a case-sensitive lookup of a top-level key.
func (i Info) Get(key string) (any, bool) {
	v, ok := i.tree[key]
	return v, ok
}

// SessionID returns the derived "{SubSessionID}-{SessionID}" identifier from
// the top-level WeekendInfo map, per spec.md §3. If either key is absent, the
// missing side becomes an empty string; if WeekendInfo itself is absent,
// both sides are empty and SessionID returns "-".
func (i Info) SessionID() string {
	weekend, _ := i.tree["WeekendInfo"].(map[string]any)

	return fmt.Sprintf("%s-%s", stringify(weekend["SubSessionID"]), stringify(weekend["SessionID"]))
}

func stringify(v any) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf("%v", v)
}
