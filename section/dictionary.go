package section

import (
	"strings"

	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/internal/hash"
)

// DuplicateName records a variable name that collided, case-insensitively,
// with one already in the dictionary. The first occurrence wins; later
// occurrences are reported here rather than through logging.
type DuplicateName struct {
	// Name is the duplicate variable's own (non-normalized) name.
	Name string
	// Index is the duplicate's position in the VarHeader array.
	Index int
	// FirstIndex is the position of the entry that was kept.
	FirstIndex int
}

// Dictionary is the immutable, ordered collection of VarHeaders decoded from
// an .ibt file, with a case-insensitive name index for O(1) lookup.
//
// The index is keyed by the xxHash64 of the lower-cased name rather than the
// string itself, the same identifier-hashing idiom the teacher library uses
// for its metric IDs.
type Dictionary struct {
	vars       []VarHeader
	byHash     map[uint64]int
	duplicates []DuplicateName
}

// NewDictionary builds a Dictionary from an ordered slice of decoded
// VarHeaders. Duplicate names (case-insensitive) keep the first entry; later
// ones are recorded in Duplicates() rather than discarded silently.
func NewDictionary(vars []VarHeader) Dictionary {
	d := Dictionary{
		vars:   vars,
		byHash: make(map[uint64]int, len(vars)),
	}

	for i, v := range vars {
		h := nameHash(v.Name)
		if first, ok := d.byHash[h]; ok {
			d.duplicates = append(d.duplicates, DuplicateName{
				Name:       v.Name,
				Index:      i,
				FirstIndex: first,
			})

			continue
		}

		d.byHash[h] = i
	}

	return d
}

func nameHash(name string) uint64 {
	return hash.ID(strings.ToLower(name))
}

// Vars returns the ordered, read-only sequence of VarHeaders.
func (d Dictionary) Vars() []VarHeader {
	return d.vars
}

// Len returns the number of variables in the dictionary.
func (d Dictionary) Len() int {
	return len(d.vars)
}

// Duplicates returns the variable names that collided case-insensitively
// with an earlier entry, in dictionary order.
func (d Dictionary) Duplicates() []DuplicateName {
	return d.duplicates
}

// Lookup finds a variable by case-insensitive name. It returns
// errs.ErrVariableNotFound if no variable with that name (ignoring case)
// exists.
func (d Dictionary) Lookup(name string) (VarHeader, int, error) {
	idx, ok := d.byHash[nameHash(name)]
	if !ok {
		return VarHeader{}, -1, errs.ErrVariableNotFound
	}

	return d.vars[idx], idx, nil
}

// Resolve validates an ordered projection of names against the dictionary.
// Names that do not resolve are dropped and returned separately; the
// resolved indices preserve the caller's requested order.
func (d Dictionary) Resolve(names []string) (resolved []int, dropped []string) {
	resolved = make([]int, 0, len(names))

	for _, name := range names {
		if _, idx, err := d.Lookup(name); err == nil {
			resolved = append(resolved, idx)
		} else {
			dropped = append(dropped, name)
		}
	}

	return resolved, dropped
}
