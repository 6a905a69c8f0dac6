package symbols

import (
	"strconv"
	"strings"
)

// Reserved bases for synthesized names.
const (
	ErrorParam    = "__E"
	TupleParam    = "__T"
	ValueBinding  = "__v"
	ClosureParam  = "__x"
	ElementParam  = "__Item"
	LengthParam   = "__N"
	SliceLifetime = "'__a"
)

// Table hands out identifiers that are unique within one scope.
// The zero value is ready to use.
type Table struct {
	used map[string]struct{}
}

// NewTable returns a table with the given names already taken.
func NewTable(reserved ...string) *Table {
	t := &Table{}
	t.Reserve(reserved...)

	return t
}

// Reserve marks names as taken.
func (t *Table) Reserve(names ...string) {
	if t.used == nil {
		t.used = make(map[string]struct{}, len(names))
	}

	for _, n := range names {
		t.used[n] = struct{}{}
	}
}

// Taken reports whether name is in use.
func (t *Table) Taken(name string) bool {
	_, ok := t.used[name]
	return ok
}

// Fresh returns base if unused, otherwise base_1, base_2, ... and reserves it.
func (t *Table) Fresh(base string) string {
	name := base
	for i := 1; t.Taken(name); i++ {
		name = base + "_" + strconv.Itoa(i)
	}

	t.Reserve(name)

	return name
}

// FreshN returns n fresh names base0..base(n-1), each individually deconflicted.
func (t *Table) FreshN(base string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = t.Fresh(base + strconv.Itoa(i))
	}

	return out
}

// FreshLifetime returns a fresh lifetime name; base must start with a quote.
func (t *Table) FreshLifetime(base string) string {
	if !strings.HasPrefix(base, "'") {
		base = "'" + base
	}

	return t.Fresh(base)
}

// Len returns the number of names taken.
func (t *Table) Len() int {
	return len(t.used)
}
