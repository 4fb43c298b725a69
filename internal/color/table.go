package color

import "fmt"

// Table is the color table of one render pass.
//
// Entries are addressed by 1-based references. The first Base() entries are
// the scene's vertex colors, which the table reads but never modifies;
// colors created while clipping are appended after them. Entries are never
// edited or removed, so a reference stays valid for the life of the pass.
type Table struct {
	base  []Color
	extra []Color
}

// NewTable returns a table whose first entries are base.
// The base slice is shared, not copied, and must not change during the pass.
func NewTable(base []Color) *Table {
	return &Table{base: base}
}

// Len returns the number of entries, which is also the largest valid reference.
func (t *Table) Len() int {
	return len(t.base) + len(t.extra)
}

// Base returns the number of shared scene colors.
func (t *Table) Base() int {
	return len(t.base)
}

// Appended returns the number of colors added by this pass.
func (t *Table) Appended() int {
	return len(t.extra)
}

// At returns the color for a 1-based reference. It panics when ref is out of
// range; scene validation guarantees vertex references resolve.
func (t *Table) At(ref int) Color {
	switch {
	case ref >= 1 && ref <= len(t.base):
		return t.base[ref-1]
	case ref > len(t.base) && ref <= t.Len():
		return t.extra[ref-len(t.base)-1]
	}
	panic(fmt.Sprintf("color: reference %d out of range [1,%d]", ref, t.Len()))
}

// Append adds c and returns its reference.
func (t *Table) Append(c Color) int {
	t.extra = append(t.extra, c)
	return t.Len()
}

// Lerp appends the blend of the colors referenced by from and to at
// parameter tt and returns the new reference.
func (t *Table) Lerp(from, to int, tt float64) int {
	return t.Append(t.At(from).Lerp(t.At(to), tt))
}
