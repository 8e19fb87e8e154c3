package todolist

import "strconv"

// Ref identifies an item either by position or by a text fragment.
// The zero value is an empty text reference.
type Ref struct {
	index   int
	text    string
	byIndex bool
}

// ByIndex returns a reference to the item at a zero-based index.
func ByIndex(i int) Ref {
	return Ref{index: i, byIndex: true}
}

// ByText returns a reference resolved through Find.
func ByText(s string) Ref {
	return Ref{text: s}
}

// Index returns the index and true for ByIndex references.
func (r Ref) Index() (int, bool) {
	return r.index, r.byIndex
}

// Text returns the query of a ByText reference.
func (r Ref) Text() string {
	return r.text
}

func (r Ref) String() string {
	if r.byIndex {
		return strconv.Itoa(r.index)
	}
	return r.text
}
