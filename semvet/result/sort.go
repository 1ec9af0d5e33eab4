package result

import (
	"sort"
)

var _ sort.Interface = (*ByVersion)(nil)

type ByVersion []Evaluation

// Len is the number of elements in the collection.
func (e ByVersion) Len() int {
	return len(e)
}

// Less reports whether the element with index i should sort before the element with index j.
func (e ByVersion) Less(i, j int) bool {
	if c := e[i].Version.Compare(e[j].Version); c != 0 {
		return c < 0
	}
	return e[i].Constraint.String() < e[j].Constraint.String()
}

// Swap swaps the elements with indexes i and j.
func (e ByVersion) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}
