// sort implements ordering of a dataset by one or more columns

package tab

import (
	"sort"

	"tab/att"
)

// SortKey names one column to order by, ascending unless Desc is set.
type SortKey struct {
	Col  att.Attribute
	Desc bool
}

// Asc orders by a column ascending.
func Asc(a att.Attribute) SortKey {
	return SortKey{Col: a}
}

// Desc orders by a column descending.
func Desc(a att.Attribute) SortKey {
	return SortKey{Col: a, Desc: true}
}

// OrderBy creates a new dataset with the rows ordered by the given keys.
// The sort is stable: rows with equal keys keep their prior relative
// order.  Within a column, null orders before every value and NaN before
// every other number.  An absent column fails with a MissingKeyError.
func (d *Dataset) OrderBy(keys ...SortKey) *Dataset {
	if d.err != nil {
		return d
	}
	names := make([]att.Attribute, len(keys))
	for i, k := range keys {
		names[i] = k.Col
	}
	idx, err := columnIndexes(d.cols, names)
	if err != nil {
		return errored(err)
	}

	body2 := make([][]att.Value, len(d.body))
	copy(body2, d.body)
	sort.SliceStable(body2, func(i, j int) bool {
		for n, col := range idx {
			c := body2[i][col].Compare(body2[j][col])
			if c == 0 {
				continue
			}
			if keys[n].Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return &Dataset{cols: d.cols, body: body2}
}
