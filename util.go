package tab

import (
	"strconv"
	"strings"

	"tab/att"
)

func cloneRow(row []att.Value) []att.Value {
	r := make([]att.Value, len(row))
	copy(r, row)
	return r
}

func cloneCols(cols []att.Column) []att.Column {
	c := make([]att.Column, len(cols))
	copy(c, cols)
	return c
}

// compositeKey builds a grouping or join key for a row from the values at
// the given column indices.
func compositeKey(row []att.Value, idx []int) string {
	if len(idx) == 1 {
		return row[idx[0]].Key()
	}
	// each part is length-prefixed so that delimiter characters inside a
	// string value cannot make two distinct key tuples collide
	var b strings.Builder
	for _, j := range idx {
		k := row[j].Key()
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}

// columnIndexes resolves attribute names to column positions, failing with
// a MissingKeyError on the first absent name.
func columnIndexes(cols []att.Column, names []att.Attribute) ([]int, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		j := -1
		for k, c := range cols {
			if c.Name == n {
				j = k
				break
			}
		}
		if j < 0 {
			return nil, &att.MissingKeyError{Col: n}
		}
		idx[i] = j
	}
	return idx, nil
}
