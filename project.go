// project implements a project expression in relational algebra

package tab

import (
	"tab/att"
)

// Project creates a new dataset containing only the named columns, in the
// order they are named.  Row order is preserved, so projecting twice by the
// same names is the same as projecting once.  A name that is not in the
// dataset fails with a MissingKeyError, and a name listed twice with a
// DuplicateColumnError.
func (d *Dataset) Project(names ...att.Attribute) *Dataset {
	if d.err != nil {
		return d
	}
	for i, n := range names {
		for _, n2 := range names[i+1:] {
			if n == n2 {
				return errored(&att.DuplicateColumnError{Col: n})
			}
		}
	}
	idx, err := columnIndexes(d.cols, names)
	if err != nil {
		return errored(err)
	}
	return d.take(idx)
}

// ProjectWhere creates a new dataset containing only the columns whose
// names satisfy sel, keeping the original column order.  This is the
// higher-order form of Project: "all columns whose name contains a
// substring" is sel == func(a) { return strings.Contains(...) }.
func (d *Dataset) ProjectWhere(sel func(att.Attribute) bool) *Dataset {
	if d.err != nil {
		return d
	}
	var idx []int
	for j, c := range d.cols {
		if sel(c.Name) {
			idx = append(idx, j)
		}
	}
	return d.take(idx)
}

// Without creates a new dataset with the named columns dropped and all
// others kept in their original order.  It is the negation of Project.
func (d *Dataset) Without(names ...att.Attribute) *Dataset {
	if d.err != nil {
		return d
	}
	if _, err := columnIndexes(d.cols, names); err != nil {
		return errored(err)
	}
	return d.ProjectWhere(func(a att.Attribute) bool {
		for _, n := range names {
			if n == a {
				return false
			}
		}
		return true
	})
}

// take materializes a projection given the column positions to keep.
func (d *Dataset) take(idx []int) *Dataset {
	cols2 := make([]att.Column, len(idx))
	for i, j := range idx {
		cols2[i] = d.cols[j]
	}
	body2 := make([][]att.Value, len(d.body))
	for i, row := range d.body {
		row2 := make([]att.Value, len(idx))
		for n, j := range idx {
			row2[n] = row[j]
		}
		body2[i] = row2
	}
	return &Dataset{cols: cols2, body: body2}
}
