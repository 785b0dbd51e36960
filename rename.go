// rename implements the metadata-only operations: renaming and reordering
// columns.  Neither touches the body.

package tab

import (
	"tab/att"
)

// Rename creates a new dataset with the column from renamed to to.  It
// fails with a MissingKeyError if from is absent and with a
// DuplicateColumnError if to already names a different column.
func (d *Dataset) Rename(from, to att.Attribute) *Dataset {
	if d.err != nil {
		return d
	}
	j := att.IndexOf(d.Heading(), from)
	if j < 0 {
		return errored(&att.MissingKeyError{Col: from})
	}
	if to != from && att.IndexOf(d.Heading(), to) >= 0 {
		return errored(&att.DuplicateColumnError{Col: to})
	}
	cols2 := cloneCols(d.cols)
	cols2[j].Name = to
	return &Dataset{cols: cols2, body: d.body}
}

// Reorder creates a new dataset with the listed columns first, in the
// listed order, and every unlisted column after them in its original
// relative order.
func (d *Dataset) Reorder(priority ...att.Attribute) *Dataset {
	if d.err != nil {
		return d
	}
	idx, err := columnIndexes(d.cols, priority)
	if err != nil {
		return errored(err)
	}
	listed := make(map[int]struct{}, len(idx))
	for _, j := range idx {
		if _, dup := listed[j]; dup {
			return errored(&att.DuplicateColumnError{Col: d.cols[j].Name})
		}
		listed[j] = struct{}{}
	}
	for j := range d.cols {
		if _, ok := listed[j]; !ok {
			idx = append(idx, j)
		}
	}
	return d.take(idx)
}
