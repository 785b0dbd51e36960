// join implements a left outer equi-join expression

package tab

import (
	"tab/att"
)

// JoinOn pairs a key column of the left dataset with the key column of the
// right dataset it must equal.  The two sides may use different names for
// the same key.
type JoinOn struct {
	Left  att.Attribute
	Right att.Attribute
}

// On declares one equi-join key pair.
func On(left, right att.Attribute) JoinOn {
	return JoinOn{Left: left, Right: right}
}

// LeftJoin joins the dataset against a second dataset on the declared key
// pairs, with left outer semantics: every left row appears exactly once in
// the output, and a left row with no match keeps null in the right-side
// columns.  When the right key is not unique, the first matching right row
// in right-dataset order wins; later duplicates are ignored.  Null keys
// never match.  The output schema is the left columns followed by the
// right columns minus the right key columns; a name shared by both sides
// outside the keys fails with a DuplicateColumnError, and an absent key
// column with a MissingKeyError.
func (d *Dataset) LeftJoin(right *Dataset, on ...JoinOn) *Dataset {
	if d.err != nil {
		return d
	}
	if right.err != nil {
		return errored(right.err)
	}

	lNames := make([]att.Attribute, len(on))
	rNames := make([]att.Attribute, len(on))
	for i, o := range on {
		lNames[i] = o.Left
		rNames[i] = o.Right
	}
	lIdx, err := columnIndexes(d.cols, lNames)
	if err != nil {
		return errored(err)
	}
	rIdx, err := columnIndexes(right.cols, rNames)
	if err != nil {
		return errored(err)
	}

	// the right-side payload is every right column that is not a key
	var payload []int
	for j := range right.cols {
		isKey := false
		for _, k := range rIdx {
			if j == k {
				isKey = true
				break
			}
		}
		if !isKey {
			payload = append(payload, j)
		}
	}

	cols2 := cloneCols(d.cols)
	for _, j := range payload {
		c := right.cols[j]
		if att.IndexOf(d.Heading(), c.Name) >= 0 {
			return errored(&att.DuplicateColumnError{Col: c.Name})
		}
		cols2 = append(cols2, c)
	}

	// index the right side on its key, first occurrence only
	index := make(map[string][]att.Value, len(right.body))
	for _, row := range right.body {
		if nullKey(row, rIdx) {
			continue
		}
		k := compositeKey(row, rIdx)
		if _, exists := index[k]; !exists {
			index[k] = row
		}
	}

	body2 := make([][]att.Value, len(d.body))
	for i, row := range d.body {
		row2 := make([]att.Value, len(cols2))
		copy(row2, row)
		var match []att.Value
		if !nullKey(row, lIdx) {
			match = index[compositeKey(row, lIdx)]
		}
		for n, j := range payload {
			if match == nil {
				row2[len(d.cols)+n] = att.Null()
			} else {
				row2[len(d.cols)+n] = match[j]
			}
		}
		body2[i] = row2
	}
	return &Dataset{cols: cols2, body: body2}
}

func nullKey(row []att.Value, idx []int) bool {
	for _, j := range idx {
		if row[j].IsNull() {
			return true
		}
	}
	return false
}
