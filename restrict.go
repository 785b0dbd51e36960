// restrict implements a restrict expression in relational algebra

package tab

import (
	"tab/att"
)

// Restrict creates a new dataset holding only the rows that satisfy the
// predicate.  The predicate must be pure; it is evaluated once per row and
// row order is preserved, so restricting never reorders ties.  Binding a
// predicate that mentions an absent attribute fails with a
// MissingKeyError.
func (d *Dataset) Restrict(p att.Predicate) *Dataset {
	if d.err != nil {
		return d
	}
	f, err := p.EvalFunc(d.Heading())
	if err != nil {
		return errored(err)
	}
	body2 := make([][]att.Value, 0, len(d.body))
	for _, row := range d.body {
		if f(row) {
			body2 = append(body2, row)
		}
	}
	return &Dataset{cols: d.cols, body: body2}
}
