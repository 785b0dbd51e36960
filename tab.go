// tab is a package that implements a deterministic, single-pass pipeline of
// relational operations over ordered in-memory datasets.

package tab

// variable naming conventions
//
// d, d1, d2, d3, ... all represent datasets.  If there is an operation which
// has an output dataset, the output dataset will have the highest number
// after the d.
//
// row, row1, row2, ... all represent rows of values going through some
// relational transformation.
//
// cols, cols2, ... all represent schemas, and h, h2, ... their headings.

import (
	"tab/att"
)

// Dataset is an ordered sequence of rows sharing one schema.  Datasets are
// immutable: every operation returns a new Dataset and leaves its sources
// untouched.  Operations that cannot fail immediately carry a deferred
// error instead, which pins the dataset and is surfaced by Err or by the
// terminal WriteCSV operations, so pipelines can be written as a single
// method chain.
type Dataset struct {
	cols []att.Column
	body [][]att.Value

	err error
}

// New creates a Dataset from a schema and a set of rows.  It fails with a
// DuplicateColumnError if two columns share a name, a DegreeError if a row
// does not match the schema's degree, and a SchemaInferenceError if a
// non-null cell does not match its column's kind.
func New(cols []att.Column, rows ...[]att.Value) (*Dataset, error) {
	for i, c := range cols {
		for _, c2 := range cols[i+1:] {
			if c.Name == c2.Name {
				return nil, &att.DuplicateColumnError{Col: c.Name}
			}
		}
	}
	body := make([][]att.Value, len(rows))
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, &att.DegreeError{Expected: len(cols), Found: len(row)}
		}
		row2 := cloneRow(row)
		for j, v := range row2 {
			if v.IsNull() {
				continue
			}
			k := cols[j].Kind
			if k == att.FloatKind && v.Kind() == att.IntKind {
				// ints widen so a float column stays homogeneous
				row2[j] = att.FloatValue(v.Float64())
				continue
			}
			if v.Kind() != k {
				return nil, &att.SchemaInferenceError{Col: cols[j].Name, Row: i, Value: v.String()}
			}
		}
		body[i] = row2
	}
	return &Dataset{cols: cloneCols(cols), body: body}, nil
}

// errored pins a failed pipeline.  Every downstream operation propagates
// the first error encountered.
func errored(err error) *Dataset {
	return &Dataset{err: err}
}

// Err returns an error encountered during construction or computation
func (d *Dataset) Err() error {
	return d.err
}

// Heading returns the attribute names of the dataset in column order.
func (d *Dataset) Heading() []att.Attribute {
	h := make([]att.Attribute, len(d.cols))
	for i, c := range d.cols {
		h[i] = c.Name
	}
	return h
}

// Columns returns a copy of the dataset's schema.
func (d *Dataset) Columns() []att.Column {
	return cloneCols(d.cols)
}

// Deg returns the degree of the dataset, its number of columns.
func (d *Dataset) Deg() int {
	return len(d.cols)
}

// Card returns the cardinality of the dataset, its number of rows.
func (d *Dataset) Card() int {
	return len(d.body)
}

// Row returns a copy of row i.
func (d *Dataset) Row(i int) []att.Value {
	return cloneRow(d.body[i])
}

// Col returns the values of one column in row order.
func (d *Dataset) Col(a att.Attribute) ([]att.Value, error) {
	if d.err != nil {
		return nil, d.err
	}
	j := att.IndexOf(d.Heading(), a)
	if j < 0 {
		return nil, &att.MissingKeyError{Col: a}
	}
	vals := make([]att.Value, len(d.body))
	for i, row := range d.body {
		vals[i] = row[j]
	}
	return vals, nil
}
