// groupby implements grouping and aggregation over a dataset

package tab

import (
	"fmt"

	"tab/att"
)

// GroupedDataset is an explicit mapping from group key to the ordered
// subsequence of rows sharing that key.  Every row of the source belongs
// to exactly one group.  Groups are held in order of first appearance,
// which is what makes the downstream sort's tie-breaking deterministic.
type GroupedDataset struct {
	cols   []att.Column
	keyIdx []int

	order  []string
	groups map[string]*group

	err error
}

type group struct {
	key  []att.Value
	rows [][]att.Value
}

// GroupBy partitions the dataset by equality of one or more key columns.
// Rows whose keys are all null form a group of their own.  An absent key
// column fails with a MissingKeyError.
func (d *Dataset) GroupBy(keys ...att.Attribute) *GroupedDataset {
	if d.err != nil {
		return &GroupedDataset{err: d.err}
	}
	idx, err := columnIndexes(d.cols, keys)
	if err != nil {
		return &GroupedDataset{err: err}
	}
	g := &GroupedDataset{
		cols:   d.cols,
		keyIdx: idx,
		groups: make(map[string]*group),
	}
	for _, row := range d.body {
		k := compositeKey(row, idx)
		grp, exists := g.groups[k]
		if !exists {
			key := make([]att.Value, len(idx))
			for i, j := range idx {
				key[i] = row[j]
			}
			grp = &group{key: key}
			g.groups[k] = grp
			g.order = append(g.order, k)
		}
		grp.rows = append(grp.rows, row)
	}
	return g
}

// Err returns an error encountered during construction or computation
func (g *GroupedDataset) Err() error {
	return g.err
}

// Len returns the number of groups.
func (g *GroupedDataset) Len() int {
	return len(g.order)
}

// Keys returns the group keys in order of first appearance.
func (g *GroupedDataset) Keys() [][]att.Value {
	keys := make([][]att.Value, len(g.order))
	for i, k := range g.order {
		keys[i] = cloneRow(g.groups[k].key)
	}
	return keys
}

// Each calls f once per group, in order of first appearance, with the
// group's key and its rows as a dataset with the source schema.  It stops
// at the first error f returns.
func (g *GroupedDataset) Each(f func(key []att.Value, rows *Dataset) error) error {
	if g.err != nil {
		return g.err
	}
	for _, k := range g.order {
		grp := g.groups[k]
		d := &Dataset{cols: g.cols, body: grp.rows}
		if err := f(cloneRow(grp.key), d); err != nil {
			return err
		}
	}
	return nil
}

// Aggregate is one named aggregate value computed per group by Reduce.
type Aggregate struct {
	// As is the name of the resulting column.
	As att.Attribute

	of   att.Attribute
	kind func(src att.Kind) att.Kind
	fn   func(src att.Kind, vals []att.Value) (att.Value, error)
}

// Sum aggregates a numeric column by summation, keeping the column's kind:
// summing ints gives an int.  Nulls are skipped, and a group whose values
// are all null sums to null.
func Sum(of, as att.Attribute) Aggregate {
	return Aggregate{
		As:   as,
		of:   of,
		kind: func(src att.Kind) att.Kind { return src },
		fn: func(src att.Kind, vals []att.Value) (att.Value, error) {
			if src == att.StringKind {
				return att.Value{}, fmt.Errorf("tab: cannot sum column %q of kind string", of)
			}
			any := false
			var si int64
			var sf float64
			for _, v := range vals {
				if v.IsNull() {
					continue
				}
				any = true
				si += v.Int64()
				sf += v.Float64()
			}
			if !any {
				return att.Null(), nil
			}
			if src == att.IntKind {
				return att.IntValue(si), nil
			}
			return att.FloatValue(sf), nil
		},
	}
}

// Agg is the general aggregate: fn receives the group's values of column
// of, in row order, and returns one value of the given kind.
func Agg(as, of att.Attribute, kind att.Kind, fn func(vals []att.Value) (att.Value, error)) Aggregate {
	return Aggregate{
		As:   as,
		of:   of,
		kind: func(att.Kind) att.Kind { return kind },
		fn: func(_ att.Kind, vals []att.Value) (att.Value, error) {
			return fn(vals)
		},
	}
}

// Reduce computes one row per group: the group's key columns followed by
// one column per aggregate.  A name collision between key and aggregate
// columns fails with a DuplicateColumnError.  Empty groups cannot occur;
// a group exists only because at least one row produced it.
func (g *GroupedDataset) Reduce(aggs ...Aggregate) *Dataset {
	if g.err != nil {
		return errored(g.err)
	}

	cols2 := make([]att.Column, 0, len(g.keyIdx)+len(aggs))
	for _, j := range g.keyIdx {
		cols2 = append(cols2, g.cols[j])
	}
	srcIdx := make([]int, len(aggs))
	for i, a := range aggs {
		j, err := columnIndexes(g.cols, []att.Attribute{a.of})
		if err != nil {
			return errored(err)
		}
		srcIdx[i] = j[0]
		cols2 = append(cols2, att.Column{Name: a.As, Kind: a.kind(g.cols[j[0]].Kind)})
	}
	for i, c := range cols2 {
		for _, c2 := range cols2[i+1:] {
			if c.Name == c2.Name {
				return errored(&att.DuplicateColumnError{Col: c.Name})
			}
		}
	}

	body2 := make([][]att.Value, 0, len(g.order))
	for _, k := range g.order {
		grp := g.groups[k]
		row2 := make([]att.Value, 0, len(cols2))
		row2 = append(row2, grp.key...)
		for i, a := range aggs {
			vals := make([]att.Value, len(grp.rows))
			for n, row := range grp.rows {
				vals[n] = row[srcIdx[i]]
			}
			v, err := a.fn(g.cols[srcIdx[i]].Kind, vals)
			if err != nil {
				return errored(err)
			}
			row2 = append(row2, v)
		}
		body2 = append(body2, row2)
	}
	return &Dataset{cols: cols2, body: body2}
}
