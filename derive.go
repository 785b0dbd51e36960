// derive implements computed columns over a dataset

package tab

import (
	"fmt"
	"math"
	"strings"

	"tab/att"
)

// Expr is a pure arithmetic or string expression over the columns of a
// dataset, used by Derive.  EvalFunc binds the expression to a concrete
// schema and reports the kind of the values it will produce.
type Expr interface {
	// Domain is the set of attributes the expression reads.
	Domain() []att.Attribute

	// EvalFunc binds the expression to a schema.
	EvalFunc(cols []att.Column) (func(row []att.Value) att.Value, att.Kind, error)
}

// Derive creates a new dataset with the column named as computed by the
// expression, row by row.  If the dataset already has a column with that
// name it is overwritten in place (derived fields are always recomputed
// from their inputs, never kept alongside stale sources); otherwise the
// column is appended.
func (d *Dataset) Derive(as att.Attribute, e Expr) *Dataset {
	if d.err != nil {
		return d
	}
	f, kind, err := e.EvalFunc(d.cols)
	if err != nil {
		return errored(err)
	}

	j := att.IndexOf(d.Heading(), as)
	cols2 := cloneCols(d.cols)
	if j < 0 {
		j = len(cols2)
		cols2 = append(cols2, att.Column{Name: as, Kind: kind})
	} else {
		cols2[j] = att.Column{Name: as, Kind: kind}
	}

	body2 := make([][]att.Value, len(d.body))
	for i, row := range d.body {
		row2 := make([]att.Value, len(cols2))
		copy(row2, row)
		row2[j] = f(row)
		body2[i] = row2
	}
	return &Dataset{cols: cols2, body: body2}
}

// DeriveWhere applies a value transform to every column whose name
// satisfies sel, in place.  The transform must return values of each
// column's kind (or null).  This is the higher-order form of Derive for
// "apply a function to every column matching a predicate".
func (d *Dataset) DeriveWhere(sel func(att.Attribute) bool, fn func(v att.Value) att.Value) *Dataset {
	if d.err != nil {
		return d
	}
	var idx []int
	for j, c := range d.cols {
		if sel(c.Name) {
			idx = append(idx, j)
		}
	}
	body2 := make([][]att.Value, len(d.body))
	for i, row := range d.body {
		row2 := cloneRow(row)
		for _, j := range idx {
			v := fn(row[j])
			if !v.IsNull() && v.Kind() != d.cols[j].Kind {
				return errored(&att.SchemaInferenceError{Col: d.cols[j].Name, Row: i, Value: v.String()})
			}
			row2[j] = v
		}
		body2[i] = row2
	}
	return &Dataset{cols: d.cols, body: body2}
}

// Field reads the value of one column.
func Field(a att.Attribute) Expr {
	return fieldExpr{a}
}

type fieldExpr struct {
	a att.Attribute
}

func (e fieldExpr) Domain() []att.Attribute {
	return []att.Attribute{e.a}
}

func (e fieldExpr) EvalFunc(cols []att.Column) (func(row []att.Value) att.Value, att.Kind, error) {
	idx, err := columnIndexes(cols, []att.Attribute{e.a})
	if err != nil {
		return nil, 0, err
	}
	j := idx[0]
	return func(row []att.Value) att.Value { return row[j] }, cols[j].Kind, nil
}

// Lit is a constant scalar.
func Lit(v interface{}) Expr {
	val, err := att.ToValue(v)
	return litExpr{val, err}
}

type litExpr struct {
	v   att.Value
	err error
}

func (e litExpr) Domain() []att.Attribute {
	return nil
}

func (e litExpr) EvalFunc(cols []att.Column) (func(row []att.Value) att.Value, att.Kind, error) {
	if e.err != nil {
		return nil, 0, e.err
	}
	v := e.v
	return func([]att.Value) att.Value { return v }, v.Kind(), nil
}

type arithOp int

const (
	addOp arithOp = iota
	subOp
	mulOp
	divOp
)

// Add computes l + r.  The result is an int when both operands are ints.
func Add(l, r Expr) Expr { return binExpr{addOp, l, r} }

// Sub computes l - r.  The result is an int when both operands are ints.
func Sub(l, r Expr) Expr { return binExpr{subOp, l, r} }

// Mul computes l * r.  The result is an int when both operands are ints.
func Mul(l, r Expr) Expr { return binExpr{mulOp, l, r} }

// Div computes l / r as a float.  When the divisor is zero the result is
// NaN - never zero, and never an infinity.  NaN then propagates through
// downstream arithmetic the way floats always do.
func Div(l, r Expr) Expr { return binExpr{divOp, l, r} }

type binExpr struct {
	op   arithOp
	l, r Expr
}

func (e binExpr) Domain() []att.Attribute {
	return append(e.l.Domain(), e.r.Domain()...)
}

func (e binExpr) EvalFunc(cols []att.Column) (func(row []att.Value) att.Value, att.Kind, error) {
	lf, lk, err := e.l.EvalFunc(cols)
	if err != nil {
		return nil, 0, err
	}
	rf, rk, err := e.r.EvalFunc(cols)
	if err != nil {
		return nil, 0, err
	}
	if lk == att.StringKind || rk == att.StringKind {
		return nil, 0, fmt.Errorf("tab: arithmetic over %v and %v operands", lk, rk)
	}

	kind := att.FloatKind
	if e.op != divOp && lk == att.IntKind && rk == att.IntKind {
		kind = att.IntKind
	}
	op := e.op
	return func(row []att.Value) att.Value {
		lv, rv := lf(row), rf(row)
		// a null operand gives a null result
		if lv.IsNull() || rv.IsNull() {
			return att.Null()
		}
		if kind == att.IntKind {
			a, b := lv.Int64(), rv.Int64()
			switch op {
			case addOp:
				return att.IntValue(a + b)
			case subOp:
				return att.IntValue(a - b)
			default:
				return att.IntValue(a * b)
			}
		}
		a, b := lv.Float64(), rv.Float64()
		switch op {
		case addOp:
			return att.FloatValue(a + b)
		case subOp:
			return att.FloatValue(a - b)
		case mulOp:
			return att.FloatValue(a * b)
		default:
			if b == 0 {
				return att.FloatValue(math.NaN())
			}
			return att.FloatValue(a / b)
		}
	}, kind, nil
}

// Round rounds a numeric expression to the given number of decimal digits,
// rounding halves away from zero: Round(2.5, 0) is 3 and Round(-2.5, 0)
// is -3.  The result is a float.
func Round(e Expr, digits int) Expr {
	return roundExpr{e, digits}
}

type roundExpr struct {
	e      Expr
	digits int
}

func (e roundExpr) Domain() []att.Attribute {
	return e.e.Domain()
}

func (e roundExpr) EvalFunc(cols []att.Column) (func(row []att.Value) att.Value, att.Kind, error) {
	f, k, err := e.e.EvalFunc(cols)
	if err != nil {
		return nil, 0, err
	}
	if k == att.StringKind {
		return nil, 0, fmt.Errorf("tab: cannot round a %v operand", k)
	}
	scale := math.Pow(10, float64(e.digits))
	return func(row []att.Value) att.Value {
		v := f(row)
		if v.IsNull() {
			return att.Null()
		}
		return att.FloatValue(math.Round(v.Float64()*scale) / scale)
	}, att.FloatKind, nil
}

// Concat joins the string forms of the operand expressions with a
// separator, producing a string.  Null operands render as empty.
func Concat(sep string, parts ...Expr) Expr {
	return concatExpr{sep, parts}
}

type concatExpr struct {
	sep   string
	parts []Expr
}

func (e concatExpr) Domain() []att.Attribute {
	var dom []att.Attribute
	for _, p := range e.parts {
		dom = append(dom, p.Domain()...)
	}
	return dom
}

func (e concatExpr) EvalFunc(cols []att.Column) (func(row []att.Value) att.Value, att.Kind, error) {
	fns := make([]func(row []att.Value) att.Value, len(e.parts))
	for i, p := range e.parts {
		f, _, err := p.EvalFunc(cols)
		if err != nil {
			return nil, 0, err
		}
		fns[i] = f
	}
	sep := e.sep
	return func(row []att.Value) att.Value {
		ss := make([]string, len(fns))
		for i, f := range fns {
			ss[i] = f(row).String()
		}
		return att.StringValue(strings.Join(ss, sep))
	}, att.StringKind, nil
}
