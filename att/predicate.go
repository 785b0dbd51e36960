// predicate defines logical predicates used in a dataset's restrict

package att

import (
	"fmt"
)

// Predicate is a pure boolean expression over the attributes of a dataset,
// used for restrict.  EvalFunc binds the predicate to a concrete heading
// and returns a function that evaluates one row; binding fails with a
// MissingKeyError when the predicate mentions an attribute that is not in
// the heading.
type Predicate interface {
	// EvalFunc returns a function which evaluates the predicate on a row
	// laid out according to the given heading.
	EvalFunc(heading []Attribute) (func(row []Value) bool, error)

	// Domain is the set of attributes that is required to evaluate the
	// predicate.
	Domain() []Attribute

	// infix boolean expressions
	And(p2 Predicate) AndPred
	Or(p2 Predicate) OrPred
	Xor(p2 Predicate) XorPred
}

// Not predicate
func Not(p Predicate) NotPred {
	// Prefix not is a lot more comprehensible than postfix!  To that end, it
	// is not a part of the interface because that would require postfix.
	return NotPred{p}
}

// NotPred represents a logical not of a predicate
type NotPred struct {
	P Predicate
}

// String representation of Not
func (p NotPred) String() string {
	return fmt.Sprintf("!(%v)", p.P)
}

// Domain is the set of attributes that is required to evaluate the predicate
func (p NotPred) Domain() []Attribute {
	return p.P.Domain()
}

// EvalFunc binds the predicate to a heading
func (p NotPred) EvalFunc(heading []Attribute) (func(row []Value) bool, error) {
	f, err := p.P.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	return func(row []Value) bool { return !f(row) }, nil
}

// And predicate
func (p1 NotPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 NotPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 NotPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// AndPred represents a logical and predicate
type AndPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of And
func (p AndPred) String() string {
	return fmt.Sprintf("(%v) && (%v)", p.P1, p.P2)
}

// Domain is the set of attributes that is required to evaluate the predicate
func (p AndPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// EvalFunc binds the predicate to a heading
func (p AndPred) EvalFunc(heading []Attribute) (func(row []Value) bool, error) {
	f1, err := p.P1.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	f2, err := p.P2.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	return func(row []Value) bool { return f1(row) && f2(row) }, nil
}

// And predicate
func (p1 AndPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 AndPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 AndPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// OrPred represents a logical or predicate
type OrPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of Or
func (p OrPred) String() string {
	return fmt.Sprintf("(%v) || (%v)", p.P1, p.P2)
}

// Domain is the set of attributes that is required to evaluate the predicate
func (p OrPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// EvalFunc binds the predicate to a heading
func (p OrPred) EvalFunc(heading []Attribute) (func(row []Value) bool, error) {
	f1, err := p.P1.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	f2, err := p.P2.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	return func(row []Value) bool { return f1(row) || f2(row) }, nil
}

// And predicate
func (p1 OrPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 OrPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 OrPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

// XorPred represents a logical xor predicate
type XorPred struct {
	P1 Predicate
	P2 Predicate
}

// String representation of Xor
func (p XorPred) String() string {
	return fmt.Sprintf("(%v) != (%v)", p.P1, p.P2)
}

// Domain is the set of attributes that is required to evaluate the predicate
func (p XorPred) Domain() []Attribute {
	return unionAttributes(p.P1.Domain(), p.P2.Domain())
}

// EvalFunc binds the predicate to a heading
func (p XorPred) EvalFunc(heading []Attribute) (func(row []Value) bool, error) {
	f1, err := p.P1.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	f2, err := p.P2.EvalFunc(heading)
	if err != nil {
		return nil, err
	}
	return func(row []Value) bool { return f1(row) != f2(row) }, nil
}

// And predicate
func (p1 XorPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 XorPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 XorPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}

type compOp int

const (
	eqOp compOp = iota
	neOp
	ltOp
	leOp
	gtOp
	geOp
)

func (o compOp) String() string {
	switch o {
	case eqOp:
		return "=="
	case neOp:
		return "!="
	case ltOp:
		return "<"
	case leOp:
		return "<="
	case gtOp:
		return ">"
	default:
		return ">="
	}
}

// ComparisonPred represents a theta comparison between an attribute and
// either a literal value or a second attribute.  It is constructed with the
// EQ, NE, LT, LE, GT, and GE methods of Attribute.
type ComparisonPred struct {
	att1 Attribute
	op   compOp

	att2  Attribute
	toAtt bool
	lit   Value

	err error
}

func newComparison(att1 Attribute, op compOp, v interface{}) ComparisonPred {
	if a2, ok := v.(Attribute); ok {
		return ComparisonPred{att1: att1, op: op, att2: a2, toAtt: true}
	}
	lit, err := ToValue(v)
	return ComparisonPred{att1: att1, op: op, lit: lit, err: err}
}

// String representation of the comparison
func (p ComparisonPred) String() string {
	if p.toAtt {
		return fmt.Sprintf("%s %s %s", p.att1, p.op, p.att2)
	}
	return fmt.Sprintf("%s %s %s", p.att1, p.op, p.lit)
}

// Domain is the set of attributes that is required to evaluate the predicate
func (p ComparisonPred) Domain() []Attribute {
	if p.toAtt {
		return unionAttributes([]Attribute{p.att1}, []Attribute{p.att2})
	}
	return []Attribute{p.att1}
}

// EvalFunc binds the comparison to a heading.  Comparisons involving a
// null are false, as are ordering comparisons between values of
// incomparable kinds; NE is the negation of EQ for non-null operands.
func (p ComparisonPred) EvalFunc(heading []Attribute) (func(row []Value) bool, error) {
	if p.err != nil {
		return nil, p.err
	}
	i := IndexOf(heading, p.att1)
	if i < 0 {
		return nil, &MissingKeyError{Col: p.att1}
	}
	j := -1
	if p.toAtt {
		if j = IndexOf(heading, p.att2); j < 0 {
			return nil, &MissingKeyError{Col: p.att2}
		}
	}
	op := p.op
	lit := p.lit
	return func(row []Value) bool {
		v1 := row[i]
		v2 := lit
		if j >= 0 {
			v2 = row[j]
		}
		return compare(v1, op, v2)
	}, nil
}

func compare(v1 Value, op compOp, v2 Value) bool {
	if v1.IsNull() || v2.IsNull() {
		return false
	}
	switch op {
	case eqOp:
		return v1.Equal(v2)
	case neOp:
		return !v1.Equal(v2)
	}
	// the ordering comparisons follow float semantics for numbers, so any
	// comparison against NaN is false
	if v1.Numeric() && v2.Numeric() {
		f1, f2 := v1.Float64(), v2.Float64()
		switch op {
		case ltOp:
			return f1 < f2
		case leOp:
			return f1 <= f2
		case gtOp:
			return f1 > f2
		default:
			return f1 >= f2
		}
	}
	if v1.Kind() == StringKind && v2.Kind() == StringKind {
		s1, s2 := v1.Str(), v2.Str()
		switch op {
		case ltOp:
			return s1 < s2
		case leOp:
			return s1 <= s2
		case gtOp:
			return s1 > s2
		default:
			return s1 >= s2
		}
	}
	return false
}

// And predicate
func (p1 ComparisonPred) And(p2 Predicate) AndPred {
	return AndPred{p1, p2}
}

// Or predicate
func (p1 ComparisonPred) Or(p2 Predicate) OrPred {
	return OrPred{p1, p2}
}

// Xor predicate
func (p1 ComparisonPred) Xor(p2 Predicate) XorPred {
	return XorPred{p1, p2}
}
