// value defines the typed scalars held in a dataset's cells.

package att

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the type tag of a column, and of the values in its cells.
type Kind int

const (
	StringKind Kind = iota
	IntKind
	FloatKind
)

func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	}
	return "invalid"
}

// Column is an attribute together with its declared kind.  A slice of
// columns is a dataset's schema.
type Column struct {
	Name Attribute
	Kind Kind
}

// Value is one cell of a dataset: a string, an int, a float, or null.
// Null is the marker used for unmatched right-side fields in a left outer
// join and for empty cells in a delimited source.  Relational algebra
// proper has no nulls; this package adds them in because ordered pipelines
// over real tabular files need them.
type Value struct {
	kind Kind
	null bool
	str  string
	i    int64
	f    float64
}

// Null returns the null value.
func Null() Value {
	return Value{null: true}
}

// StringValue returns a string-kinded value.
func StringValue(s string) Value {
	return Value{kind: StringKind, str: s}
}

// IntValue returns an int-kinded value.
func IntValue(i int64) Value {
	return Value{kind: IntKind, i: i}
}

// FloatValue returns a float-kinded value.
func FloatValue(f float64) Value {
	return Value{kind: FloatKind, f: f}
}

// Kind returns the kind of the value.  It is meaningless when IsNull.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull indicates whether the value is the null marker.
func (v Value) IsNull() bool {
	return v.null
}

// Int64 returns the value as an int64.  It is zero unless the value is an
// int.
func (v Value) Int64() int64 {
	if v.null {
		return 0
	}
	return v.i
}

// Float64 returns the value as a float64, widening ints.  It is zero for
// strings and nulls.
func (v Value) Float64() float64 {
	if v.null {
		return 0
	}
	if v.kind == IntKind {
		return float64(v.i)
	}
	return v.f
}

// Str returns the underlying string of a string-kinded value.
func (v Value) Str() string {
	if v.null {
		return ""
	}
	return v.str
}

// String formats the value the same way it is serialized: nulls are empty,
// ints are base 10, and floats use the shortest representation that
// round-trips exactly.
func (v Value) String() string {
	if v.null {
		return ""
	}
	switch v.kind {
	case StringKind:
		return v.str
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	default:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
}

// Numeric indicates whether the value is an int or a float.
func (v Value) Numeric() bool {
	return !v.null && (v.kind == IntKind || v.kind == FloatKind)
}

// Equal compares two values.  Null equals only null, ints and floats
// compare numerically, and values of incomparable kinds are unequal.
// NaN is not equal to anything, including itself.
func (v Value) Equal(v2 Value) bool {
	if v.null || v2.null {
		return v.null && v2.null
	}
	if v.Numeric() && v2.Numeric() {
		return v.Float64() == v2.Float64()
	}
	if v.kind == StringKind && v2.kind == StringKind {
		return v.str == v2.str
	}
	return false
}

// Compare provides a total order used for sorting: null sorts before
// everything, NaN before every other number, numbers before strings.
func (v Value) Compare(v2 Value) int {
	if v.null || v2.null {
		return boolCompare(!v.null, !v2.null)
	}
	if v.Numeric() && v2.Numeric() {
		return cmp.Compare(v.Float64(), v2.Float64())
	}
	if v.kind == StringKind && v2.kind == StringKind {
		return cmp.Compare(v.str, v2.str)
	}
	return boolCompare(v.kind == StringKind, v2.kind == StringKind)
}

func boolCompare(b1, b2 bool) int {
	switch {
	case b1 == b2:
		return 0
	case b1:
		return 1
	}
	return -1
}

// Key returns a representation of the value suitable for use in a
// composite grouping or join key.  Values that Equal calls equal share a
// key: an integral float keys the same as the int of its value, so a key
// column inferred float on one side still matches an int column on the
// other.
func (v Value) Key() string {
	if v.null {
		return "\x00"
	}
	switch v.kind {
	case StringKind:
		return "s" + v.str
	case IntKind:
		return "n" + strconv.FormatInt(v.i, 10)
	default:
		if f := v.f; f == math.Trunc(f) && f >= -9223372036854775808 && f < 9223372036854775808 {
			return "n" + strconv.FormatInt(int64(f), 10)
		}
		return "n" + strconv.FormatFloat(v.f, 'g', -1, 64)
	}
}

// Parse converts one cell of a delimited source into a value of the given
// kind.  An empty cell is null no matter the kind.  Int cells are decimal
// only: a zero-padded cell like 010 is ten, and a 0x prefix does not parse.
func Parse(s string, k Kind) (Value, error) {
	if s == "" {
		return Null(), nil
	}
	switch k {
	case IntKind:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case FloatKind:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	default:
		return StringValue(s), nil
	}
}

// ToValue converts a go scalar into a Value.  It accepts Value itself,
// strings, and the numeric types.
func ToValue(v interface{}) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return StringValue(x), nil
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		i, err := cast.ToInt64E(x)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	}
	return Value{}, &LiteralError{Found: v}
}
