// Package att represents attributes, the typed values held under them, and
// the predicates constructed from attributes.  It also defines the named
// errors shared by the tab package.
package att

// Attribute represents a particular attribute's name in a dataset
type Attribute string

// EQ returns a predicate that is true when the attribute equals v, which
// can be another Attribute, a Value, or a go scalar.
func (att1 Attribute) EQ(v interface{}) ComparisonPred {
	return newComparison(att1, eqOp, v)
}

// NE returns a predicate that is true when the attribute does not equal v.
func (att1 Attribute) NE(v interface{}) ComparisonPred {
	return newComparison(att1, neOp, v)
}

// LT returns a predicate that is true when the attribute is less than v.
func (att1 Attribute) LT(v interface{}) ComparisonPred {
	return newComparison(att1, ltOp, v)
}

// LE returns a predicate that is true when the attribute is less than or
// equal to v.
func (att1 Attribute) LE(v interface{}) ComparisonPred {
	return newComparison(att1, leOp, v)
}

// GT returns a predicate that is true when the attribute is greater than v.
func (att1 Attribute) GT(v interface{}) ComparisonPred {
	return newComparison(att1, gtOp, v)
}

// GE returns a predicate that is true when the attribute is greater than
// or equal to v.
func (att1 Attribute) GE(v interface{}) ComparisonPred {
	return newComparison(att1, geOp, v)
}

// unionAttributes produces a union of two sets of attributes, without dups
// assuming that the input attributes are already unique. This returns a copy
// and does not modify the inputs.
func unionAttributes(att1 []Attribute, att2 []Attribute) []Attribute {
	// For small sets of attributes (which should be typical!) this should be
	// faster than a map.
	att := make([]Attribute, len(att1))
	copy(att, att1)
Found:
	for _, v2 := range att2 {
		for _, v1 := range att1 {
			if v1 == v2 {
				continue Found
			}
		}
		att = append(att, v2)
	}
	return att
}

// IndexOf locates an attribute in a heading, or returns -1 if it is absent.
func IndexOf(heading []Attribute, a Attribute) int {
	for i, n := range heading {
		if n == a {
			return i
		}
	}
	return -1
}
