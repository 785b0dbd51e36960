// errors are the named failures a pipeline run can abort with.  Every step
// of a pipeline either succeeds or fails with one of these; no step
// silently drops or repairs a malformed row.

package att

import (
	"fmt"
)

// SchemaInferenceError represents an error that occurs when a column's
// inferred or declared type conflicts with an encountered value and no
// explicit kind override was supplied.
type SchemaInferenceError struct {
	Col   Attribute
	Row   int
	Value string
}

func (e *SchemaInferenceError) Error() string {
	return fmt.Sprintf("tab: value %q at row %d of column %q conflicts with the column's type", e.Value, e.Row, e.Col)
}

// MissingKeyError represents an error that occurs when a grouping, join,
// projection, or predicate names an attribute that is absent from the
// dataset it is applied to.
type MissingKeyError struct {
	Col Attribute
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("tab: attribute %q is not in the dataset", e.Col)
}

// DuplicateColumnError represents an error that occurs when an operation
// would produce two columns with the same name, such as a rename collision
// or a join of datasets sharing a non-key attribute.
type DuplicateColumnError struct {
	Col Attribute
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("tab: duplicate column %q", e.Col)
}

// DegreeError represents an error that occurs when a row does not have the
// same degree as the schema it is constructed against.
type DegreeError struct {
	Expected int
	Found    int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("tab: expected degree %d, found %d", e.Expected, e.Found)
}

// LiteralError represents an error that occurs when a go value with no
// corresponding scalar kind is used as a literal.
type LiteralError struct {
	Found interface{}
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("tab: cannot use %T as a scalar literal", e.Found)
}
