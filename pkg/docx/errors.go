// Custom error types for the docx package. Hard failures (type mismatches,
// nil arguments, I/O) are returned as errors; validation findings are not
// errors and are reported through Validate.
package docx

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable is returned when an operation scoped to a table is given
	// a nil table.
	ErrNilTable = errors.New("table must not be nil")

	// ErrNilParagraph is returned when an insert-after operation is given a
	// nil reference paragraph.
	ErrNilParagraph = errors.New("paragraph must not be nil")

	// ErrNoMatch is returned by the find operations when no paragraph
	// matches the search text.
	ErrNoMatch = errors.New("no matching text found")

	// ErrStyleExists is returned when defining a style whose id is already
	// taken.
	ErrStyleExists = errors.New("style id already defined")
)

// DocumentError wraps a failure in a document-level operation such as open,
// save or template copy.
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	default:
		return fmt.Sprintf("document error during %s", e.Operation)
	}
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// PropertyTypeError reports a custom property value whose runtime type does
// not match its declared kind.
type PropertyTypeError struct {
	Name string
	Kind PropertyKind
	Got  interface{}
}

func (e *PropertyTypeError) Error() string {
	return fmt.Sprintf("property '%s': value of type %T does not match declared kind %s",
		e.Name, e.Got, e.Kind)
}

// IsDocumentError checks if an error is a document error.
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}

// IsPropertyTypeError checks if an error is a property type mismatch.
func IsPropertyTypeError(err error) bool {
	var pe *PropertyTypeError
	return errors.As(err, &pe)
}
