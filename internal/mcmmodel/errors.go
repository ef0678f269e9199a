package mcmmodel

import "fmt"

// ErrorKind classifies the ways the Core can fail to produce a result: bad
// input, unreadable file, malformed dataset row, or a search too large to
// run exhaustively.
type ErrorKind int

const (
	// InputOutOfRange covers a parameter outside its documented domain:
	// n <= 0 or n > MaxVars, q < 2, a negative max_order, etc.
	InputOutOfRange ErrorKind = iota
	// IoFailure covers a dataset or output file that can't be opened,
	// read, or written.
	IoFailure
	// MalformedObservation covers a dataset row that isn't exactly n
	// digit characters, or a digit outside [0, q).
	MalformedObservation
	// NumericLimit covers a request that is well-formed but too large to
	// service: exhaustive search above the configured dense-cache
	// threshold, for instance.
	NumericLimit
)

func (k ErrorKind) String() string {
	switch k {
	case InputOutOfRange:
		return "input out of range"
	case IoFailure:
		return "io failure"
	case MalformedObservation:
		return "malformed observation"
	case NumericLimit:
		return "numeric limit"
	default:
		return "unknown error"
	}
}

// ModelError is the error type every Core failure path returns.
type ModelError struct {
	Kind    ErrorKind
	Message string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newModelError(kind ErrorKind, format string, args ...interface{}) *ModelError {
	return &ModelError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
