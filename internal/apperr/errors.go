package apperr

import "errors"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// Kind classifies failures of the query understanding core.
type Kind string

const (
	// KindConfiguration: the dictionary source is missing or unreadable.
	KindConfiguration Kind = "configuration"
	// KindParse: the dictionary source is not a valid mapping.
	KindParse Kind = "parse"
	// KindSchema: a dictionary entry lacks a required field when it is consumed.
	KindSchema Kind = "schema"
	// KindPrecondition: a caller broke an operation contract (e.g. unknown intent key).
	KindPrecondition Kind = "precondition"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + " error: " + e.Message
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewConfiguration(msg string, err error) *Error {
	return &Error{Kind: KindConfiguration, Message: msg, Err: err}
}

func NewParse(msg string, err error) *Error {
	return &Error{Kind: KindParse, Message: msg, Err: err}
}

func NewSchema(msg string) *Error {
	return &Error{Kind: KindSchema, Message: msg}
}

func NewPrecondition(msg string) *Error {
	return &Error{Kind: KindPrecondition, Message: msg}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
