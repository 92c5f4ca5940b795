package minigu

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrClosed is returned when an operation is attempted on a closed handle.
	ErrClosed = errors.New("minigu: handle is closed")

	// ErrUnknownEngine is returned when no engine factory is registered
	// under the requested name.
	ErrUnknownEngine = errors.New("minigu: unknown engine")

	// ErrEmptyIdentifier is returned when an identifier is empty after
	// sanitization and could silently target no object at all.
	ErrEmptyIdentifier = errors.New("minigu: identifier is empty after sanitization")
)

// Error is the typed error returned by every operation in this layer.
// It pairs a human-readable message with a structured Kind; the message is
// derived from the engine's free-text failure but is not a stable contract.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minigu: %s: %v", e.Message, e.Err)
	}

	return "minigu: " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or KindUnknown if err did not
// originate from this layer.
func KindOf(err error) Kind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// newError wraps a cause under an explicit kind.
func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// classifyError wraps a raw engine failure under the kind derived from its
// message. Raw engine errors never reach callers unwrapped.
func classifyError(message string, err error) *Error {
	return &Error{Kind: ClassifyMessage(err.Error()), Message: message, Err: err}
}
