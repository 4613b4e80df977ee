package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies operation failures so callers can branch on cause
// instead of message text.
type ErrorKind string

const (
	ErrValidation         ErrorKind = "validation"
	ErrChainUnavailable   ErrorKind = "chain_unavailable"
	ErrSigning            ErrorKind = "signing"
	ErrSubmissionRejected ErrorKind = "submission_rejected"
	ErrReceiptTimeout     ErrorKind = "receipt_timeout"
	ErrCanceled           ErrorKind = "canceled"
	ErrQueryFailed        ErrorKind = "query_failed"
	ErrDecoding           ErrorKind = "decoding"
)

// Error is a classified operation failure.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a classified error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error.
func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the classification of err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// NodeError is implemented by errors carrying a message from the chain node
// itself, as opposed to failures reaching it. The message is preserved
// verbatim for the caller.
type NodeError interface {
	error
	NodeMessage() string
}
