package optparse

import (
	"errors"
	"fmt"

	"github.com/napalu/optparse/types"
)

// ParseError is a single problem found while scanning the argument vector. Label names the
// offending option form ("--num", "-n") or token; it is empty for errors which don't relate to
// a specific option. A Fatal error stops the scan.
type ParseError struct {
	Kind    types.ErrorKind
	Message string
	Fatal   bool
	Label   string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Label == "" {
		return e.Message
	}

	return e.Label + ": " + e.Message
}

// Unwrap returns the error a handler failed with, if any
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Is matches the sentinel error of the error's kind
func (e *ParseError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel := e.Kind.Sentinel()
	return sentinel != nil && sentinel == target
}

// NewError returns a non-fatal validation error. Handlers return it (or any other error) to
// reject a value.
func NewError(message string) *ParseError {
	return &ParseError{Kind: types.HandlerValidationError, Message: message}
}

// Errorf formats a non-fatal validation error
func Errorf(format string, a ...any) *ParseError {
	err := fmt.Errorf(format, a...)
	return &ParseError{Kind: types.HandlerValidationError, Message: err.Error(), Err: err}
}

// Fatal marks err fatal. Returned from a handler it stops the scan right after the offending token.
// Fatal(nil) is nil.
func Fatal(err error) *ParseError {
	if !failed(err) {
		return nil
	}
	pe := toParseError(err)
	pe.Fatal = true

	return pe
}

// Fatalf formats a fatal validation error
func Fatalf(format string, a ...any) *ParseError {
	pe := Errorf(format, a...)
	pe.Fatal = true

	return pe
}

func newScanError(kind types.ErrorKind, message, label string) *ParseError {
	return &ParseError{Kind: kind, Message: message, Label: label}
}

// toParseError converts whatever a handler returned into a fresh *ParseError which the scanner
// is free to relabel.
func toParseError(err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		cp := *pe
		if cp.Kind == 0 {
			cp.Kind = types.HandlerValidationError
		}
		return &cp
	}

	return &ParseError{Kind: types.HandlerValidationError, Message: err.Error(), Err: err}
}

// failed reports whether a handler result is an error. A nil *ParseError returned through the
// error interface counts as success.
func failed(err error) bool {
	if err == nil {
		return false
	}
	pe, ok := err.(*ParseError)

	return !ok || pe != nil
}

// Errors is the ordered list of errors produced by one Parse call, in token order
type Errors []*ParseError

// Err returns nil when there are no errors, otherwise all errors joined
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	errs := make([]error, len(e))
	for i, pe := range e {
		errs[i] = pe
	}

	return errors.Join(errs...)
}

// HasFatal reports whether the scan was stopped by a fatal error
func (e Errors) HasFatal() bool {
	return len(e) > 0 && e[len(e)-1].Fatal
}

// OfKind returns the errors of the given kind, preserving order
func (e Errors) OfKind(kind types.ErrorKind) Errors {
	var out Errors
	for _, pe := range e {
		if pe.Kind == kind {
			out = append(out, pe)
		}
	}

	return out
}
