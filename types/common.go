package types

import (
	"errors"
)

// HandlerKind tells the scanner whether a named option consumes a value
type HandlerKind int

const (
	NoValue  HandlerKind = iota // NoValue denotes a handler invoked without argument
	OneValue                    // OneValue denotes a handler invoked with exactly one string value
)

// String returns the string representation of a HandlerKind
func (h HandlerKind) String() string {
	switch h {
	case NoValue:
		return "flag"
	case OneValue:
		return "value"
	}

	return "unknown"
}

// TokenKind is the class assigned to a single command-line token
type TokenKind int

const (
	Positional  TokenKind = iota // Positional is "-" or anything not starting with '-'
	LongOption                   // LongOption starts with "--"
	ShortOption                  // ShortOption starts with '-' followed by anything but '-'
)

// String returns the string representation of a TokenKind
func (t TokenKind) String() string {
	switch t {
	case Positional:
		return "positional"
	case LongOption:
		return "long"
	case ShortOption:
		return "short"
	}

	return "unknown"
}

// ErrorKind classifies a parse error
type ErrorKind int

const (
	UnrecognizedOption ErrorKind = iota + 1
	MissingValue
	UnnecessaryValue
	UnexpectedArgument
	MissingPositionalArgument
	HandlerValidationError
)

// String returns the string representation of an ErrorKind
func (e ErrorKind) String() string {
	switch e {
	case UnrecognizedOption:
		return "unrecognized option"
	case MissingValue:
		return "missing value"
	case UnnecessaryValue:
		return "unnecessary value"
	case UnexpectedArgument:
		return "unexpected argument"
	case MissingPositionalArgument:
		return "missing positional argument"
	case HandlerValidationError:
		return "validation error"
	}

	return "unknown"
}

// Sentinel returns the sentinel error matching the kind, or nil
func (e ErrorKind) Sentinel() error {
	switch e {
	case UnrecognizedOption:
		return ErrUnrecognizedOption
	case MissingValue:
		return ErrMissingValue
	case UnnecessaryValue:
		return ErrUnnecessaryValue
	case UnexpectedArgument:
		return ErrUnexpectedArgument
	case MissingPositionalArgument:
		return ErrMissingPositional
	case HandlerValidationError:
		return ErrValidationFailed
	}

	return nil
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool

var (
	ErrUnrecognizedOption        = errors.New("unrecognized option")
	ErrMissingValue              = errors.New("missing value")
	ErrUnnecessaryValue          = errors.New("unnecessary value")
	ErrUnexpectedArgument        = errors.New("unexpected argument")
	ErrMissingPositional         = errors.New("missing positional argument")
	ErrValidationFailed          = errors.New("validation failed")
	ErrInvalidOption             = errors.New("invalid option")
	ErrInvalidPositional         = errors.New("invalid positional argument")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
	ErrBindNilPointer            = errors.New("can't bind to nil")
	ErrInvalidDelimiterFunc      = errors.New("list delimiter function can't be nil")
)
