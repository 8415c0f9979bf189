package optparse

import (
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/napalu/optparse/types"
	"github.com/rs/zerolog"
)

// Bindable lists the types which Bind, BindOption and BindPositional can convert a value into
type Bindable interface {
	string | bool | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | time.Duration | time.Time | []string | []int | []int64 | []uint |
		[]float64 | []bool | []time.Duration | []time.Time
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// NameConversionFunc converts a registered long name before it is stored
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-option-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_option_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myOptionName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myoptionname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

// Handler is the callback bound to a named option. It either takes no value (see Flag) or
// exactly one string value (see Value); the kind is fixed when the Handler is built.
type Handler struct {
	kind    types.HandlerKind
	noValue func() error
	value   func(string) error
}

// Option is a registered named option. Short is 0 when the option has no short form and Long
// is empty when it has no long form. An empty Description hides the option from help.
type Option struct {
	Short       rune
	Long        string
	Description string
	Handler     Handler
}

// Positional is a registered positional argument slot. Required slots are the ones registered
// before OptionalFromHere was called. The last slot is Repeatable: it receives every positional
// token left once the slots before it are filled.
type Positional struct {
	Name        string
	Description string
	Required    bool
	Repeatable  bool
	Handler     func(string) error
}

// Parser holds the registered options and positional slots. Register everything before the
// first call to Parse; the registry is read-only while parsing.
type Parser struct {
	options           []Option
	positionals       []Positional
	optionalFrom      bool
	requiredCount     int
	longNameConverter NameConversionFunc
	listFunc          types.ListDelimiterFunc
	logger            zerolog.Logger
}

var (
	ErrUnrecognizedOption   = types.ErrUnrecognizedOption
	ErrMissingValue         = types.ErrMissingValue
	ErrUnnecessaryValue     = types.ErrUnnecessaryValue
	ErrUnexpectedArgument   = types.ErrUnexpectedArgument
	ErrMissingPositional    = types.ErrMissingPositional
	ErrValidationFailed     = types.ErrValidationFailed
	ErrInvalidOption        = types.ErrInvalidOption
	ErrInvalidPositional    = types.ErrInvalidPositional
	ErrBindNilPointer       = types.ErrBindNilPointer
	ErrInvalidDelimiterFunc = types.ErrInvalidDelimiterFunc
)

const (
	FmtErrorWithString = "%w: %s"
)

const (
	msgUnrecognizedOption = "Unrecognized option"
	msgMissingValue       = "Missing value"
	msgUnnecessaryValue   = "Unnecessary value"
	msgUnexpectedArgument = "Unexpected argument: "
	msgMissingPositional  = "Missing positional argument"
)
