package optparse

import (
	"github.com/napalu/optparse/types"
	"github.com/rs/zerolog"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithLongNameConverter(ToKebabCase),
//		WithFlag('v', "verbose", "print more", func() error { verbose = true; return nil }),
//		WithValue('n', "num", "a number", func(s string) error { ... }),
//		WithPositional("First", "required argument", func(s string) error { ... }),
//		WithOptionalPositionals(),
//		WithPositional("Next", "optional arguments", func(s string) error { ... }))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithOption is a wrapper for AddOption
func WithOption(short rune, long, description string, handler Handler) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(short, long, description, handler)
	}
}

// WithFlag is a wrapper for AddFlag
func WithFlag(short rune, long, description string, fn func() error) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddFlag(short, long, description, fn)
	}
}

// WithValue is a wrapper for AddValue
func WithValue(short rune, long, description string, fn func(string) error) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddValue(short, long, description, fn)
	}
}

// WithPositional is a wrapper for AddPositional
func WithPositional(name, description string, fn func(string) error) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddPositional(name, description, fn)
	}
}

// WithOptionalPositionals is a wrapper for OptionalFromHere. Positionals configured after it are optional.
func WithOptionalPositionals() ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.OptionalFromHere()
	}
}

// WithLogger sets the logger used to trace registration and dispatch. The default logger discards everything.
func WithLogger(logger zerolog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}

// WithLongNameConverter sets the function applied to long names registered afterwards
func WithLongNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLongNameConverter(converter)
	}
}

// WithListDelimiterFunc sets the function used by list binders to split a value into elements
func WithListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetListDelimiterFunc(delimiterFunc)
	}
}

// SetLogger replaces the logger used to trace registration and dispatch
func (p *Parser) SetLogger(logger zerolog.Logger) {
	p.logger = logger
}

// SetLongNameConverter sets the function applied to long names registered afterwards. nil
// keeps names as given.
func (p *Parser) SetLongNameConverter(converter NameConversionFunc) {
	p.longNameConverter = converter
}

// SetListDelimiterFunc sets the function used by list binders to split a value into elements
func (p *Parser) SetListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) error {
	if delimiterFunc == nil {
		return ErrInvalidDelimiterFunc
	}
	p.listFunc = delimiterFunc

	return nil
}
