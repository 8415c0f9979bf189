// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package optparse provides declarative command-line processing.
//
// Callers register named options and positional argument slots, then hand the argument vector
// (without the program name) to Parse. Each token is classified as a long option (--name or
// --name=value), a short option (-n or -nVALUE) or a positional value, and dispatched to the
// handler bound at registration:
//
//	p := optparse.NewParser()
//	_ = p.AddFlag('v', "verbose", "print more", func() error { verbose = true; return nil })
//	_ = p.AddValue('n', "num", "a number", func(s string) error { ... })
//	_ = p.AddPositional("FILE", "input file", func(s string) error { ... })
//	p.OptionalFromHere()
//	_ = p.AddPositional("MORE", "more files", func(s string) error { ... })
//	errs := p.Parse(os.Args[1:])
//
// Parse never stops on the first problem: it returns every error found, in token order, unless a
// handler returns a Fatal error, in which case the scan ends right after the offending token.
package optparse

import (
	"fmt"

	"github.com/napalu/optparse/completion"
	"github.com/napalu/optparse/parse"
	"github.com/napalu/optparse/types"
	"github.com/rs/zerolog"
)

// NewParser returns an empty Parser. Use NewParserWith to configure a Parser using option functions.
func NewParser() *Parser {
	return &Parser{
		options:     []Option{},
		positionals: []Positional{},
		listFunc:    matchChainedSeparators,
		logger:      zerolog.Nop(),
	}
}

// Flag builds a Handler for an option which takes no value
func Flag(fn func() error) Handler {
	return Handler{kind: types.NoValue, noValue: fn}
}

// Value builds a Handler for an option which takes exactly one value
func Value(fn func(string) error) Handler {
	return Handler{kind: types.OneValue, value: fn}
}

// Kind returns whether the handler takes a value
func (h Handler) Kind() types.HandlerKind {
	return h.kind
}

// TakesValue is true when the handler expects one string value
func (h Handler) TakesValue() bool {
	return h.kind == types.OneValue
}

// Valid is false for the zero Handler and handlers built around a nil function
func (h Handler) Valid() bool {
	switch h.kind {
	case types.NoValue:
		return h.noValue != nil
	case types.OneValue:
		return h.value != nil
	}

	return false
}

// Call invokes the handler. value is ignored by handlers which take no value.
func (h Handler) Call(value string) error {
	if h.kind == types.OneValue {
		return h.value(value)
	}

	return h.noValue()
}

// TakesValue is true when the option expects one string value
func (o Option) TakesValue() bool {
	return o.Handler.TakesValue()
}

// Hidden is true for options which are left out of generated help
func (o Option) Hidden() bool {
	return o.Description == ""
}

// ShortLabel returns "-x", or "" when the option has no short form
func (o Option) ShortLabel() string {
	if o.Short == 0 {
		return ""
	}

	return "-" + string(o.Short)
}

// LongLabel returns "--name", or "" when the option has no long form
func (o Option) LongLabel() string {
	if o.Long == "" {
		return ""
	}

	return "--" + o.Long
}

// AddOption registers a named option. short is 0 when there is no short form and long is empty
// when there is no long form; at least one of them must be set. Options are matched in
// registration order and the first match wins, so an option reusing an earlier name is never
// reached.
func (p *Parser) AddOption(short rune, long, description string, handler Handler) error {
	if p.longNameConverter != nil && long != "" {
		long = p.longNameConverter(long)
	}
	if short == 0 && long == "" {
		return fmt.Errorf("%w: option needs a short or a long name", ErrInvalidOption)
	}
	if !handler.Valid() {
		return fmt.Errorf(FmtErrorWithString, ErrInvalidOption, displayName(short, long)+" has no handler")
	}
	if short == '-' {
		return fmt.Errorf(FmtErrorWithString, ErrInvalidOption, "'-' can't be used as a short name")
	}

	p.options = append(p.options, Option{
		Short:       short,
		Long:        long,
		Description: description,
		Handler:     handler,
	})
	p.logger.Trace().Str("option", displayName(short, long)).Stringer("kind", handler.Kind()).Msg("option registered")

	return nil
}

// AddFlag registers an option which takes no value
func (p *Parser) AddFlag(short rune, long, description string, fn func() error) error {
	return p.AddOption(short, long, description, Flag(fn))
}

// AddValue registers an option which takes exactly one value
func (p *Parser) AddValue(short rune, long, description string, fn func(string) error) error {
	return p.AddOption(short, long, description, Value(fn))
}

// AddPositional registers the next positional argument slot. The slot is required unless
// OptionalFromHere was called before.
func (p *Parser) AddPositional(name, description string, fn func(string) error) error {
	if name == "" {
		return fmt.Errorf("%w: positional argument needs a name", ErrInvalidPositional)
	}
	if fn == nil {
		return fmt.Errorf(FmtErrorWithString, ErrInvalidPositional, name+" has no handler")
	}

	required := !p.optionalFrom
	if required {
		p.requiredCount++
	}
	p.positionals = append(p.positionals, Positional{
		Name:        name,
		Description: description,
		Required:    required,
		Handler:     fn,
	})
	p.logger.Trace().Str("positional", name).Bool("required", required).Msg("positional registered")

	return nil
}

// OptionalFromHere makes every positional slot registered from now on optional. Calling it more
// than once has no further effect.
func (p *Parser) OptionalFromHere() *Parser {
	p.optionalFrom = true

	return p
}

// Options returns the registered options in registration order
func (p *Parser) Options() []Option {
	out := make([]Option, len(p.options))
	copy(out, p.options)

	return out
}

// Positionals returns the registered positional slots in registration order. The last one is
// marked Repeatable.
func (p *Parser) Positionals() []Positional {
	out := make([]Positional, len(p.positionals))
	copy(out, p.positionals)
	if n := len(out); n > 0 {
		out[n-1].Repeatable = true
	}

	return out
}

// RequiredPositionals returns the number of required positional slots
func (p *Parser) RequiredPositionals() int {
	return p.requiredCount
}

// Parse scans args, which must not include the program name, and invokes the bound handlers in
// token order. The returned Errors are in token order too and empty when everything matched.
func (p *Parser) Parse(args []string) Errors {
	s := &scanner{
		parser: p,
		state:  parse.NewState(args),
		log:    p.logger.With().Str("component", "scanner").Logger(),
	}

	return s.run()
}

// ParseString splits argString using POSIX shell quoting rules and parses the result.
// The error is non-nil only when argString can't be split.
func (p *Parser) ParseString(argString string) (Errors, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return p.Parse(args), nil
}

// CompletionData returns the visible options and positional slots for completion script generation
func (p *Parser) CompletionData() *completion.Data {
	data := completion.NewData()
	for _, opt := range p.options {
		if opt.Hidden() {
			continue
		}
		flag := completion.Flag{
			Long:        opt.Long,
			Description: opt.Description,
			TakesValue:  opt.TakesValue(),
		}
		if opt.Short != 0 {
			flag.Short = string(opt.Short)
		}
		data.AddFlag(flag)
	}
	for _, pos := range p.Positionals() {
		data.Positionals = append(data.Positionals, completion.Positional{
			Name:       pos.Name,
			Required:   pos.Required,
			Repeatable: pos.Repeatable,
		})
	}

	return data
}

// GenerateCompletion returns the completion script for shell ("bash", "zsh" or "fish"), or an
// empty string when the shell is not supported.
func (p *Parser) GenerateCompletion(shell, programName string) string {
	generator := completion.GetGenerator(shell)
	if generator == nil {
		return ""
	}

	return generator.Generate(programName, p.CompletionData())
}
