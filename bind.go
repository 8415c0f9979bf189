package optparse

import (
	"fmt"

	"github.com/napalu/optparse/types"
	"github.com/napalu/optparse/util"
)

// Bind returns a value Handler which converts the option value and stores it in target.
// List types are split on ',', '|' and ' '. A value which can't be converted yields a non-fatal
// validation error and leaves target untouched. A nil target gives an invalid Handler, which
// AddOption rejects.
func Bind[T Bindable](target *T) Handler {
	if target == nil {
		return Handler{}
	}

	return Value(bindFunc(target, func() types.ListDelimiterFunc { return matchChainedSeparators }))
}

// BindFlag returns a Handler which sets target to true when the option is given
func BindFlag(target *bool) Handler {
	if target == nil {
		return Handler{}
	}

	return Flag(func() error {
		*target = true
		return nil
	})
}

// BindOption registers a value option bound to target. Lists are split with the parser's
// list delimiter function.
func BindOption[T Bindable](p *Parser, short rune, long, description string, target *T) error {
	if target == nil {
		return fmt.Errorf(FmtErrorWithString, ErrBindNilPointer, displayName(short, long))
	}

	return p.AddOption(short, long, description, Value(bindFunc(target, p.delimiterFunc)))
}

// BindPositional registers a positional slot bound to target. A *[]string target collects every
// token the slot receives; other targets hold the last converted token.
func BindPositional[T Bindable](p *Parser, name, description string, target *T) error {
	if target == nil {
		return fmt.Errorf(FmtErrorWithString, ErrBindNilPointer, name)
	}

	if list, ok := any(target).(*[]string); ok {
		return p.AddPositional(name, description, func(s string) error {
			*list = append(*list, s)
			return nil
		})
	}

	return p.AddPositional(name, description, bindFunc(target, p.delimiterFunc))
}

func bindFunc[T Bindable](target *T, delimiter func() types.ListDelimiterFunc) func(string) error {
	return func(value string) error {
		var v T
		if err := util.ConvertString(value, &v, delimiter()); err != nil {
			return &ParseError{Kind: types.HandlerValidationError, Message: err.Error(), Err: err}
		}
		*target = v

		return nil
	}
}

func (p *Parser) delimiterFunc() types.ListDelimiterFunc {
	if p.listFunc == nil {
		return matchChainedSeparators
	}

	return p.listFunc
}
