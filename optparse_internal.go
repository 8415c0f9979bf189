package optparse

import (
	"github.com/napalu/optparse/parse"
	"github.com/napalu/optparse/types"
	"github.com/rs/zerolog"
)

// scanner holds the state of a single Parse call
type scanner struct {
	parser *Parser
	state  parse.State
	errs   Errors
	filled int // number of positional slots which received at least one token
	log    zerolog.Logger
}

func (s *scanner) run() Errors {
	for s.state.Advance() {
		token := s.state.CurrentArg()
		kind := parse.Classify(token)
		s.log.Debug().Str("token", token).Int("pos", s.state.Pos()).Stringer("class", kind).Msg("classified token")

		var stop bool
		switch kind {
		case types.LongOption:
			stop = s.parseLong(token)
		case types.ShortOption:
			stop = s.parseShort(token)
		default:
			stop = s.parsePositional(token)
		}

		if stop {
			s.log.Debug().Int("pos", s.state.Pos()).Int("remaining", s.state.Remaining()).Msg("fatal error, scan stopped")
			return s.errs
		}
	}

	if s.filled < s.parser.requiredCount {
		s.addError(newScanError(types.MissingPositionalArgument, msgMissingPositional, s.parser.positionals[s.filled].Name))
	}

	return s.errs
}

func (s *scanner) parseLong(token string) bool {
	body := parse.LongBody(token)
	for i := range s.parser.options {
		opt := &s.parser.options[i]
		match, value := parse.MatchLong(body, opt.Long)
		switch match {
		case parse.NoMatch:
			continue
		case parse.InlineValue:
			if !opt.TakesValue() {
				s.addError(newScanError(types.UnnecessaryValue, msgUnnecessaryValue, opt.LongLabel()))
				return false
			}
			return s.invoke(opt, opt.LongLabel(), value)
		default:
			return s.dispatch(opt, opt.LongLabel())
		}
	}

	s.addError(newScanError(types.UnrecognizedOption, msgUnrecognizedOption, token))

	return false
}

func (s *scanner) parseShort(token string) bool {
	short, rest := parse.ShortBody(token)
	for i := range s.parser.options {
		opt := &s.parser.options[i]
		if opt.Short == 0 || opt.Short != short {
			continue
		}
		if rest == "" {
			return s.dispatch(opt, opt.ShortLabel())
		}
		if !opt.TakesValue() {
			s.addError(newScanError(types.UnnecessaryValue, msgUnnecessaryValue, opt.ShortLabel()))
			return false
		}

		return s.invoke(opt, opt.ShortLabel(), rest)
	}

	s.addError(newScanError(types.UnrecognizedOption, msgUnrecognizedOption, token))

	return false
}

// dispatch handles an option given without attached value: value options take the next token
func (s *scanner) dispatch(opt *Option, label string) bool {
	if !opt.TakesValue() {
		return s.invoke(opt, label, "")
	}

	value, ok := s.state.TakeValue()
	if !ok {
		s.addError(newScanError(types.MissingValue, msgMissingValue, label))
		return false
	}

	return s.invoke(opt, label, value)
}

func (s *scanner) invoke(opt *Option, label, value string) bool {
	s.log.Debug().Str("option", label).Bool("value", opt.TakesValue()).Msg("dispatching option")
	err := opt.Handler.Call(value)
	if !failed(err) {
		return false
	}

	pe := toParseError(err)
	pe.Label = label

	return s.addError(pe)
}

func (s *scanner) parsePositional(token string) bool {
	slots := s.parser.positionals
	if len(slots) == 0 {
		s.addError(newScanError(types.UnexpectedArgument, msgUnexpectedArgument+token, ""))
		return false
	}

	// the last slot is repeatable and absorbs every remaining positional token
	idx := min(s.filled, len(slots)-1)
	if s.filled <= idx {
		s.filled = idx + 1
	}
	slot := slots[idx]
	s.log.Debug().Str("positional", slot.Name).Str("token", token).Msg("dispatching positional")

	err := slot.Handler(token)
	if !failed(err) {
		return false
	}

	return s.addError(toParseError(err))
}

// addError records err and reports whether the scan must stop
func (s *scanner) addError(err *ParseError) bool {
	s.errs = append(s.errs, err)
	s.log.Debug().Stringer("kind", err.Kind).Str("label", err.Label).Bool("fatal", err.Fatal).Msg(err.Message)

	return err.Fatal
}

func matchChainedSeparators(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

func displayName(short rune, long string) string {
	if long != "" {
		return "--" + long
	}

	return "-" + string(short)
}
