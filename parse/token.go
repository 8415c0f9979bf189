package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/optparse/types"
)

// Match is the result of comparing a long option body against a registered long name
type Match int

const (
	NoMatch     Match = iota // NoMatch the body does not start with the name or continues past it
	FlagOnly                 // FlagOnly the body equals the name
	InlineValue              // InlineValue the body is name followed by '=' and a (possibly empty) value
)

// Classify returns the class of a token. "-" and tokens which do not start with '-' are positional.
func Classify(token string) types.TokenKind {
	if len(token) < 2 || token[0] != '-' {
		return types.Positional
	}
	if token[1] == '-' {
		return types.LongOption
	}

	return types.ShortOption
}

// LongBody strips the leading "--" of a long option token
func LongBody(token string) string {
	return strings.TrimPrefix(token, "--")
}

// ShortBody splits a short option token into its option rune and whatever follows it.
// The token must be of class ShortOption.
func ShortBody(token string) (rune, string) {
	r, size := utf8.DecodeRuneInString(token[1:])

	return r, token[1+size:]
}

// MatchLong compares body (the token without "--") against name. An empty name never matches.
func MatchLong(body, name string) (Match, string) {
	if name == "" || !strings.HasPrefix(body, name) {
		return NoMatch, ""
	}
	rest := body[len(name):]
	switch {
	case rest == "":
		return FlagOnly, ""
	case rest[0] == '=':
		return InlineValue, rest[1:]
	}

	return NoMatch, ""
}
