package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data *Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
`, fn))

	var valueFlags, words []string
	for _, flag := range data.Flags() {
		spellings := flag.Spellings()
		words = append(words, spellings...)
		if flag.TakesValue {
			valueFlags = append(valueFlags, spellings...)
		}
	}

	// a value option consumes the next word whatever it looks like
	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
    case "${prev}" in
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;
    esac
`, strings.Join(valueFlags, "|")))
	}

	script.WriteString(fmt.Sprintf(`
    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return
    fi
`, strings.Join(words, " ")))

	if len(data.Positionals) > 0 {
		script.WriteString(`
    COMPREPLY=( $(compgen -f -- "$cur") )
`)
	}

	script.WriteString(fmt.Sprintf(`}

complete -F __%s_completion %s
`, fn, programName))

	return script.String()
}
