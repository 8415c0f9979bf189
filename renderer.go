package optparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Usage returns the usage suffix which follows the program name: " [options...]" when any option
// is registered, then the positional slots, optional ones nested in brackets, e.g.
// " [options...] FIRST SECOND [NEXT [MORE]]".
func (p *Parser) Usage() string {
	var usage strings.Builder
	if len(p.options) > 0 {
		usage.WriteString(" [options...]")
	}
	for i, pos := range p.positionals {
		if i < p.requiredCount {
			usage.WriteString(" " + pos.Name)
		} else {
			usage.WriteString(" [" + pos.Name)
		}
	}
	if optional := len(p.positionals) - p.requiredCount; optional > 0 {
		usage.WriteString(strings.Repeat("]", optional))
	}

	return usage.String()
}

// Description returns the table of option and positional descriptions. Options and positionals
// with an empty description are left out. Long names and positional names are padded to the
// widest one; multi-line descriptions are indented to the description column.
func (p *Parser) Description() string {
	var desc strings.Builder

	longWidth := 0
	for _, opt := range p.options {
		if !opt.Hidden() {
			longWidth = max(longWidth, runewidth.StringWidth(opt.Long))
		}
	}

	wroteOptions := false
	for _, opt := range p.options {
		if opt.Hidden() {
			continue
		}

		var line strings.Builder
		if opt.Short != 0 {
			line.WriteString(" -" + string(opt.Short))
		} else {
			line.WriteString("   ")
		}
		if opt.Long != "" {
			line.WriteString(" --")
		} else {
			line.WriteString("   ")
		}
		line.WriteString(pad(opt.Long, longWidth))
		line.WriteString("  ")

		desc.WriteString(line.String())
		desc.WriteString(indentContinuation(opt.Description, runewidth.StringWidth(line.String())))
		desc.WriteByte('\n')
		wroteOptions = true
	}

	nameWidth := 0
	for _, pos := range p.positionals {
		if pos.Description != "" {
			nameWidth = max(nameWidth, runewidth.StringWidth(pos.Name))
		}
	}

	for _, pos := range p.positionals {
		if pos.Description == "" {
			continue
		}
		if wroteOptions {
			desc.WriteByte('\n')
			wroteOptions = false
		}

		line := "  " + pad(pos.Name, nameWidth) + "  "
		desc.WriteString(line)
		desc.WriteString(indentContinuation(pos.Description, runewidth.StringWidth(line)))
		desc.WriteByte('\n')
	}

	return desc.String()
}

// PrintUsage writes "Usage: <programName><Usage()>" followed by the description table
func (p *Parser) PrintUsage(writer io.Writer, programName string) {
	_, _ = fmt.Fprintf(writer, "Usage: %s%s\n%s\n", programName, p.Usage(), p.Description())
}

// HelpHandler returns a Handler which prints usage to writer and calls exit(0). It is meant to
// be registered as the -h/--help option; exit is usually os.Exit.
func (p *Parser) HelpHandler(writer io.Writer, programName string, exit func(int)) Handler {
	return Flag(func() error {
		p.PrintUsage(writer, programName)
		exit(0)
		return nil
	})
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func indentContinuation(text string, indent int) string {
	return strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", indent))
}
