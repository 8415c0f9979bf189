package optparse

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/napalu/optparse/util"
)

var (
	labelColor   = color.New(color.FgYellow, color.Bold)
	messageColor = color.New(color.FgRed)
)

// ReportErrors writes one line per error to writer:
//
//	Error parsing --num: invalid integer value: "x"
//	Error parsing command line: Unexpected argument: extra
//
// Output is coloured only when writer is a terminal. It returns the number of errors written.
func ReportErrors(writer io.Writer, errs Errors) int {
	label, message := *labelColor, *messageColor
	if util.IsTerminal(writer) {
		label.EnableColor()
		message.EnableColor()
	} else {
		label.DisableColor()
		message.DisableColor()
	}

	for _, err := range errs {
		subject := "command line"
		if err.Label != "" {
			subject = err.Label
		}
		_, _ = fmt.Fprintf(writer, "Error parsing %s: %s\n", label.Sprint(subject), message.Sprint(err.Message))
	}

	return len(errs)
}
