package util

import (
	"io"

	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal. Writers which don't expose a file
// descriptor are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
