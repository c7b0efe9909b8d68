package fsutil

import "golang.org/x/term"

// IsTerminal reports whether v is a file descriptor attached to a terminal.
// Values without an Fd method, such as in-memory buffers, never are.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
