package announce

import (
	"fmt"
	"io"
	"os"

	"aruba/internal/ports"
)

// ConsoleAnnouncer writes each message on its own line
type ConsoleAnnouncer struct {
	w io.Writer
}

// Compile-time interface verification
var _ ports.Announcer = (*ConsoleAnnouncer)(nil)

// NewConsoleAnnouncer creates an announcer writing to w (stdout when nil)
func NewConsoleAnnouncer(w io.Writer) *ConsoleAnnouncer {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleAnnouncer{w: w}
}

// Announce prints msg followed by a newline
func (a *ConsoleAnnouncer) Announce(msg string) {
	fmt.Fprintln(a.w, msg)
}

// Func adapts a plain function (such as testing.TB.Log) to ports.Announcer
type Func func(msg string)

// Announce calls f
func (f Func) Announce(msg string) {
	f(msg)
}
