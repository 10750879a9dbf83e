// Package rewrite turns command lines that invoke ruby, or well-known ruby
// scripts, into invocations of the selected interpreter.
package rewrite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Command is a command line split at its first whitespace character
type Command struct {
	Args string
	Name string
	Sep  string
}

// Parse splits line into name, the separating whitespace rune, and the rest
func Parse(line string) Command {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return Command{Name: line}
	}
	_, size := utf8.DecodeRuneInString(line[idx:])
	return Command{
		Args: line[idx+size:],
		Name: line[:idx],
		Sep:  line[idx : idx+size],
	}
}

// HasArgs reports whether the name was followed by whitespace
func (c Command) HasArgs() bool {
	return c.Sep != ""
}

// String reassembles the command line
func (c Command) String() string {
	return c.Name + c.Sep + c.Args
}
