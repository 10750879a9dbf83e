package cmd

import (
	"fmt"
	"strings"

	"aruba/internal/theme"
)

// CheckCmd groups the file system checks
type CheckCmd struct {
	Content CheckContentCmd `cmd:"content" help:"Check a file contains (or not) a literal string"`
	Dir     CheckDirCmd     `cmd:"dir" help:"Check paths are (or are not) directories"`
	File    CheckFileCmd    `cmd:"file" help:"Check paths are (or are not) regular files"`
}

// CheckFileCmd checks regular file presence
type CheckFileCmd struct {
	Absent bool     `help:"Expect the paths not to be files"`
	Paths  []string `arg:"" help:"Paths relative to the sandbox directory"`
}

// Run executes the file check
func (c *CheckFileCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return report(container.Sandbox.CheckFilePresence(c.Paths, !c.Absent),
		presenceSummary(c.Paths, "file", c.Absent))
}

// CheckDirCmd checks directory presence
type CheckDirCmd struct {
	Absent bool     `help:"Expect the paths not to be directories"`
	Paths  []string `arg:"" help:"Paths relative to the sandbox directory"`
}

// Run executes the directory check
func (c *CheckDirCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return report(container.Sandbox.CheckDirectoryPresence(c.Paths, !c.Absent),
		presenceSummary(c.Paths, "directory", c.Absent))
}

// CheckContentCmd checks file content
type CheckContentCmd struct {
	Absent bool   `help:"Expect the file not to contain the text"`
	File   string `arg:"" help:"File relative to the sandbox directory"`
	Text   string `arg:"" help:"Literal text to look for"`
}

// Run executes the content check
func (c *CheckContentCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	verb := "contains"
	if c.Absent {
		verb = "does not contain"
	}
	return report(container.Sandbox.CheckFileContent(c.File, c.Text, !c.Absent),
		fmt.Sprintf("%s %s %q", c.File, verb, c.Text))
}

func presenceSummary(paths []string, kind string, absent bool) string {
	if absent {
		return fmt.Sprintf("%s: not a %s", strings.Join(paths, ", "), kind)
	}
	return fmt.Sprintf("%s: %s", strings.Join(paths, ", "), kind)
}

func report(err error, summary string) error {
	if err != nil {
		fmt.Println(theme.Fail(summary))
		return err
	}
	fmt.Println(theme.Pass(summary))
	return nil
}
