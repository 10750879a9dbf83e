package cmd

import (
	"fmt"

	"aruba/internal/sandbox"
)

// CreateFileCmd writes a file inside the sandbox
type CreateFileCmd struct {
	Name     string `arg:"" help:"File name relative to the sandbox directory"`
	Content  string `arg:"" help:"File content"`
	Append   bool   `help:"Append instead of overwriting"`
	Unescape bool   `help:"Decode escape sequences such as \\n in the content"`
}

// Run executes the create-file command
func (c *CreateFileCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	content := c.Content
	if c.Unescape {
		if content, err = sandbox.Unescape(content); err != nil {
			return err
		}
	}

	if c.Append {
		return container.Sandbox.AppendToFile(c.Name, content)
	}
	return container.Sandbox.CreateFile(c.Name, content)
}

// MkdirCmd creates a directory inside the sandbox
type MkdirCmd struct {
	Name string `arg:"" help:"Directory name relative to the sandbox directory"`
}

// Run executes the mkdir command
func (m *MkdirCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return container.Sandbox.CreateDir(m.Name)
}

// CleanCmd removes the sandbox root
type CleanCmd struct{}

// Run executes the clean command
func (c *CleanCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	if err := container.Sandbox.Clean(); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", container.Sandbox.Root())
	return nil
}
