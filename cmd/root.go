package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"aruba/internal/config"
	"aruba/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	Settings    string           `help:"Path to settings file (default .aruba.json)" env:"ARUBA_SETTINGS"`
	Root        string           `help:"Sandbox root directory (default tmp/aruba)"`
	Cd          []string         `help:"Directories to descend into below the root, in order"`

	Run        RunCmd        `cmd:"run" help:"Run a shell command inside the sandbox"`
	Check      CheckCmd      `cmd:"check" help:"Check files, directories and file content inside the sandbox"`
	CreateFile CreateFileCmd `cmd:"create-file" help:"Create (or append to) a file inside the sandbox"`
	Mkdir      MkdirCmd      `cmd:"mkdir" help:"Create a directory inside the sandbox"`
	Clean      CleanCmd      `cmd:"clean" help:"Remove the sandbox root"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// AfterApply loads settings and initializes logging after CLI parsing.
// Precedence: CLI flags > env vars > settings file > defaults.
func (c *CLI) AfterApply() error {
	settings, err := config.LoadSettings(c.Settings)
	if err != nil {
		return err
	}
	c.settings = settings

	if c.Root == "" {
		c.Root = settings.RootDir()
	}

	if c.MaxLogFiles == 100 && settings.MaxLogFiles != nil {
		if _, hasEnv := os.LookupEnv("ARUBA_MAX_LOG_FILES"); !hasEnv {
			c.MaxLogFiles = *settings.MaxLogFiles
		}
	}

	if !c.Debug && config.BoolValue(settings.Debug) {
		if _, hasEnv := os.LookupEnv("ARUBA_DEBUG"); !hasEnv {
			c.Debug = true
		}
	}

	if _, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Logger.Debug("CLI initialized", "root", c.Root, "cd", c.Cd)
	return nil
}

// ExitError carries the exit status the process should end with
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
