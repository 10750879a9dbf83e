package harness

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aruba/internal/adapters/announce"
	"aruba/internal/config"
	"aruba/internal/domain"
	"aruba/internal/sandbox"
	"aruba/internal/services"
)

// World is the per-test state: sandbox path, last command result and toolchain
type World struct {
	runner    *services.CommandRunner
	sandbox   *sandbox.Sandbox
	tb        testing.TB
	toolchain *services.ToolchainService
}

// Option customizes a World
type Option func(*worldOptions)

type worldOptions struct {
	puts          bool
	root          string
	rubyBin       string
	rvmConfigPath string
	shell         string
}

// WithRoot sets the sandbox root instead of <tb.TempDir()>/tmp/aruba
func WithRoot(root string) Option {
	return func(o *worldOptions) { o.root = root }
}

// WithShell sets the shell used to run command lines
func WithShell(shell string) Option {
	return func(o *worldOptions) { o.shell = shell }
}

// WithRuby sets the default ruby interpreter path
func WithRuby(path string) Option {
	return func(o *worldOptions) { o.rubyBin = path }
}

// WithRVMConfig sets the rvm alias file (default config/aruba-rvm.yml)
func WithRVMConfig(path string) Option {
	return func(o *worldOptions) { o.rvmConfigPath = path }
}

// WithPuts prints announcements to stdout instead of the test log
func WithPuts() Option {
	return func(o *worldOptions) { o.puts = true }
}

// NewWorld creates an isolated World. The sandbox lives under tb.TempDir()
// unless WithRoot is given, so it is removed when the test completes.
func NewWorld(tb testing.TB, opts ...Option) *World {
	tb.Helper()

	o := worldOptions{rvmConfigPath: config.DefaultRVMConfigPath}
	for _, opt := range opts {
		opt(&o)
	}
	if o.root == "" {
		o.root = filepath.Join(tb.TempDir(), sandbox.DefaultRoot)
	}

	var announcer announce.Func = func(msg string) { tb.Log(msg) }
	if o.puts {
		announcer = announce.NewConsoleAnnouncer(os.Stdout).Announce
	}

	sb := sandbox.New(o.root)
	state := &domain.Toolchain{}
	runner := services.NewCommandRunner(sb, state, services.CommandRunnerOptions{
		Announcer:   announcer,
		DefaultRuby: o.rubyBin,
		Shell:       o.shell,
	})

	return &World{
		runner:    runner,
		sandbox:   sb,
		tb:        tb,
		toolchain: services.NewToolchainService(state, runner, sb, o.rvmConfigPath),
	}
}

// Cd descends into dir. It fails the test if dir exists and is not a directory.
func (w *World) Cd(dir string) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.Cd(dir))
}

// CurrentDir returns the directory commands and file helpers operate in
func (w *World) CurrentDir() string {
	return w.sandbox.CurrentDir()
}

// CreateFile writes content to name inside the sandbox
func (w *World) CreateFile(name, content string) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.CreateFile(name, content))
}

// AppendToFile appends content to name inside the sandbox
func (w *World) AppendToFile(name, content string) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.AppendToFile(name, content))
}

// CreateDir creates name inside the sandbox
func (w *World) CreateDir(name string) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.CreateDir(name))
}

// Unescape decodes escape sequences such as \n in step arguments
func (w *World) Unescape(s string) string {
	w.tb.Helper()
	unescaped, err := sandbox.Unescape(s)
	require.NoError(w.tb, err)
	return unescaped
}

// Run executes command and fails the test immediately on a nonzero exit status
func (w *World) Run(command string) CommandResult {
	w.tb.Helper()
	return w.run(command, true)
}

// RunAllowingFailure executes command and never fails the test on its exit status
func (w *World) RunAllowingFailure(command string) CommandResult {
	w.tb.Helper()
	return w.run(command, false)
}

func (w *World) run(command string, failOnError bool) CommandResult {
	w.tb.Helper()

	_, err := w.runner.Run(context.Background(), command, failOnError)
	var failed *domain.CommandFailedError
	if errors.As(err, &failed) {
		w.tb.Fatalf("%s", failed.Error())
	}
	require.NoError(w.tb, err, "failed to run %q", command)

	return w.LastResult()
}

// LastResult returns the outcome of the most recent command
func (w *World) LastResult() CommandResult {
	return newCommandResult(w.runner.LastResult())
}

// CombinedOutput returns the last stdout and stderr joined by a separator line
func (w *World) CombinedOutput() string {
	return w.runner.CombinedOutput()
}

// SetEnv sets an environment variable for every later command
func (w *World) SetEnv(key, value string) {
	w.runner.SetEnv(key, value)
}

// Announce enables echoing of command lines, stdout and stderr
func (w *World) Announce(cmd, stdout, stderr bool) {
	w.runner.SetAnnounce(services.AnnounceOptions{Cmd: cmd, Stderr: stderr, Stdout: stdout})
}

// UseRVM selects the rvm ruby for later ruby commands
func (w *World) UseRVM(version string) {
	w.tb.Helper()
	require.NoError(w.tb, w.toolchain.UseRVM(version))
}

// UseRVMGemset selects a gemset, optionally emptying it first
func (w *World) UseRVMGemset(gemset string, empty bool) {
	w.tb.Helper()
	require.NoError(w.tb, w.toolchain.UseRVMGemset(context.Background(), gemset, empty))
}

// InstallGems writes gemfile as Gemfile and bundles it
func (w *World) InstallGems(gemfile string) {
	w.tb.Helper()
	require.NoError(w.tb, w.toolchain.InstallGems(context.Background(), gemfile))
}

// CheckFilePresence requires each path to be (or not be) a regular file.
// The first failing path stops the test.
func (w *World) CheckFilePresence(paths []string, expectPresent bool) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.CheckFilePresence(paths, expectPresent))
}

// CheckDirectoryPresence requires each path to be (or not be) a directory
func (w *World) CheckDirectoryPresence(paths []string, expectPresent bool) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.CheckDirectoryPresence(paths, expectPresent))
}

// CheckFileContent requires file to (not) contain partial literally
func (w *World) CheckFileContent(file, partial string, expectMatch bool) {
	w.tb.Helper()
	require.NoError(w.tb, w.sandbox.CheckFileContent(file, partial, expectMatch))
}
