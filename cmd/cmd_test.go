package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aruba/internal/domain"
)

// runCLI parses args against a fresh CLI rooted in a temp directory and runs it
func runCLI(t *testing.T, root string, args ...string) error {
	t.Helper()
	t.Setenv("ARUBA_SETTINGS", filepath.Join(t.TempDir(), "none.json"))
	t.Setenv("ARUBA_ROOT", "")
	t.Setenv("ARUBA_DEBUG", "")

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("aruba"), kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse(append([]string{"--root", root}, args...))
	require.NoError(t, err)
	return ctx.Run()
}

func TestCreateFileAndCheck(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	require.NoError(t, runCLI(t, root, "create-file", "notes/todo.txt", "buy milk"))
	require.NoError(t, runCLI(t, root, "check", "file", "notes/todo.txt"))
	require.NoError(t, runCLI(t, root, "check", "dir", "notes"))
	require.NoError(t, runCLI(t, root, "check", "content", "notes/todo.txt", "milk"))
	require.NoError(t, runCLI(t, root, "check", "content", "notes/todo.txt", "eggs", "--absent"))

	data, err := os.ReadFile(filepath.Join(root, "notes", "todo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "buy milk", string(data))
}

func TestCreateFile_AppendAndUnescape(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	require.NoError(t, runCLI(t, root, "create-file", "log.txt", `one\n`, "--unescape"))
	require.NoError(t, runCLI(t, root, "create-file", "log.txt", "two", "--append"))

	data, err := os.ReadFile(filepath.Join(root, "log.txt"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(data))
}

func TestCheck_Failure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	err := runCLI(t, root, "check", "file", "missing.txt")
	assert.ErrorIs(t, err, domain.ErrAssertion)

	err = runCLI(t, root, "check", "content", "missing.txt", "x")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestMkdirWithCd(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	require.NoError(t, runCLI(t, root, "--cd", "project", "mkdir", "lib"))

	info, err := os.Stat(filepath.Join(root, "project", "lib"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRun_ExitStatus(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	err := runCLI(t, root, "run", "exit 3")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRun_AllowFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	assert.NoError(t, runCLI(t, root, "run", "--allow-failure", "exit 3"))
}

func TestRun_InSandbox(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")

	require.NoError(t, runCLI(t, root, "run", "echo generated > out.txt"))

	data, err := os.ReadFile(filepath.Join(root, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "generated\n", string(data))
}

func TestClean(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")
	require.NoError(t, runCLI(t, root, "mkdir", "a"))

	require.NoError(t, runCLI(t, root, "clean"))

	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func TestCd_IntoFileFails(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")
	require.NoError(t, runCLI(t, root, "create-file", "plain", "x"))

	err := runCLI(t, root, "--cd", "plain", "mkdir", "sub")

	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}
