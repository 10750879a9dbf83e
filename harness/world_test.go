package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTB captures failures instead of stopping the test
type recordingTB struct {
	testing.TB
	failed   bool
	logs     []string
	messages []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingTB) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
}

func (r *recordingTB) FailNow() {
	r.failed = true
}

func (r *recordingTB) Log(args ...any) {
	r.logs = append(r.logs, fmt.Sprint(args...))
}

func TestWorld_CreateFileAndCat(t *testing.T) {
	w := NewWorld(t)
	w.CreateFile("greeting.txt", "hello world")

	result := w.Run("cat greeting.txt")

	AssertSuccess(t, result)
	assert.Equal(t, "hello world", result.Stdout)
}

func TestWorld_RunAllowingFailure(t *testing.T) {
	w := NewWorld(t)

	result := w.RunAllowingFailure("exit 7")

	AssertExitCode(t, result, 7)
	AssertFailure(t, result)
	assert.Equal(t, 7, w.LastResult().ExitCode)
}

func TestWorld_RunFailsTestOnNonzeroExit(t *testing.T) {
	rec := &recordingTB{TB: t}
	w := NewWorld(rec)

	w.Run("echo visible; echo problem 1>&2; exit 4")

	require.True(t, rec.failed)
	require.NotEmpty(t, rec.messages)
	msg := rec.messages[0]
	assert.Contains(t, msg, "Exit status was 4")
	assert.Contains(t, msg, "visible")
	assert.Contains(t, msg, strings.Repeat("-", 70))
	assert.Contains(t, msg, "problem")
}

func TestWorld_RunSuccessDoesNotFail(t *testing.T) {
	rec := &recordingTB{TB: t}
	w := NewWorld(rec)

	w.Run("true")

	assert.False(t, rec.failed)
}

func TestWorld_CombinedOutput(t *testing.T) {
	w := NewWorld(t)

	w.Run("echo out")
	assert.Equal(t, "out\n", w.CombinedOutput())

	w.Run("echo out; echo err 1>&2")
	assert.Equal(t, "out\n\n"+strings.Repeat("-", 70)+"\nerr\n", w.CombinedOutput())
}

func TestWorld_CdAndPresenceChecks(t *testing.T) {
	w := NewWorld(t)
	w.CreateFile("project/lib/a.txt", "a")
	w.Cd("project")

	w.CheckFilePresence([]string{"lib/a.txt"}, true)
	w.CheckFilePresence([]string{"lib/b.txt", "lib"}, false)
	w.CheckDirectoryPresence([]string{"lib"}, true)
	w.CheckDirectoryPresence([]string{"lib/a.txt", "missing"}, false)

	result := w.Run("ls lib")
	AssertStdoutContains(t, result, "a.txt")
}

func TestWorld_PresenceFailureNamesPath(t *testing.T) {
	rec := &recordingTB{TB: t}
	w := NewWorld(rec)
	w.CreateFile("a.txt", "a")

	w.CheckFilePresence([]string{"a.txt", "b.txt"}, true)

	require.True(t, rec.failed)
	assert.Contains(t, strings.Join(rec.messages, "\n"), "b.txt")
}

func TestWorld_CheckFileContent(t *testing.T) {
	w := NewWorld(t)
	w.CreateFile("log.txt", "line one\nERROR [boom]\n")

	w.CheckFileContent("log.txt", "ERROR", true)
	w.CheckFileContent("log.txt", "[boom]", true)
	w.CheckFileContent("log.txt", "E.ROR", false)
	w.CheckFileContent("log.txt", "WARN", false)
}

func TestWorld_CheckFileContent_MissingFile(t *testing.T) {
	rec := &recordingTB{TB: t}
	w := NewWorld(rec)

	w.CheckFileContent("missing.txt", "x", true)

	require.True(t, rec.failed)
	assert.Contains(t, strings.Join(rec.messages, "\n"), "file not found")
}

func TestWorld_AppendToFileAndCreateDir(t *testing.T) {
	w := NewWorld(t)
	w.CreateDir("out")
	w.AppendToFile("out/log.txt", "a")
	w.AppendToFile("out/log.txt", "b")

	result := w.Run("cat out/log.txt")

	assert.Equal(t, "ab", result.Stdout)
}

func TestWorld_Unescape(t *testing.T) {
	w := NewWorld(t)

	w.CreateFile("multi.txt", w.Unescape(`one\ntwo`))

	w.CheckFileContent("multi.txt", "one\ntwo", true)
}

func TestWorld_SetEnv(t *testing.T) {
	w := NewWorld(t)
	w.SetEnv("GREETING", "hi there")

	result := w.Run("echo $GREETING")

	assert.Equal(t, "hi there\n", result.Stdout)
}

func TestWorld_Announce(t *testing.T) {
	rec := &recordingTB{TB: t}
	w := NewWorld(rec)
	w.Announce(true, true, false)

	w.Run("echo announced")

	assert.Equal(t, []string{"$ echo announced", "announced\n"}, rec.logs)
}

func TestWorld_RubyCommandUsesDefaultRuby(t *testing.T) {
	w := NewWorld(t, WithRuby("echo"))

	result := w.Run("ruby script.rb")
	assert.Equal(t, "script.rb\n", result.Stdout)
	assert.Equal(t, "echo script.rb", result.Command)

	result = w.Run("rspec spec/foo_spec.rb")
	assert.Equal(t, "-S rspec spec/foo_spec.rb\n", result.Stdout)
}

func TestWorld_UseRVM(t *testing.T) {
	rvmConfig := filepath.Join(t.TempDir(), "aruba-rvm.yml")
	require.NoError(t, os.WriteFile(rvmConfig, []byte("ree: ree-1.8.7\n"), 0644))
	w := NewWorld(t, WithRVMConfig(rvmConfig))
	t.Setenv("GOTGEMS", "1")

	w.UseRVM("ree")
	w.UseRVMGemset("cukes", true)

	result := w.RunAllowingFailure("ruby -v")
	assert.Equal(t, "rvm ree-1.8.7@cukes ruby -v", result.Command)
}

func TestWorld_InstallGemsWithGotGems(t *testing.T) {
	t.Setenv("GOTGEMS", "1")
	w := NewWorld(t)

	w.InstallGems("gem 'rake'\n")

	w.CheckFileContent("Gemfile", "gem 'rake'", true)
}

func TestWorld_WithRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "custom")
	w := NewWorld(t, WithRoot(root))
	w.Cd("a")

	assert.Equal(t, filepath.Join(root, "a"), w.CurrentDir())
}

func TestWorld_KeepsWorkingDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	w := NewWorld(t)
	w.Cd("deep")
	w.RunAllowingFailure("exit 1")

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
