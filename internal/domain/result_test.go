package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinedOutput(t *testing.T) {
	separator := strings.Repeat("-", 70)

	tests := []struct {
		name     string
		stdout   string
		stderr   string
		expected string
	}{
		{"stdout only", "hello\n", "", "hello\n"},
		{"empty", "", "", ""},
		{"both streams", "out", "err", "out\n" + separator + "\nerr"},
		{"stderr only", "", "boom", "\n" + separator + "\nboom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CombinedOutput(tt.stdout, tt.stderr))

			result := Result{Stdout: tt.stdout, Stderr: tt.stderr}
			assert.Equal(t, tt.expected, result.CombinedOutput())
		})
	}
}

func TestResult_Success(t *testing.T) {
	assert.True(t, Result{ExitCode: 0}.Success())
	assert.False(t, Result{ExitCode: 7}.Success())
}

func TestToolchain_Selector(t *testing.T) {
	assert.False(t, Toolchain{}.Active())
	assert.Equal(t, "1.9.2", Toolchain{RubyVersion: "1.9.2"}.Selector())
	assert.Equal(t, "1.9.2@cucumber", Toolchain{RubyVersion: "1.9.2", Gemset: "cucumber"}.Selector())
	assert.True(t, Toolchain{RubyVersion: "1.9.2"}.Active())
}

func TestCommandFailedError(t *testing.T) {
	err := fmt.Errorf("running: %w", &CommandFailedError{Command: "false", ExitCode: 1, Output: "nope"})

	assert.True(t, errors.Is(err, ErrCommandFailed))

	var failed *CommandFailedError
	assert.True(t, errors.As(err, &failed))
	assert.Equal(t, 1, failed.ExitCode)
	assert.Equal(t, "Exit status was 1. Output:\nnope", failed.Error())
}
