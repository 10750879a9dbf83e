package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aruba/internal/domain"
)

const testRuby = "/opt/ruby/bin/ruby"

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{"echo hello", Command{Name: "echo", Sep: " ", Args: "hello"}},
		{"ruby\tscript.rb", Command{Name: "ruby", Sep: "\t", Args: "script.rb"}},
		{"ls", Command{Name: "ls"}},
		{"", Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := Parse(tt.line)
			assert.Equal(t, tt.expected, cmd)
			assert.Equal(t, tt.line, cmd.String())
		})
	}
}

func TestRewrite_DefaultRules(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ruby script", "ruby script.rb", testRuby + " script.rb"},
		{"ruby with tab", "ruby\tscript.rb", testRuby + " script.rb"},
		{"rspec forced through interpreter", "rspec spec/foo_spec.rb", testRuby + " -S rspec spec/foo_spec.rb"},
		{"bundle", "bundle install", testRuby + " -S bundle install"},
		{"unrelated command", "echo hello", "echo hello"},
		{"bare ruby", "ruby", "ruby"},
		{"bare rake", "rake", "rake"},
		{"prefix only", "rubyist x", "rubyist x"},
		{"script name prefix only", "rspecx foo", "rspecx foo"},
		{"ruby not at start", "echo ruby x", "echo ruby x"},
	}

	rewriter := NewRewriter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewriter.Rewrite(tt.input, testRuby))
		})
	}
}

func TestRewrite_EveryKnownScript(t *testing.T) {
	rewriter := NewRewriter()
	for _, script := range RubyScripts {
		t.Run(script, func(t *testing.T) {
			assert.Equal(t, "ruby -S "+script+" arg",
				rewriter.Rewrite(script+" arg", "ruby"))
		})
	}
}

func TestRewrite_SingleRule(t *testing.T) {
	rewriter := NewRewriter(RubyScriptRule{Scripts: []string{"rake"}})

	assert.Equal(t, "ruby -S rake db:migrate", rewriter.Rewrite("rake db:migrate", testRuby))
	assert.Equal(t, "rspec x", rewriter.Rewrite("rspec x", testRuby))
}

func TestInterpreter(t *testing.T) {
	assert.Equal(t, testRuby, Interpreter(domain.Toolchain{}, testRuby))
	assert.Equal(t, "rvm 1.9.2 ruby", Interpreter(domain.Toolchain{RubyVersion: "1.9.2"}, testRuby))
	assert.Equal(t, "rvm 1.9.2@cucumber ruby",
		Interpreter(domain.Toolchain{RubyVersion: "1.9.2", Gemset: "cucumber"}, testRuby))
	// A gemset without a version does not activate rvm
	assert.Equal(t, testRuby, Interpreter(domain.Toolchain{Gemset: "cucumber"}, testRuby))
}

func TestRewrite_WithToolchain(t *testing.T) {
	interpreter := Interpreter(domain.Toolchain{RubyVersion: "1.8.7", Gemset: "g"}, testRuby)

	got := NewRewriter().Rewrite("cucumber features", interpreter)

	assert.Equal(t, "rvm 1.8.7@g ruby -S cucumber features", got)
}
