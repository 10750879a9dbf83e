package rewrite

import (
	"os/exec"
	"slices"

	"aruba/internal/domain"
	"aruba/logging"
)

// RubyScripts are commands forced through `ruby -S` instead of PATH lookup
var RubyScripts = []string{"bundle", "cucumber", "gem", "jeweler", "rails", "rake", "rspec", "spec"}

// Rule rewrites a command when it matches
type Rule interface {
	Name() string
	Apply(cmd Command, interpreter string) (Command, bool)
}

// RubyScriptRule prefixes known ruby scripts with `ruby -S`
type RubyScriptRule struct {
	Scripts []string
}

func (r RubyScriptRule) Name() string { return "ruby-script" }

func (r RubyScriptRule) Apply(cmd Command, _ string) (Command, bool) {
	if !cmd.HasArgs() || !slices.Contains(r.Scripts, cmd.Name) {
		return cmd, false
	}
	return Command{Name: "ruby", Sep: " ", Args: "-S " + cmd.String()}, true
}

// RubyRule replaces a leading `ruby` with the resolved interpreter
type RubyRule struct{}

func (RubyRule) Name() string { return "ruby" }

func (RubyRule) Apply(cmd Command, interpreter string) (Command, bool) {
	if !cmd.HasArgs() || cmd.Name != "ruby" {
		return cmd, false
	}
	return Command{Name: interpreter, Sep: " ", Args: cmd.Args}, true
}

// Rewriter applies its rules in order; each rule sees the previous output
type Rewriter struct {
	rules []Rule
}

// NewRewriter creates a rewriter with the given rules, or the default ones
func NewRewriter(rules ...Rule) *Rewriter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Rewriter{rules: rules}
}

// DefaultRules returns the script rule followed by the interpreter rule
func DefaultRules() []Rule {
	return []Rule{
		RubyScriptRule{Scripts: RubyScripts},
		RubyRule{},
	}
}

// Rewrite returns line with every matching rule applied
func (r *Rewriter) Rewrite(line, interpreter string) string {
	cmd := Parse(line)
	for _, rule := range r.rules {
		rewritten, ok := rule.Apply(cmd, interpreter)
		if !ok {
			continue
		}
		logging.Logger.Debug("Rewrote command", "rule", rule.Name(), "from", cmd.String(), "to", rewritten.String())
		cmd = rewritten
	}
	return cmd.String()
}

// Interpreter returns the ruby invocation for toolchain: an rvm wrapper when a
// version is selected, defaultRuby otherwise
func Interpreter(toolchain domain.Toolchain, defaultRuby string) string {
	if toolchain.Active() {
		return "rvm " + toolchain.Selector() + " ruby"
	}
	return defaultRuby
}

// DefaultRuby resolves ruby on PATH, falling back to the bare name
func DefaultRuby() string {
	path, err := exec.LookPath("ruby")
	if err != nil {
		return "ruby"
	}
	return path
}
