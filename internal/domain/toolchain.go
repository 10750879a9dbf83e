package domain

// Toolchain is the optional rvm selection used to resolve ruby invocations
type Toolchain struct {
	Gemset      string
	RubyVersion string
}

// Active reports whether a ruby version has been selected
func (t Toolchain) Active() bool {
	return t.RubyVersion != ""
}

// Selector returns the rvm selector, e.g. "1.9.2" or "1.9.2@cucumber"
func (t Toolchain) Selector() string {
	if t.Gemset == "" {
		return t.RubyVersion
	}
	return t.RubyVersion + "@" + t.Gemset
}
