package services

import (
	"context"
	"fmt"
	"os"

	"aruba/internal/config"
	"aruba/internal/domain"
	"aruba/internal/ports"
	"aruba/logging"
)

// GotGemsEnv, when set to any value, skips gemset resets and gem installs
const GotGemsEnv = "GOTGEMS"

// ToolchainService selects the rvm ruby and gemset commands run under
type ToolchainService struct {
	files         ports.FileCreator
	runner        ports.CommandRunner
	rvmConfigPath string
	state         *domain.Toolchain
}

// NewToolchainService creates a service mutating state, which the runner reads
func NewToolchainService(
	state *domain.Toolchain,
	runner ports.CommandRunner,
	files ports.FileCreator,
	rvmConfigPath string,
) *ToolchainService {
	if rvmConfigPath == "" {
		rvmConfigPath = config.DefaultRVMConfigPath
	}
	return &ToolchainService{
		files:         files,
		runner:        runner,
		rvmConfigPath: rvmConfigPath,
		state:         state,
	}
}

// Toolchain returns the current selection
func (s *ToolchainService) Toolchain() domain.Toolchain {
	return *s.state
}

// UseRVM selects a ruby version, resolving aliases from the rvm config file
func (s *ToolchainService) UseRVM(version string) error {
	aliases, err := config.LoadRVMAliases(s.rvmConfigPath)
	if err != nil {
		return err
	}

	resolved := version
	if alias, ok := aliases[version]; ok && alias != "" {
		resolved = alias
	}

	s.state.RubyVersion = resolved
	logging.Logger.Debug("Selected rvm ruby", "requested", version, "resolved", resolved)
	return nil
}

// UseRVMGemset selects a gemset. With empty set, the gemset is deleted and
// recreated unless GOTGEMS is set.
func (s *ToolchainService) UseRVMGemset(ctx context.Context, gemset string, empty bool) error {
	s.state.Gemset = gemset
	if !empty || gotGems() {
		return nil
	}

	if err := s.DeleteRVMGemset(ctx, gemset); err != nil {
		return err
	}
	return s.CreateRVMGemset(ctx, gemset)
}

// DeleteRVMGemset removes gemset for the selected ruby
func (s *ToolchainService) DeleteRVMGemset(ctx context.Context, gemset string) error {
	if s.state.RubyVersion == "" {
		return domain.ErrMissingRubyVersion
	}
	_, err := s.runner.Run(ctx, fmt.Sprintf("rvm --force gemset delete %s@%s", s.state.RubyVersion, gemset), true)
	return err
}

// CreateRVMGemset creates gemset for the selected ruby
func (s *ToolchainService) CreateRVMGemset(ctx context.Context, gemset string) error {
	if s.state.RubyVersion == "" {
		return domain.ErrMissingRubyVersion
	}
	_, err := s.runner.Run(ctx, fmt.Sprintf("rvm --create %s@%s", s.state.RubyVersion, gemset), true)
	return err
}

// InstallGems writes a Gemfile and bundles it unless GOTGEMS is set
func (s *ToolchainService) InstallGems(ctx context.Context, gemfile string) error {
	if err := s.files.CreateFile("Gemfile", gemfile); err != nil {
		return fmt.Errorf("failed to write Gemfile: %w", err)
	}
	if gotGems() {
		logging.Logger.Debug("Skipping gem install", "reason", GotGemsEnv+" is set")
		return nil
	}

	for _, cmd := range []string{"gem install bundler", "bundle install"} {
		if _, err := s.runner.Run(ctx, cmd, true); err != nil {
			return err
		}
	}
	return nil
}

func gotGems() bool {
	_, ok := os.LookupEnv(GotGemsEnv)
	return ok
}
