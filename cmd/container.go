package cmd

import (
	"os"

	"aruba/internal/adapters/announce"
	"aruba/internal/config"
	"aruba/internal/domain"
	"aruba/internal/sandbox"
	"aruba/internal/services"
)

// Container holds all dependencies for one CLI invocation
type Container struct {
	Runner    *services.CommandRunner
	Sandbox   *sandbox.Sandbox
	Toolchain *services.ToolchainService
}

// NewContainer wires the sandbox (with --cd applied), runner and toolchain
func NewContainer(cli *CLI) (*Container, error) {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	sb := sandbox.New(cli.Root)
	for _, dir := range cli.Cd {
		if err := sb.Cd(dir); err != nil {
			return nil, err
		}
	}

	state := &domain.Toolchain{}
	runner := services.NewCommandRunner(sb, state, services.CommandRunnerOptions{
		Announce: services.AnnounceOptions{
			Cmd:    config.BoolValue(settings.AnnounceCmd),
			Stderr: config.BoolValue(settings.AnnounceStderr),
			Stdout: config.BoolValue(settings.AnnounceStdout),
		},
		Announcer:   announce.NewConsoleAnnouncer(os.Stdout),
		DefaultRuby: settings.RubyBin,
		Shell:       settings.Shell,
	})
	for _, kv := range settings.EnvPairs() {
		runner.SetEnv(kv[0], kv[1])
	}

	return &Container{
		Runner:    runner,
		Sandbox:   sb,
		Toolchain: services.NewToolchainService(state, runner, sb, settings.RVMConfigPath()),
	}, nil
}
