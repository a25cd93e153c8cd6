// Package commands provides modular CLI command packages for operator CLIs.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	commands := commands.New(lggr)
//	app.AddCommand(
//	    commands.TrialComponent(trialComponentConfig),
//	)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/sagemaker-experiments/experiments-framework/pkg/commands/trialcomponent"
//
//	app.AddCommand(trialcomponent.NewCommand(trialcomponent.Config{
//	    Logger: lggr,
//	    Deps:   &trialcomponent.Deps{...},  // inject mocks for testing
//	}))
package commands

import (
	"github.com/spf13/cobra"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
	"github.com/sagemaker-experiments/experiments-framework/pkg/commands/trialcomponent"
	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// TrialComponentConfig holds configuration for trial component commands.
type TrialComponentConfig struct {
	// ClientOptions are forwarded to every entity call, e.g.
	// experiments.WithRegion.
	ClientOptions []experiments.Option
}

// TrialComponent creates the trial-component command group.
//
// Usage:
//
//	cmds := commands.New(lggr)
//	rootCmd.AddCommand(cmds.TrialComponent(commands.TrialComponentConfig{
//	    ClientOptions: cfg.ClientOptions(),
//	}))
func (c *Commands) TrialComponent(cfg TrialComponentConfig) *cobra.Command {
	return trialcomponent.NewCommand(trialcomponent.Config{
		Logger:        c.lggr,
		ClientOptions: cfg.ClientOptions,
	})
}
