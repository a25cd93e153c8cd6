// Package trialcomponent provides CLI commands for inspecting and managing
// trial components.
package trialcomponent

import (
	"context"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// LoadFunc loads a trial component by name.
type LoadFunc func(ctx context.Context, name string, opts ...experiments.Option) (*experiments.TrialComponent, error)

// ListFunc returns a pager over trial component summaries matching the given
// filters.
type ListFunc func(in experiments.ListTrialComponentsOptions, opts ...experiments.Option) *experiments.Pager[experiments.TrialComponentSummary]

// Deps holds the injectable dependencies for trial component commands.
// All fields are optional; nil values use production defaults. Tests can
// override these to avoid a live API client.
type Deps struct {
	// Load loads a trial component by name.
	// Default: experiments.LoadTrialComponent
	Load LoadFunc

	// List pages trial component summaries.
	// Default: experiments.ListTrialComponents
	List ListFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.Load == nil {
		d.Load = experiments.LoadTrialComponent
	}
	if d.List == nil {
		d.List = experiments.ListTrialComponents
	}
}

// Config holds configuration for trial component commands.
type Config struct {
	// Logger is the logger shared by all subcommands.
	Logger logger.Logger

	// ClientOptions are forwarded to every entity call, e.g.
	// experiments.WithRegion or experiments.WithAPI for testing.
	ClientOptions []experiments.Option

	// Deps holds injectable dependencies. Nil uses production defaults.
	Deps *Deps
}

// deps returns the configured dependencies with defaults applied.
func (c *Config) deps() {
	if c.Deps == nil {
		c.Deps = &Deps{}
	}
	c.Deps.applyDefaults()

	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
}
