package trialcomponent

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
)

// NewCommand creates a new trial-component command with all subcommands.
//
// Usage:
//
//	rootCmd.AddCommand(trialcomponent.NewCommand(trialcomponent.Config{
//	    Logger: lggr,
//	}))
func NewCommand(cfg Config) *cobra.Command {
	// Apply defaults for optional dependencies
	cfg.deps()

	cmd := &cobra.Command{
		Use:   "trial-component",
		Short: "Trial component commands",
	}

	cmd.AddCommand(
		newDescribeCmd(cfg),
		newListCmd(cfg),
		newDeleteCmd(cfg),
	)

	return cmd
}

func newDescribeCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Describe a trial component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := cfg.Deps.Load(cmd.Context(), args[0], cfg.ClientOptions...)
			if err != nil {
				return fmt.Errorf("failed to load trial component %q: %w", args[0], err)
			}

			out, err := json.MarshalIndent(tc, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))

			return nil
		},
	}
}

func newListCmd(cfg Config) *cobra.Command {
	var (
		trialName      string
		experimentName string
		sourceArn      string
		maxResults     int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trial components",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pager := cfg.Deps.List(experiments.ListTrialComponentsOptions{
				TrialName:      trialName,
				ExperimentName: experimentName,
				SourceArn:      sourceArn,
				MaxResults:     maxResults,
			}, cfg.ClientOptions...)

			n := 0
			for pager.Next(cmd.Context()) {
				summary := pager.Item()

				status := ""
				if summary.Status != nil {
					status = string(summary.Status.PrimaryStatus)
				}
				cmd.Printf("%s\t%s\t%s\n", summary.TrialComponentName, status, summary.TrialComponentArn)
				n++
			}
			if err := pager.Err(); err != nil {
				return fmt.Errorf("failed to list trial components: %w", err)
			}

			cfg.Logger.Debugw("listed trial components", "count", n)

			return nil
		},
	}

	cmd.Flags().StringVarP(&trialName, "trial", "t", "", "Filter by trial name")
	cmd.Flags().StringVarP(&experimentName, "experiment", "x", "", "Filter by experiment name")
	cmd.Flags().StringVar(&sourceArn, "source-arn", "", "Filter by source job ARN")
	cmd.Flags().Int32VarP(&maxResults, "max-results", "m", 0, "Page size")

	return cmd
}

func newDeleteCmd(cfg Config) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a trial component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := cfg.Deps.Load(cmd.Context(), args[0], cfg.ClientOptions...)
			if err != nil {
				return fmt.Errorf("failed to load trial component %q: %w", args[0], err)
			}

			if err := tc.Delete(cmd.Context(), force); err != nil {
				return fmt.Errorf("failed to delete trial component %q: %w", args[0], err)
			}

			cmd.Printf("deleted %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Disassociate from all trials before deleting")

	return cmd
}
