package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"

	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// Experiment represents a named collection of trials. ExperimentName is
// immutable once created.
type Experiment struct {
	ExperimentName   string
	ExperimentArn    string
	DisplayName      string
	Description      string
	Source           *ExperimentSource
	CreationTime     *time.Time
	CreatedBy        *UserContext
	LastModifiedTime *time.Time
	LastModifiedBy   *UserContext

	// Tags are write-only at creation.
	Tags []Tag

	api  SageMakerAPI
	lggr logger.Logger
}

// CreateExperimentInput is the input for [CreateExperiment].
type CreateExperimentInput struct {
	ExperimentName string
	DisplayName    string
	Description    string
	Tags           []Tag
}

// CreateExperiment creates an experiment and returns an entity representing
// it.
func CreateExperiment(ctx context.Context, in CreateExperimentInput, opts ...Option) (*Experiment, error) {
	o := newOptions(opts...)

	api, err := o.resolveAPI(ctx)
	if err != nil {
		return nil, err
	}

	input := &sagemaker.CreateExperimentInput{
		ExperimentName: aws.String(in.ExperimentName),
		Tags:           tagsToSDK(in.Tags),
	}
	if in.DisplayName != "" {
		input.DisplayName = aws.String(in.DisplayName)
	}
	if in.Description != "" {
		input.Description = aws.String(in.Description)
	}

	out, err := api.CreateExperiment(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment %q: %w", in.ExperimentName, err)
	}

	o.lggr.Debugw("created experiment",
		"experimentName", in.ExperimentName,
		"experimentArn", aws.ToString(out.ExperimentArn),
	)

	return &Experiment{
		ExperimentName: in.ExperimentName,
		ExperimentArn:  aws.ToString(out.ExperimentArn),
		DisplayName:    in.DisplayName,
		Description:    in.Description,
		Tags:           in.Tags,
		api:            api,
		lggr:           o.lggr,
	}, nil
}

// LoadExperiment fetches the current state of an existing experiment by
// name.
func LoadExperiment(ctx context.Context, experimentName string, opts ...Option) (*Experiment, error) {
	o := newOptions(opts...)

	api, err := o.resolveAPI(ctx)
	if err != nil {
		return nil, err
	}

	out, err := api.DescribeExperiment(ctx, &sagemaker.DescribeExperimentInput{
		ExperimentName: aws.String(experimentName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe experiment %q: %w", experimentName, err)
	}

	return &Experiment{
		ExperimentName:   aws.ToString(out.ExperimentName),
		ExperimentArn:    aws.ToString(out.ExperimentArn),
		DisplayName:      aws.ToString(out.DisplayName),
		Description:      aws.ToString(out.Description),
		Source:           experimentSourceFromSDK(out.Source),
		CreationTime:     out.CreationTime,
		CreatedBy:        userContextFromSDK(out.CreatedBy),
		LastModifiedTime: out.LastModifiedTime,
		LastModifiedBy:   userContextFromSDK(out.LastModifiedBy),
		api:              api,
		lggr:             o.lggr,
	}, nil
}

// Save sends the locally held state to the service as an update. Only the
// experiment name, display name, and description are sent.
func (e *Experiment) Save(ctx context.Context) error {
	input := &sagemaker.UpdateExperimentInput{
		ExperimentName: aws.String(e.ExperimentName),
	}
	if e.DisplayName != "" {
		input.DisplayName = aws.String(e.DisplayName)
	}
	if e.Description != "" {
		input.Description = aws.String(e.Description)
	}

	if _, err := e.api.UpdateExperiment(ctx, input); err != nil {
		return fmt.Errorf("failed to update experiment %q: %w", e.ExperimentName, err)
	}

	return nil
}

// Delete deletes this experiment from the service. The service rejects
// deleting an experiment that still has trials.
func (e *Experiment) Delete(ctx context.Context) error {
	if _, err := e.api.DeleteExperiment(ctx, &sagemaker.DeleteExperimentInput{
		ExperimentName: aws.String(e.ExperimentName),
	}); err != nil {
		return fmt.Errorf("failed to delete experiment %q: %w", e.ExperimentName, err)
	}

	return nil
}

// ListTrials returns a pager over the trials of this experiment.
func (e *Experiment) ListTrials() *Pager[TrialSummary] {
	return ListTrials(ListTrialsOptions{ExperimentName: e.ExperimentName}, WithAPI(e.api), WithLogger(e.lggr))
}

// ListExperimentsOptions are the filters of an experiment listing.
type ListExperimentsOptions struct {
	CreatedBefore *time.Time
	CreatedAfter  *time.Time
	SortBy        SortExperimentsBy
	SortOrder     SortOrder
	MaxResults    int32
	NextToken     *string
}

// ListExperiments returns a pager over experiment summaries matching the
// given filters.
func ListExperiments(in ListExperimentsOptions, opts ...Option) *Pager[ExperimentSummary] {
	o := newOptions(opts...)

	return newPager(func(ctx context.Context, token *string) ([]ExperimentSummary, *string, error) {
		api, err := o.resolveAPI(ctx)
		if err != nil {
			return nil, nil, err
		}

		input := &sagemaker.ListExperimentsInput{
			CreatedBefore: in.CreatedBefore,
			CreatedAfter:  in.CreatedAfter,
			SortBy:        smtypes.SortExperimentsBy(in.SortBy),
			SortOrder:     smtypes.SortOrder(in.SortOrder),
			NextToken:     token,
		}
		if in.MaxResults > 0 {
			input.MaxResults = aws.Int32(in.MaxResults)
		}

		out, err := api.ListExperiments(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list experiments: %w", err)
		}

		summaries := make([]ExperimentSummary, 0, len(out.ExperimentSummaries))
		for _, s := range out.ExperimentSummaries {
			summaries = append(summaries, experimentSummaryFromSDK(s))
		}

		return summaries, out.NextToken, nil
	}, in.NextToken)
}
