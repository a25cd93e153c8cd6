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

// Trial represents one end-to-end attempt within an experiment: a named
// collection of trial components. TrialName is immutable once created.
type Trial struct {
	TrialName        string
	TrialArn         string
	DisplayName      string
	ExperimentName   string
	Source           *TrialSource
	CreationTime     *time.Time
	CreatedBy        *UserContext
	LastModifiedTime *time.Time
	LastModifiedBy   *UserContext

	// Tags are write-only at creation.
	Tags []Tag

	api  SageMakerAPI
	lggr logger.Logger
}

// CreateTrialInput is the input for [CreateTrial].
type CreateTrialInput struct {
	TrialName      string
	ExperimentName string
	DisplayName    string
	Tags           []Tag
}

// CreateTrial creates a trial under the given experiment and returns an
// entity representing it.
func CreateTrial(ctx context.Context, in CreateTrialInput, opts ...Option) (*Trial, error) {
	o := newOptions(opts...)

	api, err := o.resolveAPI(ctx)
	if err != nil {
		return nil, err
	}

	input := &sagemaker.CreateTrialInput{
		TrialName:      aws.String(in.TrialName),
		ExperimentName: aws.String(in.ExperimentName),
		Tags:           tagsToSDK(in.Tags),
	}
	if in.DisplayName != "" {
		input.DisplayName = aws.String(in.DisplayName)
	}

	out, err := api.CreateTrial(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create trial %q: %w", in.TrialName, err)
	}

	o.lggr.Debugw("created trial",
		"trialName", in.TrialName,
		"experimentName", in.ExperimentName,
		"trialArn", aws.ToString(out.TrialArn),
	)

	return &Trial{
		TrialName:      in.TrialName,
		TrialArn:       aws.ToString(out.TrialArn),
		DisplayName:    in.DisplayName,
		ExperimentName: in.ExperimentName,
		Tags:           in.Tags,
		api:            api,
		lggr:           o.lggr,
	}, nil
}

// LoadTrial fetches the current state of an existing trial by name.
func LoadTrial(ctx context.Context, trialName string, opts ...Option) (*Trial, error) {
	o := newOptions(opts...)

	api, err := o.resolveAPI(ctx)
	if err != nil {
		return nil, err
	}

	out, err := api.DescribeTrial(ctx, &sagemaker.DescribeTrialInput{
		TrialName: aws.String(trialName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe trial %q: %w", trialName, err)
	}

	return &Trial{
		TrialName:        aws.ToString(out.TrialName),
		TrialArn:         aws.ToString(out.TrialArn),
		DisplayName:      aws.ToString(out.DisplayName),
		ExperimentName:   aws.ToString(out.ExperimentName),
		Source:           trialSourceFromSDK(out.Source),
		CreationTime:     out.CreationTime,
		CreatedBy:        userContextFromSDK(out.CreatedBy),
		LastModifiedTime: out.LastModifiedTime,
		LastModifiedBy:   userContextFromSDK(out.LastModifiedBy),
		api:              api,
		lggr:             o.lggr,
	}, nil
}

// Save sends the locally held state to the service as an update. Only the
// trial name and display name are sent; everything else is server-managed.
func (t *Trial) Save(ctx context.Context) error {
	input := &sagemaker.UpdateTrialInput{
		TrialName: aws.String(t.TrialName),
	}
	if t.DisplayName != "" {
		input.DisplayName = aws.String(t.DisplayName)
	}

	if _, err := t.api.UpdateTrial(ctx, input); err != nil {
		return fmt.Errorf("failed to update trial %q: %w", t.TrialName, err)
	}

	return nil
}

// Delete deletes this trial from the service. The service rejects deleting a
// trial that still has associated trial components.
func (t *Trial) Delete(ctx context.Context) error {
	if _, err := t.api.DeleteTrial(ctx, &sagemaker.DeleteTrialInput{
		TrialName: aws.String(t.TrialName),
	}); err != nil {
		return fmt.Errorf("failed to delete trial %q: %w", t.TrialName, err)
	}

	return nil
}

// AddTrialComponent associates the named trial component with this trial.
func (t *Trial) AddTrialComponent(ctx context.Context, trialComponentName string) error {
	if _, err := t.api.AssociateTrialComponent(ctx, &sagemaker.AssociateTrialComponentInput{
		TrialName:          aws.String(t.TrialName),
		TrialComponentName: aws.String(trialComponentName),
	}); err != nil {
		return fmt.Errorf(
			"failed to associate trial component %q with trial %q: %w",
			trialComponentName, t.TrialName, err,
		)
	}

	return nil
}

// RemoveTrialComponent disassociates the named trial component from this
// trial without deleting either.
func (t *Trial) RemoveTrialComponent(ctx context.Context, trialComponentName string) error {
	if _, err := t.api.DisassociateTrialComponent(ctx, &sagemaker.DisassociateTrialComponentInput{
		TrialName:          aws.String(t.TrialName),
		TrialComponentName: aws.String(trialComponentName),
	}); err != nil {
		return fmt.Errorf(
			"failed to disassociate trial component %q from trial %q: %w",
			trialComponentName, t.TrialName, err,
		)
	}

	return nil
}

// ListTrialComponents returns a pager over the trial components associated
// with this trial.
func (t *Trial) ListTrialComponents() *Pager[TrialComponentSummary] {
	return ListTrialComponents(ListTrialComponentsOptions{TrialName: t.TrialName}, WithAPI(t.api), WithLogger(t.lggr))
}

// ListTrialsOptions are the filters of a trial listing. Filters are
// combinable; zero values are omitted from the request.
type ListTrialsOptions struct {
	ExperimentName     string
	TrialComponentName string
	CreatedBefore      *time.Time
	CreatedAfter       *time.Time
	SortBy             SortTrialsBy
	SortOrder          SortOrder
	MaxResults         int32
	NextToken          *string
}

// ListTrials returns a pager over trial summaries matching the given
// filters. Pages are fetched lazily as the pager is consumed.
func ListTrials(in ListTrialsOptions, opts ...Option) *Pager[TrialSummary] {
	o := newOptions(opts...)

	return newPager(func(ctx context.Context, token *string) ([]TrialSummary, *string, error) {
		api, err := o.resolveAPI(ctx)
		if err != nil {
			return nil, nil, err
		}

		input := &sagemaker.ListTrialsInput{
			CreatedBefore: in.CreatedBefore,
			CreatedAfter:  in.CreatedAfter,
			SortBy:        smtypes.SortTrialsBy(in.SortBy),
			SortOrder:     smtypes.SortOrder(in.SortOrder),
			NextToken:     token,
		}
		if in.ExperimentName != "" {
			input.ExperimentName = aws.String(in.ExperimentName)
		}
		if in.TrialComponentName != "" {
			input.TrialComponentName = aws.String(in.TrialComponentName)
		}
		if in.MaxResults > 0 {
			input.MaxResults = aws.Int32(in.MaxResults)
		}

		out, err := api.ListTrials(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list trials: %w", err)
		}

		summaries := make([]TrialSummary, 0, len(out.TrialSummaries))
		for _, s := range out.TrialSummaries {
			summaries = append(summaries, trialSummaryFromSDK(s))
		}

		return summaries, out.NextToken, nil
	}, in.NextToken)
}
