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

// TrialComponent represents one stage of a trial, typically backed by a
// training or processing job. Trial components are created automatically by
// the SageMaker runtime when a job is launched with an experiment
// configuration, or explicitly via [CreateTrialComponent].
//
// TrialComponentName is immutable once created and is the sole key for load,
// update, and delete. A trial component may be associated with zero or more
// trials; the association is a separate relation record on the service, not
// owned by this entity.
type TrialComponent struct {
	TrialComponentName string
	TrialComponentArn  string
	DisplayName        string
	Source             *TrialComponentSource
	Status             *TrialComponentStatus
	StartTime          *time.Time
	EndTime            *time.Time
	CreationTime       *time.Time
	CreatedBy          *UserContext
	LastModifiedTime   *time.Time
	LastModifiedBy     *UserContext
	Parameters         map[string]ParameterValue
	InputArtifacts     map[string]Artifact
	OutputArtifacts    map[string]Artifact
	Metrics            []MetricSummary

	// Mutation-only fields, sent on Save to delete specific keys server-side.
	ParametersToRemove      []string
	InputArtifactsToRemove  []string
	OutputArtifactsToRemove []string

	// Tags are write-only at creation.
	Tags []Tag

	api                  SageMakerAPI
	lggr                 logger.Logger
	disassociateInterval time.Duration
}

// CreateTrialComponentInput is the input for [CreateTrialComponent].
type CreateTrialComponentInput struct {
	TrialComponentName string
	DisplayName        string
	Tags               []Tag
}

// CreateTrialComponent creates a trial component and returns a hydrated
// entity representing it. The service enforces name uniqueness; creating a
// component whose name already exists fails with a conflict error (see
// [IsConflict]).
func CreateTrialComponent(ctx context.Context, in CreateTrialComponentInput, opts ...Option) (*TrialComponent, error) {
	o := newOptions(opts...)

	api, err := o.resolveAPI(ctx)
	if err != nil {
		return nil, err
	}

	input := &sagemaker.CreateTrialComponentInput{
		TrialComponentName: aws.String(in.TrialComponentName),
		Tags:               tagsToSDK(in.Tags),
	}
	if in.DisplayName != "" {
		input.DisplayName = aws.String(in.DisplayName)
	}

	out, err := api.CreateTrialComponent(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create trial component %q: %w", in.TrialComponentName, err)
	}

	o.lggr.Debugw("created trial component",
		"trialComponentName", in.TrialComponentName,
		"trialComponentArn", aws.ToString(out.TrialComponentArn),
	)

	return &TrialComponent{
		TrialComponentName:   in.TrialComponentName,
		TrialComponentArn:    aws.ToString(out.TrialComponentArn),
		DisplayName:          in.DisplayName,
		Tags:                 in.Tags,
		api:                  api,
		lggr:                 o.lggr,
		disassociateInterval: o.disassociateInterval,
	}, nil
}

// LoadTrialComponent fetches the current state of an existing trial
// component by name. Loading a component that does not exist fails with a
// not-found error (see [IsNotFound]).
func LoadTrialComponent(ctx context.Context, trialComponentName string, opts ...Option) (*TrialComponent, error) {
	o := newOptions(opts...)

	api, err := o.resolveAPI(ctx)
	if err != nil {
		return nil, err
	}

	out, err := api.DescribeTrialComponent(ctx, &sagemaker.DescribeTrialComponentInput{
		TrialComponentName: aws.String(trialComponentName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe trial component %q: %w", trialComponentName, err)
	}

	tc := trialComponentFromDescribe(out)
	tc.api = api
	tc.lggr = o.lggr
	tc.disassociateInterval = o.disassociateInterval

	return tc, nil
}

func trialComponentFromDescribe(out *sagemaker.DescribeTrialComponentOutput) *TrialComponent {
	return &TrialComponent{
		TrialComponentName: aws.ToString(out.TrialComponentName),
		TrialComponentArn:  aws.ToString(out.TrialComponentArn),
		DisplayName:        aws.ToString(out.DisplayName),
		Source:             trialComponentSourceFromSDK(out.Source),
		Status:             statusFromSDK(out.Status),
		StartTime:          out.StartTime,
		EndTime:            out.EndTime,
		CreationTime:       out.CreationTime,
		CreatedBy:          userContextFromSDK(out.CreatedBy),
		LastModifiedTime:   out.LastModifiedTime,
		LastModifiedBy:     userContextFromSDK(out.LastModifiedBy),
		Parameters:         parametersFromSDK(out.Parameters),
		InputArtifacts:     artifactsFromSDK(out.InputArtifacts),
		OutputArtifacts:    artifactsFromSDK(out.OutputArtifacts),
		Metrics:            metricsFromSDK(out.Metrics),
	}
}

// Save sends the locally held state to the service as an update. Only the
// update allow-list is sent: name, display name, status, start/end time,
// parameters, input/output artifacts, and the three to-remove lists.
// Server-managed fields (ARN, creation time, attribution, metrics, tags) are
// never part of the update payload, even when locally set.
func (tc *TrialComponent) Save(ctx context.Context) error {
	input := &sagemaker.UpdateTrialComponentInput{
		TrialComponentName:      aws.String(tc.TrialComponentName),
		Status:                  tc.Status.toSDK(),
		StartTime:               tc.StartTime,
		EndTime:                 tc.EndTime,
		Parameters:              parametersToSDK(tc.Parameters),
		InputArtifacts:          artifactsToSDK(tc.InputArtifacts),
		OutputArtifacts:         artifactsToSDK(tc.OutputArtifacts),
		ParametersToRemove:      tc.ParametersToRemove,
		InputArtifactsToRemove:  tc.InputArtifactsToRemove,
		OutputArtifactsToRemove: tc.OutputArtifactsToRemove,
	}
	if tc.DisplayName != "" {
		input.DisplayName = aws.String(tc.DisplayName)
	}

	if _, err := tc.api.UpdateTrialComponent(ctx, input); err != nil {
		return fmt.Errorf("failed to update trial component %q: %w", tc.TrialComponentName, err)
	}

	tc.lggr.Debugw("updated trial component", "trialComponentName", tc.TrialComponentName)

	return nil
}

// Delete deletes this trial component from the service.
//
// When forceDisassociate is true, every trial associated with this component
// is enumerated first (following continuation tokens until exhausted) and
// disassociated one by one, with a fixed minimum spacing before each
// disassociate call to stay under the service's rate limit on that
// operation. The unconditional delete follows only once all associations are
// removed; if disassociation fails partway, the delete is not attempted and
// the error propagates, leaving the remaining trials associated.
//
// When forceDisassociate is false, the trial listing is never consulted and
// a single delete keyed on the component name is issued.
func (tc *TrialComponent) Delete(ctx context.Context, forceDisassociate bool) error {
	if forceDisassociate {
		if err := tc.disassociateAll(ctx); err != nil {
			return err
		}
	}

	if _, err := tc.api.DeleteTrialComponent(ctx, &sagemaker.DeleteTrialComponentInput{
		TrialComponentName: aws.String(tc.TrialComponentName),
	}); err != nil {
		return fmt.Errorf("failed to delete trial component %q: %w", tc.TrialComponentName, err)
	}

	tc.lggr.Debugw("deleted trial component", "trialComponentName", tc.TrialComponentName)

	return nil
}

// disassociateAll removes this component from every trial it is associated
// with, paging through the trial listing until a page without a continuation
// token is seen.
func (tc *TrialComponent) disassociateAll(ctx context.Context) error {
	var token *string
	for {
		out, err := tc.api.ListTrials(ctx, &sagemaker.ListTrialsInput{
			TrialComponentName: aws.String(tc.TrialComponentName),
			NextToken:          token,
		})
		if err != nil {
			return fmt.Errorf("failed to list trials for trial component %q: %w", tc.TrialComponentName, err)
		}

		for _, trial := range out.TrialSummaries {
			// DisassociateTrialComponent is throttled aggressively; space the
			// calls out rather than racing the limit.
			if err := waitInterval(ctx, tc.disassociateInterval); err != nil {
				return err
			}

			if _, err := tc.api.DisassociateTrialComponent(ctx, &sagemaker.DisassociateTrialComponentInput{
				TrialComponentName: aws.String(tc.TrialComponentName),
				TrialName:          trial.TrialName,
			}); err != nil {
				return fmt.Errorf(
					"failed to disassociate trial component %q from trial %q: %w",
					tc.TrialComponentName, aws.ToString(trial.TrialName), err,
				)
			}

			tc.lggr.Debugw("disassociated trial component",
				"trialComponentName", tc.TrialComponentName,
				"trialName", aws.ToString(trial.TrialName),
			)
		}

		if out.NextToken == nil {
			return nil
		}
		token = out.NextToken
	}
}

// ListTrials returns a pager over the trials this component is associated
// with.
func (tc *TrialComponent) ListTrials() *Pager[TrialSummary] {
	return ListTrials(ListTrialsOptions{TrialComponentName: tc.TrialComponentName}, WithAPI(tc.api), WithLogger(tc.lggr))
}

// ListTrialComponentsOptions are the filters of a trial component listing.
// Filters are combinable; zero values are omitted from the request.
type ListTrialComponentsOptions struct {
	SourceArn      string
	CreatedBefore  *time.Time
	CreatedAfter   *time.Time
	TrialName      string
	ExperimentName string
	SortBy         SortTrialComponentsBy
	SortOrder      SortOrder
	MaxResults     int32
	NextToken      *string
}

// ListTrialComponents returns a pager over trial component summaries
// matching the given filters. Pages are fetched lazily as the pager is
// consumed.
func ListTrialComponents(in ListTrialComponentsOptions, opts ...Option) *Pager[TrialComponentSummary] {
	o := newOptions(opts...)

	return newPager(func(ctx context.Context, token *string) ([]TrialComponentSummary, *string, error) {
		api, err := o.resolveAPI(ctx)
		if err != nil {
			return nil, nil, err
		}

		input := &sagemaker.ListTrialComponentsInput{
			CreatedBefore: in.CreatedBefore,
			CreatedAfter:  in.CreatedAfter,
			SortBy:        smtypes.SortTrialComponentsBy(in.SortBy),
			SortOrder:     smtypes.SortOrder(in.SortOrder),
			NextToken:     token,
		}
		if in.SourceArn != "" {
			input.SourceArn = aws.String(in.SourceArn)
		}
		if in.TrialName != "" {
			input.TrialName = aws.String(in.TrialName)
		}
		if in.ExperimentName != "" {
			input.ExperimentName = aws.String(in.ExperimentName)
		}
		if in.MaxResults > 0 {
			input.MaxResults = aws.Int32(in.MaxResults)
		}

		out, err := api.ListTrialComponents(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list trial components: %w", err)
		}

		summaries := make([]TrialComponentSummary, 0, len(out.TrialComponentSummaries))
		for _, s := range out.TrialComponentSummaries {
			summaries = append(summaries, trialComponentSummaryFromSDK(s))
		}

		return summaries, out.NextToken, nil
	}, in.NextToken)
}

// SearchTrialComponentsOptions are the parameters of a trial component
// search.
type SearchTrialComponentsOptions struct {
	// Expression is the boolean filter resources must satisfy. Nil searches
	// all trial components in the account.
	Expression *SearchExpression
	// SortBy is the resource property used to sort results. The service
	// defaults to LastModifiedTime.
	SortBy     string
	SortOrder  SortOrder
	MaxResults int32
	NextToken  *string
}

// SearchTrialComponents returns a pager over search results scoped to the
// trial component resource type. Pagination behaves exactly as in
// [ListTrialComponents].
func SearchTrialComponents(in SearchTrialComponentsOptions, opts ...Option) *Pager[TrialComponentSearchResult] {
	o := newOptions(opts...)

	return newPager(func(ctx context.Context, token *string) ([]TrialComponentSearchResult, *string, error) {
		api, err := o.resolveAPI(ctx)
		if err != nil {
			return nil, nil, err
		}

		input := &sagemaker.SearchInput{
			Resource:         smtypes.ResourceTypeExperimentTrialComponent,
			SearchExpression: in.Expression.toSDK(),
			SortOrder:        smtypes.SearchSortOrder(in.SortOrder),
			NextToken:        token,
		}
		if in.SortBy != "" {
			input.SortBy = aws.String(in.SortBy)
		}
		if in.MaxResults > 0 {
			input.MaxResults = aws.Int32(in.MaxResults)
		}

		out, err := api.Search(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to search trial components: %w", err)
		}

		results := make([]TrialComponentSearchResult, 0, len(out.Results))
		for _, record := range out.Results {
			results = append(results, trialComponentSearchResultFromSDK(record.TrialComponent))
		}

		return results, out.NextToken, nil
	}, in.NextToken)
}
