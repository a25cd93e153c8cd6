package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// SageMakerAPI is the subset of the SageMaker API consumed by this package.
// It is satisfied by *sagemaker.Client and allows injecting a mock client in
// unit tests.
type SageMakerAPI interface {
	AssociateTrialComponent(
		ctx context.Context,
		params *sagemaker.AssociateTrialComponentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.AssociateTrialComponentOutput, error)
	CreateExperiment(
		ctx context.Context,
		params *sagemaker.CreateExperimentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.CreateExperimentOutput, error)
	CreateTrial(
		ctx context.Context,
		params *sagemaker.CreateTrialInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.CreateTrialOutput, error)
	CreateTrialComponent(
		ctx context.Context,
		params *sagemaker.CreateTrialComponentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.CreateTrialComponentOutput, error)
	DeleteExperiment(
		ctx context.Context,
		params *sagemaker.DeleteExperimentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DeleteExperimentOutput, error)
	DeleteTrial(
		ctx context.Context,
		params *sagemaker.DeleteTrialInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DeleteTrialOutput, error)
	DeleteTrialComponent(
		ctx context.Context,
		params *sagemaker.DeleteTrialComponentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DeleteTrialComponentOutput, error)
	DescribeExperiment(
		ctx context.Context,
		params *sagemaker.DescribeExperimentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DescribeExperimentOutput, error)
	DescribeTrial(
		ctx context.Context,
		params *sagemaker.DescribeTrialInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DescribeTrialOutput, error)
	DescribeTrialComponent(
		ctx context.Context,
		params *sagemaker.DescribeTrialComponentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DescribeTrialComponentOutput, error)
	DisassociateTrialComponent(
		ctx context.Context,
		params *sagemaker.DisassociateTrialComponentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.DisassociateTrialComponentOutput, error)
	ListExperiments(
		ctx context.Context,
		params *sagemaker.ListExperimentsInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.ListExperimentsOutput, error)
	ListTrialComponents(
		ctx context.Context,
		params *sagemaker.ListTrialComponentsInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.ListTrialComponentsOutput, error)
	ListTrials(
		ctx context.Context,
		params *sagemaker.ListTrialsInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.ListTrialsOutput, error)
	Search(
		ctx context.Context,
		params *sagemaker.SearchInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.SearchOutput, error)
	UpdateExperiment(
		ctx context.Context,
		params *sagemaker.UpdateExperimentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.UpdateExperimentOutput, error)
	UpdateTrial(
		ctx context.Context,
		params *sagemaker.UpdateTrialInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.UpdateTrialOutput, error)
	UpdateTrialComponent(
		ctx context.Context,
		params *sagemaker.UpdateTrialComponentInput,
		optFns ...func(*sagemaker.Options),
	) (*sagemaker.UpdateTrialComponentOutput, error)
}

var _ SageMakerAPI = (*sagemaker.Client)(nil)

// DefaultDisassociateInterval is the minimum spacing inserted before each
// DisassociateTrialComponent call during a forced delete. The service
// throttles this operation aggressively; a fixed spacing keeps forced deletes
// under the limit.
const DefaultDisassociateInterval = 1200 * time.Millisecond

const (
	defaultWaiterPollInterval = 15 * time.Second
	defaultWaiterMaxAttempts  = 40
)

type options struct {
	api                  SageMakerAPI
	lggr                 logger.Logger
	region               string
	endpoint             string
	disassociateInterval time.Duration
	waiterPollInterval   time.Duration
	waiterMaxAttempts    uint
}

// Option configures entity constructors and package-level operations.
type Option func(*options)

// WithAPI injects the SageMaker client to use. Without it, a default client
// is constructed lazily from the ambient AWS configuration on first use.
func WithAPI(api SageMakerAPI) Option {
	return func(o *options) { o.api = api }
}

// WithLogger injects the logger to use. Defaults to a no-op logger.
func WithLogger(lggr logger.Logger) Option {
	return func(o *options) { o.lggr = lggr }
}

// WithRegion sets the AWS region used when constructing the default client.
// It has no effect when a client is injected with WithAPI.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint overrides the SageMaker service endpoint used when
// constructing the default client.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithDisassociateInterval overrides the minimum spacing before each
// disassociate call during a forced delete. Intended for tests; production
// callers should keep [DefaultDisassociateInterval].
func WithDisassociateInterval(d time.Duration) Option {
	return func(o *options) { o.disassociateInterval = d }
}

// WithWaiterPollInterval sets the fixed delay between status polls in
// [WaitForTrialComponentStatus].
func WithWaiterPollInterval(d time.Duration) Option {
	return func(o *options) { o.waiterPollInterval = d }
}

// WithWaiterMaxAttempts sets the maximum number of status polls in
// [WaitForTrialComponentStatus].
func WithWaiterMaxAttempts(n uint) Option {
	return func(o *options) { o.waiterMaxAttempts = n }
}

func newOptions(opts ...Option) *options {
	o := &options{
		lggr:                 logger.Nop(),
		disassociateInterval: DefaultDisassociateInterval,
		waiterPollInterval:   defaultWaiterPollInterval,
		waiterMaxAttempts:    defaultWaiterMaxAttempts,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// resolveAPI returns the injected client, or lazily constructs a default one
// from the ambient AWS configuration.
func (o *options) resolveAPI(ctx context.Context) (SageMakerAPI, error) {
	if o.api != nil {
		return o.api, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(o.region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var clientOpts []func(*sagemaker.Options)
	if o.endpoint != "" {
		endpoint := o.endpoint
		clientOpts = append(clientOpts, func(so *sagemaker.Options) {
			so.BaseEndpoint = aws.String(endpoint)
		})
	}

	o.api = sagemaker.NewFromConfig(cfg, clientOpts...)

	return o.api, nil
}
