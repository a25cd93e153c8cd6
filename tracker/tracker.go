// Package tracker records parameters, artifacts, and lifecycle status
// against a trial component from inside a training environment. It buffers
// attribute updates locally and persists them on Flush or Close.
package tracker

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// S3API is the subset of the S3 API used to upload artifact files. It is
// satisfied by *s3.Client.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// Tracker wraps a trial component and buffers parameter and artifact updates
// until Flush or Close persists them. A Tracker is not safe for concurrent
// use.
type Tracker struct {
	// Component is the wrapped trial component. Its buffered attributes may
	// be inspected directly; mutations are persisted on Flush.
	Component *experiments.TrialComponent

	s3api          S3API
	artifactBucket string
	artifactPrefix string
	lggr           logger.Logger
}

type trackerOptions struct {
	trialComponentName string
	displayName        string
	namePrefix         string
	tags               []experiments.Tag
	tagsFile           string
	resolveFromEnv     bool
	artifactBucket     string
	artifactPrefix     string
	s3api              S3API
	lggr               logger.Logger
	clientOpts         []experiments.Option
}

// Option configures New.
type Option func(*trackerOptions)

// WithTrialComponentName attaches the tracker to the named existing trial
// component instead of creating a new one.
func WithTrialComponentName(name string) Option {
	return func(o *trackerOptions) { o.trialComponentName = name }
}

// WithDisplayName sets the display name of a created trial component.
func WithDisplayName(name string) Option {
	return func(o *trackerOptions) { o.displayName = name }
}

// WithNamePrefix sets the prefix of generated trial component names.
// Defaults to "tracker".
func WithNamePrefix(prefix string) Option {
	return func(o *trackerOptions) { o.namePrefix = prefix }
}

// WithTags attaches tags to a created trial component, in addition to any
// loaded from a tags file.
func WithTags(tags []experiments.Tag) Option {
	return func(o *trackerOptions) { o.tags = append(o.tags, tags...) }
}

// WithDefaultTagsFile loads tags for created trial components from the YAML
// file at path.
func WithDefaultTagsFile(path string) Option {
	return func(o *trackerOptions) { o.tagsFile = path }
}

// WithEnvironmentLookup resolves the trial component created by the
// SageMaker runtime for the currently running training job instead of
// creating a new one. See [ResolveEnvironment].
func WithEnvironmentLookup() Option {
	return func(o *trackerOptions) { o.resolveFromEnv = true }
}

// WithArtifactBucket sets the S3 bucket (and optional key prefix) that
// LogArtifactFile uploads to.
func WithArtifactBucket(bucket, prefix string) Option {
	return func(o *trackerOptions) {
		o.artifactBucket = bucket
		o.artifactPrefix = prefix
	}
}

// WithS3API injects the S3 client used for artifact uploads. Without it, a
// default client is constructed from the ambient AWS configuration when the
// first upload happens.
func WithS3API(api S3API) Option {
	return func(o *trackerOptions) { o.s3api = api }
}

// WithLogger injects the logger to use. Defaults to a no-op logger.
func WithLogger(lggr logger.Logger) Option {
	return func(o *trackerOptions) { o.lggr = lggr }
}

// WithClientOptions forwards options to the underlying experiments entity
// calls, e.g. experiments.WithAPI for tests.
func WithClientOptions(opts ...experiments.Option) Option {
	return func(o *trackerOptions) { o.clientOpts = append(o.clientOpts, opts...) }
}

// New returns a Tracker attached to a trial component. Resolution order:
// the explicitly named component, the training environment's component when
// [WithEnvironmentLookup] is set, otherwise a freshly created component with
// a generated unique name.
func New(ctx context.Context, opts ...Option) (*Tracker, error) {
	o := &trackerOptions{
		namePrefix: "tracker",
		lggr:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	tc, err := resolveComponent(ctx, o)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		Component:      tc,
		s3api:          o.s3api,
		artifactBucket: o.artifactBucket,
		artifactPrefix: o.artifactPrefix,
		lggr:           o.lggr,
	}, nil
}

func resolveComponent(ctx context.Context, o *trackerOptions) (*experiments.TrialComponent, error) {
	if o.trialComponentName != "" {
		return experiments.LoadTrialComponent(ctx, o.trialComponentName, o.clientOpts...)
	}

	if o.resolveFromEnv {
		env, err := ResolveEnvironment()
		if err != nil {
			return nil, err
		}

		return env.TrialComponent(ctx, o.clientOpts...)
	}

	tags := o.tags
	if o.tagsFile != "" {
		fileTags, err := loadTagsFile(o.tagsFile)
		if err != nil {
			return nil, err
		}
		tags = append(fileTags, tags...)
	}

	return experiments.CreateTrialComponent(ctx, experiments.CreateTrialComponentInput{
		TrialComponentName: UniqueName(o.namePrefix),
		DisplayName:        o.displayName,
		Tags:               tags,
	}, o.clientOpts...)
}

// UniqueName generates a trial component name from prefix, a UTC timestamp,
// and a random suffix.
func UniqueName(prefix string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("2006-01-02-150405"), suffix)
}

// LogParameter buffers a single hyperparameter value.
func (t *Tracker) LogParameter(name string, value experiments.ParameterValue) {
	if t.Component.Parameters == nil {
		t.Component.Parameters = map[string]experiments.ParameterValue{}
	}
	t.Component.Parameters[name] = value
}

// LogParameters buffers a set of hyperparameter values.
func (t *Tracker) LogParameters(params map[string]experiments.ParameterValue) {
	for name, value := range params {
		t.LogParameter(name, value)
	}
}

// LogInputArtifact buffers an input artifact reference.
func (t *Tracker) LogInputArtifact(name string, artifact experiments.Artifact) {
	if t.Component.InputArtifacts == nil {
		t.Component.InputArtifacts = map[string]experiments.Artifact{}
	}
	t.Component.InputArtifacts[name] = artifact
}

// LogOutputArtifact buffers an output artifact reference.
func (t *Tracker) LogOutputArtifact(name string, artifact experiments.Artifact) {
	if t.Component.OutputArtifacts == nil {
		t.Component.OutputArtifacts = map[string]experiments.Artifact{}
	}
	t.Component.OutputArtifacts[name] = artifact
}

// LogArtifactFile uploads the file at filePath to the configured artifact
// bucket and buffers an output artifact referencing the uploaded S3 URI. The
// artifact name defaults to the file's base name.
func (t *Tracker) LogArtifactFile(ctx context.Context, name, filePath, mediaType string) error {
	if t.artifactBucket == "" {
		return fmt.Errorf("no artifact bucket configured for tracker on %q", t.Component.TrialComponentName)
	}

	if name == "" {
		name = filepath.Base(filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open artifact file: %w", err)
	}
	defer f.Close()

	api, err := t.resolveS3(ctx)
	if err != nil {
		return err
	}

	key := path.Join(t.artifactPrefix, t.Component.TrialComponentName, filepath.Base(filePath))
	if _, err := api.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(t.artifactBucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		return fmt.Errorf("failed to upload artifact file to s3://%s/%s: %w", t.artifactBucket, key, err)
	}

	t.lggr.Debugw("uploaded artifact file",
		"trialComponentName", t.Component.TrialComponentName,
		"bucket", t.artifactBucket,
		"key", key,
	)

	t.LogOutputArtifact(name, experiments.Artifact{
		Value:     fmt.Sprintf("s3://%s/%s", t.artifactBucket, key),
		MediaType: mediaType,
	})

	return nil
}

func (t *Tracker) resolveS3(ctx context.Context) (S3API, error) {
	if t.s3api != nil {
		return t.s3api, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	t.s3api = s3.NewFromConfig(cfg)

	return t.s3api, nil
}

// SetStatus buffers a status change with an optional message.
func (t *Tracker) SetStatus(status experiments.PrimaryStatus, message string) {
	t.Component.Status = &experiments.TrialComponentStatus{
		PrimaryStatus: status,
		Message:       message,
	}
}

// Flush persists the buffered attributes via the component's update.
func (t *Tracker) Flush(ctx context.Context) error {
	return t.Component.Save(ctx)
}

// Close flushes the buffered attributes. It is the counterpart of New for
// use with defer.
func (t *Tracker) Close(ctx context.Context) error {
	return t.Flush(ctx)
}
