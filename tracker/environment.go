package tracker

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
)

// Environment variables set by the SageMaker runtime inside training and
// processing containers.
const (
	envTrainingJobARN   = "TRAINING_JOB_ARN"
	envProcessingJobARN = "PROCESSING_JOB_ARN"
)

// Environment describes the job the current process runs in.
type Environment struct {
	// SourceARN is the ARN of the running training or processing job.
	SourceARN string
}

// ResolveEnvironment inspects the process environment for a running
// SageMaker job. It returns an error when the process does not run inside
// one.
func ResolveEnvironment() (*Environment, error) {
	for _, key := range []string{envTrainingJobARN, envProcessingJobARN} {
		if arn := os.Getenv(key); arn != "" {
			return &Environment{SourceARN: arn}, nil
		}
	}

	return nil, fmt.Errorf("no SageMaker job environment detected (%s and %s unset)", envTrainingJobARN, envProcessingJobARN)
}

// TrialComponent loads the trial component the SageMaker runtime created for
// this job, found by listing trial components filtered on the job's source
// ARN.
func (e *Environment) TrialComponent(ctx context.Context, opts ...experiments.Option) (*experiments.TrialComponent, error) {
	pager := experiments.ListTrialComponents(experiments.ListTrialComponentsOptions{
		SourceArn:  e.SourceARN,
		MaxResults: 1,
	}, opts...)

	if !pager.Next(ctx) {
		if err := pager.Err(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("no trial component found for source %q", e.SourceARN)
	}

	return experiments.LoadTrialComponent(ctx, pager.Item().TrialComponentName, opts...)
}

// tagsFile is the YAML shape of a default-tags file: a list of key/value
// entries.
type tagsFile struct {
	Tags []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	} `yaml:"tags"`
}

// loadTagsFile reads default tags from the YAML file at path.
func loadTagsFile(path string) ([]experiments.Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags file: %w", err)
	}

	var parsed tagsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tags file %s: %w", path, err)
	}

	tags := make([]experiments.Tag, 0, len(parsed.Tags))
	for _, t := range parsed.Tags {
		tags = append(tags, experiments.Tag{Key: t.Key, Value: t.Value})
	}

	return tags, nil
}
