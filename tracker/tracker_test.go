package tracker

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
	"github.com/sagemaker-experiments/experiments-framework/internal/testing/sagemakertest"
	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// fakeS3 records PutObject calls.
type fakeS3 struct {
	bucket string
	key    string
	body   []byte
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body

	return &s3.PutObjectOutput{}, nil
}

func Test_New_CreatesComponentWithGeneratedName(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)

	var created *sagemaker.CreateTrialComponentInput
	api.On("CreateTrialComponent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*sagemaker.CreateTrialComponentInput)
		}).
		Return(&sagemaker.CreateTrialComponentOutput{TrialComponentArn: aws.String("arn:tc/generated")}, nil).
		Once()

	tr, err := New(t.Context(),
		WithNamePrefix("sweep"),
		WithDisplayName("Sweep Run"),
		WithTags([]experiments.Tag{{Key: "team", Value: "ml-platform"}}),
		WithClientOptions(experiments.WithAPI(api)),
	)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.True(t, strings.HasPrefix(aws.ToString(created.TrialComponentName), "sweep-"))
	assert.Equal(t, "Sweep Run", aws.ToString(created.DisplayName))
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "team", aws.ToString(created.Tags[0].Key))

	assert.Equal(t, aws.ToString(created.TrialComponentName), tr.Component.TrialComponentName)
}

func Test_New_LoadsNamedComponent(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("DescribeTrialComponent", mock.Anything, mock.MatchedBy(func(in *sagemaker.DescribeTrialComponentInput) bool {
		return aws.ToString(in.TrialComponentName) == "job-123"
	})).Return(&sagemaker.DescribeTrialComponentOutput{
		TrialComponentName: aws.String("job-123"),
	}, nil).Once()

	tr, err := New(t.Context(),
		WithTrialComponentName("job-123"),
		WithClientOptions(experiments.WithAPI(api)),
	)
	require.NoError(t, err)
	assert.Equal(t, "job-123", tr.Component.TrialComponentName)
}

func Test_New_LoadsTagsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tags.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tags:
  - key: team
    value: ml-platform
  - key: cost_center
    value: "1234"
`), 0o600))

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("CreateTrialComponent", mock.Anything, mock.MatchedBy(func(in *sagemaker.CreateTrialComponentInput) bool {
		return len(in.Tags) == 2 &&
			aws.ToString(in.Tags[0].Key) == "team" &&
			aws.ToString(in.Tags[1].Value) == "1234"
	})).Return(&sagemaker.CreateTrialComponentOutput{}, nil).Once()

	_, err := New(t.Context(),
		WithDefaultTagsFile(path),
		WithClientOptions(experiments.WithAPI(api)),
	)
	require.NoError(t, err)
}

func Test_Tracker_BuffersAndFlushes(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("DescribeTrialComponent", mock.Anything, mock.Anything).
		Return(&sagemaker.DescribeTrialComponentOutput{
			TrialComponentName: aws.String("job-123"),
		}, nil).Once()

	var updated *sagemaker.UpdateTrialComponentInput
	api.On("UpdateTrialComponent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*sagemaker.UpdateTrialComponentInput)
		}).
		Return(&sagemaker.UpdateTrialComponentOutput{}, nil).
		Once()

	tr, err := New(t.Context(),
		WithTrialComponentName("job-123"),
		WithClientOptions(experiments.WithAPI(api)),
	)
	require.NoError(t, err)

	tr.LogParameter("learning_rate", experiments.NumberParameter(0.01))
	tr.LogParameters(map[string]experiments.ParameterValue{
		"optimizer": experiments.StringParameter("adam"),
	})
	tr.LogInputArtifact("train", experiments.Artifact{Value: "s3://bucket/train", MediaType: "text/csv"})
	tr.LogOutputArtifact("model", experiments.Artifact{Value: "s3://bucket/model.tar.gz"})
	tr.SetStatus(experiments.PrimaryStatusCompleted, "done")

	// Nothing is sent until Flush.
	api.AssertNotCalled(t, "UpdateTrialComponent", mock.Anything, mock.Anything)

	require.NoError(t, tr.Close(t.Context()))
	require.NotNil(t, updated)

	assert.Equal(t, "job-123", aws.ToString(updated.TrialComponentName))
	assert.Len(t, updated.Parameters, 2)
	assert.Len(t, updated.InputArtifacts, 1)
	assert.Len(t, updated.OutputArtifacts, 1)
	assert.Equal(t, smtypes.TrialComponentPrimaryStatusCompleted, updated.Status.PrimaryStatus)
	assert.Equal(t, "done", aws.ToString(updated.Status.Message))
}

func Test_Tracker_LogArtifactFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"loss": 0.42}`), 0o600))

	t.Run("uploads and records the S3 URI", func(t *testing.T) {
		t.Parallel()

		s3api := &fakeS3{}
		tr := &Tracker{
			Component:      &experiments.TrialComponent{TrialComponentName: "job-123"},
			s3api:          s3api,
			artifactBucket: "ml-artifacts",
			artifactPrefix: "experiments",
			lggr:           logger.Test(t),
		}

		require.NoError(t, tr.LogArtifactFile(t.Context(), "", path, "application/json"))

		assert.Equal(t, "ml-artifacts", s3api.bucket)
		assert.Equal(t, "experiments/job-123/metrics.json", s3api.key)
		assert.JSONEq(t, `{"loss": 0.42}`, string(s3api.body))

		artifact, ok := tr.Component.OutputArtifacts["metrics.json"]
		require.True(t, ok)
		assert.Equal(t, "s3://ml-artifacts/experiments/job-123/metrics.json", artifact.Value)
		assert.Equal(t, "application/json", artifact.MediaType)
	})

	t.Run("fails without a bucket", func(t *testing.T) {
		t.Parallel()

		tr := &Tracker{
			Component: &experiments.TrialComponent{TrialComponentName: "job-123"},
			lggr:      logger.Test(t),
		}

		require.ErrorContains(t, tr.LogArtifactFile(t.Context(), "", path, ""), "no artifact bucket configured")
	})

	t.Run("fails when the file does not exist", func(t *testing.T) {
		t.Parallel()

		tr := &Tracker{
			Component:      &experiments.TrialComponent{TrialComponentName: "job-123"},
			s3api:          &fakeS3{},
			artifactBucket: "ml-artifacts",
			lggr:           logger.Test(t),
		}

		require.ErrorContains(t, tr.LogArtifactFile(t.Context(), "", filepath.Join(t.TempDir(), "missing"), ""), "failed to open artifact file")
	})
}

func Test_UniqueName(t *testing.T) {
	t.Parallel()

	a := UniqueName("sweep")
	b := UniqueName("sweep")

	assert.True(t, strings.HasPrefix(a, "sweep-"))
	assert.NotEqual(t, a, b)
}
