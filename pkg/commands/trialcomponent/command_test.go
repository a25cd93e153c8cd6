package trialcomponent

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sagemaker-experiments/experiments-framework/experiments"
	"github.com/sagemaker-experiments/experiments-framework/internal/testing/sagemakertest"
	"github.com/sagemaker-experiments/experiments-framework/pkg/logger"
)

// TestNewCommand_Structure verifies the command structure is correct.
func TestNewCommand_Structure(t *testing.T) {
	t.Parallel()

	cmd := NewCommand(Config{Logger: logger.Nop()})

	// Verify root command
	assert.Equal(t, "trial-component", cmd.Use)
	assert.Equal(t, "Trial component commands", cmd.Short)

	// Verify subcommands
	subs := cmd.Commands()
	require.Len(t, subs, 3)

	uses := make([]string, 0, len(subs))
	for _, sub := range subs {
		uses = append(uses, sub.Use)
	}
	assert.ElementsMatch(t, []string{"describe <name>", "list", "delete <name>"}, uses)
}

// TestNewCommand_Flags verifies the subcommand flags.
func TestNewCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := NewCommand(Config{Logger: logger.Nop()})

	for _, sub := range cmd.Commands() {
		switch sub.Use {
		case "list":
			for flag, shorthand := range map[string]string{
				"trial":       "t",
				"experiment":  "x",
				"max-results": "m",
			} {
				f := sub.Flags().Lookup(flag)
				require.NotNil(t, f, flag)
				assert.Equal(t, shorthand, f.Shorthand)
			}
			require.NotNil(t, sub.Flags().Lookup("source-arn"))
		case "delete <name>":
			f := sub.Flags().Lookup("force")
			require.NotNil(t, f)
			assert.Equal(t, "f", f.Shorthand)
			assert.Equal(t, "false", f.Value.String())
		}
	}
}

// execute runs the command against a mock API and returns its combined
// output.
func execute(t *testing.T, api *sagemakertest.MockSageMakerAPI, deps *Deps, args ...string) (string, error) {
	t.Helper()

	cmd := NewCommand(Config{
		Logger: logger.Test(t),
		ClientOptions: []experiments.Option{
			experiments.WithAPI(api),
			experiments.WithDisassociateInterval(0),
		},
		Deps: deps,
	})

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestDescribe_Success(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("DescribeTrialComponent", mock.Anything, mock.Anything).
		Return(&sagemaker.DescribeTrialComponentOutput{
			TrialComponentName: aws.String("job-123"),
			TrialComponentArn:  aws.String("arn:tc/job-123"),
			Status: &smtypes.TrialComponentStatus{
				PrimaryStatus: smtypes.TrialComponentPrimaryStatusCompleted,
			},
		}, nil).Once()

	out, err := execute(t, api, nil, "describe", "job-123")

	require.NoError(t, err)
	assert.Contains(t, out, `"job-123"`)
	assert.Contains(t, out, `"Completed"`)
}

func TestDescribe_MissingArgFails(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)

	_, err := execute(t, api, nil, "describe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestDescribe_LoadError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("access denied")
	deps := &Deps{
		Load: func(_ context.Context, _ string, _ ...experiments.Option) (*experiments.TrialComponent, error) {
			return nil, expectedErr
		},
	}

	_, err := execute(t, sagemakertest.NewMockSageMakerAPI(t), deps, "describe", "job-123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to load trial component "job-123"`)
	assert.ErrorIs(t, err, expectedErr)
}

func TestList_ForwardsFiltersAndPrintsSummaries(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("ListTrialComponents", mock.Anything, mock.MatchedBy(func(in *sagemaker.ListTrialComponentsInput) bool {
		return aws.ToString(in.TrialName) == "t1" && aws.ToInt32(in.MaxResults) == 10
	})).Return(&sagemaker.ListTrialComponentsOutput{
		TrialComponentSummaries: []smtypes.TrialComponentSummary{
			{
				TrialComponentName: aws.String("job-1"),
				TrialComponentArn:  aws.String("arn:tc/job-1"),
				Status:             &smtypes.TrialComponentStatus{PrimaryStatus: smtypes.TrialComponentPrimaryStatusCompleted},
			},
			{
				TrialComponentName: aws.String("job-2"),
				TrialComponentArn:  aws.String("arn:tc/job-2"),
			},
		},
	}, nil).Once()

	out, err := execute(t, api, nil, "list", "-t", "t1", "-m", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "job-1\tCompleted\tarn:tc/job-1")
	assert.Contains(t, out, "job-2\t\tarn:tc/job-2")
}

func TestList_Error(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("ListTrialComponents", mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled")).Once()

	_, err := execute(t, api, nil, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list trial components")
}

func TestDelete_WithoutForce(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("DescribeTrialComponent", mock.Anything, mock.Anything).
		Return(&sagemaker.DescribeTrialComponentOutput{
			TrialComponentName: aws.String("job-123"),
		}, nil).Once()
	api.On("DeleteTrialComponent", mock.Anything, mock.MatchedBy(func(in *sagemaker.DeleteTrialComponentInput) bool {
		return aws.ToString(in.TrialComponentName) == "job-123"
	})).Return(&sagemaker.DeleteTrialComponentOutput{}, nil).Once()

	out, err := execute(t, api, nil, "delete", "job-123")

	require.NoError(t, err)
	assert.Contains(t, out, "deleted job-123")
	api.AssertNotCalled(t, "ListTrials", mock.Anything, mock.Anything)
}

func TestDelete_WithForceDisassociates(t *testing.T) {
	t.Parallel()

	api := sagemakertest.NewMockSageMakerAPI(t)
	api.On("DescribeTrialComponent", mock.Anything, mock.Anything).
		Return(&sagemaker.DescribeTrialComponentOutput{
			TrialComponentName: aws.String("job-123"),
		}, nil).Once()
	api.On("ListTrials", mock.Anything, mock.Anything).
		Return(&sagemaker.ListTrialsOutput{
			TrialSummaries: []smtypes.TrialSummary{{TrialName: aws.String("t1")}},
		}, nil).Once()
	api.On("DisassociateTrialComponent", mock.Anything, mock.MatchedBy(func(in *sagemaker.DisassociateTrialComponentInput) bool {
		return aws.ToString(in.TrialName) == "t1"
	})).Return(&sagemaker.DisassociateTrialComponentOutput{}, nil).Once()
	api.On("DeleteTrialComponent", mock.Anything, mock.Anything).
		Return(&sagemaker.DeleteTrialComponentOutput{}, nil).Once()

	out, err := execute(t, api, nil, "delete", "job-123", "--force")

	require.NoError(t, err)
	assert.Contains(t, out, "deleted job-123")
}
