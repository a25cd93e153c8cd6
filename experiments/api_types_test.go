package experiments

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/stretchr/testify/assert"
)

func Test_ParameterValue_Conversions(t *testing.T) {
	t.Parallel()

	t.Run("number", func(t *testing.T) {
		t.Parallel()

		sdk := NumberParameter(0.5).toSDK()
		member, ok := sdk.(*smtypes.TrialComponentParameterValueMemberNumberValue)
		assert.True(t, ok)
		assert.InDelta(t, 0.5, member.Value, 1e-9)

		assert.Equal(t, NumberParameter(0.5), parameterValueFromSDK(sdk))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		sdk := StringParameter("adam").toSDK()
		member, ok := sdk.(*smtypes.TrialComponentParameterValueMemberStringValue)
		assert.True(t, ok)
		assert.Equal(t, "adam", member.Value)

		assert.Equal(t, StringParameter("adam"), parameterValueFromSDK(sdk))
	})

	t.Run("empty value is dropped from the wire map", func(t *testing.T) {
		t.Parallel()

		out := parametersToSDK(map[string]ParameterValue{
			"set":   NumberParameter(1),
			"empty": {},
		})
		assert.Len(t, out, 1)
		assert.Contains(t, out, "set")
	})
}

func Test_Status_Conversions(t *testing.T) {
	t.Parallel()

	t.Run("nil round trips", func(t *testing.T) {
		t.Parallel()

		var s *TrialComponentStatus
		assert.Nil(t, s.toSDK())
		assert.Nil(t, statusFromSDK(nil))
	})

	t.Run("message omitted when empty", func(t *testing.T) {
		t.Parallel()

		sdk := (&TrialComponentStatus{PrimaryStatus: PrimaryStatusInProgress}).toSDK()
		assert.Equal(t, smtypes.TrialComponentPrimaryStatusInProgress, sdk.PrimaryStatus)
		assert.Nil(t, sdk.Message)
	})
}

func Test_PrimaryStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, PrimaryStatusCompleted.IsTerminal())
	assert.True(t, PrimaryStatusFailed.IsTerminal())
	assert.True(t, PrimaryStatusStopped.IsTerminal())
	assert.False(t, PrimaryStatusInProgress.IsTerminal())
	assert.False(t, PrimaryStatusStopping.IsTerminal())
}

func Test_TrialComponentSummary_FromSDK(t *testing.T) {
	t.Parallel()

	got := trialComponentSummaryFromSDK(smtypes.TrialComponentSummary{
		TrialComponentName: aws.String("job-1"),
		DisplayName:        aws.String("Job One"),
		TrialComponentSource: &smtypes.TrialComponentSource{
			SourceArn: aws.String("arn:job/1"),
		},
		Status: &smtypes.TrialComponentStatus{
			PrimaryStatus: smtypes.TrialComponentPrimaryStatusInProgress,
		},
		CreatedBy: &smtypes.UserContext{
			UserProfileName: aws.String("someone"),
			DomainId:        aws.String("d-1"),
		},
	})

	assert.Equal(t, "job-1", got.TrialComponentName)
	assert.Equal(t, "Job One", got.DisplayName)
	assert.Equal(t, "arn:job/1", got.Source.SourceArn)
	assert.Equal(t, PrimaryStatusInProgress, got.Status.PrimaryStatus)
	assert.Equal(t, "someone", got.CreatedBy.UserProfileName)
	assert.Equal(t, "d-1", got.CreatedBy.DomainID)
}

func Test_Artifact_Conversions(t *testing.T) {
	t.Parallel()

	sdk := Artifact{Value: "s3://bucket/data", MediaType: "text/csv"}.toSDK()
	assert.Equal(t, "s3://bucket/data", aws.ToString(sdk.Value))
	assert.Equal(t, "text/csv", aws.ToString(sdk.MediaType))

	noMedia := Artifact{Value: "s3://bucket/data"}.toSDK()
	assert.Nil(t, noMedia.MediaType)

	assert.Equal(t, Artifact{Value: "s3://bucket/data", MediaType: "text/csv"}, artifactFromSDK(sdk))
}
