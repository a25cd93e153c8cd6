// Package sagemakertest provides a testify-based mock of the SageMaker API
// surface consumed by the framework, for use in unit tests.
package sagemakertest

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/stretchr/testify/mock"
)

// MockSageMakerAPI is a mock of the experiments.SageMakerAPI interface.
// Expectations are declared with the embedded [mock.Mock]; the recorded
// Calls slice allows asserting call ordering across methods.
type MockSageMakerAPI struct {
	mock.Mock
}

// NewMockSageMakerAPI creates a new MockSageMakerAPI whose expectations are
// asserted during test cleanup.
func NewMockSageMakerAPI(t *testing.T) *MockSageMakerAPI {
	t.Helper()

	m := &MockSageMakerAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MethodCalls returns the names of the mocked methods in invocation order.
func (m *MockSageMakerAPI) MethodCalls() []string {
	names := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		names = append(names, call.Method)
	}

	return names
}

func (m *MockSageMakerAPI) AssociateTrialComponent(ctx context.Context, params *sagemaker.AssociateTrialComponentInput, _ ...func(*sagemaker.Options)) (*sagemaker.AssociateTrialComponentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.AssociateTrialComponentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) CreateExperiment(ctx context.Context, params *sagemaker.CreateExperimentInput, _ ...func(*sagemaker.Options)) (*sagemaker.CreateExperimentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.CreateExperimentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) CreateTrial(ctx context.Context, params *sagemaker.CreateTrialInput, _ ...func(*sagemaker.Options)) (*sagemaker.CreateTrialOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.CreateTrialOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) CreateTrialComponent(ctx context.Context, params *sagemaker.CreateTrialComponentInput, _ ...func(*sagemaker.Options)) (*sagemaker.CreateTrialComponentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.CreateTrialComponentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DeleteExperiment(ctx context.Context, params *sagemaker.DeleteExperimentInput, _ ...func(*sagemaker.Options)) (*sagemaker.DeleteExperimentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DeleteExperimentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DeleteTrial(ctx context.Context, params *sagemaker.DeleteTrialInput, _ ...func(*sagemaker.Options)) (*sagemaker.DeleteTrialOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DeleteTrialOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DeleteTrialComponent(ctx context.Context, params *sagemaker.DeleteTrialComponentInput, _ ...func(*sagemaker.Options)) (*sagemaker.DeleteTrialComponentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DeleteTrialComponentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DescribeExperiment(ctx context.Context, params *sagemaker.DescribeExperimentInput, _ ...func(*sagemaker.Options)) (*sagemaker.DescribeExperimentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DescribeExperimentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DescribeTrial(ctx context.Context, params *sagemaker.DescribeTrialInput, _ ...func(*sagemaker.Options)) (*sagemaker.DescribeTrialOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DescribeTrialOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DescribeTrialComponent(ctx context.Context, params *sagemaker.DescribeTrialComponentInput, _ ...func(*sagemaker.Options)) (*sagemaker.DescribeTrialComponentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DescribeTrialComponentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) DisassociateTrialComponent(ctx context.Context, params *sagemaker.DisassociateTrialComponentInput, _ ...func(*sagemaker.Options)) (*sagemaker.DisassociateTrialComponentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.DisassociateTrialComponentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) ListExperiments(ctx context.Context, params *sagemaker.ListExperimentsInput, _ ...func(*sagemaker.Options)) (*sagemaker.ListExperimentsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.ListExperimentsOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) ListTrialComponents(ctx context.Context, params *sagemaker.ListTrialComponentsInput, _ ...func(*sagemaker.Options)) (*sagemaker.ListTrialComponentsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.ListTrialComponentsOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) ListTrials(ctx context.Context, params *sagemaker.ListTrialsInput, _ ...func(*sagemaker.Options)) (*sagemaker.ListTrialsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.ListTrialsOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) Search(ctx context.Context, params *sagemaker.SearchInput, _ ...func(*sagemaker.Options)) (*sagemaker.SearchOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.SearchOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) UpdateExperiment(ctx context.Context, params *sagemaker.UpdateExperimentInput, _ ...func(*sagemaker.Options)) (*sagemaker.UpdateExperimentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.UpdateExperimentOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) UpdateTrial(ctx context.Context, params *sagemaker.UpdateTrialInput, _ ...func(*sagemaker.Options)) (*sagemaker.UpdateTrialOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.UpdateTrialOutput)

	return out, args.Error(1)
}

func (m *MockSageMakerAPI) UpdateTrialComponent(ctx context.Context, params *sagemaker.UpdateTrialComponentInput, _ ...func(*sagemaker.Options)) (*sagemaker.UpdateTrialComponentOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sagemaker.UpdateTrialComponentOutput)

	return out, args.Error(1)
}
