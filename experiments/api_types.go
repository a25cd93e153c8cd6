package experiments

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
)

// PrimaryStatus is the primary status of a trial component's source job.
// Status transitions are driven remotely by the service; this package only
// observes them.
type PrimaryStatus string

const (
	PrimaryStatusInProgress PrimaryStatus = "InProgress"
	PrimaryStatusCompleted  PrimaryStatus = "Completed"
	PrimaryStatusFailed     PrimaryStatus = "Failed"
	PrimaryStatusStopping   PrimaryStatus = "Stopping"
	PrimaryStatusStopped    PrimaryStatus = "Stopped"
)

// IsTerminal reports whether the status is one the service will not
// transition out of.
func (s PrimaryStatus) IsTerminal() bool {
	switch s {
	case PrimaryStatusCompleted, PrimaryStatusFailed, PrimaryStatusStopped:
		return true
	default:
		return false
	}
}

// SortOrder orders list results.
type SortOrder string

const (
	SortOrderAscending  SortOrder = "Ascending"
	SortOrderDescending SortOrder = "Descending"
)

// SortTrialComponentsBy selects the property used to sort trial component
// listings.
type SortTrialComponentsBy string

const (
	SortTrialComponentsByName         SortTrialComponentsBy = "Name"
	SortTrialComponentsByCreationTime SortTrialComponentsBy = "CreationTime"
)

// SortTrialsBy selects the property used to sort trial listings.
type SortTrialsBy string

const (
	SortTrialsByName         SortTrialsBy = "Name"
	SortTrialsByCreationTime SortTrialsBy = "CreationTime"
)

// SortExperimentsBy selects the property used to sort experiment listings.
type SortExperimentsBy string

const (
	SortExperimentsByName         SortExperimentsBy = "Name"
	SortExperimentsByCreationTime SortExperimentsBy = "CreationTime"
)

// TrialComponentStatus is the status of a trial component's source job.
type TrialComponentStatus struct {
	PrimaryStatus PrimaryStatus
	Message       string
}

func (s *TrialComponentStatus) toSDK() *smtypes.TrialComponentStatus {
	if s == nil {
		return nil
	}

	out := &smtypes.TrialComponentStatus{
		PrimaryStatus: smtypes.TrialComponentPrimaryStatus(s.PrimaryStatus),
	}
	if s.Message != "" {
		out.Message = aws.String(s.Message)
	}

	return out
}

func statusFromSDK(s *smtypes.TrialComponentStatus) *TrialComponentStatus {
	if s == nil {
		return nil
	}

	return &TrialComponentStatus{
		PrimaryStatus: PrimaryStatus(s.PrimaryStatus),
		Message:       aws.ToString(s.Message),
	}
}

// TrialComponentSource references the job a trial component originated from.
type TrialComponentSource struct {
	SourceArn  string
	SourceType string
}

func trialComponentSourceFromSDK(s *smtypes.TrialComponentSource) *TrialComponentSource {
	if s == nil {
		return nil
	}

	return &TrialComponentSource{
		SourceArn:  aws.ToString(s.SourceArn),
		SourceType: aws.ToString(s.SourceType),
	}
}

// TrialSource references the job a trial originated from.
type TrialSource struct {
	SourceArn  string
	SourceType string
}

func trialSourceFromSDK(s *smtypes.TrialSource) *TrialSource {
	if s == nil {
		return nil
	}

	return &TrialSource{
		SourceArn:  aws.ToString(s.SourceArn),
		SourceType: aws.ToString(s.SourceType),
	}
}

// ExperimentSource references the origin of an experiment.
type ExperimentSource struct {
	SourceArn  string
	SourceType string
}

func experimentSourceFromSDK(s *smtypes.ExperimentSource) *ExperimentSource {
	if s == nil {
		return nil
	}

	return &ExperimentSource{
		SourceArn:  aws.ToString(s.SourceArn),
		SourceType: aws.ToString(s.SourceType),
	}
}

// UserContext is contextual information on the account that created or last
// modified a record.
type UserContext struct {
	UserProfileArn  string
	UserProfileName string
	DomainID        string
}

func userContextFromSDK(u *smtypes.UserContext) *UserContext {
	if u == nil {
		return nil
	}

	return &UserContext{
		UserProfileArn:  aws.ToString(u.UserProfileArn),
		UserProfileName: aws.ToString(u.UserProfileName),
		DomainID:        aws.ToString(u.DomainId),
	}
}

// ParameterValue is a hyperparameter value, holding either a string or a
// number. Exactly one of the two fields should be set.
type ParameterValue struct {
	StringValue *string
	NumberValue *float64
}

// StringParameter returns a ParameterValue holding a string.
func StringParameter(v string) ParameterValue {
	return ParameterValue{StringValue: aws.String(v)}
}

// NumberParameter returns a ParameterValue holding a number.
func NumberParameter(v float64) ParameterValue {
	return ParameterValue{NumberValue: aws.Float64(v)}
}

func (p ParameterValue) toSDK() smtypes.TrialComponentParameterValue {
	if p.NumberValue != nil {
		return &smtypes.TrialComponentParameterValueMemberNumberValue{Value: *p.NumberValue}
	}
	if p.StringValue != nil {
		return &smtypes.TrialComponentParameterValueMemberStringValue{Value: *p.StringValue}
	}

	return nil
}

func parameterValueFromSDK(v smtypes.TrialComponentParameterValue) ParameterValue {
	switch m := v.(type) {
	case *smtypes.TrialComponentParameterValueMemberNumberValue:
		return NumberParameter(m.Value)
	case *smtypes.TrialComponentParameterValueMemberStringValue:
		return StringParameter(m.Value)
	default:
		return ParameterValue{}
	}
}

func parametersToSDK(params map[string]ParameterValue) map[string]smtypes.TrialComponentParameterValue {
	if len(params) == 0 {
		return nil
	}

	out := make(map[string]smtypes.TrialComponentParameterValue, len(params))
	for name, value := range params {
		if sdk := value.toSDK(); sdk != nil {
			out[name] = sdk
		}
	}

	return out
}

func parametersFromSDK(params map[string]smtypes.TrialComponentParameterValue) map[string]ParameterValue {
	if len(params) == 0 {
		return nil
	}

	out := make(map[string]ParameterValue, len(params))
	for name, value := range params {
		out[name] = parameterValueFromSDK(value)
	}

	return out
}

// Artifact is an input or output artifact reference of a trial component.
type Artifact struct {
	Value     string
	MediaType string
}

func (a Artifact) toSDK() smtypes.TrialComponentArtifact {
	out := smtypes.TrialComponentArtifact{Value: aws.String(a.Value)}
	if a.MediaType != "" {
		out.MediaType = aws.String(a.MediaType)
	}

	return out
}

func artifactFromSDK(a smtypes.TrialComponentArtifact) Artifact {
	return Artifact{
		Value:     aws.ToString(a.Value),
		MediaType: aws.ToString(a.MediaType),
	}
}

func artifactsToSDK(artifacts map[string]Artifact) map[string]smtypes.TrialComponentArtifact {
	if len(artifacts) == 0 {
		return nil
	}

	out := make(map[string]smtypes.TrialComponentArtifact, len(artifacts))
	for name, artifact := range artifacts {
		out[name] = artifact.toSDK()
	}

	return out
}

func artifactsFromSDK(artifacts map[string]smtypes.TrialComponentArtifact) map[string]Artifact {
	if len(artifacts) == 0 {
		return nil
	}

	out := make(map[string]Artifact, len(artifacts))
	for name, artifact := range artifacts {
		out[name] = artifactFromSDK(artifact)
	}

	return out
}

// MetricSummary is an aggregated metric of a trial component's source job.
// Aggregates are pointers since the service omits them for metrics without
// observations.
type MetricSummary struct {
	MetricName string
	SourceArn  string
	Timestamp  *time.Time
	Max        *float64
	Min        *float64
	Last       *float64
	Avg        *float64
	StdDev     *float64
	Count      *int32
}

func metricSummaryFromSDK(m smtypes.TrialComponentMetricSummary) MetricSummary {
	return MetricSummary{
		MetricName: aws.ToString(m.MetricName),
		SourceArn:  aws.ToString(m.SourceArn),
		Timestamp:  m.TimeStamp,
		Max:        m.Max,
		Min:        m.Min,
		Last:       m.Last,
		Avg:        m.Avg,
		StdDev:     m.StdDev,
		Count:      m.Count,
	}
}

func metricsFromSDK(metrics []smtypes.TrialComponentMetricSummary) []MetricSummary {
	if len(metrics) == 0 {
		return nil
	}

	out := make([]MetricSummary, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, metricSummaryFromSDK(m))
	}

	return out
}

// Tag is a key/value pair attached to a record at creation.
type Tag struct {
	Key   string
	Value string
}

func tagsToSDK(tags []Tag) []smtypes.Tag {
	if len(tags) == 0 {
		return nil
	}

	out := make([]smtypes.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, smtypes.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)})
	}

	return out
}

func tagsFromSDK(tags []smtypes.Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}

	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)})
	}

	return out
}

// TrialComponentSummary is one entry of a trial component listing.
type TrialComponentSummary struct {
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
}

func trialComponentSummaryFromSDK(s smtypes.TrialComponentSummary) TrialComponentSummary {
	return TrialComponentSummary{
		TrialComponentName: aws.ToString(s.TrialComponentName),
		TrialComponentArn:  aws.ToString(s.TrialComponentArn),
		DisplayName:        aws.ToString(s.DisplayName),
		Source:             trialComponentSourceFromSDK(s.TrialComponentSource),
		Status:             statusFromSDK(s.Status),
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		CreationTime:       s.CreationTime,
		CreatedBy:          userContextFromSDK(s.CreatedBy),
		LastModifiedTime:   s.LastModifiedTime,
		LastModifiedBy:     userContextFromSDK(s.LastModifiedBy),
	}
}

// TrialSummary is one entry of a trial listing.
type TrialSummary struct {
	TrialName        string
	TrialArn         string
	DisplayName      string
	Source           *TrialSource
	CreationTime     *time.Time
	LastModifiedTime *time.Time
}

func trialSummaryFromSDK(s smtypes.TrialSummary) TrialSummary {
	return TrialSummary{
		TrialName:        aws.ToString(s.TrialName),
		TrialArn:         aws.ToString(s.TrialArn),
		DisplayName:      aws.ToString(s.DisplayName),
		Source:           trialSourceFromSDK(s.TrialSource),
		CreationTime:     s.CreationTime,
		LastModifiedTime: s.LastModifiedTime,
	}
}

// ExperimentSummary is one entry of an experiment listing.
type ExperimentSummary struct {
	ExperimentName   string
	ExperimentArn    string
	DisplayName      string
	Source           *ExperimentSource
	CreationTime     *time.Time
	LastModifiedTime *time.Time
}

func experimentSummaryFromSDK(s smtypes.ExperimentSummary) ExperimentSummary {
	return ExperimentSummary{
		ExperimentName:   aws.ToString(s.ExperimentName),
		ExperimentArn:    aws.ToString(s.ExperimentArn),
		DisplayName:      aws.ToString(s.DisplayName),
		Source:           experimentSourceFromSDK(s.ExperimentSource),
		CreationTime:     s.CreationTime,
		LastModifiedTime: s.LastModifiedTime,
	}
}

// Parent identifies a trial (and its experiment) a trial component is
// associated with, as reported by search results.
type Parent struct {
	TrialName      string
	ExperimentName string
}

func parentsFromSDK(parents []smtypes.Parent) []Parent {
	if len(parents) == 0 {
		return nil
	}

	out := make([]Parent, 0, len(parents))
	for _, p := range parents {
		out = append(out, Parent{
			TrialName:      aws.ToString(p.TrialName),
			ExperimentName: aws.ToString(p.ExperimentName),
		})
	}

	return out
}

// TrialComponentSearchResult is one entry of a trial component search. It
// carries the full entity attributes plus the associated parents and tags,
// which listings do not report.
type TrialComponentSearchResult struct {
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
	Parents            []Parent
	Tags               []Tag
}

func trialComponentSearchResultFromSDK(tc *smtypes.TrialComponent) TrialComponentSearchResult {
	if tc == nil {
		return TrialComponentSearchResult{}
	}

	return TrialComponentSearchResult{
		TrialComponentName: aws.ToString(tc.TrialComponentName),
		TrialComponentArn:  aws.ToString(tc.TrialComponentArn),
		DisplayName:        aws.ToString(tc.DisplayName),
		Source:             trialComponentSourceFromSDK(tc.Source),
		Status:             statusFromSDK(tc.Status),
		StartTime:          tc.StartTime,
		EndTime:            tc.EndTime,
		CreationTime:       tc.CreationTime,
		CreatedBy:          userContextFromSDK(tc.CreatedBy),
		LastModifiedTime:   tc.LastModifiedTime,
		LastModifiedBy:     userContextFromSDK(tc.LastModifiedBy),
		Parameters:         parametersFromSDK(tc.Parameters),
		InputArtifacts:     artifactsFromSDK(tc.InputArtifacts),
		OutputArtifacts:    artifactsFromSDK(tc.OutputArtifacts),
		Metrics:            metricsFromSDK(tc.Metrics),
		Parents:            parentsFromSDK(tc.Parents),
		Tags:               tagsFromSDK(tc.Tags),
	}
}
