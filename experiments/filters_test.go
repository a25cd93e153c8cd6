package experiments

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func Test_FilterSummaries(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	summaries := []TrialComponentSummary{
		{
			TrialComponentName: "train-1",
			DisplayName:        "train-fold-1",
			Status:             &TrialComponentStatus{PrimaryStatus: PrimaryStatusCompleted},
			Source:             &TrialComponentSource{SourceArn: "arn:job/a"},
			CreationTime:       aws.Time(base),
		},
		{
			TrialComponentName: "train-2",
			DisplayName:        "train-fold-2",
			Status:             &TrialComponentStatus{PrimaryStatus: PrimaryStatusFailed},
			Source:             &TrialComponentSource{SourceArn: "arn:job/b"},
			CreationTime:       aws.Time(base.Add(time.Hour)),
		},
		{
			TrialComponentName: "eval-1",
			DisplayName:        "eval-fold-1",
			Status:             &TrialComponentStatus{PrimaryStatus: PrimaryStatusCompleted},
			CreationTime:       aws.Time(base.Add(2 * time.Hour)),
		},
		{
			// No status or creation time reported.
			TrialComponentName: "orphan",
		},
	}

	tests := []struct {
		name    string
		filters []FilterFunc[TrialComponentSummary]
		want    []string
	}{
		{
			name: "no filters returns everything",
			want: []string{"train-1", "train-2", "eval-1", "orphan"},
		},
		{
			name:    "by status",
			filters: []FilterFunc[TrialComponentSummary]{TrialComponentsByStatus(PrimaryStatusCompleted)},
			want:    []string{"train-1", "eval-1"},
		},
		{
			name:    "by source arn",
			filters: []FilterFunc[TrialComponentSummary]{TrialComponentsBySourceArn("arn:job/b")},
			want:    []string{"train-2"},
		},
		{
			name:    "by display name prefix",
			filters: []FilterFunc[TrialComponentSummary]{TrialComponentsByDisplayNamePrefix("train-")},
			want:    []string{"train-1", "train-2"},
		},
		{
			name: "created in window",
			filters: []FilterFunc[TrialComponentSummary]{
				TrialComponentsCreatedAfter(base.Add(30 * time.Minute)),
				TrialComponentsCreatedBefore(base.Add(90 * time.Minute)),
			},
			want: []string{"train-2"},
		},
		{
			name: "composed filters",
			filters: []FilterFunc[TrialComponentSummary]{
				TrialComponentsByStatus(PrimaryStatusCompleted),
				TrialComponentsByDisplayNamePrefix("eval-"),
			},
			want: []string{"eval-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FilterSummaries(summaries, tt.filters...)

			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.TrialComponentName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func Test_TrialsBySourceArn(t *testing.T) {
	t.Parallel()

	trials := []TrialSummary{
		{TrialName: "t1", Source: &TrialSource{SourceArn: "arn:job/a"}},
		{TrialName: "t2"},
		{TrialName: "t3", Source: &TrialSource{SourceArn: "arn:job/b"}},
	}

	got := FilterSummaries(trials, TrialsBySourceArn("arn:job/b"))
	assert.Len(t, got, 1)
	assert.Equal(t, "t3", got[0].TrialName)
}
