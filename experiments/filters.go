package experiments

import (
	"strings"
	"time"
)

// The following functions are a default set of client-side filters for
// summary slices fetched through a [Pager]. They are composable and can be
// combined to narrow results beyond what the service-side listing filters
// support. For example:
//
//	summaries, err := experiments.ListTrialComponents(opts).Collect(ctx)
//	if err != nil {
//		return err
//	}
//	completed := experiments.FilterSummaries(summaries,
//		experiments.TrialComponentsByStatus(experiments.PrimaryStatusCompleted),
//		experiments.TrialComponentsByDisplayNamePrefix("train-"),
//	)
//
// Custom filters can be created by implementing the FilterFunc type.

// FilterFunc filters a slice of summaries.
type FilterFunc[T any] func([]T) []T

// FilterSummaries applies the given filters to records in order and returns
// the remaining entries. If no filters are provided, all records are
// returned.
func FilterSummaries[T any](records []T, filters ...FilterFunc[T]) []T {
	for _, filter := range filters {
		records = filter(records)
	}

	return records
}

// summaryFilter returns a filter that includes records for which the
// predicate returns true.
func summaryFilter[T any](predicate func(record T) bool) FilterFunc[T] {
	return func(records []T) []T {
		filtered := make([]T, 0, len(records))
		for _, record := range records {
			if predicate(record) {
				filtered = append(filtered, record)
			}
		}

		return filtered
	}
}

// TrialComponentsByStatus returns a filter that only includes trial
// components with the provided primary status.
func TrialComponentsByStatus(status PrimaryStatus) FilterFunc[TrialComponentSummary] {
	return summaryFilter(func(record TrialComponentSummary) bool {
		return record.Status != nil && record.Status.PrimaryStatus == status
	})
}

// TrialComponentsBySourceArn returns a filter that only includes trial
// components originating from the provided source job ARN.
func TrialComponentsBySourceArn(sourceArn string) FilterFunc[TrialComponentSummary] {
	return summaryFilter(func(record TrialComponentSummary) bool {
		return record.Source != nil && record.Source.SourceArn == sourceArn
	})
}

// TrialComponentsByDisplayNamePrefix returns a filter that only includes
// trial components whose display name starts with the provided prefix.
func TrialComponentsByDisplayNamePrefix(prefix string) FilterFunc[TrialComponentSummary] {
	return summaryFilter(func(record TrialComponentSummary) bool {
		return strings.HasPrefix(record.DisplayName, prefix)
	})
}

// TrialComponentsCreatedAfter returns a filter that only includes trial
// components created after the provided instant.
func TrialComponentsCreatedAfter(instant time.Time) FilterFunc[TrialComponentSummary] {
	return summaryFilter(func(record TrialComponentSummary) bool {
		return record.CreationTime != nil && record.CreationTime.After(instant)
	})
}

// TrialComponentsCreatedBefore returns a filter that only includes trial
// components created before the provided instant.
func TrialComponentsCreatedBefore(instant time.Time) FilterFunc[TrialComponentSummary] {
	return summaryFilter(func(record TrialComponentSummary) bool {
		return record.CreationTime != nil && record.CreationTime.Before(instant)
	})
}

// TrialsBySourceArn returns a filter that only includes trials whose source
// ARN matches the provided ARN.
func TrialsBySourceArn(sourceArn string) FilterFunc[TrialSummary] {
	return summaryFilter(func(record TrialSummary) bool {
		return record.Source != nil && record.Source.SourceArn == sourceArn
	})
}
