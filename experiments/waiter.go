package experiments

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
)

// WaitForTrialComponentStatus polls the trial component until its primary
// status equals want, returning the final entity. Polling uses a fixed delay
// between attempts (see [WithWaiterPollInterval] and
// [WithWaiterMaxAttempts]).
//
// Reaching a terminal status other than want stops the wait early with an
// error, since the service will not transition out of it.
func WaitForTrialComponentStatus(ctx context.Context, trialComponentName string, want PrimaryStatus, opts ...Option) (*TrialComponent, error) {
	o := newOptions(opts...)

	tc, err := retry.DoWithData(func() (*TrialComponent, error) {
		tc, err := LoadTrialComponent(ctx, trialComponentName, opts...)
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}

		status := PrimaryStatusInProgress
		if tc.Status != nil {
			status = tc.Status.PrimaryStatus
		}

		if status == want {
			return tc, nil
		}
		if status.IsTerminal() {
			return nil, retry.Unrecoverable(fmt.Errorf(
				"trial component %q reached terminal status %q while waiting for %q",
				trialComponentName, status, want,
			))
		}

		o.lggr.Debugw("waiting for trial component status",
			"trialComponentName", trialComponentName,
			"status", status,
			"want", want,
		)

		return nil, fmt.Errorf("trial component %q has status %q, want %q", trialComponentName, status, want)
	},
		retry.Context(ctx),
		retry.Attempts(o.waiterMaxAttempts),
		retry.Delay(o.waiterPollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return tc, nil
}
