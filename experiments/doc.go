/*
Package experiments provides thin object-oriented wrappers over the SageMaker
experiment-tracking API: experiments, trials, and trial components.

# Entities

Experiment:
  - A named collection of trials.

Trial:
  - One end-to-end attempt within an experiment; a named collection of trial
    components.

TrialComponent:
  - One stage of a trial, typically backed by a training or processing job.
    Supports the full lifecycle: create, load, save, delete (optionally with
    forced disassociation from all associated trials), list, and search.

# Remote client

Every operation is a direct call-through to the SageMaker API via the
[SageMakerAPI] interface, satisfied by *sagemaker.Client. When no client is
injected with [WithAPI], a default one is constructed lazily from the ambient
AWS configuration.

# Pagination

List and search operations return a [Pager], which fetches one page per
continuation token as it is consumed. Pagers are forward-only; to resume a
listing later, capture [Pager.NextToken] and pass it back as the NextToken of
a fresh call.

# Basic Usage

	tc, err := experiments.CreateTrialComponent(ctx, experiments.CreateTrialComponentInput{
		TrialComponentName: "job-123",
	})
	if err != nil {
		return err
	}

	tc.Status = &experiments.TrialComponentStatus{PrimaryStatus: experiments.PrimaryStatusCompleted}
	if err := tc.Save(ctx); err != nil {
		return err
	}

	if err := tc.Delete(ctx, true); err != nil {
		return err
	}
*/
package experiments
