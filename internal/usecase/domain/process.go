package domain

import (
	"context"
	"fmt"

	"github.com/SBianucci/DevSyncAI/internal/entities"
	"github.com/SBianucci/DevSyncAI/internal/tracking"
)

// ProcessEvent classifies the event and runs the selected workflow.
// Collaborator failures are recorded on the outcome, never returned:
// partial success is still a processed webhook.
func (u *Usecase) ProcessEvent(ctx context.Context, ev entities.WebhookEvent) (entities.Outcome, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	wf := Classify(ev)
	if wf == entities.WorkflowNone {
		u.log.Infow("event ignored",
			"event", ev.Type, "action", ev.Action, "merged", ev.Merged, "ref_type", ev.RefType)
		return entities.Outcome{Workflow: entities.WorkflowNone}, nil
	}

	switch wf {
	case entities.WorkflowBranchCreated:
		return u.branchCreated(ctx, ev)
	case entities.WorkflowPROpened:
		return u.prOpened(ctx, ev)
	default:
		return u.prMerged(ctx, ev)
	}
}

func (u *Usecase) branchCreated(ctx context.Context, ev entities.WebhookEvent) (entities.Outcome, error) {
	id, ok := tracking.Extract(ev.RefName)
	if !ok {
		u.log.Infow("no tracking identifier in branch name", "ref", ev.RefName)
		return entities.Outcome{Workflow: entities.WorkflowBranchCreated},
			fmt.Errorf("%w in ref %q", entities.ErrNoTrackingID, ev.RefName)
	}

	out := entities.Outcome{
		Identifier:  id,
		Workflow:    entities.WorkflowBranchCreated,
		TargetState: entities.StateInProgress,
	}

	err := u.clients.Tracker.TransitionIssue(ctx, id, entities.StateInProgress)
	out.AddStep("transition_issue", err)
	if err != nil {
		u.log.Errorw("issue transition failed", "id", id, "state", entities.StateInProgress, "error", err)
	} else {
		u.log.Infow("branch created workflow done", "id", id)
	}
	return out, nil
}

func (u *Usecase) prOpened(ctx context.Context, ev entities.WebhookEvent) (entities.Outcome, error) {
	if err := validatePR(ev); err != nil {
		return entities.Outcome{Workflow: entities.WorkflowPROpened}, err
	}

	id, ok := tracking.Extract(ev.PRTitle)
	if !ok {
		u.log.Infow("no tracking identifier in PR title", "title", ev.PRTitle)
		return entities.Outcome{Workflow: entities.WorkflowPROpened},
			fmt.Errorf("%w in PR title %q", entities.ErrNoTrackingID, ev.PRTitle)
	}

	out := entities.Outcome{
		Identifier:  id,
		Workflow:    entities.WorkflowPROpened,
		TargetState: entities.StateInReview,
	}

	err := u.clients.Tracker.TransitionIssue(ctx, id, entities.StateInReview)
	out.AddStep("transition_issue", err)
	if err != nil {
		u.log.Errorw("issue transition failed", "id", id, "state", entities.StateInReview, "error", err)
	}

	feedback, err := u.clients.Generator.GeneratePRFeedback(ctx, ev.PRTitle, ev.PRBody)
	out.AddStep("generate_feedback", err)
	if err != nil {
		u.log.Errorw("feedback generation failed", "id", id, "error", err)
		return out, nil
	}

	err = u.clients.Source.CreateComment(ctx, ev.Repo, ev.PRNumber, feedback)
	out.AddStep("post_comment", err)
	if err != nil {
		u.log.Errorw("pr comment failed", "repo", ev.Repo, "number", ev.PRNumber, "error", err)
	} else {
		u.log.Infow("pr opened workflow done", "id", id, "number", ev.PRNumber)
	}
	return out, nil
}

func (u *Usecase) prMerged(ctx context.Context, ev entities.WebhookEvent) (entities.Outcome, error) {
	if err := validatePR(ev); err != nil {
		return entities.Outcome{Workflow: entities.WorkflowPRMerged}, err
	}

	id, ok := tracking.Extract(ev.PRTitle)
	if !ok {
		u.log.Infow("no tracking identifier in PR title", "title", ev.PRTitle)
		return entities.Outcome{Workflow: entities.WorkflowPRMerged},
			fmt.Errorf("%w in PR title %q", entities.ErrNoTrackingID, ev.PRTitle)
	}

	out := entities.Outcome{
		Identifier:  id,
		Workflow:    entities.WorkflowPRMerged,
		TargetState: entities.StateCompleted,
	}

	err := u.clients.Tracker.TransitionIssue(ctx, id, entities.StateCompleted)
	out.AddStep("transition_issue", err)
	if err != nil {
		u.log.Errorw("issue transition failed", "id", id, "state", entities.StateCompleted, "error", err)
	}

	// The tracker comment references the new state, so it stays after the
	// transition attempt.
	err = u.clients.Tracker.AddComment(ctx, id,
		fmt.Sprintf("Completed via merge of PR #%d in %s.", ev.PRNumber, ev.Repo))
	out.AddStep("tracker_comment", err)
	if err != nil {
		u.log.Errorw("tracker comment failed", "id", id, "error", err)
	}

	diff, err := u.clients.Source.GetDiff(ctx, ev.Repo, ev.PRNumber)
	out.AddStep("fetch_diff", err)
	if err != nil {
		u.log.Errorw("diff fetch failed", "repo", ev.Repo, "number", ev.PRNumber, "error", err)
		return out, nil
	}

	techDoc, techErr := u.clients.Generator.GenerateDocument(ctx, diff, entities.DocTechnical)
	out.AddStep("generate_technical_doc", techErr)
	if techErr != nil {
		u.log.Errorw("technical doc generation failed", "id", id, "error", techErr)
	}

	stakeholderDoc, stakeErr := u.clients.Generator.GenerateDocument(ctx, diff, entities.DocNonTechnical)
	out.AddStep("generate_stakeholder_doc", stakeErr)
	if stakeErr != nil {
		u.log.Errorw("stakeholder doc generation failed", "id", id, "error", stakeErr)
	}

	if techErr != nil && stakeErr != nil {
		return out, nil
	}

	err = u.clients.Source.CreateComment(ctx, ev.Repo, ev.PRNumber, documentationComment(techDoc, stakeholderDoc))
	out.AddStep("post_comment", err)
	if err != nil {
		u.log.Errorw("pr comment failed", "repo", ev.Repo, "number", ev.PRNumber, "error", err)
	} else {
		u.log.Infow("pr merged workflow done", "id", id, "number", ev.PRNumber)
	}
	return out, nil
}

func validatePR(ev entities.WebhookEvent) error {
	if ev.PRNumber <= 0 || ev.Repo == "" {
		return fmt.Errorf("%w: pull request number and repository are required", entities.ErrInvalidArgument)
	}
	return nil
}

func documentationComment(techDoc, stakeholderDoc string) string {
	var sections []string
	if techDoc != "" {
		sections = append(sections, "## Technical Documentation\n\n"+techDoc)
	}
	if stakeholderDoc != "" {
		sections = append(sections, "## Stakeholder Summary\n\n"+stakeholderDoc)
	}

	comment := ""
	for i, s := range sections {
		if i > 0 {
			comment += "\n\n"
		}
		comment += s
	}
	return comment
}
