package domain

import "github.com/SBianucci/DevSyncAI/internal/entities"

// Classify maps an inbound event to exactly one workflow. Pure function:
// anything outside the known combinations is a no-op, not an error.
func Classify(ev entities.WebhookEvent) entities.Workflow {
	switch ev.Type {
	case entities.EventCreate:
		if ev.RefType == "branch" {
			return entities.WorkflowBranchCreated
		}
	case entities.EventPullRequest:
		switch ev.Action {
		case "opened":
			return entities.WorkflowPROpened
		case "closed":
			if ev.Merged {
				return entities.WorkflowPRMerged
			}
		}
	}
	return entities.WorkflowNone
}
