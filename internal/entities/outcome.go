// Package entities contains core business entities.
package entities

// Workflow names the fixed side-effect sequence selected for an event.
type Workflow string

const (
	// WorkflowBranchCreated moves the tracked issue to In Progress.
	WorkflowBranchCreated Workflow = "branch-created"
	// WorkflowPROpened moves the issue to In Review and posts AI feedback.
	WorkflowPROpened Workflow = "pr-opened"
	// WorkflowPRMerged completes the issue and publishes documentation.
	WorkflowPRMerged Workflow = "pr-merged"
	// WorkflowNone marks events the bridge ignores.
	WorkflowNone Workflow = "none"
)

// TargetState enumerates issue tracker states the bridge transitions to.
type TargetState string

const (
	// StateInProgress is set when work starts on a branch.
	StateInProgress TargetState = "In Progress"
	// StateInReview is set when a PR is opened.
	StateInReview TargetState = "In Review"
	// StateCompleted is set when a PR is merged.
	StateCompleted TargetState = "Completed"
)

// StepResult records one collaborator call inside a workflow.
type StepResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Outcome summarizes one processed webhook: which workflow ran, for which
// tracking identifier, and how each side effect went.
type Outcome struct {
	Identifier  string       `json:"identifier,omitempty"`
	Workflow    Workflow     `json:"workflow"`
	TargetState TargetState  `json:"target_state,omitempty"`
	Steps       []StepResult `json:"steps,omitempty"`
	Partial     bool         `json:"partial"`
}

// AddStep appends a step result and flips Partial on failure.
func (o *Outcome) AddStep(name string, err error) {
	step := StepResult{Name: name, OK: err == nil}
	if err != nil {
		step.Error = err.Error()
		o.Partial = true
	}
	o.Steps = append(o.Steps, step)
}
