package workflow

import "github.com/nextgen-analytics/ilms/pkg/models"

// StepState is the rendered state of one pipeline checkpoint.
type StepState string

const (
	StepPending   StepState = "pending"
	StepCurrent   StepState = "current"
	StepCompleted StepState = "completed"
)

// Step is one checkpoint in the four-stage pipeline view.
type Step struct {
	ID    int       `json:"id"`
	Label string    `json:"label"`
	State StepState `json:"status"`
}

// Steps derives the four-checkpoint pipeline view from an agreement's
// status and approval level. The derivation is read-only; it never
// feeds back into transitions.
//
// Checkpoint 0 keys off status rather than level: PENDING_REVIEW shows
// it current even though the level is still 0. The final checkpoint
// completes only on EXECUTED, so a rejected agreement at the last level
// stays visually open.
func Steps(a models.Agreement) []Step {
	steps := []Step{
		{ID: 0, Label: "Review & Suggest", State: StepPending},
		{ID: 1, Label: "Forward for Approval", State: StepPending},
		{ID: 2, Label: "Financial / Legal Review", State: StepPending},
		{ID: 3, Label: "Mark as Execute (CLO)", State: StepPending},
	}

	switch {
	case a.Status == models.AgreementStatusPendingReview:
		steps[0].State = StepCurrent
	case a.CurrentApprovalLevel > 0:
		steps[0].State = StepCompleted
	}

	for i := 1; i <= 2; i++ {
		switch {
		case a.CurrentApprovalLevel == i:
			steps[i].State = StepCurrent
		case a.CurrentApprovalLevel > i:
			steps[i].State = StepCompleted
		}
	}

	switch {
	case a.Status == models.AgreementStatusExecuted:
		steps[3].State = StepCompleted
	case a.CurrentApprovalLevel == 3:
		steps[3].State = StepCurrent
	}

	return steps
}
