package workflow

import "github.com/nextgen-analytics/ilms/pkg/models"

// Transition computes the next (status, level) pair for a decision
// against the current pair. It is pure and total for non-terminal
// inputs; terminal refusal happens before this is called.
//
// APPROVE routes PENDING_REVIEW into the approval ladder at level 1,
// then climbs one level per approval until the final level executes the
// agreement. An approval at the final level with a non-terminal status
// changes nothing. REJECT and REVISION never touch the level, so a
// revised agreement re-enters the ladder where it left off.
func Transition(status models.AgreementStatus, level, maxLevels int, decision Decision) (models.AgreementStatus, int) {
	switch decision {
	case DecisionApprove:
		if status == models.AgreementStatusPendingReview {
			return models.AgreementStatusForwardedForApproval, 1
		}

		if level < maxLevels {
			level++
			if level == maxLevels {
				return models.AgreementStatusExecuted, level
			}

			return status, level
		}

		return status, level
	case DecisionRevision:
		return models.AgreementStatusUnderRevision, level
	case DecisionReject:
		return models.AgreementStatusRejected, level
	}

	return status, level
}
