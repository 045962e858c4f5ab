// Package workflow implements the multi-level agreement approval engine:
// the decision transition table, the commit path that applies a decision
// to a stored record, and the pipeline step derivation used by callers
// to render progress.
package workflow

import "github.com/nextgen-analytics/ilms/pkg/models"

// Decision is a reviewer verdict on an agreement.
type Decision string

const (
	DecisionApprove  Decision = "APPROVE"
	DecisionReject   Decision = "REJECT"
	DecisionRevision Decision = "REVISION"
)

// DecisionRequest carries one verdict from an authenticated actor. The
// actor's role is re-checked at commit time; callers cannot skip the
// permission gate by constructing the request directly.
type DecisionRequest struct {
	AgreementID   string          `json:"agreementId"   validate:"required"`
	Decision      Decision        `json:"decision"      validate:"required,oneof=APPROVE REJECT REVISION"`
	Justification string          `json:"justification" validate:"required"`
	ActorID       string          `json:"actorId"`
	ActorName     string          `json:"actorName"     validate:"required"`
	ActorRole     models.UserRole `json:"actorRole"     validate:"required"`
}

// CommentTypes maps each decision to the comment classification written
// alongside it.
type CommentTypes map[Decision]models.CommentType

// DefaultCommentTypes returns the standard mapping: approvals leave an
// approval note, rejections and revision requests both leave a revision
// request.
func DefaultCommentTypes() CommentTypes {
	return CommentTypes{
		DecisionApprove:  models.CommentTypeApprovalNote,
		DecisionReject:   models.CommentTypeRevisionRequest,
		DecisionRevision: models.CommentTypeRevisionRequest,
	}
}
