// Package models defines the core domain records for the legal operations system.
package models

import "time"

// AgreementStatus represents the lifecycle state of an agreement.
type AgreementStatus string

const (
	AgreementStatusDraft                AgreementStatus = "DRAFT"
	AgreementStatusPendingReview        AgreementStatus = "PENDING_REVIEW"
	AgreementStatusUnderRevision        AgreementStatus = "UNDER_REVISION"
	AgreementStatusForwardedForApproval AgreementStatus = "FORWARDED_FOR_APPROVAL"
	AgreementStatusApproved             AgreementStatus = "APPROVED"
	AgreementStatusExecuted             AgreementStatus = "EXECUTED"
	AgreementStatusRejected             AgreementStatus = "REJECTED"
	AgreementStatusArchived             AgreementStatus = "ARCHIVED"
)

// Terminal reports whether no further workflow decisions are accepted.
func (s AgreementStatus) Terminal() bool {
	return s == AgreementStatusExecuted || s == AgreementStatusRejected
}

// CommentType classifies a workflow comment.
type CommentType string

const (
	CommentTypeComment         CommentType = "COMMENT"
	CommentTypeRevisionRequest CommentType = "REVISION_REQUEST"
	CommentTypeApprovalNote    CommentType = "APPROVAL_NOTE"
)

// Comment is one audit/decision note on an agreement. Comments are
// append-only: once written they are never edited or removed.
type Comment struct {
	ID         string      `json:"id"`
	AuthorName string      `json:"authorName"`
	Text       string      `json:"text"       validate:"required"`
	Timestamp  time.Time   `json:"timestamp"`
	Type       CommentType `json:"type"`
}

// Agreement is a contract record moving through the multi-level approval
// pipeline. It is mutated only through whole-record replacement; the
// workflow engine owns the Status/CurrentApprovalLevel/Comments triple.
//
// JSON field names match the original snapshot wire shape so persisted
// collections remain readable across versions.
type Agreement struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"          validate:"required"`
	Type                 string          `json:"type"`
	Parties              string          `json:"parties"`
	DurationMonths       int             `json:"durationMonths" validate:"min=0"`
	Value                float64         `json:"value"          validate:"min=0"`
	Status               AgreementStatus `json:"status"         validate:"required"`
	CurrentVersion       int             `json:"currentVersion"`
	LinkedCaseID         string          `json:"linkedCaseId,omitempty"`
	ExpiryDate           time.Time       `json:"expiryDate"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	Documents            []Document      `json:"documents"`
	Comments             []Comment       `json:"comments"`
	CurrentApprovalLevel int             `json:"currentApprovalLevel" validate:"min=0"`
	MaxApprovalLevels    int             `json:"maxApprovalLevels"    validate:"min=0"`
}

// Clone returns a deep copy. Decide paths mutate a clone and replace the
// stored record wholesale, so a failed replace leaves no partial update.
func (a Agreement) Clone() Agreement {
	out := a
	out.Documents = make([]Document, len(a.Documents))
	copy(out.Documents, a.Documents)
	out.Comments = make([]Comment, len(a.Comments))
	copy(out.Comments, a.Comments)

	return out
}
