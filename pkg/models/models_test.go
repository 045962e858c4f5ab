package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgreementStatus_Terminal(t *testing.T) {
	terminal := []AgreementStatus{AgreementStatusExecuted, AgreementStatusRejected}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "expected %s to be terminal", s)
	}

	open := []AgreementStatus{
		AgreementStatusDraft,
		AgreementStatusPendingReview,
		AgreementStatusUnderRevision,
		AgreementStatusForwardedForApproval,
		AgreementStatusApproved,
		AgreementStatusArchived,
	}
	for _, s := range open {
		assert.False(t, s.Terminal(), "expected %s to be non-terminal", s)
	}
}

func TestAgreement_Clone(t *testing.T) {
	original := Agreement{
		ID:     "agr-1",
		Title:  "Annual IT Service Maintenance",
		Status: AgreementStatusPendingReview,
		Documents: []Document{
			{ID: "doc-1", Title: "draft.pdf", Version: 1},
		},
		Comments: []Comment{
			{ID: "cmt-1", AuthorName: "Authority", Text: "ok", Timestamp: time.Now().UTC()},
		},
	}

	clone := original.Clone()
	clone.Comments = append(clone.Comments, Comment{ID: "cmt-2", Text: "later"})
	clone.Documents[0].Title = "renamed.pdf"
	clone.Status = AgreementStatusRejected

	assert.Len(t, original.Comments, 1)
	assert.Equal(t, "draft.pdf", original.Documents[0].Title)
	assert.Equal(t, AgreementStatusPendingReview, original.Status)
}
