package workflow

import (
	"testing"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		status     models.AgreementStatus
		level      int
		maxLevels  int
		decision   Decision
		wantStatus models.AgreementStatus
		wantLevel  int
	}{
		{
			name:       "approve from pending review enters ladder at level 1",
			status:     models.AgreementStatusPendingReview,
			level:      0,
			maxLevels:  3,
			decision:   DecisionApprove,
			wantStatus: models.AgreementStatusForwardedForApproval,
			wantLevel:  1,
		},
		{
			name:       "pending review routing ignores prior level",
			status:     models.AgreementStatusPendingReview,
			level:      2,
			maxLevels:  3,
			decision:   DecisionApprove,
			wantStatus: models.AgreementStatusForwardedForApproval,
			wantLevel:  1,
		},
		{
			name:       "mid-ladder approve climbs without status change",
			status:     models.AgreementStatusForwardedForApproval,
			level:      1,
			maxLevels:  3,
			decision:   DecisionApprove,
			wantStatus: models.AgreementStatusForwardedForApproval,
			wantLevel:  2,
		},
		{
			name:       "approve at penultimate level executes",
			status:     models.AgreementStatusForwardedForApproval,
			level:      2,
			maxLevels:  3,
			decision:   DecisionApprove,
			wantStatus: models.AgreementStatusExecuted,
			wantLevel:  3,
		},
		{
			name:       "approve at max level is a no-op",
			status:     models.AgreementStatusForwardedForApproval,
			level:      3,
			maxLevels:  3,
			decision:   DecisionApprove,
			wantStatus: models.AgreementStatusForwardedForApproval,
			wantLevel:  3,
		},
		{
			name:       "revision keeps level",
			status:     models.AgreementStatusForwardedForApproval,
			level:      2,
			maxLevels:  3,
			decision:   DecisionRevision,
			wantStatus: models.AgreementStatusUnderRevision,
			wantLevel:  2,
		},
		{
			name:       "reject keeps level",
			status:     models.AgreementStatusForwardedForApproval,
			level:      1,
			maxLevels:  3,
			decision:   DecisionReject,
			wantStatus: models.AgreementStatusRejected,
			wantLevel:  1,
		},
		{
			name:       "approve from under revision resumes the ladder",
			status:     models.AgreementStatusUnderRevision,
			level:      1,
			maxLevels:  3,
			decision:   DecisionApprove,
			wantStatus: models.AgreementStatusUnderRevision,
			wantLevel:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotLevel := Transition(tt.status, tt.level, tt.maxLevels, tt.decision)
			assert.Equal(t, tt.wantStatus, gotStatus)
			assert.Equal(t, tt.wantLevel, gotLevel)
			assert.GreaterOrEqual(t, gotLevel, 0)
			assert.LessOrEqual(t, gotLevel, tt.maxLevels)
		})
	}
}
