package permissions

import (
	"testing"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     models.UserRole
		resource Resource
		action   Action
		want     bool
	}{
		{"admin approves agreements", models.RoleAdmin, ResourceAgreement, ActionApprove, true},
		{"admin deletes agreements", models.RoleAdmin, ResourceAgreement, ActionDelete, true},
		{"supervisor approves agreements", models.RoleSupervisor, ResourceAgreement, ActionApprove, true},
		{"supervisor cannot delete agreements", models.RoleSupervisor, ResourceAgreement, ActionDelete, false},
		{"supervisor cannot create agreements", models.RoleSupervisor, ResourceAgreement, ActionCreate, false},
		{"management approves but views only otherwise", models.RoleManagement, ResourceAgreement, ActionApprove, true},
		{"management cannot edit agreements", models.RoleManagement, ResourceAgreement, ActionEdit, false},
		{"legal officer creates agreements", models.RoleLegalOfficer, ResourceAgreement, ActionCreate, true},
		{"legal officer cannot approve", models.RoleLegalOfficer, ResourceAgreement, ActionApprove, false},
		{"legal officer has no audit access", models.RoleLegalOfficer, ResourceAudit, ActionView, false},
		{"viewer views agreements", models.RoleViewer, ResourceAgreement, ActionView, true},
		{"viewer cannot create cases", models.RoleViewer, ResourceCase, ActionCreate, false},
		{"admin views settings", models.RoleAdmin, ResourceSettings, ActionView, true},
		{"supervisor has no settings access", models.RoleSupervisor, ResourceSettings, ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.resource, tt.action))
		})
	}
}

func TestAllowed_UnknownCombinationsDenied(t *testing.T) {
	assert.False(t, Allowed("INTERN", ResourceAgreement, ActionView))
	assert.False(t, Allowed(models.RoleAdmin, "EXPORTS", ActionView))
	assert.False(t, Allowed(models.RoleAdmin, ResourceAgreement, "SIGN"))
	assert.False(t, Allowed("", "", ""))
}
