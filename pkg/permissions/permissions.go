// Package permissions provides the static role/resource/action access table.
package permissions

import "github.com/nextgen-analytics/ilms/pkg/models"

// Resource is a kind of record or screen that access is checked against.
type Resource string

const (
	ResourceCase       Resource = "CASE"
	ResourceAgreement  Resource = "AGREEMENT"
	ResourceFinancials Resource = "FINANCIALS"
	ResourceAudit      Resource = "AUDIT"
	ResourceSettings   Resource = "SETTINGS"
)

// Action is an operation on a resource.
type Action string

const (
	ActionView    Action = "VIEW"
	ActionCreate  Action = "CREATE"
	ActionEdit    Action = "EDIT"
	ActionDelete  Action = "DELETE"
	ActionApprove Action = "APPROVE"
)

var table = map[models.UserRole]map[Resource][]Action{
	models.RoleAdmin: {
		ResourceCase:       {ActionView, ActionCreate, ActionEdit, ActionDelete},
		ResourceAgreement:  {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionApprove},
		ResourceFinancials: {ActionView},
		ResourceAudit:      {ActionView},
		ResourceSettings:   {ActionView},
	},
	models.RoleSupervisor: {
		ResourceCase:       {ActionView, ActionCreate, ActionEdit},
		ResourceAgreement:  {ActionView, ActionEdit, ActionApprove},
		ResourceFinancials: {ActionView},
		ResourceAudit:      {ActionView},
	},
	models.RoleManagement: {
		ResourceCase:       {ActionView},
		ResourceAgreement:  {ActionView, ActionApprove},
		ResourceFinancials: {ActionView},
		ResourceAudit:      {ActionView},
	},
	models.RoleLegalOfficer: {
		ResourceCase:      {ActionView, ActionCreate, ActionEdit},
		ResourceAgreement: {ActionView, ActionCreate, ActionEdit},
	},
	models.RoleViewer: {
		ResourceCase:      {ActionView},
		ResourceAgreement: {ActionView},
	},
}

// Allowed reports whether the role may perform the action on the
// resource. It is total: unknown roles, resources, or actions are denied.
func Allowed(role models.UserRole, resource Resource, action Action) bool {
	actions, ok := table[role][resource]
	if !ok {
		return false
	}

	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
