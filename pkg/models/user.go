package models

// UserRole determines which resources and actions a user may reach.
type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleLegalOfficer UserRole = "LEGAL_OFFICER"
	RoleSupervisor   UserRole = "SUPERVISOR"
	RoleManagement   UserRole = "MANAGEMENT"
	RoleViewer       UserRole = "VIEWER"
)

// User is a system account. Authentication is out of scope; users exist
// so workflow decisions and ledger entries carry a real actor.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"  validate:"required"`
	Role   UserRole `json:"role"  validate:"required"`
	Email  string   `json:"email" validate:"required,email"`
	Active bool     `json:"isActive"`
}
