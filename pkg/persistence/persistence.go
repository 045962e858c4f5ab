// Package persistence provides the data storage abstraction for the
// record collections (agreements, cases, users, audit, notifications).
package persistence

import (
	"context"

	"github.com/nextgen-analytics/ilms/pkg/models"
)

// AgreementRepository owns the canonical ordered agreement collection.
// Create prepends (newest first); Replace swaps in place preserving
// order and fails with ErrAgreementNotFound when no record matches.
type AgreementRepository interface {
	List(ctx context.Context) ([]models.Agreement, error)
	GetByID(ctx context.Context, id string) (*models.Agreement, error)
	Create(ctx context.Context, agreement models.Agreement) error
	Replace(ctx context.Context, id string, agreement models.Agreement) error
}

// CaseRepository stores litigation case records.
type CaseRepository interface {
	List(ctx context.Context) ([]models.LegalCase, error)
	GetByID(ctx context.Context, id string) (*models.LegalCase, error)
	Create(ctx context.Context, legalCase models.LegalCase) error
	Replace(ctx context.Context, id string, legalCase models.LegalCase) error
}

// UserRepository stores system accounts.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
	Replace(ctx context.Context, id string, user models.User) error
}

// AuditRepository is the append-only audit ledger. Entries are never
// edited or removed.
type AuditRepository interface {
	Append(ctx context.Context, entry models.AuditEntry) error
	List(ctx context.Context) ([]models.AuditEntry, error)
}

// NotificationRepository stores per-user notifications.
type NotificationRepository interface {
	Append(ctx context.Context, notification models.Notification) error
	List(ctx context.Context) ([]models.Notification, error)
}

type Persistence interface {
	Agreements() AgreementRepository
	Cases() CaseRepository
	Users() UserRepository
	Audit() AuditRepository
	Notifications() NotificationRepository
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
