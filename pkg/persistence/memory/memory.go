// Package memory provides in-memory persistence for tests and
// zero-configuration runs. Semantics match the file implementation:
// create prepends, replace swaps in place, append-only ledgers.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

// Persistence implements persistence.Persistence on mutex-guarded slices.
type Persistence struct {
	agreements    *AgreementRepository
	cases         *CaseRepository
	users         *UserRepository
	audit         *AuditRepository
	notifications *NotificationRepository
}

func NewPersistence() *Persistence {
	return &Persistence{
		agreements:    &AgreementRepository{},
		cases:         &CaseRepository{},
		users:         &UserRepository{},
		audit:         &AuditRepository{},
		notifications: &NotificationRepository{},
	}
}

func (mp *Persistence) Agreements() persistence.AgreementRepository {
	return mp.agreements
}

func (mp *Persistence) Cases() persistence.CaseRepository {
	return mp.cases
}

func (mp *Persistence) Users() persistence.UserRepository {
	return mp.users
}

func (mp *Persistence) Audit() persistence.AuditRepository {
	return mp.audit
}

func (mp *Persistence) Notifications() persistence.NotificationRepository {
	return mp.notifications
}

func (mp *Persistence) HealthCheck(_ context.Context) error {
	return nil
}

func (mp *Persistence) Close(_ context.Context) error {
	return nil
}

// AgreementRepository is the in-memory agreement collection.
type AgreementRepository struct {
	mu      sync.RWMutex
	records []models.Agreement
}

func (r *AgreementRepository) List(_ context.Context) ([]models.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Agreement, len(r.records))
	copy(out, r.records)

	return out, nil
}

func (r *AgreementRepository) GetByID(_ context.Context, id string) (*models.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].ID == id {
			found := r.records[i].Clone()

			return &found, nil
		}
	}

	return nil, nil
}

func (r *AgreementRepository) Create(_ context.Context, agreement models.Agreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == agreement.ID {
			return persistence.NewRepositoryError("Create", "agreements", agreement.ID, persistence.ErrDuplicateID)
		}
	}

	r.records = append([]models.Agreement{agreement}, r.records...)

	return nil
}

func (r *AgreementRepository) Replace(_ context.Context, id string, agreement models.Agreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i] = agreement

			return nil
		}
	}

	return persistence.NewRepositoryError("Replace", "agreements", id, persistence.ErrAgreementNotFound)
}

// CaseRepository is the in-memory case collection.
type CaseRepository struct {
	mu      sync.RWMutex
	records []models.LegalCase
}

func (r *CaseRepository) List(_ context.Context) ([]models.LegalCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LegalCase, len(r.records))
	copy(out, r.records)

	return out, nil
}

func (r *CaseRepository) GetByID(_ context.Context, id string) (*models.LegalCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].ID == id {
			found := r.records[i]

			return &found, nil
		}
	}

	return nil, nil
}

func (r *CaseRepository) Create(_ context.Context, legalCase models.LegalCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == legalCase.ID {
			return persistence.NewRepositoryError("Create", "cases", legalCase.ID, persistence.ErrDuplicateID)
		}
	}

	r.records = append([]models.LegalCase{legalCase}, r.records...)

	return nil
}

func (r *CaseRepository) Replace(_ context.Context, id string, legalCase models.LegalCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i] = legalCase

			return nil
		}
	}

	return persistence.NewRepositoryError("Replace", "cases", id, persistence.ErrCaseNotFound)
}

// UserRepository is the in-memory account collection.
type UserRepository struct {
	mu      sync.RWMutex
	records []models.User
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.records))
	copy(out, r.records)

	return out, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if strings.EqualFold(r.records[i].Email, email) {
			found := r.records[i]

			return &found, nil
		}
	}

	return nil, nil
}

func (r *UserRepository) Create(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == user.ID {
			return persistence.NewRepositoryError("Create", "users", user.ID, persistence.ErrDuplicateID)
		}
	}

	r.records = append([]models.User{user}, r.records...)

	return nil
}

func (r *UserRepository) Replace(_ context.Context, id string, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i] = user

			return nil
		}
	}

	return persistence.NewRepositoryError("Replace", "users", id, persistence.ErrUserNotFound)
}

// AuditRepository is the in-memory append-only ledger, newest first.
type AuditRepository struct {
	mu      sync.RWMutex
	records []models.AuditEntry
}

func (r *AuditRepository) Append(_ context.Context, entry models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]models.AuditEntry{entry}, r.records...)

	return nil
}

func (r *AuditRepository) List(_ context.Context) ([]models.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AuditEntry, len(r.records))
	copy(out, r.records)

	return out, nil
}

// NotificationRepository is the in-memory notification list, newest first.
type NotificationRepository struct {
	mu      sync.RWMutex
	records []models.Notification
}

func (r *NotificationRepository) Append(_ context.Context, notification models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]models.Notification{notification}, r.records...)

	return nil
}

func (r *NotificationRepository) List(_ context.Context) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Notification, len(r.records))
	copy(out, r.records)

	return out, nil
}
