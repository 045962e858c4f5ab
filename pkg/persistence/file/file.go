// Package file provides file-based persistence: each record collection
// is one JSON snapshot under a root directory, keyed by its logical
// collection name and rewritten wholesale on every mutation.
package file

import (
	"context"
	"os"
	"strings"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

// Logical collection names. They double as the snapshot file basenames
// and are kept identical to the original system's storage keys.
const (
	CollectionAgreements    = "ilms_agreements"
	CollectionCases         = "ilms_cases"
	CollectionUsers         = "ilms_users"
	CollectionAudit         = "ilms_audit"
	CollectionNotifications = "ilms_notifications"
)

// Persistence implements persistence.Persistence on the file system.
type Persistence struct {
	root          string
	agreements    *AgreementRepository
	cases         *CaseRepository
	users         *UserRepository
	audit         *AuditRepository
	notifications *NotificationRepository
}

// NewPersistence creates a file persistence rooted at the given
// directory. A "file://" prefix is tolerated for URL-style config.
func NewPersistence(root string) (*Persistence, error) {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	agreements, err := newCollection[models.Agreement](cleanRoot, CollectionAgreements)
	if err != nil {
		return nil, err
	}

	cases, err := newCollection[models.LegalCase](cleanRoot, CollectionCases)
	if err != nil {
		return nil, err
	}

	users, err := newCollection[models.User](cleanRoot, CollectionUsers)
	if err != nil {
		return nil, err
	}

	audit, err := newCollection[models.AuditEntry](cleanRoot, CollectionAudit)
	if err != nil {
		return nil, err
	}

	notifications, err := newCollection[models.Notification](cleanRoot, CollectionNotifications)
	if err != nil {
		return nil, err
	}

	return &Persistence{
		root:          cleanRoot,
		agreements:    &AgreementRepository{records: agreements},
		cases:         &CaseRepository{records: cases},
		users:         &UserRepository{records: users},
		audit:         &AuditRepository{records: audit},
		notifications: &NotificationRepository{records: notifications},
	}, nil
}

func (fp *Persistence) Agreements() persistence.AgreementRepository {
	return fp.agreements
}

func (fp *Persistence) Cases() persistence.CaseRepository {
	return fp.cases
}

func (fp *Persistence) Users() persistence.UserRepository {
	return fp.users
}

func (fp *Persistence) Audit() persistence.AuditRepository {
	return fp.audit
}

func (fp *Persistence) Notifications() persistence.NotificationRepository {
	return fp.notifications
}

// HealthCheck verifies the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Close performs any necessary cleanup. For file-based persistence there
// is nothing to clean up.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}
