package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

var (
	// ErrAgreementNotFound is returned when an agreement is not found.
	ErrAgreementNotFound = persistence.ErrAgreementNotFound
)

type Agreement struct {
	persistence persistence.Persistence
	validator   *validator.Validate
}

// NewAgreement creates a new agreement service.
func NewAgreement(persistence persistence.Persistence) *Agreement {
	return &Agreement{
		persistence: persistence,
		validator:   validator.New(),
	}
}

// HealthCheck checks the health of the persistence layer.
func (a *Agreement) HealthCheck(ctx context.Context) (string, bool) {
	if a.persistence == nil {
		return "Persistence layer not initialized", false
	}

	err := a.persistence.HealthCheck(ctx)
	if err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// List retrieves every agreement, newest first.
func (a *Agreement) List(ctx context.Context) ([]models.Agreement, error) {
	agreements, err := a.persistence.Agreements().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}

	return agreements, nil
}

// FetchByID retrieves an agreement by its ID.
func (a *Agreement) FetchByID(ctx context.Context, id string) (*models.Agreement, error) {
	agreement, err := a.persistence.Agreements().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if agreement == nil {
		return nil, ErrAgreementNotFound
	}

	return agreement, nil
}

// Create adds a new agreement to the repository. ID and timestamps are
// assigned here; the caller supplies the business fields.
func (a *Agreement) Create(ctx context.Context, agreement *models.Agreement) (*models.Agreement, error) {
	if agreement == nil {
		return nil, ErrAgreementNil
	}

	now := time.Now().UTC()

	if agreement.ID == "" {
		agreement.ID = uuid.New().String()
	}

	agreement.CreatedAt = now
	agreement.UpdatedAt = now

	if agreement.Status == "" {
		agreement.Status = models.AgreementStatusPendingReview
	}

	if agreement.CurrentVersion == 0 {
		agreement.CurrentVersion = 1
	}

	// Expiry is derived from the duration when not set explicitly.
	// Months are approximated as 30 days.
	if agreement.ExpiryDate.IsZero() && agreement.DurationMonths > 0 {
		agreement.ExpiryDate = now.Add(time.Duration(agreement.DurationMonths) * 30 * 24 * time.Hour)
	}

	if agreement.Title == "" {
		return nil, ErrTitleRequired
	}

	if err := a.validator.Struct(agreement); err != nil {
		return nil, NewValidationError(
			"Agreement.Create",
			"INVALID_AGREEMENT",
			err.Error(),
			ErrInvalidRequest,
		)
	}

	err := a.persistence.Agreements().Create(ctx, *agreement)
	if err != nil {
		return nil, fmt.Errorf("failed to create agreement: %w", err)
	}

	return agreement, nil
}

// Update replaces an existing agreement wholesale by its ID. The stored
// record's creation timestamp is preserved.
func (a *Agreement) Update(ctx context.Context, agreementID string, agreement *models.Agreement) (*models.Agreement, error) {
	if agreement == nil {
		return nil, ErrAgreementNil
	}

	existing, err := a.persistence.Agreements().GetByID(ctx, agreementID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, ErrAgreementNotFound
	}

	agreement.ID = agreementID
	agreement.CreatedAt = existing.CreatedAt
	agreement.UpdatedAt = time.Now().UTC()

	err = a.persistence.Agreements().Replace(ctx, agreementID, *agreement)
	if err != nil {
		return nil, fmt.Errorf("failed to update agreement: %w", err)
	}

	return agreement, nil
}
