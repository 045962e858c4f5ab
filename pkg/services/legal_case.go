package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

var (
	// ErrCaseNotFound is returned when a legal case is not found.
	ErrCaseNotFound = persistence.ErrCaseNotFound
)

type LegalCase struct {
	persistence persistence.Persistence
}

// NewLegalCase creates a new legal case service.
func NewLegalCase(persistence persistence.Persistence) *LegalCase {
	return &LegalCase{
		persistence: persistence,
	}
}

// List retrieves every case, newest first.
func (c *LegalCase) List(ctx context.Context) ([]models.LegalCase, error) {
	cases, err := c.persistence.Cases().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return cases, nil
}

// FetchByID retrieves a case by its ID.
func (c *LegalCase) FetchByID(ctx context.Context, id string) (*models.LegalCase, error) {
	legalCase, err := c.persistence.Cases().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if legalCase == nil {
		return nil, ErrCaseNotFound
	}

	return legalCase, nil
}

// Create adds a new case to the repository.
func (c *LegalCase) Create(ctx context.Context, legalCase *models.LegalCase) (*models.LegalCase, error) {
	now := time.Now().UTC()

	if legalCase.ID == "" {
		legalCase.ID = uuid.New().String()
	}

	legalCase.CreatedAt = now
	legalCase.UpdatedAt = now

	if legalCase.Status == "" {
		legalCase.Status = models.CaseStatusActive
	}

	err := c.persistence.Cases().Create(ctx, *legalCase)
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	return legalCase, nil
}
