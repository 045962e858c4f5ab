// Package wizard implements the three-step agreement drafting flow:
// details, document intake, review and submit. The draft holds optional
// fields; defaulting rules are applied once, at submit time.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/events"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/services"
)

const (
	StepDetails   = 1
	StepDocuments = 2
	StepReview    = 3

	// Submit-time defaults for fields the draft leaves blank.
	DefaultTitle          = "Untitled Agreement"
	DefaultType           = "Other"
	DefaultParties        = "N/A"
	DefaultDurationMonths = 12

	// Review -> Dept Head -> Financial -> CLO.
	DefaultMaxApprovalLevels = 3
)

// Draft holds the optional fields collected across the wizard steps.
type Draft struct {
	Title          string
	Type           string
	Parties        string
	DurationMonths int
	Value          float64
	LinkedCaseID   string
}

// Wizard is one drafting session. It is safe for the upload goroutines
// it spawns; the stepping methods themselves are meant to be driven by
// a single caller.
type Wizard struct {
	mu        sync.Mutex
	step      int
	draft     Draft
	documents []models.Document
	uploads   sync.WaitGroup
	uploading int
	submitted bool

	ctx    context.Context
	cancel context.CancelFunc

	agreements *services.Agreement
	bus        eventbus.EventBus
	logger     *slog.Logger

	actorName     string
	uploadLatency time.Duration
}

// NewWizard starts a fresh drafting session.
func NewWizard(agreements *services.Agreement, bus eventbus.EventBus, logger *slog.Logger) *Wizard {
	ctx, cancel := context.WithCancel(context.Background())

	return &Wizard{
		step:          StepDetails,
		ctx:           ctx,
		cancel:        cancel,
		agreements:    agreements,
		bus:           bus,
		logger:        logger.With("module", "wizard"),
		actorName:     "Current User",
		uploadLatency: time.Second,
	}
}

// WithActor sets the name recorded on ingested documents.
func (w *Wizard) WithActor(name string) *Wizard {
	w.actorName = name

	return w
}

// WithUploadLatency overrides the simulated ingestion latency.
func (w *Wizard) WithUploadLatency(d time.Duration) *Wizard {
	w.uploadLatency = d

	return w
}

// Step returns the current wizard step (1-3).
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.step
}

// SetDetails merges the given draft fields into the session.
func (w *Wizard) SetDetails(draft Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft = draft
}

// Next advances one step. Leaving the details step requires a non-empty
// title; document attachment stays advisory and never blocks.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepDetails && strings.TrimSpace(w.draft.Title) == "" {
		return services.NewValidationError("Wizard.Next", "TITLE_REQUIRED",
			"a title is required before proceeding", services.ErrTitleRequired)
	}

	if w.step < StepReview {
		w.step++
	}

	return nil
}

// Back steps backward without losing collected state.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepDetails {
		w.step--
	}
}

// Documents returns a copy of the documents ingested so far.
func (w *Wizard) Documents() []models.Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.Document, len(w.documents))
	copy(out, w.documents)

	return out
}

// Submit finalizes the draft: defaults are applied, the expiry date is
// derived from the duration (30-day months), and the record enters the
// pipeline at PENDING_REVIEW with an empty comment trail.
func (w *Wizard) Submit(ctx context.Context) (*models.Agreement, error) {
	w.mu.Lock()

	if w.submitted {
		w.mu.Unlock()

		return nil, &services.ServiceError{
			Op:      "Wizard.Submit",
			Code:    "ALREADY_SUBMITTED",
			Message: "this session has already been submitted",
			Err:     services.ErrWizardIncomplete,
		}
	}

	if w.step != StepReview {
		w.mu.Unlock()

		return nil, &services.ServiceError{
			Op:      "Wizard.Submit",
			Code:    "WIZARD_INCOMPLETE",
			Message: fmt.Sprintf("cannot submit from step %d", w.step),
			Err:     services.ErrWizardIncomplete,
		}
	}

	if w.uploading > 0 {
		w.mu.Unlock()

		return nil, &services.ServiceError{
			Op:      "Wizard.Submit",
			Code:    "UPLOAD_IN_PROGRESS",
			Message: "wait for document ingestion to finish",
			Err:     services.ErrUploadInProgress,
		}
	}

	draft := w.draft
	documents := make([]models.Document, len(w.documents))
	copy(documents, w.documents)
	w.submitted = true
	w.mu.Unlock()

	if draft.Title == "" {
		draft.Title = DefaultTitle
	}

	if draft.Type == "" {
		draft.Type = DefaultType
	}

	if draft.Parties == "" {
		draft.Parties = DefaultParties
	}

	if draft.DurationMonths <= 0 {
		draft.DurationMonths = DefaultDurationMonths
	}

	agreement := &models.Agreement{
		Title:                draft.Title,
		Type:                 draft.Type,
		Parties:              draft.Parties,
		DurationMonths:       draft.DurationMonths,
		Value:                draft.Value,
		LinkedCaseID:         draft.LinkedCaseID,
		Status:               models.AgreementStatusPendingReview,
		CurrentVersion:       1,
		Documents:            documents,
		Comments:             []models.Comment{},
		CurrentApprovalLevel: 0,
		MaxApprovalLevels:    DefaultMaxApprovalLevels,
	}

	created, err := w.agreements.Create(ctx, agreement)
	if err != nil {
		w.mu.Lock()
		w.submitted = false
		w.mu.Unlock()

		return nil, err
	}

	w.publishCreated(ctx, created)
	w.cancel()

	return created, nil
}

// Discard abandons the session and cancels any in-flight uploads so a
// late completion cannot land on torn-down state.
func (w *Wizard) Discard() {
	w.cancel()
	w.uploads.Wait()
}

func (w *Wizard) publishCreated(ctx context.Context, agreement *models.Agreement) {
	event := events.AgreementCreated{
		BaseEvent: events.BaseEvent{
			ID:          w.bus.GenerateID(),
			Type:        events.AgreementCreatedEvent,
			Timestamp:   agreement.CreatedAt,
			AgreementID: agreement.ID,
			ActorName:   w.actorName,
		},
		Title:         agreement.Title,
		AgreementType: agreement.Type,
		Documents:     len(agreement.Documents),
	}

	if err := w.bus.Publish(ctx, agreement.ID, event); err != nil {
		w.logger.ErrorContext(ctx, "Failed to publish creation event", "agreement_id", agreement.ID, "error", err)
	}
}
