// Package audit turns bus events into append-only ledger entries. The
// ledger is the system of record for workflow activity; comments stored
// inside agreement records are a denormalized convenience copy.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/events"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

// Recorder subscribes to the event bus and appends one AuditEntry per
// agreement lifecycle event.
type Recorder struct {
	ledger persistence.AuditRepository
	bus    eventbus.EventSubscriber
	logger *slog.Logger
}

func NewRecorder(ledger persistence.AuditRepository, bus eventbus.EventSubscriber, logger *slog.Logger) *Recorder {
	return &Recorder{
		ledger: ledger,
		bus:    bus,
		logger: logger.With("module", "audit_recorder"),
	}
}

// Start registers handlers and begins consuming. It returns once the
// subscription is established.
func (r *Recorder) Start(ctx context.Context) error {
	if err := r.bus.Handle(events.AgreementCreatedEvent, r.onCreated); err != nil {
		return err
	}

	if err := r.bus.Handle(events.AgreementDecisionEvent, r.onDecision); err != nil {
		return err
	}

	if err := r.bus.Handle(events.AgreementExpiringEvent, r.onExpiring); err != nil {
		return err
	}

	return r.bus.Subscribe(ctx)
}

func (r *Recorder) onCreated(ctx context.Context, event any) error {
	e, ok := event.(*events.AgreementCreated)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}

	return r.append(ctx, models.AuditEntry{
		ID:         "aud_" + uuid.New().String(),
		UserID:     e.ActorID,
		UserName:   e.ActorName,
		Action:     "AGREEMENT_CREATED",
		EntityType: models.EntityAgreement,
		EntityID:   e.AgreementID,
		Timestamp:  e.Timestamp,
		Details:    fmt.Sprintf("Agreement %q (%s) submitted for review with %d documents", e.Title, e.AgreementType, e.Documents),
	})
}

func (r *Recorder) onDecision(ctx context.Context, event any) error {
	e, ok := event.(*events.AgreementDecision)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}

	return r.append(ctx, models.AuditEntry{
		ID:         "aud_" + uuid.New().String(),
		UserID:     e.ActorID,
		UserName:   e.ActorName,
		Action:     "WORKFLOW_" + e.Decision,
		EntityType: models.EntityWorkflow,
		EntityID:   e.AgreementID,
		Timestamp:  e.Timestamp,
		Details: fmt.Sprintf("%s -> %s (level %d -> %d): %s",
			e.PreviousStatus, e.NextStatus, e.PreviousLevel, e.NextLevel, e.Justification),
	})
}

func (r *Recorder) onExpiring(ctx context.Context, event any) error {
	e, ok := event.(*events.AgreementExpiring)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}

	return r.append(ctx, models.AuditEntry{
		ID:         "aud_" + uuid.New().String(),
		Action:     "AGREEMENT_EXPIRING",
		EntityType: models.EntityAgreement,
		EntityID:   e.AgreementID,
		Timestamp:  e.Timestamp,
		Details:    fmt.Sprintf("Agreement %q expires on %s", e.Title, e.ExpiryDate.Format("2006-01-02")),
	})
}

func (r *Recorder) append(ctx context.Context, entry models.AuditEntry) error {
	err := r.ledger.Append(ctx, entry)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to append audit entry", "action", entry.Action, "entity_id", entry.EntityID, "error", err)

		return err
	}

	r.logger.DebugContext(ctx, "Audit entry recorded", "action", entry.Action, "entity_id", entry.EntityID)

	return nil
}
