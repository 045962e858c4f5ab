package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/events"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/otelhelper"
	"github.com/nextgen-analytics/ilms/pkg/permissions"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
	"github.com/nextgen-analytics/ilms/pkg/services"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Engine applies workflow decisions to stored agreements. All mutation
// goes through Decide: load, authorize, transition, append exactly one
// comment, replace the whole record, then publish. Publish failures are
// logged, not rolled back; the record replace is the commit point.
type Engine struct {
	agreements   persistence.AgreementRepository
	bus          eventbus.EventBus
	commentTypes CommentTypes
	validator    *validator.Validate
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewEngine creates a workflow engine with the default decision-to-
// comment-type mapping.
func NewEngine(agreements persistence.AgreementRepository, bus eventbus.EventBus, logger *slog.Logger) *Engine {
	return &Engine{
		agreements:   agreements,
		bus:          bus,
		commentTypes: DefaultCommentTypes(),
		validator:    validator.New(),
		logger:       logger.With("module", "workflow_engine"),
		tracer:       noop.NewTracerProvider().Tracer("workflow"),
	}
}

// WithCommentTypes overrides the decision-to-comment-type mapping.
func (e *Engine) WithCommentTypes(types CommentTypes) *Engine {
	e.commentTypes = types

	return e
}

// WithTracer attaches a tracer so each decision commit produces a span.
func (e *Engine) WithTracer(tracer trace.Tracer) *Engine {
	e.tracer = tracer

	return e
}

// Decide validates, authorizes, and commits one decision. On success it
// returns the updated agreement as stored.
func (e *Engine) Decide(ctx context.Context, req DecisionRequest) (*models.Agreement, error) {
	ctx, span := otelhelper.StartSpan(ctx, e.tracer, "workflow.decide",
		attribute.String(otelhelper.AgreementIDKey, req.AgreementID),
		attribute.String(otelhelper.DecisionKey, string(req.Decision)),
		attribute.String(otelhelper.ActorIDKey, req.ActorID),
		attribute.String(otelhelper.ActorRoleKey, string(req.ActorRole)),
	)
	defer span.End()

	if err := e.validateRequest(req); err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	// Authorization is re-checked here at the commit boundary, not only
	// at whatever surface collected the decision.
	if !permissions.Allowed(req.ActorRole, permissions.ResourceAgreement, permissions.ActionApprove) {
		err := services.NewAuthorizationError("Engine.Decide",
			fmt.Sprintf("role %s may not decide on agreements", req.ActorRole))
		otelhelper.SetError(span, err)

		return nil, err
	}

	current, err := e.agreements.GetByID(ctx, req.AgreementID)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	if current == nil {
		return nil, persistence.ErrAgreementNotFound
	}

	if current.Status.Terminal() {
		return nil, &services.ServiceError{
			Op:      "Engine.Decide",
			Code:    "AGREEMENT_FINALIZED",
			Message: fmt.Sprintf("agreement %s is %s", current.ID, current.Status),
			Err:     services.ErrAgreementFinalized,
		}
	}

	nextStatus, nextLevel := Transition(current.Status, current.CurrentApprovalLevel, current.MaxApprovalLevels, req.Decision)

	now := time.Now().UTC()
	updated := current.Clone()
	updated.Status = nextStatus
	updated.CurrentApprovalLevel = nextLevel
	updated.UpdatedAt = now
	updated.Comments = append(updated.Comments, models.Comment{
		ID:         uuid.New().String(),
		AuthorName: req.ActorName,
		Text:       req.Justification,
		Timestamp:  now,
		Type:       e.commentTypes[req.Decision],
	})

	err = e.agreements.Replace(ctx, updated.ID, updated)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}

	span.SetAttributes(
		attribute.String(otelhelper.StatusKey, string(nextStatus)),
		attribute.Int(otelhelper.LevelKey, nextLevel),
	)
	e.logger.InfoContext(ctx, "Decision committed",
		"agreement_id", updated.ID,
		"decision", req.Decision,
		"status", nextStatus,
		"level", nextLevel,
		"actor", req.ActorName,
	)

	e.publishDecision(ctx, req, current, &updated)

	return &updated, nil
}

func (e *Engine) validateRequest(req DecisionRequest) error {
	if strings.TrimSpace(req.Justification) == "" {
		return services.NewValidationError("Engine.Decide", "JUSTIFICATION_REQUIRED",
			"every decision must carry a justification", services.ErrJustificationRequired)
	}

	if _, ok := e.commentTypes[req.Decision]; !ok {
		return services.NewValidationError("Engine.Decide", "INVALID_DECISION",
			fmt.Sprintf("unknown decision %q", req.Decision), services.ErrInvalidDecision)
	}

	if err := e.validator.Struct(req); err != nil {
		return services.NewValidationError("Engine.Decide", "INVALID_REQUEST", err.Error(), services.ErrInvalidRequest)
	}

	return nil
}

func (e *Engine) publishDecision(ctx context.Context, req DecisionRequest, previous, updated *models.Agreement) {
	event := events.AgreementDecision{
		BaseEvent: events.BaseEvent{
			ID:          e.bus.GenerateID(),
			Type:        events.AgreementDecisionEvent,
			Timestamp:   updated.UpdatedAt,
			AgreementID: updated.ID,
			ActorID:     req.ActorID,
			ActorName:   req.ActorName,
		},
		Decision:       string(req.Decision),
		Justification:  req.Justification,
		PreviousStatus: string(previous.Status),
		NextStatus:     string(updated.Status),
		PreviousLevel:  previous.CurrentApprovalLevel,
		NextLevel:      updated.CurrentApprovalLevel,
	}

	if err := e.bus.Publish(ctx, updated.ID, event); err != nil {
		e.logger.ErrorContext(ctx, "Failed to publish decision event", "agreement_id", updated.ID, "error", err)
	}
}
