package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/nextgen-analytics/ilms/pkg/audit"
	"github.com/nextgen-analytics/ilms/pkg/channels/gochannel"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/log"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/otelhelper"
	"github.com/nextgen-analytics/ilms/pkg/permissions"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
	"github.com/nextgen-analytics/ilms/pkg/persistence/file"
	"github.com/nextgen-analytics/ilms/pkg/persistence/memory"
	"github.com/nextgen-analytics/ilms/pkg/services"
	"github.com/nextgen-analytics/ilms/pkg/workflow"
	cli "github.com/urfave/cli/v3"
)

// app wires the store, event bus, audit recorder, and services for one
// command invocation.
type app struct {
	store      persistence.Persistence
	bus        eventbus.EventBus
	recorder   *audit.Recorder
	engine     *workflow.Engine
	agreements *services.Agreement
	cases      *services.LegalCase
	users      *services.User
	logger     *slog.Logger
}

func newApp(ctx context.Context, cmd *cli.Command) (*app, error) {
	log.Setup(cmd.String("log-level"))
	logger := log.WithModule("ilms")

	store, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	pub, sub, err := gochannel.CreateSyncChannel(watermill.NopLogger{})
	if err != nil {
		return nil, fmt.Errorf("failed to create event channel: %w", err)
	}

	bus := eventbus.NewWatermillEventBus(pub, sub)

	recorder := audit.NewRecorder(store.Audit(), bus, logger)
	if err := recorder.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start audit recorder: %w", err)
	}

	engine := workflow.NewEngine(store.Agreements(), bus, logger)

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		tracer, err := otelhelper.NewTracer(ctx, "ilms")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracer: %w", err)
		}

		engine.WithTracer(tracer)
	}

	return &app{
		store:      store,
		bus:        bus,
		recorder:   recorder,
		engine:     engine,
		agreements: services.NewAgreement(store),
		cases:      services.NewLegalCase(store),
		users:      services.NewUser(store),
		logger:     logger,
	}, nil
}

// openStore picks the persistence backend from --data-dir: file
// snapshots when set, in-memory otherwise.
func openStore(cmd *cli.Command) (persistence.Persistence, error) {
	dataDir := cmd.String("data-dir")
	if dataDir == "" {
		return memory.NewPersistence(), nil
	}

	store, err := file.NewPersistence(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory %s: %w", dataDir, err)
	}

	return store, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.bus.Close(); err != nil {
		a.logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
	}

	if err := a.store.Close(ctx); err != nil {
		a.logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
	}
}

// resolveActor loads the acting user from --actor-email and verifies
// the account is active.
func (a *app) resolveActor(ctx context.Context, cmd *cli.Command) (*models.User, error) {
	email := cmd.String("actor-email")
	if email == "" {
		return nil, fmt.Errorf("--actor-email is required for this command")
	}

	actor, err := a.users.FetchByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor %s: %w", email, err)
	}

	if !actor.Active {
		return nil, fmt.Errorf("account %s is deactivated", email)
	}

	return actor, nil
}

// requirePermission enforces an access-table check before a command
// touches anything.
func requirePermission(actor *models.User, resource permissions.Resource, action permissions.Action) error {
	if !permissions.Allowed(actor.Role, resource, action) {
		return fmt.Errorf("role %s may not %s %s records", actor.Role, action, resource)
	}

	return nil
}
