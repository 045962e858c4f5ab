// Package expiry watches agreement expiry dates and raises notifications
// for agreements approaching the end of their term.
package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/events"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
	"github.com/robfig/cron/v3"
)

const (
	// DefaultWarningWindow is how far ahead of the expiry date an
	// agreement counts as expiring.
	DefaultWarningWindow = 30 * 24 * time.Hour

	// DefaultSchedule runs the scan once a day at 06:00.
	DefaultSchedule = "0 6 * * *"
)

// Monitor scans the agreement collection for records whose expiry date
// falls within the warning window and emits one notification plus one
// expiring event per hit. A scan never mutates agreements.
type Monitor struct {
	agreements    persistence.AgreementRepository
	notifications persistence.NotificationRepository
	bus           eventbus.EventBus
	logger        *slog.Logger

	warningWindow time.Duration
	schedule      string

	cron  *cron.Cron
	mutex sync.Mutex
	// Notified IDs from this process lifetime; keeps a daily scan from
	// re-notifying the same agreement every run.
	notified map[string]bool
}

// NewMonitor creates an expiry monitor with the default window and
// schedule.
func NewMonitor(
	agreements persistence.AgreementRepository,
	notifications persistence.NotificationRepository,
	bus eventbus.EventBus,
	logger *slog.Logger,
) *Monitor {
	return &Monitor{
		agreements:    agreements,
		notifications: notifications,
		bus:           bus,
		logger:        logger.With("module", "expiry_monitor"),
		warningWindow: DefaultWarningWindow,
		schedule:      DefaultSchedule,
		notified:      make(map[string]bool),
	}
}

// WithWarningWindow overrides how far ahead the scan looks.
func (m *Monitor) WithWarningWindow(window time.Duration) *Monitor {
	m.warningWindow = window

	return m
}

// WithSchedule overrides the cron expression for periodic scans.
func (m *Monitor) WithSchedule(schedule string) *Monitor {
	m.schedule = schedule

	return m
}

// Start begins periodic scanning. It returns once the scheduler is
// running.
func (m *Monitor) Start(ctx context.Context) error {
	if _, err := cron.ParseStandard(m.schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", m.schedule, err)
	}

	m.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
		cron.Recover(cron.DefaultLogger),
	))

	_, err := m.cron.AddFunc(m.schedule, func() {
		if _, err := m.RunOnce(ctx); err != nil {
			m.logger.ErrorContext(ctx, "Expiry scan failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule expiry scan: %w", err)
	}

	m.cron.Start()
	m.logger.InfoContext(ctx, "Expiry monitor started", "schedule", m.schedule, "window", m.warningWindow)

	return nil
}

// Stop halts periodic scanning.
func (m *Monitor) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}

// RunOnce performs a single scan and returns the agreements flagged as
// expiring this run.
func (m *Monitor) RunOnce(ctx context.Context) ([]models.Agreement, error) {
	agreements, err := m.agreements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}

	now := time.Now().UTC()
	deadline := now.Add(m.warningWindow)

	var expiring []models.Agreement

	for _, agreement := range agreements {
		if !m.isExpiring(agreement, now, deadline) {
			continue
		}

		m.mutex.Lock()
		seen := m.notified[agreement.ID]
		m.notified[agreement.ID] = true
		m.mutex.Unlock()

		if seen {
			continue
		}

		if err := m.notify(ctx, agreement); err != nil {
			m.logger.ErrorContext(ctx, "Failed to record expiry notification", "agreement_id", agreement.ID, "error", err)

			continue
		}

		expiring = append(expiring, agreement)
	}

	m.logger.InfoContext(ctx, "Expiry scan finished", "scanned", len(agreements), "expiring", len(expiring))

	return expiring, nil
}

func (m *Monitor) isExpiring(agreement models.Agreement, now, deadline time.Time) bool {
	// Executed agreements are live contracts and still expire; rejected
	// and archived ones are out of play.
	if agreement.Status == models.AgreementStatusRejected || agreement.Status == models.AgreementStatusArchived {
		return false
	}

	if agreement.ExpiryDate.IsZero() {
		return false
	}

	return agreement.ExpiryDate.After(now) && !agreement.ExpiryDate.After(deadline)
}

func (m *Monitor) notify(ctx context.Context, agreement models.Agreement) error {
	now := time.Now().UTC()

	notification := models.Notification{
		ID:        "ntf_" + uuid.New().String(),
		Title:     "Agreement expiring",
		Message:   fmt.Sprintf("Agreement %q expires on %s", agreement.Title, agreement.ExpiryDate.Format("2006-01-02")),
		Timestamp: now,
	}

	if err := m.notifications.Append(ctx, notification); err != nil {
		return err
	}

	sent := events.NotificationSent{
		BaseEvent: events.BaseEvent{
			ID:          m.bus.GenerateID(),
			Type:        events.NotificationSentEvent,
			Timestamp:   now,
			AgreementID: agreement.ID,
		},
		UserID:  notification.UserID,
		Title:   notification.Title,
		Message: notification.Message,
	}

	if err := m.bus.Publish(ctx, agreement.ID, sent); err != nil {
		m.logger.ErrorContext(ctx, "Failed to publish notification event", "agreement_id", agreement.ID, "error", err)
	}

	event := events.AgreementExpiring{
		BaseEvent: events.BaseEvent{
			ID:          m.bus.GenerateID(),
			Type:        events.AgreementExpiringEvent,
			Timestamp:   now,
			AgreementID: agreement.ID,
		},
		Title:      agreement.Title,
		ExpiryDate: agreement.ExpiryDate,
	}

	if err := m.bus.Publish(ctx, agreement.ID, event); err != nil {
		m.logger.ErrorContext(ctx, "Failed to publish expiring event", "agreement_id", agreement.ID, "error", err)
	}

	return nil
}
