package expiry

import (
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/nextgen-analytics/ilms/pkg/channels/gochannel"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/log"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
	"github.com/nextgen-analytics/ilms/pkg/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor(t *testing.T) (*Monitor, persistence.Persistence) {
	t.Helper()

	store := memory.NewPersistence()

	pub, sub, err := gochannel.CreateTestChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)
	t.Cleanup(func() { _ = bus.Close() })

	monitor := NewMonitor(store.Agreements(), store.Notifications(), bus, log.WithModule("test"))

	return monitor, store
}

func seedExpiring(t *testing.T, store persistence.Persistence, id string, status models.AgreementStatus, expiresIn time.Duration) {
	t.Helper()

	require.NoError(t, store.Agreements().Create(t.Context(), models.Agreement{
		ID:         id,
		Title:      "Agreement " + id,
		Status:     status,
		ExpiryDate: time.Now().UTC().Add(expiresIn),
	}))
}

func TestMonitor_FlagsAgreementsInsideWindow(t *testing.T) {
	monitor, store := newTestMonitor(t)

	seedExpiring(t, store, "soon", models.AgreementStatusExecuted, 10*24*time.Hour)
	seedExpiring(t, store, "far", models.AgreementStatusExecuted, 90*24*time.Hour)
	seedExpiring(t, store, "past", models.AgreementStatusExecuted, -time.Hour)

	expiring, err := monitor.RunOnce(t.Context())
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "soon", expiring[0].ID)

	notifications, err := store.Notifications().List(t.Context())
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Agreement soon")
}

func TestMonitor_SkipsRejectedAndArchived(t *testing.T) {
	monitor, store := newTestMonitor(t)

	seedExpiring(t, store, "rejected", models.AgreementStatusRejected, 5*24*time.Hour)
	seedExpiring(t, store, "archived", models.AgreementStatusArchived, 5*24*time.Hour)
	seedExpiring(t, store, "pending", models.AgreementStatusPendingReview, 5*24*time.Hour)

	expiring, err := monitor.RunOnce(t.Context())
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "pending", expiring[0].ID)
}

func TestMonitor_DoesNotRenotify(t *testing.T) {
	monitor, store := newTestMonitor(t)

	seedExpiring(t, store, "soon", models.AgreementStatusExecuted, 10*24*time.Hour)

	first, err := monitor.RunOnce(t.Context())
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := monitor.RunOnce(t.Context())
	require.NoError(t, err)
	assert.Empty(t, second)

	notifications, err := store.Notifications().List(t.Context())
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestMonitor_CustomWindow(t *testing.T) {
	monitor, store := newTestMonitor(t)
	monitor.WithWarningWindow(7 * 24 * time.Hour)

	seedExpiring(t, store, "eight-days", models.AgreementStatusExecuted, 8*24*time.Hour)

	expiring, err := monitor.RunOnce(t.Context())
	require.NoError(t, err)
	assert.Empty(t, expiring)
}

func TestMonitor_RejectsBadSchedule(t *testing.T) {
	monitor, _ := newTestMonitor(t)
	monitor.WithSchedule("not a cron expression")

	err := monitor.Start(t.Context())
	require.Error(t, err)
}
