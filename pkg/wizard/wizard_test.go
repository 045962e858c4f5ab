package wizard

import (
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/nextgen-analytics/ilms/pkg/channels/gochannel"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/log"
	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence/memory"
	"github.com/nextgen-analytics/ilms/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizard(t *testing.T) (*Wizard, *services.Agreement) {
	t.Helper()

	store := memory.NewPersistence()
	service := services.NewAgreement(store)

	pub, sub, err := gochannel.CreateTestChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)
	t.Cleanup(func() { _ = bus.Close() })

	w := NewWizard(service, bus, log.WithModule("test")).
		WithUploadLatency(5 * time.Millisecond)

	return w, service
}

func TestWizard_StepOneRequiresTitle(t *testing.T) {
	w, _ := newTestWizard(t)

	err := w.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrTitleRequired)
	assert.Equal(t, StepDetails, w.Step())

	w.SetDetails(Draft{Title: "   "})
	assert.ErrorIs(t, w.Next(), services.ErrTitleRequired)

	w.SetDetails(Draft{Title: "Supply Contract"})
	require.NoError(t, w.Next())
	assert.Equal(t, StepDocuments, w.Step())
}

func TestWizard_BackKeepsState(t *testing.T) {
	w, _ := newTestWizard(t)

	w.SetDetails(Draft{Title: "Supply Contract", Parties: "ACME"})
	require.NoError(t, w.Next())
	w.Back()
	assert.Equal(t, StepDetails, w.Step())
	require.NoError(t, w.Next())
}

func TestWizard_SubmitDefaults(t *testing.T) {
	w, _ := newTestWizard(t)

	w.SetDetails(Draft{Title: "Supply Contract"})
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	created, err := w.Submit(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "Supply Contract", created.Title)
	assert.Equal(t, DefaultType, created.Type)
	assert.Equal(t, DefaultParties, created.Parties)
	assert.Equal(t, DefaultDurationMonths, created.DurationMonths)
	assert.Equal(t, models.AgreementStatusPendingReview, created.Status)
	assert.Equal(t, 0, created.CurrentApprovalLevel)
	assert.Equal(t, DefaultMaxApprovalLevels, created.MaxApprovalLevels)
	assert.Empty(t, created.Comments)
	assert.Equal(t, 1, created.CurrentVersion)
}

func TestWizard_ExpiryFromDuration(t *testing.T) {
	w, _ := newTestWizard(t)

	w.SetDetails(Draft{Title: "Lease", DurationMonths: 6})
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	created, err := w.Submit(t.Context())
	require.NoError(t, err)

	want := created.CreatedAt.Add(6 * 30 * 24 * time.Hour)
	assert.Equal(t, want, created.ExpiryDate)
}

func TestWizard_SubmitBeforeReviewRefused(t *testing.T) {
	w, _ := newTestWizard(t)

	w.SetDetails(Draft{Title: "Lease"})

	_, err := w.Submit(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrWizardIncomplete)
}

func TestWizard_AttachMergesBatches(t *testing.T) {
	w, _ := newTestWizard(t)

	w.SetDetails(Draft{Title: "Lease"})

	w.Attach(FileInfo{Name: "draft_v1.pdf", MIMEType: "application/pdf", Size: 1024})
	w.Attach(FileInfo{Name: "appendix.docx", Size: 2048})

	require.NoError(t, w.WaitForUploads(t.Context()))

	docs := w.Documents()
	require.Len(t, docs, 2)

	titles := []string{docs[0].Title, docs[1].Title}
	assert.ElementsMatch(t, []string{"draft_v1.pdf", "appendix.docx"}, titles)

	for _, doc := range docs {
		assert.NotEmpty(t, doc.ID)
		assert.Equal(t, 1, doc.Version)
		assert.Equal(t, "#", doc.Location)
	}
}

func TestWizard_AttachMIMEFallback(t *testing.T) {
	w, _ := newTestWizard(t)

	w.Attach(FileInfo{Name: "unknown.bin", Size: 10})
	require.NoError(t, w.WaitForUploads(t.Context()))

	docs := w.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "application/octet-stream", docs[0].MIMEType)
}

func TestWizard_DiscardCancelsUploads(t *testing.T) {
	w, _ := newTestWizard(t)
	w.WithUploadLatency(time.Second)

	w.Attach(FileInfo{Name: "slow.pdf", Size: 10})
	w.Discard()

	assert.Empty(t, w.Documents())
	assert.False(t, w.Uploading())
}

func TestWizard_SubmitRefusedWhileUploading(t *testing.T) {
	w, _ := newTestWizard(t)
	w.WithUploadLatency(time.Second)

	w.SetDetails(Draft{Title: "Lease"})
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	w.Attach(FileInfo{Name: "slow.pdf", Size: 10})

	_, err := w.Submit(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUploadInProgress)

	w.Discard()
}

func TestWizard_SubmitPersistsDocuments(t *testing.T) {
	w, service := newTestWizard(t)

	w.SetDetails(Draft{Title: "Lease"})
	require.NoError(t, w.Next())

	w.Attach(FileInfo{Name: "signed.pdf", MIMEType: "application/pdf", Size: 512})
	require.NoError(t, w.WaitForUploads(t.Context()))
	require.NoError(t, w.Next())

	created, err := w.Submit(t.Context())
	require.NoError(t, err)

	stored, err := service.FetchByID(t.Context(), created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Documents, 1)
	assert.Equal(t, "signed.pdf", stored.Documents[0].Title)
}
