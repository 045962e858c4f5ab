package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAgreement(id, title string) models.Agreement {
	now := time.Now().UTC()

	return models.Agreement{
		ID:                id,
		Title:             title,
		Type:              "Service Agreement",
		Parties:           "Our Corp vs Third Party",
		DurationMonths:    12,
		Status:            models.AgreementStatusPendingReview,
		CurrentVersion:    1,
		CreatedAt:         now,
		UpdatedAt:         now,
		Documents:         []models.Document{},
		Comments:          []models.Comment{},
		MaxApprovalLevels: 3,
	}
}

func TestAgreementRepository_CreatePrependsNewestFirst(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Agreements().Create(t.Context(), testAgreement("agr-1", "First")))
	require.NoError(t, p.Agreements().Create(t.Context(), testAgreement("agr-2", "Second")))

	all, err := p.Agreements().List(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "agr-2", all[0].ID)
	assert.Equal(t, "agr-1", all[1].ID)
}

func TestAgreementRepository_CreateRejectsDuplicateID(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Agreements().Create(t.Context(), testAgreement("agr-1", "First")))

	err = p.Agreements().Create(t.Context(), testAgreement("agr-1", "Again"))
	assert.ErrorIs(t, err, persistence.ErrDuplicateID)
}

func TestAgreementRepository_ReplacePreservesOrder(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Agreements().Create(t.Context(), testAgreement("agr-1", "First")))
	require.NoError(t, p.Agreements().Create(t.Context(), testAgreement("agr-2", "Second")))

	updated := testAgreement("agr-1", "First (revised)")
	updated.Status = models.AgreementStatusUnderRevision
	require.NoError(t, p.Agreements().Replace(t.Context(), "agr-1", updated))

	all, err := p.Agreements().List(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "agr-2", all[0].ID)
	assert.Equal(t, "agr-1", all[1].ID)
	assert.Equal(t, models.AgreementStatusUnderRevision, all[1].Status)
}

func TestAgreementRepository_ReplaceMissingIDFailsAndLeavesCollectionUntouched(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Agreements().Create(t.Context(), testAgreement("agr-1", "First")))

	err = p.Agreements().Replace(t.Context(), "agr-missing", testAgreement("agr-missing", "Ghost"))
	assert.ErrorIs(t, err, persistence.ErrAgreementNotFound)

	all, err := p.Agreements().List(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "First", all[0].Title)
}

func TestAgreementRepository_GetByIDMissingReturnsNil(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	found, err := p.Agreements().GetByID(t.Context(), "nope")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPersistence_SnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()

	p, err := NewPersistence(dir)
	require.NoError(t, err)

	agr := testAgreement("agr-1", "Round Trip")
	agr.Comments = []models.Comment{{
		ID:         "cmt-1",
		AuthorName: "Authority",
		Text:       "ok",
		Timestamp:  time.Now().UTC(),
		Type:       models.CommentTypeApprovalNote,
	}}
	require.NoError(t, p.Agreements().Create(t.Context(), agr))

	// A fresh instance must read back what the first one wrote.
	reopened, err := NewPersistence(dir)
	require.NoError(t, err)

	found, err := reopened.Agreements().GetByID(t.Context(), "agr-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Round Trip", found.Title)
	require.Len(t, found.Comments, 1)
	assert.Equal(t, models.CommentTypeApprovalNote, found.Comments[0].Type)
}

func TestPersistence_RejectsMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, CollectionAgreements+".json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"title": "no id field"}]`), 0600))

	p, err := NewPersistence(dir)
	require.NoError(t, err)

	_, err = p.Agreements().List(t.Context())
	assert.ErrorIs(t, err, persistence.ErrCorruptSnapshot)
}

func TestUserRepository_GetByEmailIsCaseInsensitive(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Users().Create(t.Context(), models.User{
		ID:     "usr-1",
		Name:   "Admin",
		Role:   models.RoleAdmin,
		Email:  "admin@ilms.local",
		Active: true,
	}))

	found, err := p.Users().GetByEmail(t.Context(), "ADMIN@ilms.local")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "usr-1", found.ID)
}

func TestAuditRepository_AppendIsNewestFirst(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	first := models.AuditEntry{ID: "aud-1", Action: "AGREEMENT_CREATED", EntityType: models.EntityAgreement}
	second := models.AuditEntry{ID: "aud-2", Action: "WORKFLOW_DECISION", EntityType: models.EntityWorkflow}
	require.NoError(t, p.Audit().Append(t.Context(), first))
	require.NoError(t, p.Audit().Append(t.Context(), second))

	entries, err := p.Audit().List(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "aud-2", entries[0].ID)
}

func TestPersistence_HealthCheck(t *testing.T) {
	dir := t.TempDir()

	p, err := NewPersistence(dir)
	require.NoError(t, err)
	assert.NoError(t, p.HealthCheck(t.Context()))

	missing, err := NewPersistence(filepath.Join(dir, "does-not-exist"))
	require.NoError(t, err)
	assert.Error(t, missing.HealthCheck(t.Context()))
}
