package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_ExportAgreements(t *testing.T) {
	exporter := NewCSV()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	agreements := []models.Agreement{
		{
			ID:                   "agr-1",
			Title:                "Supply Contract, Phase \"Two\"",
			Type:                 "Service Agreement",
			Parties:              "ACME Corp",
			Status:               models.AgreementStatusForwardedForApproval,
			CurrentApprovalLevel: 2,
			MaxApprovalLevels:    3,
			Value:                15000.50,
			DurationMonths:       12,
			CreatedAt:            created,
			UpdatedAt:            created,
			ExpiryDate:           created.Add(360 * 24 * time.Hour),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.ExportAgreements(&buf, agreements))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "agr-1", rows[1][0])
	// Commas and quotes in the title survive the round trip.
	assert.Equal(t, "Supply Contract, Phase \"Two\"", rows[1][1])
	assert.Equal(t, "FORWARDED_FOR_APPROVAL", rows[1][4])
	assert.Equal(t, "2", rows[1][5])
	assert.Equal(t, "15000.50", rows[1][7])
}

func TestCSV_ExportAudit(t *testing.T) {
	exporter := NewCSV()

	entries := []models.AuditEntry{
		{
			ID:         "aud-1",
			Timestamp:  time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			UserName:   "Authority",
			Action:     "WORKFLOW_APPROVE",
			EntityType: models.EntityWorkflow,
			EntityID:   "agr-1",
			Details:    "PENDING_REVIEW -> FORWARDED_FOR_APPROVAL (level 0 -> 1): ok",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.ExportAudit(&buf, entries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "WORKFLOW_APPROVE", rows[1][3])
	assert.Equal(t, "agr-1", rows[1][5])
}

func TestCSV_ExportEmptySetWritesHeaderOnly(t *testing.T) {
	exporter := NewCSV()

	var buf bytes.Buffer
	require.NoError(t, exporter.ExportAgreements(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
