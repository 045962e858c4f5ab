package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nextgen-analytics/ilms/pkg/models"
)

// CSV renders records as RFC 4180 CSV with a header row.
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (c *CSV) ExportAgreements(w io.Writer, agreements []models.Agreement) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "title", "type", "parties", "status",
		"currentApprovalLevel", "maxApprovalLevels",
		"value", "durationMonths", "expiryDate", "createdAt", "updatedAt",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, a := range agreements {
		record := []string{
			a.ID,
			a.Title,
			a.Type,
			a.Parties,
			string(a.Status),
			strconv.Itoa(a.CurrentApprovalLevel),
			strconv.Itoa(a.MaxApprovalLevels),
			strconv.FormatFloat(a.Value, 'f', 2, 64),
			strconv.Itoa(a.DurationMonths),
			a.ExpiryDate.Format(time.RFC3339),
			a.CreatedAt.Format(time.RFC3339),
			a.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write agreement %s: %w", a.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func (c *CSV) ExportAudit(w io.Writer, entries []models.AuditEntry) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "timestamp", "userName", "action", "entityType", "entityId", "details"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.ID,
			e.Timestamp.Format(time.RFC3339),
			e.UserName,
			e.Action,
			string(e.EntityType),
			e.EntityID,
			e.Details,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", e.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
