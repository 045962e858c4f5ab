package models

import "time"

// Document is an attached file record. Storage of the actual bytes is an
// external concern; Location is an opaque reference into the vault.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Version    int       `json:"version"`
	UploadDate time.Time `json:"uploadDate"`
	UploadedBy string    `json:"uploadedBy"`
	Location   string    `json:"url"`
	MIMEType   string    `json:"mimeType"`
	Size       int64     `json:"size,omitempty"`
	CaseID     string    `json:"caseId,omitempty"`
	CaseTitle  string    `json:"caseTitle,omitempty"`
}
