package wizard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nextgen-analytics/ilms/pkg/models"
)

// FileInfo describes an incoming file handed to the wizard.
type FileInfo struct {
	Name     string
	MIMEType string
	Size     int64
}

// Attach starts ingesting files without blocking the caller. Completion
// merges read-then-append into the draft's document list, so files
// attached while an earlier batch is still in flight are not lost.
// Discarding the session cancels in-flight ingestion; a canceled upload
// writes nothing.
func (w *Wizard) Attach(files ...FileInfo) {
	w.mu.Lock()
	w.uploading++
	w.mu.Unlock()

	w.uploads.Add(1)

	go func() {
		defer w.uploads.Done()
		defer func() {
			w.mu.Lock()
			w.uploading--
			w.mu.Unlock()
		}()

		timer := time.NewTimer(w.uploadLatency)
		defer timer.Stop()

		select {
		case <-w.ctx.Done():
			w.logger.DebugContext(context.Background(), "Upload canceled", "files", len(files))

			return
		case <-timer.C:
		}

		now := time.Now().UTC()
		docs := make([]models.Document, 0, len(files))

		for _, f := range files {
			mimeType := f.MIMEType
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}

			docs = append(docs, models.Document{
				ID:         "doc_" + uuid.New().String(),
				Title:      f.Name,
				Version:    1,
				UploadDate: now,
				UploadedBy: w.actorName,
				Location:   "#",
				MIMEType:   mimeType,
				Size:       f.Size,
			})
		}

		w.mu.Lock()
		w.documents = append(w.documents, docs...)
		w.mu.Unlock()
	}()
}

// Uploading reports whether any ingestion batch is still in flight.
func (w *Wizard) Uploading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.uploading > 0
}

// WaitForUploads blocks until all in-flight batches finish or the
// context expires.
func (w *Wizard) WaitForUploads(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		w.uploads.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
