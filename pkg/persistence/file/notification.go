package file

import (
	"context"

	"github.com/nextgen-analytics/ilms/pkg/models"
)

// NotificationRepository stores per-user notifications, newest first.
type NotificationRepository struct {
	records *collection[models.Notification]
}

func (r *NotificationRepository) Append(_ context.Context, notification models.Notification) error {
	return r.records.mutate(func(records []models.Notification) ([]models.Notification, error) {
		return append([]models.Notification{notification}, records...), nil
	})
}

func (r *NotificationRepository) List(_ context.Context) ([]models.Notification, error) {
	return r.records.snapshot()
}
