package models

import "time"

// Notification is a per-user system message, e.g. an approaching
// agreement expiry.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"isRead"`
	Timestamp time.Time `json:"timestamp"`
}
