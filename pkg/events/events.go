// Package events defines event types for agreement lifecycle notifications.
package events

import "time"

type EventType string

// Topic is the single in-process topic all ledger events flow over.
const Topic = "ilms.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	AgreementCreatedEvent  EventType = "agreement.created"
	AgreementDecisionEvent EventType = "agreement.decision"
	AgreementExpiringEvent EventType = "agreement.expiring"
	NotificationSentEvent  EventType = "notification.sent"
)

type BaseEvent struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	Timestamp   time.Time      `json:"timestamp"`
	AgreementID string         `json:"agreement_id"`
	ActorID     string         `json:"actor_id,omitempty"`
	ActorName   string         `json:"actor_name,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// AgreementCreated is published when the wizard hands a finished record
// to the store.
type AgreementCreated struct {
	BaseEvent

	Title         string `json:"title"`
	AgreementType string `json:"agreement_type"`
	Documents     int    `json:"documents"`
}

func (e AgreementCreated) GetType() EventType {
	return AgreementCreatedEvent
}

// AgreementDecision is published once per accepted workflow decision,
// after the record replace succeeds.
type AgreementDecision struct {
	BaseEvent

	Decision       string `json:"decision"`
	Justification  string `json:"justification"`
	PreviousStatus string `json:"previous_status"`
	NextStatus     string `json:"next_status"`
	PreviousLevel  int    `json:"previous_level"`
	NextLevel      int    `json:"next_level"`
}

func (e AgreementDecision) GetType() EventType {
	return AgreementDecisionEvent
}

// AgreementExpiring is published by the expiry monitor for agreements
// approaching their expiry date.
type AgreementExpiring struct {
	BaseEvent

	Title      string    `json:"title"`
	ExpiryDate time.Time `json:"expiry_date"`
}

func (e AgreementExpiring) GetType() EventType {
	return AgreementExpiringEvent
}

// NotificationSent is published when a notification record is written.
type NotificationSent struct {
	BaseEvent

	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e NotificationSent) GetType() EventType {
	return NotificationSentEvent
}
