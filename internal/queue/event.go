// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactReceivedEvent is published when a visitor submits the contact
// form.  Downstream consumers can log, notify or feed analytics
// without touching the primary database.
type ContactReceivedEvent struct {
	EventID    string `json:"event_id"`
	ContactID  uint64 `json:"contact_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	ReceivedAt string `json:"received_at"`
}
