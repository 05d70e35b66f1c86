package model

import "time"

// ContactMessage is a row in the `contact_messages` table, written
// whenever a visitor submits the contact form.  Messages are listed
// newest first in the admin dashboard.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – sender's name as typed into the form.
//  Email   – sender's reply address.
//  Subject – message subject line.
//  Message – message body.
//  Date    – when the message was received.
type ContactMessage struct {
	ID      uint64    // contact_messages.id
	Name    string    // contact_messages.name
	Email   string    // contact_messages.email
	Subject string    // contact_messages.subject
	Message string    // contact_messages.message
	Date    time.Time // contact_messages.date
}
