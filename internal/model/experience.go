package model

import "time"

// Experience is a work-history entry on the experience page.  When
// Current is true the To field is ignored and the position is
// rendered as ongoing.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – job title held.
//  Company     – employer name.
//  Location    – city/country of the position (optional).
//  From        – start date.
//  To          – end date (null while Current is true).
//  Current     – whether this is the present position.
//  Description – responsibilities and achievements.
type Experience struct {
	ID          uint64     // experiences.id
	Title       string     // experiences.title
	Company     string     // experiences.company
	Location    string     // experiences.location
	From        time.Time  // experiences.from_date
	To          *time.Time // experiences.to_date (nullable)
	Current     bool       // experiences.current
	Description string     // experiences.description
}
