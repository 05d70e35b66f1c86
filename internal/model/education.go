package model

import "time"

// Education is a study-history entry on the education page.
// Mirrors the shape of Experience: Current marks an ongoing
// program and makes To null.
type Education struct {
	ID           uint64     // education.id
	School       string     // education.school
	Degree       string     // education.degree
	FieldOfStudy string     // education.field_of_study
	From         time.Time  // education.from_date
	To           *time.Time // education.to_date (nullable)
	Current      bool       // education.current
	Description  string     // education.description
}
