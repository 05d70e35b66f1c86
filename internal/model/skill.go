package model

// Skill is a single entry on the skills page.  Proficiency is a
// percentage between 0 and 100 used to render the skill bar.
type Skill struct {
	ID          uint64 // skills.id
	Name        string // skills.name
	Icon        string // skills.icon
	Category    string // skills.category (e.g. frontend, backend, tools)
	Proficiency int    // skills.proficiency (0-100)
	Description string // skills.description (optional)
}
