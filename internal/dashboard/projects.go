package dashboard

import (
	"time"

	"github.com/tsegaye25/portfolio-api/internal/store"
)

// Projects manages the portfolioProjects collection.  The first
// read seeds a fixed sample set so the dashboard never starts
// empty.
type Projects struct {
	col *store.Collection[Record]
	now func() time.Time
}

func NewProjects(s store.Store, now func() time.Time) *Projects {
	if now == nil {
		now = time.Now
	}
	return &Projects{
		col: store.NewCollection[Record](s, store.KeyProjects, func(r Record) string { return r.ID }),
		now: now,
	}
}

// List returns all projects, newest first, seeding samples when the
// collection is empty.
func (p *Projects) List() []Record {
	return p.col.SeedIfEmpty(p.sampleProjects())
}

// Add prepends a new project record.
func (p *Projects) Add(fields map[string]any) (Record, error) {
	rec := Record{
		ID:     newID(p.now()),
		Date:   p.now().UTC().Format(time.RFC3339),
		Fields: fields,
	}
	return rec, p.col.Append(rec)
}

// Update merges fields into the project with the given id and
// rewrites the collection.  It reports whether the id was found.
func (p *Projects) Update(id string, fields map[string]any) (Record, bool) {
	all := p.List()
	for i, r := range all {
		if r.ID != id {
			continue
		}
		if r.Fields == nil {
			r.Fields = map[string]any{}
		}
		for k, v := range fields {
			r.Fields[k] = v
		}
		all[i] = r
		if err := p.col.WriteAll(all); err != nil {
			return Record{}, false
		}
		return r, true
	}
	return Record{}, false
}

// Delete removes a project by id.
func (p *Projects) Delete(id string) error {
	return p.col.RemoveByID(id)
}

// sampleProjects is the seed set written on first read.  Dates are
// generated at seed time so the entries look recent.
func (p *Projects) sampleProjects() []Record {
	seedAt := p.now().UTC()
	mk := func(offsetDays int, fields map[string]any) Record {
		when := seedAt.AddDate(0, 0, -offsetDays)
		return Record{
			ID:     newID(when),
			Date:   when.Format(time.RFC3339),
			Fields: fields,
		}
	}
	return []Record{
		mk(7, map[string]any{
			"title":        "Portfolio Website",
			"description":  "Personal portfolio with an admin dashboard for managing projects and messages.",
			"image":        "/logo192.png",
			"technologies": []string{"React", "Node.js", "Express", "MongoDB"},
			"github":       "https://github.com/tsegaye25",
			"live":         "https://example.com",
		}),
		mk(30, map[string]any{
			"title":        "Task Management App",
			"description":  "A collaborative task management application with real-time updates.",
			"image":        "/logo192.png",
			"technologies": []string{"React", "Socket.io", "MongoDB"},
			"github":       "https://github.com/tsegaye25",
			"live":         "https://example.com",
		}),
		mk(90, map[string]any{
			"title":        "Weather Application",
			"description":  "A weather forecast application providing real-time weather by location.",
			"image":        "/logo192.png",
			"technologies": []string{"React Native", "Express"},
			"github":       "https://github.com/tsegaye25",
			"live":         "https://example.com",
		}),
	}
}
