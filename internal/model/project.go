package model

import "time"

// Project is a portfolio project row from the `projects` table.
// Technologies are stored as a comma-separated string in the
// database and split into a slice by the repository layer.
//
// Fields:
//  ID           – primary key identifier.
//  Title        – project title shown on the projects page.
//  Description  – short description of what the project does.
//  ImageURL     – screenshot or cover image URL.
//  Technologies – list of technologies used.
//  GithubURL    – source repository link (optional).
//  LiveURL      – deployed demo link (optional).
//  Date         – when the project entry was created.
type Project struct {
	ID           uint64    // projects.id
	Title        string    // projects.title
	Description  string    // projects.description
	ImageURL     string    // projects.image_url
	Technologies []string  // projects.technologies (comma separated)
	GithubURL    string    // projects.github_url
	LiveURL      string    // projects.live_url
	Date         time.Time // projects.date
}
