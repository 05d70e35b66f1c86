package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/tsegaye25/portfolio-api/internal/model"
)

type ProjectRepo struct{ DB *sql.DB }

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{DB: db} }

const projectCols = "id,title,description,image_url,technologies,COALESCE(github_url,''),COALESCE(live_url,''),date"

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	var techs string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &techs, &p.GithubURL, &p.LiveURL, &p.Date)
	if err != nil {
		return p, err
	}
	p.Technologies = splitTechs(techs)
	return p, nil
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+projectCols+" FROM projects ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one project.
func (r *ProjectRepo) GetByID(ctx context.Context, id uint64) (model.Project, error) {
	p, err := scanProject(r.DB.QueryRowContext(ctx,
		"SELECT "+projectCols+" FROM projects WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// Create inserts a project and returns its ID.
func (r *ProjectRepo) Create(ctx context.Context, p model.Project) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO projects (title, description, image_url, technologies, github_url, live_url) VALUES (?,?,?,?,?,?)",
		p.Title, p.Description, p.ImageURL, joinTechs(p.Technologies), p.GithubURL, p.LiveURL)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a project row.  ErrNotFound when the id is
// unknown.
func (r *ProjectRepo) Update(ctx context.Context, p model.Project) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE projects SET title=?, description=?, image_url=?, technologies=?, github_url=?, live_url=? WHERE id=?",
		p.Title, p.Description, p.ImageURL, joinTechs(p.Technologies), p.GithubURL, p.LiveURL, p.ID)
	if err != nil {
		return err
	}
	return requireRow(ctx, r.DB, "projects", p.ID, res)
}

// Delete removes a project row.
func (r *ProjectRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM projects WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// requireRow distinguishes "no change" from "no such row" after an
// UPDATE that may legitimately affect zero rows.
func requireRow(ctx context.Context, db *sql.DB, table string, id uint64, res sql.Result) error {
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id=? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func joinTechs(techs []string) string { return strings.Join(techs, ",") }

func splitTechs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
