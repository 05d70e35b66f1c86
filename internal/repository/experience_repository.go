package repository

import (
	"context"
	"database/sql"

	"github.com/tsegaye25/portfolio-api/internal/model"
)

type ExperienceRepo struct{ DB *sql.DB }

func NewExperienceRepo(db *sql.DB) *ExperienceRepo { return &ExperienceRepo{DB: db} }

const experienceCols = "id,title,company,COALESCE(location,''),from_date,to_date,current,COALESCE(description,'')"

// List returns work history, most recent first.
func (r *ExperienceRepo) List(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+experienceCols+" FROM experiences ORDER BY from_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Experience
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExperienceRepo) GetByID(ctx context.Context, id uint64) (model.Experience, error) {
	var e model.Experience
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+experienceCols+" FROM experiences WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.From, &e.To, &e.Current, &e.Description)
	if err == sql.ErrNoRows {
		return e, ErrNotFound
	}
	return e, err
}

func (r *ExperienceRepo) Create(ctx context.Context, e model.Experience) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO experiences (title, company, location, from_date, to_date, current, description) VALUES (?,?,?,?,?,?,?)",
		e.Title, e.Company, e.Location, e.From, e.To, e.Current, e.Description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *ExperienceRepo) Update(ctx context.Context, e model.Experience) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE experiences SET title=?, company=?, location=?, from_date=?, to_date=?, current=?, description=? WHERE id=?",
		e.Title, e.Company, e.Location, e.From, e.To, e.Current, e.Description, e.ID)
	if err != nil {
		return err
	}
	return requireRow(ctx, r.DB, "experiences", e.ID, res)
}

func (r *ExperienceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM experiences WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
