package repository

import (
	"context"
	"database/sql"

	"github.com/tsegaye25/portfolio-api/internal/model"
)

type EducationRepo struct{ DB *sql.DB }

func NewEducationRepo(db *sql.DB) *EducationRepo { return &EducationRepo{DB: db} }

const educationCols = "id,school,degree,field_of_study,from_date,to_date,current,COALESCE(description,'')"

// List returns study history, most recent first.
func (r *EducationRepo) List(ctx context.Context) ([]model.Education, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+educationCols+" FROM education ORDER BY from_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Education
	for rows.Next() {
		var e model.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepo) GetByID(ctx context.Context, id uint64) (model.Education, error) {
	var e model.Education
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+educationCols+" FROM education WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &e.To, &e.Current, &e.Description)
	if err == sql.ErrNoRows {
		return e, ErrNotFound
	}
	return e, err
}

func (r *EducationRepo) Create(ctx context.Context, e model.Education) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO education (school, degree, field_of_study, from_date, to_date, current, description) VALUES (?,?,?,?,?,?,?)",
		e.School, e.Degree, e.FieldOfStudy, e.From, e.To, e.Current, e.Description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *EducationRepo) Update(ctx context.Context, e model.Education) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE education SET school=?, degree=?, field_of_study=?, from_date=?, to_date=?, current=?, description=? WHERE id=?",
		e.School, e.Degree, e.FieldOfStudy, e.From, e.To, e.Current, e.Description, e.ID)
	if err != nil {
		return err
	}
	return requireRow(ctx, r.DB, "education", e.ID, res)
}

func (r *EducationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM education WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
