package repository

import (
	"context"
	"database/sql"

	"github.com/tsegaye25/portfolio-api/internal/model"
)

type SkillRepo struct{ DB *sql.DB }

func NewSkillRepo(db *sql.DB) *SkillRepo { return &SkillRepo{DB: db} }

// List returns all skills grouped-friendly: by category, then name.
func (r *SkillRepo) List(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,icon,category,proficiency,COALESCE(description,'') FROM skills ORDER BY category, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Icon, &s.Category, &s.Proficiency, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SkillRepo) GetByID(ctx context.Context, id uint64) (model.Skill, error) {
	var s model.Skill
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,icon,category,proficiency,COALESCE(description,'') FROM skills WHERE id=? LIMIT 1",
		id).Scan(&s.ID, &s.Name, &s.Icon, &s.Category, &s.Proficiency, &s.Description)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

func (r *SkillRepo) Create(ctx context.Context, s model.Skill) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO skills (name, icon, category, proficiency, description) VALUES (?,?,?,?,?)",
		s.Name, s.Icon, s.Category, s.Proficiency, s.Description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *SkillRepo) Update(ctx context.Context, s model.Skill) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE skills SET name=?, icon=?, category=?, proficiency=?, description=? WHERE id=?",
		s.Name, s.Icon, s.Category, s.Proficiency, s.Description, s.ID)
	if err != nil {
		return err
	}
	return requireRow(ctx, r.DB, "skills", s.ID, res)
}

func (r *SkillRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM skills WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
