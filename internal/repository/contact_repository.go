package repository

import (
	"context"
	"database/sql"

	"github.com/tsegaye25/portfolio-api/internal/model"
)

type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

// List returns contact messages, newest first.
func (r *ContactRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,subject,message,date FROM contact_messages ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Date); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Create stores a submitted message and returns it with id and date
// filled in.
func (r *ContactRepo) Create(ctx context.Context, m model.ContactMessage) (model.ContactMessage, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contact_messages (name, email, subject, message) VALUES (?,?,?,?)",
		m.Name, m.Email, m.Subject, m.Message)
	if err != nil {
		return m, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return m, err
	}
	m.ID = uint64(id)
	err = r.DB.QueryRowContext(ctx,
		"SELECT date FROM contact_messages WHERE id=?", m.ID).Scan(&m.Date)
	return m, err
}

// Delete removes a message by id.
func (r *ContactRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM contact_messages WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
