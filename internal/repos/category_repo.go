package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, created_at
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

// Exists is the write-time referential check used by item create/update.
func (r *CategoryRepo) Exists(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM categories WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CategoryRepo) ExistsName(name string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM categories WHERE LOWER(name) = LOWER(?)`, name); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CategoryRepo) Insert(c domain.Category) error {
	_, err := r.db.Exec(`INSERT INTO categories(id, name) VALUES(?, ?)`, c.ID, c.Name)
	return err
}
