package repos

import (
	"stockroom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

// ListJoined returns all items with their category names (for /inventory).
// LEFT JOIN so an item whose category row went missing still shows up.
func (r *ItemRepo) ListJoined() ([]domain.ItemRow, error) {
	var rows []domain.ItemRow
	err := r.db.Select(&rows, `
		SELECT i.id, i.name, i.unit, i.current_stock,
		       COALESCE(c.name,'') AS category_name
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.name
	`)
	return rows, err
}

func (r *ItemRepo) Get(id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `
		SELECT id, name, category_id, unit, current_stock,
		       created_at, COALESCE(updated_at,'') AS updated_at
		FROM items
		WHERE id = ?
	`, id)
	return it, err
}

func (r *ItemRepo) Insert(it domain.Item) error {
	_, err := r.db.Exec(`
		INSERT INTO items(id, name, category_id, unit, current_stock)
		VALUES(?, ?, ?, ?, ?)
	`, it.ID, it.Name, it.CategoryID, it.Unit, it.CurrentStock)
	return err
}

// Update rewrites the mutable columns. Returns the number of rows touched
// so the service can distinguish a missing item.
func (r *ItemRepo) Update(it domain.Item) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE items
		SET name = ?, category_id = ?, unit = ?, current_stock = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, it.Name, it.CategoryID, it.Unit, it.CurrentStock, it.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ItemRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MovementCount reports how many ledger rows reference the item; item
// deletion is refused while this is non-zero.
func (r *ItemRepo) MovementCount(id string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM stock_movements WHERE item_id = ?`, id)
	return n, err
}
