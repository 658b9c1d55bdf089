package repos

import (
	"fmt"

	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MovementRepo struct{ db *sqlx.DB }

func NewMovementRepo(db *sqlx.DB) *MovementRepo { return &MovementRepo{db: db} }

// Record applies a movement to an item's stock and appends the ledger row in
// one transaction. The stock update and the insert commit together or not at
// all. Out-movements decrement through a guarded UPDATE (qty <= stock) so two
// concurrent outs on the same item can never overdraw it: the loser's UPDATE
// matches no row and the whole transaction rolls back.
//
// Returns sql.ErrNoRows if the item does not exist and
// domain.ErrInsufficientStock if an out-movement would drive stock negative.
func (r *MovementRepo) Record(itemID, userID, typ string, quantity int, note string) (int, string, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback() }()

	var stock int
	if err := tx.Get(&stock, `SELECT current_stock FROM items WHERE id = ?`, itemID); err != nil {
		return 0, "", err
	}

	switch typ {
	case domain.MovementIn:
		if _, err := tx.Exec(`
			UPDATE items
			SET current_stock = current_stock + ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, quantity, itemID); err != nil {
			return 0, "", err
		}
	case domain.MovementOut:
		res, err := tx.Exec(`
			UPDATE items
			SET current_stock = current_stock - ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND current_stock >= ?
		`, quantity, itemID, quantity)
		if err != nil {
			return 0, "", err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return 0, "", fmt.Errorf("%w: item %s has %d, need %d", domain.ErrInsufficientStock, itemID, stock, quantity)
		}
	default:
		return 0, "", fmt.Errorf("%w: %q", domain.ErrInvalidMovementType, typ)
	}

	m := domain.StockMovement{
		ID:       uuid.NewString(),
		ItemID:   itemID,
		UserID:   userID,
		Type:     typ,
		Quantity: quantity,
		Note:     note,
	}
	if _, err := tx.NamedExec(`
		INSERT INTO stock_movements(id, item_id, user_id, type, quantity, note)
		VALUES(:id, :item_id, :user_id, :type, :quantity, :note)
	`, m); err != nil {
		return 0, "", err
	}

	if err := tx.Get(&stock, `SELECT current_stock FROM items WHERE id = ?`, itemID); err != nil {
		return 0, "", err
	}

	if err := tx.Commit(); err != nil {
		return 0, "", err
	}
	return stock, m.ID, nil
}

// ListJoined returns the full ledger with item and user names, newest first.
// Ties on the second-resolution timestamp fall back to insertion order.
func (r *MovementRepo) ListJoined() ([]domain.MovementRow, error) {
	var rows []domain.MovementRow
	err := r.db.Select(&rows, `
		SELECT m.id, m.type, m.quantity, COALESCE(m.note,'') AS note, m.created_at,
		       i.name AS item_name, u.name AS user_name
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		JOIN users u ON u.id = m.user_id
		ORDER BY datetime(m.created_at) DESC, m.rowid DESC
	`)
	return rows, err
}
