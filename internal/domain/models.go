package domain

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
}

type Item struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	CategoryID   string `db:"category_id"`
	Unit         string `db:"unit"` // e.g. "kg", "pcs"
	CurrentStock int    `db:"current_stock"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

// ItemRow is an item joined with its category name, used by the inventory page.
type ItemRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Unit         string `db:"unit"`
	CurrentStock int    `db:"current_stock"`
	CategoryName string `db:"category_name"`
}

// Movement types. Anything else is rejected before any write happens.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

type StockMovement struct {
	ID        string `db:"id"`
	ItemID    string `db:"item_id"`
	UserID    string `db:"user_id"`
	Type      string `db:"type"`
	Quantity  int    `db:"quantity"`
	Note      string `db:"note"`
	CreatedAt string `db:"created_at"`
}

// MovementRow is a ledger entry joined with item and user names for the log page.
type MovementRow struct {
	ID        string `db:"id"`
	Type      string `db:"type"`
	Quantity  int    `db:"quantity"`
	Note      string `db:"note"`
	CreatedAt string `db:"created_at"`
	ItemName  string `db:"item_name"`
	UserName  string `db:"user_name"`
}
