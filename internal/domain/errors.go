package domain

import "errors"

// Error taxonomy for the core services. Handlers branch with errors.Is;
// repository/service code wraps these with fmt.Errorf("...: %w", ...) context.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrItemInUse guards the ledger's audit trail: an item with recorded
	// movements cannot be deleted.
	ErrItemInUse = errors.New("item has recorded movements")
)
