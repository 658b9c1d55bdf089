package services

import (
	"database/sql"
	"fmt"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// LedgerService is the only path through which an item's stock changes after
// creation. Every change is a movement: the counter update and the audit row
// commit in the same transaction, or neither does.
type LedgerService struct {
	Movements *repos.MovementRepo
	Users     *repos.UserRepo
}

func NewLedgerService(movements *repos.MovementRepo, users *repos.UserRepo) *LedgerService {
	return &LedgerService{Movements: movements, Users: users}
}

// Record validates and applies a single stock movement. On success it returns
// the item's stock after the movement and the new ledger row's id.
func (s *LedgerService) Record(itemID, userID, typ string, quantity int, note string) (int, string, error) {
	if typ != domain.MovementIn && typ != domain.MovementOut {
		return 0, "", fmt.Errorf("%w: %q", domain.ErrInvalidMovementType, typ)
	}
	if quantity <= 0 {
		return 0, "", fmt.Errorf("%w: quantity must be a positive integer", domain.ErrValidation)
	}
	if _, err := s.Users.ByID(userID); err != nil {
		if err == sql.ErrNoRows {
			return 0, "", fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
		}
		return 0, "", err
	}

	newStock, movementID, err := s.Movements.Record(itemID, userID, typ, quantity, note)
	if err == sql.ErrNoRows {
		return 0, "", fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	if err != nil {
		return 0, "", err
	}
	return newStock, movementID, nil
}

// ListMovements returns the full ledger, most recent first.
func (s *LedgerService) ListMovements() ([]domain.MovementRow, error) {
	return s.Movements.ListJoined()
}
