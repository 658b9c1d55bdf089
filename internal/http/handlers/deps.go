package handlers

import (
	"stockroom/internal/repos"
	"stockroom/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	InventoryHandler *InventoryHandler
	CategoryHandler  *CategoryHandler
	MovementHandler  *MovementHandler
}

func NewDeps(db *sqlx.DB, users *repos.UserRepo) *Deps {
	itemRepo := repos.NewItemRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	movRepo := repos.NewMovementRepo(db)

	invSvc := services.NewInventoryService(itemRepo, catRepo)
	ledgerSvc := services.NewLedgerService(movRepo, users)

	return &Deps{
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		CategoryHandler:  &CategoryHandler{Inv: invSvc},
		MovementHandler:  &MovementHandler{Ledger: ledgerSvc, Inv: invSvc, Users: users},
	}
}
