package services

import (
	"database/sql"
	"fmt"
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/repos"

	"github.com/google/uuid"
)

// InventoryService owns item and category CRUD. Referential checks
// (category exists, item exists) happen here at write time rather than
// relying on the store's foreign keys, so failures surface as typed errors.
type InventoryService struct {
	Items *repos.ItemRepo
	Cats  *repos.CategoryRepo
}

func NewInventoryService(items *repos.ItemRepo, cats *repos.CategoryRepo) *InventoryService {
	return &InventoryService{Items: items, Cats: cats}
}

func (s *InventoryService) validateItem(name, categoryID string, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	ok, err := s.Cats.Exists(categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, categoryID)
	}
	return nil
}

func (s *InventoryService) CreateItem(name, categoryID, unit string, initialStock int) (domain.Item, error) {
	if strings.TrimSpace(unit) == "" {
		return domain.Item{}, fmt.Errorf("%w: unit is required", domain.ErrValidation)
	}
	if err := s.validateItem(name, categoryID, initialStock); err != nil {
		return domain.Item{}, err
	}
	it := domain.Item{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		CategoryID:   categoryID,
		Unit:         strings.TrimSpace(unit),
		CurrentStock: initialStock,
	}
	if err := s.Items.Insert(it); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

func (s *InventoryService) ListItems() ([]domain.ItemRow, error) {
	return s.Items.ListJoined()
}

func (s *InventoryService) GetItem(id string) (domain.Item, error) {
	it, err := s.Items.Get(id)
	if err == sql.ErrNoRows {
		return domain.Item{}, fmt.Errorf("%w: item %s", domain.ErrNotFound, id)
	}
	return it, err
}

func (s *InventoryService) UpdateItem(id, name, categoryID, unit string, currentStock int) error {
	if strings.TrimSpace(unit) == "" {
		return fmt.Errorf("%w: unit is required", domain.ErrValidation)
	}
	if err := s.validateItem(name, categoryID, currentStock); err != nil {
		return err
	}
	n, err := s.Items.Update(domain.Item{
		ID:           id,
		Name:         strings.TrimSpace(name),
		CategoryID:   categoryID,
		Unit:         strings.TrimSpace(unit),
		CurrentStock: currentStock,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: item %s", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteItem refuses to delete an item that appears in the ledger; the
// movement log must stay fully resolvable.
func (s *InventoryService) DeleteItem(id string) error {
	n, err := s.Items.MovementCount(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: item %s", domain.ErrItemInUse, id)
	}
	affected, err := s.Items.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: item %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *InventoryService) CreateCategory(name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	dup, err := s.Cats.ExistsName(name)
	if err != nil {
		return domain.Category{}, err
	}
	if dup {
		return domain.Category{}, fmt.Errorf("%w: category %q already exists", domain.ErrValidation, name)
	}
	c := domain.Category{ID: uuid.NewString(), Name: name}
	if err := s.Cats.Insert(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *InventoryService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}
