package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

func newInventory(t *testing.T) (*services.InventoryService, *services.LedgerService) {
	t.Helper()
	db := memdb(t)
	inv := services.NewInventoryService(repos.NewItemRepo(db), repos.NewCategoryRepo(db))
	ledger := services.NewLedgerService(repos.NewMovementRepo(db), repos.NewUserRepo(db))
	return inv, ledger
}

func TestCreateItemValidation(t *testing.T) {
	inv, _ := newInventory(t)

	_, err := inv.CreateItem("", "cat-dry-goods", "kg", 1)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = inv.CreateItem("Flour", "no-such-category", "kg", 1)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = inv.CreateItem("Flour", "cat-dry-goods", "", 1)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = inv.CreateItem("Flour", "cat-dry-goods", "kg", -1)
	require.ErrorIs(t, err, domain.ErrValidation)

	it, err := inv.CreateItem("  Spelt Flour ", "cat-dry-goods", "kg", 0)
	require.NoError(t, err)
	require.Equal(t, "Spelt Flour", it.Name)
	require.Equal(t, 0, it.CurrentStock)
}

func TestListItemsIncludesCategoryName(t *testing.T) {
	inv, _ := newInventory(t)

	rows, err := inv.ListItems()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	byName := map[string]domain.ItemRow{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	flour, ok := byName["Bread Flour"]
	require.True(t, ok)
	require.Equal(t, "Dry Goods", flour.CategoryName)
	require.Equal(t, "kg", flour.Unit)
}

func TestUpdateItem(t *testing.T) {
	inv, _ := newInventory(t)

	err := inv.UpdateItem("no-such-item", "X", "cat-dry-goods", "kg", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = inv.UpdateItem("itm-flour", "Bread Flour", "no-such-category", "kg", 1)
	require.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, inv.UpdateItem("itm-flour", "Strong Flour", "cat-dry-goods", "kg", 35))
	got, err := inv.GetItem("itm-flour")
	require.NoError(t, err)
	require.Equal(t, "Strong Flour", got.Name)
	require.Equal(t, 35, got.CurrentStock)
}

func TestDeleteItemPolicy(t *testing.T) {
	inv, ledger := newInventory(t)

	require.ErrorIs(t, inv.DeleteItem("no-such-item"), domain.ErrNotFound)

	// no movements yet: delete goes through
	it, err := inv.CreateItem("Scrap", "cat-packaging", "pcs", 2)
	require.NoError(t, err)
	require.NoError(t, inv.DeleteItem(it.ID))
	_, err = inv.GetItem(it.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// once the ledger references the item, delete is refused
	it, err = inv.CreateItem("Kept", "cat-packaging", "pcs", 2)
	require.NoError(t, err)
	_, _, err = ledger.Record(it.ID, "u-staff", domain.MovementOut, 1, "")
	require.NoError(t, err)
	require.ErrorIs(t, inv.DeleteItem(it.ID), domain.ErrItemInUse)
	got, err := inv.GetItem(it.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CurrentStock)
}

func TestCreateCategory(t *testing.T) {
	inv, _ := newInventory(t)

	_, err := inv.CreateCategory("   ")
	require.ErrorIs(t, err, domain.ErrValidation)

	// seeded name, case-insensitive duplicate
	_, err = inv.CreateCategory("dry goods")
	require.ErrorIs(t, err, domain.ErrValidation)

	c, err := inv.CreateCategory("Spices")
	require.NoError(t, err)
	require.Equal(t, "Spices", c.Name)

	cats, err := inv.ListCategories()
	require.NoError(t, err)
	names := make([]string, 0, len(cats))
	for _, cat := range cats {
		names = append(names, cat.Name)
	}
	require.Contains(t, names, "Spices")
}
