package handlers

import (
	"errors"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /
func (h *InventoryHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{})
}

// GET /inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.Inv.ListItems()
	if err != nil {
		applog.Error(c, "inventory.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}
	return render(c, "inventory", fiber.Map{"Items": items})
}

// GET /items/add
func (h *InventoryHandler) AddForm(c *fiber.Ctx) error {
	cats, err := h.Inv.ListCategories()
	if err != nil {
		applog.Error(c, "inventory.categories.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "item_form", fiber.Map{"Categories": cats, "Err": ""})
}

// POST /items/add
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	catID, okCat := validate.ID(c.FormValue("category_id"))
	unit, okUnit := validate.Unit(c.FormValue("unit"))
	stock, okStock := validate.Stock(c.FormValue("current_stock"))
	if !okName || !okCat || !okUnit || !okStock {
		return h.addFormWithErr(c, "Check name, category, unit and stock")
	}

	it, err := h.Inv.CreateItem(name, catID, unit, stock)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return h.addFormWithErr(c, "Check name, category, unit and stock")
		}
		applog.Error(c, "inventory.item.create.fail", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save item"})
	}

	applog.Audit(c, "inventory.item.create", map[string]any{"item_id": it.ID, "name": it.Name})
	return c.Redirect("/items/add")
}

func (h *InventoryHandler) addFormWithErr(c *fiber.Ctx, msg string) error {
	cats, _ := h.Inv.ListCategories()
	return render(c.Status(400), "item_form", fiber.Map{"Categories": cats, "Err": msg})
}

// GET /items/:id/edit
func (h *InventoryHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Item not found"})
	}
	it, err := h.Inv.GetItem(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Item not found"})
		}
		applog.Error(c, "inventory.item.get.fail", err, map[string]any{"item_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load item"})
	}
	cats, err := h.Inv.ListCategories()
	if err != nil {
		applog.Error(c, "inventory.categories.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "item_edit", fiber.Map{"Item": it, "Categories": cats, "Err": ""})
}

// POST /items/:id/edit
func (h *InventoryHandler) Edit(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	name, okName := validate.Name(c.FormValue("name"))
	catID, okCat := validate.ID(c.FormValue("category_id"))
	unit, okUnit := validate.Unit(c.FormValue("unit"))
	stock, okStock := validate.Stock(c.FormValue("current_stock"))
	if !okID || !okName || !okCat || !okUnit || !okStock {
		return c.Status(400).SendString("invalid input")
	}

	if err := h.Inv.UpdateItem(id, name, catID, unit, stock); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Item not found"})
		case errors.Is(err, domain.ErrValidation):
			return c.Status(400).SendString("invalid input")
		}
		applog.Error(c, "inventory.item.update.fail", err, map[string]any{"item_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save item"})
	}

	applog.Audit(c, "inventory.item.update", map[string]any{"item_id": id})
	return c.Redirect("/inventory")
}

// POST /items/:id/delete
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Item not found"})
	}
	if err := h.Inv.DeleteItem(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Item not found"})
		case errors.Is(err, domain.ErrItemInUse):
			return c.Status(409).Render("notfound", fiber.Map{"Message": "Item has recorded movements and cannot be deleted"})
		}
		applog.Error(c, "inventory.item.delete.fail", err, map[string]any{"item_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not delete item"})
	}

	applog.Audit(c, "inventory.item.delete", map[string]any{"item_id": id})
	return c.Redirect("/inventory")
}
