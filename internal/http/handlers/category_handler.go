package handlers

import (
	"errors"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Inv *services.InventoryService
}

// GET /categories/add
func (h *CategoryHandler) AddForm(c *fiber.Ctx) error {
	cats, err := h.Inv.ListCategories()
	if err != nil {
		applog.Error(c, "category.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "category_form", fiber.Map{"Categories": cats, "Err": ""})
}

// POST /categories/add
func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return h.formWithErr(c, "Category name is required")
	}

	cat, err := h.Inv.CreateCategory(name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return h.formWithErr(c, "Category name is empty or already taken")
		}
		applog.Error(c, "category.create.fail", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save category"})
	}

	applog.Audit(c, "category.create", map[string]any{"category_id": cat.ID, "name": cat.Name})
	return c.Redirect("/categories/add")
}

func (h *CategoryHandler) formWithErr(c *fiber.Ctx, msg string) error {
	cats, _ := h.Inv.ListCategories()
	return render(c.Status(400), "category_form", fiber.Map{"Categories": cats, "Err": msg})
}
