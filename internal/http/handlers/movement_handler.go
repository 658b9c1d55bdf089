package handlers

import (
	"errors"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	Ledger *services.LedgerService
	Inv    *services.InventoryService
	Users  *repos.UserRepo
}

// GET /movement
func (h *MovementHandler) Form(c *fiber.Ctx) error {
	return h.form(c, 200, "")
}

func (h *MovementHandler) form(c *fiber.Ctx, status int, errMsg string) error {
	items, err := h.Inv.ListItems()
	if err != nil {
		applog.Error(c, "movement.form.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load items"})
	}
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "movement.form.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c.Status(status), "movement", fiber.Map{"Items": items, "Users": users, "Err": errMsg})
}

// POST /movement
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	itemID, okItem := validate.ID(c.FormValue("item_id"))
	userID, okUser := validate.ID(c.FormValue("user_id"))
	typ := c.FormValue("type")
	qty, okQty := validate.Quantity(c.FormValue("quantity"))
	note := validate.Note(c.FormValue("note"))
	if !okItem || !okUser || !okQty {
		return h.form(c, 400, "Check item, user and quantity")
	}

	newStock, movementID, err := h.Ledger.Record(itemID, userID, typ, qty, note)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return h.form(c, 400, "Not enough stock for that movement")
		case errors.Is(err, domain.ErrInvalidMovementType):
			return h.form(c, 400, "Movement type must be in or out")
		case errors.Is(err, domain.ErrValidation):
			return h.form(c, 400, "Quantity must be a positive number")
		case errors.Is(err, domain.ErrNotFound):
			return h.form(c, 404, "Item or user no longer exists")
		}
		applog.Error(c, "movement.record.fail", err, map[string]any{"item_id": itemID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not record movement"})
	}

	applog.Audit(c, "movement.record", map[string]any{
		"movement_id": movementID, "item_id": itemID, "user_id": userID,
		"type": typ, "quantity": qty, "new_stock": newStock,
	})
	return c.Redirect("/")
}

// GET /movement/log
func (h *MovementHandler) Log(c *fiber.Ctx) error {
	logs, err := h.Ledger.ListMovements()
	if err != nil {
		applog.Error(c, "movement.log.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load movement log"})
	}
	return render(c, "movement_log", fiber.Map{"Logs": logs})
}
