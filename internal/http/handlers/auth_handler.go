package handlers

import (
	"errors"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name := c.FormValue("name")
	pass := c.FormValue("password")
	if name == "" || pass == "" {
		log.Security(c, "auth.login.fail", map[string]any{"name": name, "reason": "missing_fields"})
		return render(c.Status(401), "login", fiber.Map{"Err": "Invalid name or password"})
	}

	_, err := h.Auth.Login(sid, name, pass)
	if err != nil {
		// Same message whether the user exists or not.
		log.Security(c, "auth.login.fail", map[string]any{"name": name})
		return render(c.Status(401), "login", fiber.Map{"Err": "Invalid name or password"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"name": name})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	pass := c.FormValue("password")
	role := c.FormValue("role")
	if !okName || !validate.Password(pass) {
		return render(c.Status(400), "register", fiber.Map{"Err": "Name and a password of 8+ characters with letters and digits are required"})
	}

	u, err := h.Auth.Register(name, pass, role)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return render(c.Status(400), "register", fiber.Map{"Err": "Could not register: check name and role"})
		}
		log.Error(c, "auth.register.fail", err, map[string]any{"name": name})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Something went wrong. Please try again."})
	}

	log.Audit(c, "auth.register.success", map[string]any{"user_id": u.ID, "role": u.Role})
	return c.Redirect("/login")
}
