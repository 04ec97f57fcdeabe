package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/service"
	"github.com/spec-kit/helpdesk-portal/internal/session"
)

// AdminHandler serves the administration screens.
type AdminHandler struct {
	users   *service.UserService
	catalog *service.CatalogService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users *service.UserService, catalog *service.CatalogService) *AdminHandler {
	return &AdminHandler{users: users, catalog: catalog}
}

// Users handles GET /portal/admin/users. Defaults to the caller's own
// tenant; admins may pass ?client= to inspect another one.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	clientID := sess.Identity.ClientID
	if query := c.Query("client"); query != "" {
		if parsed, err := strconv.Atoi(query); err == nil {
			clientID = parsed
		}
	}
	users, err := h.users.CompanyUsers(c.UserContext(), clientID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userViews(users)})
}

// Clients handles GET /portal/admin/clients.
func (h *AdminHandler) Clients(c *fiber.Ctx) error {
	clients := h.catalog.Clients(c.UserContext())
	return c.JSON(fiber.Map{"data": clientViews(clients)})
}
