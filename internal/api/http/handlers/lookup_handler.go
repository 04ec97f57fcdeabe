package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/service"
)

// LookupHandler serves the shared lookup tables backing form dropdowns.
type LookupHandler struct {
	incidents *service.IncidentService
	catalog   *service.CatalogService
}

// NewLookupHandler constructs handler.
func NewLookupHandler(incidents *service.IncidentService, catalog *service.CatalogService) *LookupHandler {
	return &LookupHandler{incidents: incidents, catalog: catalog}
}

// Statuses handles GET /portal/lookups/statuses.
func (h *LookupHandler) Statuses(c *fiber.Ctx) error {
	statuses := h.incidents.Statuses(c.UserContext())
	return c.JSON(fiber.Map{"data": statusViews(statuses)})
}

// Technicians handles GET /portal/lookups/technicians.
func (h *LookupHandler) Technicians(c *fiber.Ctx) error {
	techs := h.catalog.Technicians(c.UserContext())
	return c.JSON(fiber.Map{"data": technicianViews(techs)})
}

// HardwareTechnicians handles GET /portal/lookups/hardware-technicians.
func (h *LookupHandler) HardwareTechnicians(c *fiber.Ctx) error {
	techs := h.catalog.HardwareTechnicians(c.UserContext())
	return c.JSON(fiber.Map{"data": technicianViews(techs)})
}

// Vendors handles GET /portal/lookups/vendors.
func (h *LookupHandler) Vendors(c *fiber.Ctx) error {
	vendors := h.catalog.Vendors(c.UserContext())
	return c.JSON(fiber.Map{"data": vendorViews(vendors)})
}
