package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/service"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

// TechPortalHandler serves the technician/admin screens: the queue,
// ticket detail with email history, and the ticket actions.
type TechPortalHandler struct {
	incidents *service.IncidentService
	catalog   *service.CatalogService
}

// NewTechPortalHandler constructs handler.
func NewTechPortalHandler(incidents *service.IncidentService, catalog *service.CatalogService) *TechPortalHandler {
	return &TechPortalHandler{incidents: incidents, catalog: catalog}
}

// Dashboard handles GET /portal/tech/dashboard.
func (h *TechPortalHandler) Dashboard(c *fiber.Ctx) error {
	tickets, err := h.incidents.Queue(c.UserContext())
	if err != nil {
		return err
	}
	statuses := h.incidents.Statuses(c.UserContext())
	return c.JSON(fiber.Map{"data": ticketSummaries(tickets, statuses)})
}

// TicketDetail handles GET /portal/tech/tickets/:code.
func (h *TechPortalHandler) TicketDetail(c *fiber.Ctx) error {
	code := c.Params("code")
	ticket, _, err := h.incidents.GetTicket(c.UserContext(), code)
	if err != nil {
		return err
	}
	statuses := h.incidents.Statuses(c.UserContext())
	notes := h.incidents.BuildTicketTimeline(c.UserContext(), code)
	emails := h.incidents.Emails(c.UserContext(), ticket.ID)
	return c.JSON(fiber.Map{"data": ticketDetail(ticket, statuses, notes, emails)})
}

// UpdateStatus handles PUT /portal/tech/tickets/:code/status.
func (h *TechPortalHandler) UpdateStatus(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	err := h.incidents.UpdateStatus(c.UserContext(), c.Params("code"), req.Status, req.Comment, sess.Identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// Assign handles PUT /portal/tech/tickets/:code/assign.
func (h *TechPortalHandler) Assign(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	err := h.incidents.AssignTechnician(c.UserContext(), c.Params("code"), req.TechnicianID, sess.Identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"assigned": true}})
}

// AssignHardware handles POST /portal/tech/tickets/:code/hardware.
func (h *TechPortalHandler) AssignHardware(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	var req dto.AssignHardwareRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := backend.AssignHardwareInput{
		Code:         c.Params("code"),
		TechnicianID: req.TechnicianID,
		VendorID:     req.VendorID,
		Comment:      req.Comment,
	}
	if err := h.incidents.AssignHardware(c.UserContext(), input, sess.Identity.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"assigned": true}})
}

// AddNote handles POST /portal/tech/tickets/:code/notes.
func (h *TechPortalHandler) AddNote(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	var req dto.AddNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.incidents.AddNote(c.UserContext(), c.Params("code"), req.Comment, sess.Identity.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"added": true}})
}

// Emails handles GET /portal/tech/tickets/:code/emails.
func (h *TechPortalHandler) Emails(c *fiber.Ctx) error {
	ticket, _, err := h.incidents.GetTicket(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	emails := h.incidents.Emails(c.UserContext(), ticket.ID)
	return c.JSON(fiber.Map{"data": emailViews(emails)})
}

// HardwareOptions handles GET /portal/tech/hardware-options. The two
// lookups behind the form are fetched concurrently.
func (h *TechPortalHandler) HardwareOptions(c *fiber.Ctx) error {
	opts := h.catalog.HardwareAssignmentOptions(c.UserContext())
	return c.JSON(fiber.Map{"data": dto.HardwareOptionsResponse{
		Technicians: technicianViews(opts.Technicians),
		Vendors:     vendorViews(opts.Vendors),
	}})
}
