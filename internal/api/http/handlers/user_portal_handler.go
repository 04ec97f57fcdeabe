package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/service"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

// UserPortalHandler serves the end-user screens: dashboard, ticket
// detail, ticket creation, equipment and catalogue.
type UserPortalHandler struct {
	incidents *service.IncidentService
	catalog   *service.CatalogService
}

// NewUserPortalHandler constructs handler.
func NewUserPortalHandler(incidents *service.IncidentService, catalog *service.CatalogService) *UserPortalHandler {
	return &UserPortalHandler{incidents: incidents, catalog: catalog}
}

// Dashboard handles GET /portal/user/dashboard.
func (h *UserPortalHandler) Dashboard(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	tickets, err := h.incidents.ListUserTickets(c.UserContext(), sess.Identity.UserID)
	if err != nil {
		return err
	}
	statuses := h.incidents.Statuses(c.UserContext())
	return c.JSON(fiber.Map{"data": ticketSummaries(tickets, statuses)})
}

// TicketDetail handles GET /portal/user/tickets/:code.
func (h *UserPortalHandler) TicketDetail(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	code := c.Params("code")

	ticket, _, err := h.incidents.GetTicket(c.UserContext(), code)
	if err != nil {
		return err
	}
	if ticket.CreatedBy != sess.Identity.UserID {
		return apperrors.NewForbidden("ticket belongs to another user")
	}

	statuses := h.incidents.Statuses(c.UserContext())
	notes := h.incidents.BuildTicketTimeline(c.UserContext(), code)
	return c.JSON(fiber.Map{"data": ticketDetail(ticket, statuses, notes, nil)})
}

// CreateTicket handles the multipart POST /portal/user/tickets.
func (h *UserPortalHandler) CreateTicket(c *fiber.Ctx) error {
	sess := session.FromContext(c)

	input := backend.CreateTicketInput{
		Title:         strings.TrimSpace(c.FormValue("title")),
		Description:   strings.TrimSpace(c.FormValue("description")),
		Priority:      c.FormValue("priority"),
		CreatedBy:     sess.Identity.UserID,
		ContactMethod: c.FormValue("contact_method"),
		NeedsHardware: c.FormValue("need_hardware") == "true",
		IssueType:     c.FormValue("issue_type"),
		SubIssueType:  c.FormValue("sub_issue_type"),
		ClientID:      sess.Identity.ClientID,
	}
	if location := strings.TrimSpace(c.FormValue("location")); location != "" {
		input.Location = &location
	}

	files, err := formUploads(c)
	if err != nil {
		return err
	}

	ticket, err := h.incidents.CreateTicket(c.UserContext(), input, files)
	if err != nil {
		return err
	}
	statuses := h.incidents.Statuses(c.UserContext())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketSummary(ticket, statuses)})
}

// Equipment handles GET /portal/user/equipment: the catalogue filtered
// to hardware entries, decorated with the caller's tenant label.
func (h *UserPortalHandler) Equipment(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	products := h.catalog.Products(c.UserContext())

	hardware := products[:0:0]
	for _, p := range products {
		if p.Category == "" || strings.EqualFold(p.Category, "Hardware") {
			hardware = append(hardware, p)
		}
	}

	clientName := ""
	for _, client := range h.catalog.Clients(c.UserContext()) {
		if client.ID == sess.Identity.ClientID {
			clientName = client.Name
			break
		}
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"client":    clientName,
		"equipment": productViews(hardware),
	}})
}

// Catalog handles GET /portal/user/catalog.
func (h *UserPortalHandler) Catalog(c *fiber.Ctx) error {
	products := h.catalog.Products(c.UserContext())
	return c.JSON(fiber.Map{"data": productViews(products)})
}

func formUploads(c *fiber.Ctx) ([]backend.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperrors.NewValidationError("multipart form required", nil)
	}
	headers := form.File["files"]
	uploads := make([]backend.Upload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, apperrors.NewValidationError("unreadable attachment: "+header.Filename, nil)
		}
		content, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return nil, apperrors.NewValidationError("unreadable attachment: "+header.Filename, nil)
		}
		uploads = append(uploads, backend.Upload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return uploads, nil
}
