package backend

import (
	"context"
	"fmt"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// API is the typed surface of the remote helpdesk backend. Services
// depend on this interface; Gateway is the HTTP-backed implementation.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	TicketsByUser(ctx context.Context, userID int) ([]domain.Ticket, error)
	Queue(ctx context.Context) ([]domain.Ticket, error)
	TicketByCode(ctx context.Context, code string) (domain.Ticket, []domain.TicketUpdate, error)
	UpdateTicket(ctx context.Context, input UpdateTicketInput) error
	AssignTicket(ctx context.Context, code string, technicianID int) error
	AssignHardware(ctx context.Context, input AssignHardwareInput) error
	CreateTicket(ctx context.Context, input CreateTicketInput, files []Upload) (domain.Ticket, error)
	Statuses(ctx context.Context) (domain.StatusMap, error)
	Technicians(ctx context.Context) ([]domain.Technician, error)
	HardwareTechnicians(ctx context.Context) ([]domain.Technician, error)
	Vendors(ctx context.Context) ([]domain.Vendor, error)
	UserByID(ctx context.Context, id int) (domain.User, error)
	CompanyUsers(ctx context.Context, clientID int) ([]domain.User, error)
	Clients(ctx context.Context) ([]domain.Client, error)
	Products(ctx context.Context) ([]domain.Product, error)
	TicketEmails(ctx context.Context, ticketID int) ([]domain.EmailRecord, error)
}

// UpdateTicketInput drives PUT /ticket/update.
type UpdateTicketInput struct {
	Code    string
	Status  int
	Comment string
	AgentID int
}

// AssignHardwareInput drives POST /ticket/assignHardware.
type AssignHardwareInput struct {
	Code         string
	TechnicianID int
	VendorID     int
	Comment      string
}

// CreateTicketInput drives the multipart POST /ticket/create.
type CreateTicketInput struct {
	Title         string
	Description   string
	Priority      string
	CreatedBy     int
	ContactMethod string
	Location      *string
	NeedsHardware bool
	IssueType     string
	SubIssueType  string
	ClientID      int
}

// Gateway implements API over the configured HTTP client.
type Gateway struct {
	client *Client
}

// NewGateway wraps the client.
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

var _ API = (*Gateway)(nil)

// Login exchanges credentials for a bearer token.
func (g *Gateway) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := g.client.PostJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// TicketsByUser lists tickets created by the given user.
func (g *Gateway) TicketsByUser(ctx context.Context, userID int) ([]domain.Ticket, error) {
	var payload []ticketPayload
	if err := g.client.Get(ctx, fmt.Sprintf("/ticket/by-user/%d", userID), &payload); err != nil {
		return nil, err
	}
	return ticketsToDomain(payload)
}

// Queue lists all open tickets for the technician queue. The backend
// route is spelled "queu".
func (g *Gateway) Queue(ctx context.Context) ([]domain.Ticket, error) {
	var payload []ticketPayload
	if err := g.client.Get(ctx, "/ticket/queu", &payload); err != nil {
		return nil, err
	}
	return ticketsToDomain(payload)
}

// TicketByCode fetches a single ticket plus its update history.
func (g *Gateway) TicketByCode(ctx context.Context, code string) (domain.Ticket, []domain.TicketUpdate, error) {
	var payload ticketDetailPayload
	if err := g.client.Get(ctx, "/ticket/by-ticket/"+code, &payload); err != nil {
		return domain.Ticket{}, nil, err
	}
	ticket, err := payload.Ticket.toDomain()
	if err != nil {
		return domain.Ticket{}, nil, err
	}
	updates := make([]domain.TicketUpdate, 0, len(payload.Updates))
	for _, u := range payload.Updates {
		updates = append(updates, u.toDomain())
	}
	return ticket, updates, nil
}

// UpdateTicket records a status change or comment.
func (g *Gateway) UpdateTicket(ctx context.Context, input UpdateTicketInput) error {
	return g.client.PutJSON(ctx, "/ticket/update", updateTicketRequest{
		CodTicket:      input.Code,
		Status:         input.Status,
		Comments:       input.Comment,
		CreatedByAgent: input.AgentID,
	}, nil)
}

// AssignTicket sets the responsible technician.
func (g *Gateway) AssignTicket(ctx context.Context, code string, technicianID int) error {
	return g.client.PutJSON(ctx, "/ticket/assign", assignTicketRequest{
		CodTicket:  code,
		AssignedTo: technicianID,
	}, nil)
}

// AssignHardware records a hardware technician and vendor assignment.
func (g *Gateway) AssignHardware(ctx context.Context, input AssignHardwareInput) error {
	return g.client.PostJSON(ctx, "/ticket/assignHardware", assignHardwareRequest{
		CodTicket:    input.Code,
		HardwareTech: input.TechnicianID,
		Vendor:       input.VendorID,
		Comments:     input.Comment,
	}, nil)
}

// CreateTicket submits a new ticket with optional attachments.
func (g *Gateway) CreateTicket(ctx context.Context, input CreateTicketInput, files []Upload) (domain.Ticket, error) {
	payload := createTicketPayload{
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		CreatedBy:     input.CreatedBy,
		ContactMethod: input.ContactMethod,
		Location:      input.Location,
		NeedHardware:  input.NeedsHardware,
		Type:          input.IssueType,
		SubType:       input.SubIssueType,
		Client:        input.ClientID,
	}
	var created ticketPayload
	if err := g.client.PostMultipart(ctx, "/ticket/create", payload, files, &created); err != nil {
		return domain.Ticket{}, err
	}
	return created.toDomain()
}

// Statuses fetches the status lookup table.
func (g *Gateway) Statuses(ctx context.Context) (domain.StatusMap, error) {
	var payload []statusPayload
	if err := g.client.Get(ctx, "/ticket/status", &payload); err != nil {
		return nil, err
	}
	statuses := make(domain.StatusMap, len(payload))
	for _, s := range payload {
		statuses[s.ID] = s.Description
	}
	return statuses, nil
}

// Technicians fetches assignable technicians.
func (g *Gateway) Technicians(ctx context.Context) ([]domain.Technician, error) {
	return g.technicianList(ctx, "/ticket/tech")
}

// HardwareTechnicians fetches hardware-capable technicians.
func (g *Gateway) HardwareTechnicians(ctx context.Context) ([]domain.Technician, error) {
	return g.technicianList(ctx, "/ticket/tech-hardware")
}

func (g *Gateway) technicianList(ctx context.Context, path string) ([]domain.Technician, error) {
	var payload []technicianPayload
	if err := g.client.Get(ctx, path, &payload); err != nil {
		return nil, err
	}
	techs := make([]domain.Technician, 0, len(payload))
	for _, t := range payload {
		techs = append(techs, domain.Technician{ID: t.ID, Name: t.Name, Email: t.Email})
	}
	return techs, nil
}

// Vendors fetches hardware vendors.
func (g *Gateway) Vendors(ctx context.Context) ([]domain.Vendor, error) {
	var payload []vendorPayload
	if err := g.client.Get(ctx, "/ticket/vendor", &payload); err != nil {
		return nil, err
	}
	vendors := make([]domain.Vendor, 0, len(payload))
	for _, v := range payload {
		vendors = append(vendors, domain.Vendor{ID: v.ID, Name: v.Name})
	}
	return vendors, nil
}

// UserByID resolves a single user record.
func (g *Gateway) UserByID(ctx context.Context, id int) (domain.User, error) {
	var payload userPayload
	if err := g.client.Get(ctx, fmt.Sprintf("/ticket/user/%d", id), &payload); err != nil {
		return domain.User{}, err
	}
	return payload.toDomain()
}

// CompanyUsers lists accounts under a tenant.
func (g *Gateway) CompanyUsers(ctx context.Context, clientID int) ([]domain.User, error) {
	var payload []userPayload
	if err := g.client.Get(ctx, fmt.Sprintf("/user/company/%d", clientID), &payload); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(payload))
	for _, p := range payload {
		user, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Clients lists all tenants.
func (g *Gateway) Clients(ctx context.Context) ([]domain.Client, error) {
	var payload []clientPayload
	if err := g.client.Get(ctx, "/client/", &payload); err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(payload))
	for _, c := range payload {
		clients = append(clients, domain.Client{ID: c.ID, Name: c.Name})
	}
	return clients, nil
}

// Products lists the product catalogue.
func (g *Gateway) Products(ctx context.Context) ([]domain.Product, error) {
	var payload []productPayload
	if err := g.client.Get(ctx, "/products/", &payload); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		})
	}
	return products, nil
}

// TicketEmails lists the notification email history for a ticket.
func (g *Gateway) TicketEmails(ctx context.Context, ticketID int) ([]domain.EmailRecord, error) {
	var payload []emailPayload
	if err := g.client.Get(ctx, fmt.Sprintf("/ticket/emails/%d", ticketID), &payload); err != nil {
		return nil, err
	}
	emails := make([]domain.EmailRecord, 0, len(payload))
	for _, e := range payload {
		emails = append(emails, domain.EmailRecord{
			ID:      e.ID,
			Subject: e.Subject,
			SentTo:  e.SentTo,
			SentAt:  e.SentDate,
		})
	}
	return emails, nil
}

func ticketsToDomain(payload []ticketPayload) ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0, len(payload))
	for _, p := range payload {
		ticket, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}
