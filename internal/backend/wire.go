package backend

// The remote helpdesk API speaks PascalCase JSON. Each payload below is
// the single documented shape for its endpoint; adapters convert to
// domain view-models and fail loudly when a required field is absent
// rather than probing alternate field names.

import (
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type loginResponse struct {
	Token string `json:"Token"`
}

type ticketPayload struct {
	CodTicket     string  `json:"CodTicket"`
	ID            int     `json:"ID"`
	Title         string  `json:"Title"`
	Description   string  `json:"Description"`
	Status        int     `json:"Status"`
	Priority      string  `json:"Priority"`
	CreatedBy     int     `json:"CreatedBy"`
	AssignedTo    *int    `json:"AssignedTo"`
	ContactMethod string  `json:"ContactMethod"`
	Location      *string `json:"Location"`
	NeedHardware  bool    `json:"NeedHardware"`
	Type          string  `json:"Type"`
	SubType       string  `json:"SubType"`
	CreatedDate   string  `json:"CreatedDate"`
	ModifiedDate  string  `json:"ModifiedDate"`
}

func (p ticketPayload) toDomain() (domain.Ticket, error) {
	if p.CodTicket == "" {
		return domain.Ticket{}, apperrors.NewUpstreamSchemaError(
			"ticket payload missing CodTicket", map[string]any{"id": p.ID})
	}
	description := p.Description
	if description == "" {
		description = domain.NoDescription
	}
	return domain.Ticket{
		Code:          p.CodTicket,
		ID:            p.ID,
		Title:         p.Title,
		Description:   description,
		Status:        p.Status,
		Priority:      p.Priority,
		CreatedBy:     p.CreatedBy,
		AssignedTo:    p.AssignedTo,
		ContactMethod: p.ContactMethod,
		Location:      p.Location,
		NeedsHardware: p.NeedHardware,
		IssueType:     p.Type,
		SubIssueType:  p.SubType,
		CreatedAt:     p.CreatedDate,
		ModifiedAt:    p.ModifiedDate,
	}, nil
}

type updatePayload struct {
	ID             int    `json:"ID"`
	CodTicket      string `json:"CodTicket"`
	Status         int    `json:"Status"`
	Comments       string `json:"Comments"`
	CreatedByAgent *int   `json:"CreatedByAgent"`
	CreatedDate    string `json:"CreatedDate"`
}

func (p updatePayload) toDomain() domain.TicketUpdate {
	return domain.TicketUpdate{
		ID:             p.ID,
		TicketCode:     p.CodTicket,
		Status:         p.Status,
		Comment:        p.Comments,
		CreatedByAgent: p.CreatedByAgent,
		CreatedAt:      p.CreatedDate,
	}
}

// ticketDetailPayload is the GET /ticket/by-ticket/{code} envelope:
// the ticket plus its full update history.
type ticketDetailPayload struct {
	Ticket  ticketPayload   `json:"Ticket"`
	Updates []updatePayload `json:"Updates"`
}

type statusPayload struct {
	ID          int    `json:"ID"`
	Description string `json:"Description"`
}

type userPayload struct {
	ID            int    `json:"ID"`
	Username      string `json:"Username"`
	FirstName     string `json:"FirstName"`
	LastName      string `json:"LastName"`
	Email         string `json:"Email"`
	PersonalEmail string `json:"PersonalEmail"`
	Role          string `json:"Role"`
	Client        int    `json:"Client"`
}

func (p userPayload) toDomain() (domain.User, error) {
	if p.ID == 0 {
		return domain.User{}, apperrors.NewUpstreamSchemaError(
			"user payload missing ID", map[string]any{"username": p.Username})
	}
	return domain.User{
		ID:            p.ID,
		Username:      p.Username,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		PersonalEmail: p.PersonalEmail,
		Role:          domain.Role(p.Role),
		ClientID:      p.Client,
	}, nil
}

type clientPayload struct {
	ID   int    `json:"ID"`
	Name string `json:"Name"`
}

type productPayload struct {
	ID          int    `json:"ID"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Category    string `json:"Category"`
}

type technicianPayload struct {
	ID    int    `json:"ID"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

type vendorPayload struct {
	ID   int    `json:"ID"`
	Name string `json:"Name"`
}

type emailPayload struct {
	ID       int    `json:"ID"`
	Subject  string `json:"Subject"`
	SentTo   string `json:"SentTo"`
	SentDate string `json:"SentDate"`
}

// updateTicketRequest is the PUT /ticket/update body. Ad hoc notes use
// the same call carrying the ticket's current status.
type updateTicketRequest struct {
	CodTicket      string `json:"CodTicket"`
	Status         int    `json:"Status"`
	Comments       string `json:"Comments"`
	CreatedByAgent int    `json:"CreatedByAgent"`
}

type assignTicketRequest struct {
	CodTicket  string `json:"CodTicket"`
	AssignedTo int    `json:"AssignedTo"`
}

type assignHardwareRequest struct {
	CodTicket    string `json:"CodTicket"`
	HardwareTech int    `json:"HardwareTech"`
	Vendor       int    `json:"Vendor"`
	Comments     string `json:"Comments"`
}

// createTicketPayload is the JSON document placed in the multipart
// "body" field of POST /ticket/create.
type createTicketPayload struct {
	Title         string  `json:"Title"`
	Description   string  `json:"Description"`
	Priority      string  `json:"Priority"`
	CreatedBy     int     `json:"CreatedBy"`
	ContactMethod string  `json:"ContactMethod"`
	Location      *string `json:"Location"`
	NeedHardware  bool    `json:"NeedHardware"`
	Type          string  `json:"Type"`
	SubType       string  `json:"SubType"`
	Client        int     `json:"Client"`
}
