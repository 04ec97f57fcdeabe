package handlers

import (
	"sort"

	"github.com/samber/lo"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/session"
)

func ticketSummary(t domain.Ticket, statuses domain.StatusMap) dto.TicketSummary {
	return dto.TicketSummary{
		Code:              t.Code,
		ID:                t.ID,
		Title:             t.Title,
		Status:            t.Status,
		StatusDescription: statuses.Describe(t.Status),
		Priority:          t.Priority,
		AssignedTo:        t.AssignedTo,
		NeedsHardware:     t.NeedsHardware,
		CreatedAt:         domain.FormatDateSafely(t.CreatedAt),
		ModifiedAt:        domain.FormatDateSafely(t.ModifiedAt),
	}
}

func ticketSummaries(tickets []domain.Ticket, statuses domain.StatusMap) []dto.TicketSummary {
	return lo.Map(tickets, func(t domain.Ticket, _ int) dto.TicketSummary {
		return ticketSummary(t, statuses)
	})
}

func ticketDetail(t domain.Ticket, statuses domain.StatusMap, notes []domain.IncidentNote, emails []domain.EmailRecord) dto.TicketDetailResponse {
	location := domain.NotSet
	if t.Location != nil && *t.Location != "" {
		location = *t.Location
	}
	return dto.TicketDetailResponse{
		Code:              t.Code,
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Status:            t.Status,
		StatusDescription: statuses.Describe(t.Status),
		Priority:          t.Priority,
		CreatedBy:         t.CreatedBy,
		AssignedTo:        t.AssignedTo,
		ContactMethod:     t.ContactMethod,
		Location:          location,
		NeedsHardware:     t.NeedsHardware,
		IssueType:         t.IssueType,
		SubIssueType:      t.SubIssueType,
		CreatedAt:         domain.FormatDateSafely(t.CreatedAt),
		ModifiedAt:        domain.FormatDateSafely(t.ModifiedAt),
		Notes:             noteViews(notes),
		Emails:            emailViews(emails),
	}
}

func noteViews(notes []domain.IncidentNote) []dto.NoteView {
	return lo.Map(notes, func(n domain.IncidentNote, _ int) dto.NoteView {
		return dto.NoteView{ID: n.ID, Author: n.Author, Text: n.Text, Timestamp: n.Timestamp}
	})
}

func emailViews(emails []domain.EmailRecord) []dto.EmailView {
	return lo.Map(emails, func(e domain.EmailRecord, _ int) dto.EmailView {
		return dto.EmailView{
			ID:      e.ID,
			Subject: e.Subject,
			SentTo:  e.SentTo,
			SentAt:  domain.FormatDateSafely(e.SentAt),
		}
	})
}

func userViews(users []domain.User) []dto.UserView {
	return lo.Map(users, func(u domain.User, _ int) dto.UserView {
		return dto.UserView{
			ID:       u.ID,
			Name:     u.DisplayName(),
			Username: u.Username,
			Email:    u.ContactEmail(),
			Role:     string(u.Role),
			ClientID: u.ClientID,
		}
	})
}

func clientViews(clients []domain.Client) []dto.ClientView {
	return lo.Map(clients, func(c domain.Client, _ int) dto.ClientView {
		return dto.ClientView{ID: c.ID, Name: c.Name}
	})
}

func productViews(products []domain.Product) []dto.ProductView {
	return lo.Map(products, func(p domain.Product, _ int) dto.ProductView {
		return dto.ProductView{ID: p.ID, Name: p.Name, Description: p.Description, Category: p.Category}
	})
}

func technicianViews(techs []domain.Technician) []dto.TechnicianView {
	return lo.Map(techs, func(t domain.Technician, _ int) dto.TechnicianView {
		return dto.TechnicianView{ID: t.ID, Name: t.Name, Email: t.Email}
	})
}

func vendorViews(vendors []domain.Vendor) []dto.VendorView {
	return lo.Map(vendors, func(v domain.Vendor, _ int) dto.VendorView {
		return dto.VendorView{ID: v.ID, Name: v.Name}
	})
}

func statusViews(statuses domain.StatusMap) []dto.StatusView {
	ids := lo.Keys(statuses)
	sort.Ints(ids)
	return lo.Map(ids, func(id int, _ int) dto.StatusView {
		return dto.StatusView{ID: id, Description: statuses[id]}
	})
}

func identityView(identity *session.Identity) dto.IdentityView {
	return dto.IdentityView{
		UserID:   identity.UserID,
		Email:    identity.Email,
		Role:     string(identity.Role),
		ClientID: identity.ClientID,
	}
}
