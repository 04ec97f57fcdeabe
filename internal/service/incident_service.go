package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/events"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

// IncidentService coordinates ticket workflows against the backend.
// Primary entity fetches propagate errors; supporting lookups degrade
// to static fallbacks.
type IncidentService struct {
	api        backend.API
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// IncidentDependencies bundles collaborators for the service.
type IncidentDependencies struct {
	API        backend.API
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewIncidentService constructs the service.
func NewIncidentService(deps IncidentDependencies) *IncidentService {
	return &IncidentService{
		api:        deps.API,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ListUserTickets returns tickets created by the given user.
func (s *IncidentService) ListUserTickets(ctx context.Context, userID int) ([]domain.Ticket, error) {
	return s.api.TicketsByUser(ctx, userID)
}

// Queue returns the full technician queue.
func (s *IncidentService) Queue(ctx context.Context) ([]domain.Ticket, error) {
	return s.api.Queue(ctx)
}

// GetTicket fetches a single ticket with its raw update history.
func (s *IncidentService) GetTicket(ctx context.Context, code string) (domain.Ticket, []domain.TicketUpdate, error) {
	if strings.TrimSpace(code) == "" {
		return domain.Ticket{}, nil, apperrors.NewValidationError("ticket code required", nil)
	}
	return s.api.TicketByCode(ctx, code)
}

// CreateTicket submits a new ticket with optional attachments.
func (s *IncidentService) CreateTicket(ctx context.Context, input backend.CreateTicketInput, files []backend.Upload) (domain.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return domain.Ticket{}, apperrors.NewValidationError("title and description required", nil)
	}
	if input.Priority == "" {
		input.Priority = "Medium"
	}
	ticket, err := s.api.CreateTicket(ctx, input, files)
	if err != nil {
		return domain.Ticket{}, err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventTicketCreated,
		TicketCode: ticket.Code,
		Actor:      events.Actor{UserID: input.CreatedBy},
		Payload: events.TicketCreatedPayload{
			Title:         ticket.Title,
			Priority:      ticket.Priority,
			NeedsHardware: ticket.NeedsHardware,
		},
	})
	return ticket, nil
}

// UpdateStatus records a status change with an optional comment.
func (s *IncidentService) UpdateStatus(ctx context.Context, code string, status int, comment string, agentID int) error {
	if status <= 0 {
		return apperrors.NewValidationError("status required", nil)
	}
	err := s.api.UpdateTicket(ctx, backend.UpdateTicketInput{
		Code:    code,
		Status:  status,
		Comment: comment,
		AgentID: agentID,
	})
	if err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventTicketStatusChanged,
		TicketCode: code,
		Actor:      events.Actor{UserID: agentID},
		Payload: events.TicketStatusChangedPayload{
			NewStatus: status,
			Comment:   comment,
		},
	})
	return nil
}

// AddNote posts an ad hoc comment through the same update call,
// carrying the ticket's current status so nothing transitions.
func (s *IncidentService) AddNote(ctx context.Context, code, comment string, agentID int) error {
	if strings.TrimSpace(comment) == "" {
		return apperrors.NewValidationError("comment required", nil)
	}
	ticket, _, err := s.api.TicketByCode(ctx, code)
	if err != nil {
		return err
	}
	err = s.api.UpdateTicket(ctx, backend.UpdateTicketInput{
		Code:    code,
		Status:  ticket.Status,
		Comment: comment,
		AgentID: agentID,
	})
	if err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventNoteAdded,
		TicketCode: code,
		Actor:      events.Actor{UserID: agentID},
		Payload:    events.NoteAddedPayload{Preview: commentPreview(comment, 120)},
	})
	return nil
}

// AssignTechnician sets the responsible technician.
func (s *IncidentService) AssignTechnician(ctx context.Context, code string, technicianID, agentID int) error {
	if technicianID <= 0 {
		return apperrors.NewValidationError("technician required", nil)
	}
	if err := s.api.AssignTicket(ctx, code, technicianID); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventTicketAssigned,
		TicketCode: code,
		Actor:      events.Actor{UserID: agentID},
		Payload:    events.TicketAssignedPayload{TechnicianID: technicianID},
	})
	return nil
}

// AssignHardware records a hardware technician and vendor assignment.
func (s *IncidentService) AssignHardware(ctx context.Context, input backend.AssignHardwareInput, agentID int) error {
	if input.TechnicianID <= 0 && input.VendorID <= 0 {
		return apperrors.NewValidationError("technician or vendor required", nil)
	}
	if err := s.api.AssignHardware(ctx, input); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventHardwareAssigned,
		TicketCode: input.Code,
		Actor:      events.Actor{UserID: agentID},
		Payload: events.HardwareAssignedPayload{
			TechnicianID: input.TechnicianID,
			VendorID:     input.VendorID,
		},
	})
	return nil
}

// Statuses returns the status lookup table, substituting the fixed
// fallback map when the backend is unavailable.
func (s *IncidentService) Statuses(ctx context.Context) domain.StatusMap {
	statuses, err := s.api.Statuses(ctx)
	if err != nil || len(statuses) == 0 {
		s.logger.Warn("status lookup failed, using fallback", zap.Error(err))
		return fallbackStatusMap()
	}
	return statuses
}

// Emails returns the notification email history for a ticket, degrading
// to an empty list when the backend call fails.
func (s *IncidentService) Emails(ctx context.Context, ticketID int) []domain.EmailRecord {
	emails, err := s.api.TicketEmails(ctx, ticketID)
	if err != nil {
		s.logger.Warn("email history lookup failed", zap.Int("ticket_id", ticketID), zap.Error(err))
		return []domain.EmailRecord{}
	}
	return emails
}

func (s *IncidentService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func commentPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
