package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/events"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

func newIncidentService(api backend.API, dispatcher events.Dispatcher) *IncidentService {
	return NewIncidentService(IncidentDependencies{
		API:        api,
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
}

func collectEvents(dispatcher events.Dispatcher, types ...events.EventType) *[]events.Event {
	var published []events.Event
	for _, eventType := range types {
		dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
			published = append(published, event)
			return nil
		})
	}
	return &published
}

func TestCreateTicketValidatesAndDefaultsPriority(t *testing.T) {
	var gotInput backend.CreateTicketInput
	dispatcher := events.NewInMemoryDispatcher()
	published := collectEvents(dispatcher, events.EventTicketCreated)

	svc := newIncidentService(&apiStub{
		createTicket: func(_ context.Context, input backend.CreateTicketInput, _ []backend.Upload) (domain.Ticket, error) {
			gotInput = input
			return domain.Ticket{Code: "TCK-9", Title: input.Title, Priority: input.Priority}, nil
		},
	}, dispatcher)

	_, err := svc.CreateTicket(context.Background(), backend.CreateTicketInput{Title: "x"}, nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	ticket, err := svc.CreateTicket(context.Background(), backend.CreateTicketInput{
		Title:       "Broken laptop",
		Description: "Will not boot",
		CreatedBy:   7,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Medium", gotInput.Priority)
	assert.Equal(t, "TCK-9", ticket.Code)
	require.Len(t, *published, 1)
	assert.Equal(t, events.EventTicketCreated, (*published)[0].Type)
	assert.Equal(t, "TCK-9", (*published)[0].TicketCode)
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	svc := newIncidentService(&apiStub{}, nil)

	err := svc.UpdateStatus(context.Background(), "TCK-1", 0, "comment", 9)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestAddNoteCarriesCurrentStatus(t *testing.T) {
	var gotUpdate backend.UpdateTicketInput
	dispatcher := events.NewInMemoryDispatcher()
	published := collectEvents(dispatcher, events.EventNoteAdded)

	svc := newIncidentService(&apiStub{
		ticketByCode: func(context.Context, string) (domain.Ticket, []domain.TicketUpdate, error) {
			return domain.Ticket{Code: "TCK-1", Status: 2}, nil, nil
		},
		updateTicket: func(_ context.Context, input backend.UpdateTicketInput) error {
			gotUpdate = input
			return nil
		},
	}, dispatcher)

	err := svc.AddNote(context.Background(), "TCK-1", "Called the user back", 9)

	require.NoError(t, err)
	assert.Equal(t, "TCK-1", gotUpdate.Code)
	assert.Equal(t, 2, gotUpdate.Status)
	assert.Equal(t, "Called the user back", gotUpdate.Comment)
	assert.Equal(t, 9, gotUpdate.AgentID)
	require.Len(t, *published, 1)
}

func TestAssignHardwareRequiresTechnicianOrVendor(t *testing.T) {
	svc := newIncidentService(&apiStub{}, nil)

	err := svc.AssignHardware(context.Background(), backend.AssignHardwareInput{Code: "TCK-1"}, 9)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCommentPreviewTruncatesLongComments(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "abcde"
	}

	preview := commentPreview(long, 120)

	assert.Len(t, preview, 120)
	assert.Equal(t, "...", preview[117:])
	assert.Equal(t, "short", commentPreview("  short  ", 120))
}
