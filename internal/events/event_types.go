package events

import (
	"time"
)

// EventType enumerates portal mutation events.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventHardwareAssigned    EventType = "hardware_assigned"
	EventNoteAdded           EventType = "note_added"
)

// Actor identifies who triggered the mutation.
type Actor struct {
	UserID int `json:"user_id"`
}

// Event represents a portal mutation delivered to subscribed handlers.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	TicketCode string      `json:"ticket_code"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title         string `json:"title"`
	Priority      string `json:"priority"`
	NeedsHardware bool   `json:"needs_hardware"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	NewStatus int    `json:"new_status"`
	Comment   string `json:"comment,omitempty"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	TechnicianID int `json:"technician_id"`
}

// HardwareAssignedPayload payload.
type HardwareAssignedPayload struct {
	TechnicianID int `json:"technician_id"`
	VendorID     int `json:"vendor_id"`
}

// NoteAddedPayload payload.
type NoteAddedPayload struct {
	Preview string `json:"preview"`
}
