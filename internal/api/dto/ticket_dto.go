package dto

// TicketSummary is one row on a dashboard or queue listing.
type TicketSummary struct {
	Code              string `json:"code"`
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Status            int    `json:"status"`
	StatusDescription string `json:"status_description"`
	Priority          string `json:"priority"`
	AssignedTo        *int   `json:"assigned_to"`
	NeedsHardware     bool   `json:"needs_hardware"`
	CreatedAt         string `json:"created_at"`
	ModifiedAt        string `json:"modified_at"`
}

// NoteView is one entry in the reconciled activity feed.
type NoteView struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// EmailView is one entry in the notification email history.
type EmailView struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	SentTo  string `json:"sent_to"`
	SentAt  string `json:"sent_at"`
}

// TicketDetailResponse is the full ticket screen: the ticket plus its
// reconciled notes timeline and, for technicians, the email history.
type TicketDetailResponse struct {
	Code              string      `json:"code"`
	ID                int         `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Status            int         `json:"status"`
	StatusDescription string      `json:"status_description"`
	Priority          string      `json:"priority"`
	CreatedBy         int         `json:"created_by"`
	AssignedTo        *int        `json:"assigned_to"`
	ContactMethod     string      `json:"contact_method"`
	Location          string      `json:"location"`
	NeedsHardware     bool        `json:"needs_hardware"`
	IssueType         string      `json:"issue_type"`
	SubIssueType      string      `json:"sub_issue_type"`
	CreatedAt         string      `json:"created_at"`
	ModifiedAt        string      `json:"modified_at"`
	Notes             []NoteView  `json:"notes"`
	Emails            []EmailView `json:"emails,omitempty"`
}

// UpdateStatusRequest payload for status changes.
type UpdateStatusRequest struct {
	Status  int    `json:"status"`
	Comment string `json:"comment"`
}

// AssignRequest payload for technician assignment.
type AssignRequest struct {
	TechnicianID int `json:"technician_id"`
}

// AssignHardwareRequest payload for hardware/vendor assignment.
type AssignHardwareRequest struct {
	TechnicianID int    `json:"technician_id"`
	VendorID     int    `json:"vendor_id"`
	Comment      string `json:"comment"`
}

// AddNoteRequest payload for ad hoc notes.
type AddNoteRequest struct {
	Comment string `json:"comment"`
}
