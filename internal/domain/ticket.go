package domain

// Ticket is the portal's view of a support request. Timestamps stay in
// their raw backend form; formatting happens at render time so that a
// malformed value degrades per-field instead of failing the screen.
type Ticket struct {
	Code          string
	ID            int
	Title         string
	Description   string
	Status        int
	Priority      string
	CreatedBy     int
	AssignedTo    *int
	ContactMethod string
	Location      *string
	NeedsHardware bool
	IssueType     string
	SubIssueType  string
	CreatedAt     string
	ModifiedAt    string
}

// StatusMap is the id -> description lookup table for ticket statuses.
type StatusMap map[int]string

// Describe resolves a status code, falling back to "Unknown" for
// unmapped or zero codes.
func (m StatusMap) Describe(code int) string {
	if desc, ok := m[code]; ok && desc != "" {
		return desc
	}
	return "Unknown"
}

// TicketUpdate is a single server-recorded event on a ticket: a comment
// and/or a status change. Immutable once returned, ordered by the
// server-assigned sequence id.
type TicketUpdate struct {
	ID             int
	TicketCode     string
	Status         int
	Comment        string
	CreatedByAgent *int
	CreatedAt      string
}

// IncidentNote is the display form of one update: resolved author name,
// formatted timestamp and synthesized text. Presentation-only; notes
// are never sent back to the server.
type IncidentNote struct {
	ID        string
	Author    string
	Text      string
	Timestamp string
}

// EmailRecord is one entry in a ticket's notification email history.
type EmailRecord struct {
	ID      int
	Subject string
	SentTo  string
	SentAt  string
}
