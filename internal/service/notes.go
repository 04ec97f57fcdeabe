package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// FallbackAuthor is used when an update has no creating agent or the
// agent lookup fails. Author identity is non-critical to the feed.
const FallbackAuthor = "Tech Support Team"

// fallbackStatusMap returns the fixed six-entry status table used when
// the status lookup is unavailable.
func fallbackStatusMap() domain.StatusMap {
	return domain.StatusMap{
		1: "Open",
		2: "In Progress",
		3: "Resolved",
		4: "Closed",
		5: "Pending",
		6: "Cancelled",
	}
}

// BuildTicketTimeline produces the ordered, human-readable activity
// feed for a ticket: status-change events and free-text comments with
// author names resolved. It never fails; missing upstream data yields
// an empty feed and per-item fallbacks cover partial failures.
func (s *IncidentService) BuildTicketTimeline(ctx context.Context, code string) []domain.IncidentNote {
	statuses := s.Statuses(ctx)

	_, updates, err := s.api.TicketByCode(ctx, code)
	if err != nil {
		s.logger.Warn("update history unavailable", zap.String("code", code), zap.Error(err))
		updates = nil
	}

	authors := s.resolveAuthors(ctx, updates)
	return ConvertUpdatesToNotes(updates, statuses, authors)
}

// resolveAuthors resolves each distinct creating-agent id exactly once.
// The backend has no batch user endpoint, so lookups are sequential but
// never repeated for the same id within a ticket.
func (s *IncidentService) resolveAuthors(ctx context.Context, updates []domain.TicketUpdate) map[int]string {
	ids := lo.Uniq(lo.FilterMap(updates, func(u domain.TicketUpdate, _ int) (int, bool) {
		if u.CreatedByAgent == nil {
			return 0, false
		}
		return *u.CreatedByAgent, true
	}))

	authors := make(map[int]string, len(ids))
	for _, id := range ids {
		user, err := s.api.UserByID(ctx, id)
		if err != nil {
			s.logger.Warn("agent lookup failed", zap.Int("agent_id", id), zap.Error(err))
			authors[id] = FallbackAuthor
			continue
		}
		authors[id] = user.DisplayName()
	}
	return authors
}

// ConvertUpdatesToNotes maps raw updates to display notes in server
// order. Output length always equals input length and note ids are the
// updates' own sequence ids, stringified, so list keys stay stable.
func ConvertUpdatesToNotes(updates []domain.TicketUpdate, statuses domain.StatusMap, authors map[int]string) []domain.IncidentNote {
	notes := make([]domain.IncidentNote, 0, len(updates))
	for _, update := range updates {
		author := FallbackAuthor
		if update.CreatedByAgent != nil {
			if name, ok := authors[*update.CreatedByAgent]; ok && name != "" {
				author = name
			}
		}
		notes = append(notes, domain.IncidentNote{
			ID:        strconv.Itoa(update.ID),
			Author:    author,
			Text:      noteText(update, statuses),
			Timestamp: domain.FormatDateSafely(update.CreatedAt),
		})
	}
	return notes
}

// noteText synthesizes the display text for one update. A comment that
// already mentions a status change passes through verbatim to avoid
// double-annotation.
func noteText(update domain.TicketUpdate, statuses domain.StatusMap) string {
	comment := strings.TrimSpace(update.Comment)
	lower := strings.ToLower(comment)

	if strings.Contains(lower, "status changed") {
		return comment
	}
	if update.Status == 0 {
		return comment
	}

	description := statuses.Describe(update.Status)
	if strings.Contains(lower, "ticket created") {
		return fmt.Sprintf("%s (Status: %s)", comment, description)
	}
	return fmt.Sprintf("Status changed to %q: %s", description, comment)
}
