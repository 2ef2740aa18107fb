package model

import (
	"strings"

	"github.com/ytget/flightlog/internal/platform"
)

// Session is one flight data file, identified by its name without extension.
type Session struct {
	ID  string
	Dir string
}

// NewSessions pairs listed session identifiers with their directory,
// preserving order.
func NewSessions(dir string, ids []string) []Session {
	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, Session{ID: id, Dir: dir})
	}
	return sessions
}

// Path returns the session's csv file path.
func (s Session) Path() string {
	return platform.SessionPath(s.Dir, s.ID)
}

// String returns the session identifier
func (s Session) String() string {
	return s.ID
}

// Matches reports whether the identifier contains query, ignoring case.
// An empty query matches every session.
func (s Session) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.ID), strings.ToLower(query))
}

// FilterSessions returns the sessions matching query, keeping their order.
func FilterSessions(sessions []Session, query string) []Session {
	filtered := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Matches(query) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
