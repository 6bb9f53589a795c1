// Package store defines the upstream transcript persistence collaborator.
//
// The context engine never owns transcript storage: it receives transcripts
// as arguments and rebuilds context from the full transcript on each call.
// This package holds the interface the live-interview pipeline reads
// through, plus Postgres (pgx and database/sql) and in-memory adapters.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// Session statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// ErrSessionNotFound indicates the interview session does not exist.
var ErrSessionNotFound = errors.New("interview session not found")

// Session is one mock-interview session.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	CandidateID string     `json:"candidate_id"`
	ProblemSlug string     `json:"problem_slug"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// TranscriptStore is the persistence collaborator for interview sessions and
// their transcripts. Transcript reads return entries in chronological order.
type TranscriptStore interface {
	// CreateSession persists a new interview session.
	CreateSession(ctx context.Context, session *Session) error

	// GetSession retrieves a session by ID. Returns ErrSessionNotFound
	// when no such session exists.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error)

	// AppendEntry appends one completed turn to the session transcript.
	AppendEntry(ctx context.Context, sessionID uuid.UUID, entry interviewctx.TranscriptEntry) error

	// GetTranscript returns the full transcript for the session in
	// chronological order.
	GetTranscript(ctx context.Context, sessionID uuid.UUID) ([]interviewctx.TranscriptEntry, error)
}
