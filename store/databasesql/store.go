// Package databasesql implements store.TranscriptStore on top of
// database/sql, for applications that already hold a *sql.DB (for example
// via the lib/pq driver).
package databasesql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
	"github.com/prakashsanker/yeet-coder-sub002/store"
	"github.com/prakashsanker/yeet-coder-sub002/store/postgres"
)

// Store implements store.TranscriptStore using database/sql.
type Store struct {
	db *sql.DB
}

// New wraps an existing database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate applies the shared schema.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgres.Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// CreateSession persists a new interview session.
func (s *Store) CreateSession(ctx context.Context, session *store.Session) error {
	query := `
		INSERT INTO interview_sessions (id, candidate_id, problem_slug, status, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		session.ID, session.CandidateID, session.ProblemSlug, session.Status,
		session.StartedAt, session.EndedAt)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *Store) GetSession(ctx context.Context, sessionID uuid.UUID) (*store.Session, error) {
	query := `
		SELECT id, candidate_id, problem_slug, status, started_at, ended_at
		FROM interview_sessions
		WHERE id = $1
	`
	var session store.Session
	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID, &session.CandidateID, &session.ProblemSlug,
		&session.Status, &session.StartedAt, &session.EndedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// AppendEntry appends one completed turn to the session transcript.
func (s *Store) AppendEntry(ctx context.Context, sessionID uuid.UUID, entry interviewctx.TranscriptEntry) error {
	query := `
		INSERT INTO interview_transcript_entries (session_id, spoken_at, speaker, text, estimated_tokens)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		sessionID, entry.Timestamp, string(entry.Speaker), entry.Text, entry.EstimatedTokens)
	if err != nil {
		return fmt.Errorf("append transcript entry: %w", err)
	}
	return nil
}

// GetTranscript returns the full transcript in chronological order.
func (s *Store) GetTranscript(ctx context.Context, sessionID uuid.UUID) ([]interviewctx.TranscriptEntry, error) {
	query := `
		SELECT spoken_at, speaker, text, estimated_tokens
		FROM interview_transcript_entries
		WHERE session_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	defer rows.Close()

	var entries []interviewctx.TranscriptEntry
	for rows.Next() {
		var entry interviewctx.TranscriptEntry
		var speaker string
		if err := rows.Scan(&entry.Timestamp, &speaker, &entry.Text, &entry.EstimatedTokens); err != nil {
			return nil, fmt.Errorf("scan transcript entry: %w", err)
		}
		entry.Speaker = interviewctx.Speaker(speaker)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript: %w", err)
	}
	return entries, nil
}
