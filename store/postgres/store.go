// Package postgres implements store.TranscriptStore on top of pgx/v5.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
	"github.com/prakashsanker/yeet-coder-sub002/store"
)

// Schema creates the tables this store expects.
const Schema = `
CREATE TABLE IF NOT EXISTS interview_sessions (
	id UUID PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	problem_slug TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	ended_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS interview_transcript_entries (
	id BIGSERIAL PRIMARY KEY,
	session_id UUID NOT NULL REFERENCES interview_sessions(id),
	spoken_at TIMESTAMPTZ NOT NULL,
	speaker TEXT NOT NULL,
	text TEXT NOT NULL,
	estimated_tokens INT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transcript_entries_session
	ON interview_transcript_entries(session_id, id);
`

// Store implements store.TranscriptStore using a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and verifies the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewFromPool wraps an existing pool.
func NewFromPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Migrate applies the schema.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
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
	_, err := s.pool.Exec(ctx, query,
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
	err := s.pool.QueryRow(ctx, query, sessionID).Scan(
		&session.ID, &session.CandidateID, &session.ProblemSlug,
		&session.Status, &session.StartedAt, &session.EndedAt)
	if errors.Is(err, pgx.ErrNoRows) {
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
	_, err := s.pool.Exec(ctx, query,
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
	rows, err := s.pool.Query(ctx, query, sessionID)
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
