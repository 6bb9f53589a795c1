package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// Memory is an in-memory TranscriptStore for tests and examples. Safe for
// concurrent use.
type Memory struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	transcripts map[uuid.UUID][]interviewctx.TranscriptEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions:    make(map[uuid.UUID]*Session),
		transcripts: make(map[uuid.UUID][]interviewctx.TranscriptEntry),
	}
}

// CreateSession persists the session in memory.
func (m *Memory) CreateSession(_ context.Context, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

// GetSession retrieves a session by ID.
func (m *Memory) GetSession(_ context.Context, sessionID uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

// AppendEntry appends one turn to the session transcript.
func (m *Memory) AppendEntry(_ context.Context, sessionID uuid.UUID, entry interviewctx.TranscriptEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	m.transcripts[sessionID] = append(m.transcripts[sessionID], entry)
	return nil
}

// GetTranscript returns a copy of the session transcript in chronological
// order.
func (m *Memory) GetTranscript(_ context.Context, sessionID uuid.UUID) ([]interviewctx.TranscriptEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}
	entries := m.transcripts[sessionID]
	copied := make([]interviewctx.TranscriptEntry, len(entries))
	copy(copied, entries)
	return copied, nil
}
