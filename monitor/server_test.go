package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
	"github.com/prakashsanker/yeet-coder-sub002/session"
	"github.com/prakashsanker/yeet-coder-sub002/store"
)

func newTestServer(t *testing.T) (*Server, uuid.UUID) {
	t.Helper()

	engine, err := interviewctx.New(interviewctx.GeneratorFunc(func(ctx context.Context, req interviewctx.GenerationRequest) (string, error) {
		return "unused", nil
	}), nil, nil)
	if err != nil {
		t.Fatalf("interviewctx.New() error = %v", err)
	}

	mem := store.NewMemory()
	sessionID := uuid.New()
	ctx := context.Background()
	if err := mem.CreateSession(ctx, &store.Session{ID: sessionID, Status: store.StatusActive, StartedAt: time.Now()}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	for i := 0; i < 4; i++ {
		entry := interviewctx.TranscriptEntry{
			Speaker: interviewctx.SpeakerUser,
			Text:    "one two three four five six seven eight nine ten",
		}
		if err := mem.AppendEntry(ctx, sessionID, entry); err != nil {
			t.Fatalf("AppendEntry() error = %v", err)
		}
	}

	return NewServer(0, session.NewManager(mem, engine, nil, nil)), sessionID
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
}

func TestContextStats(t *testing.T) {
	server, sessionID := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/context/stats", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET stats = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var stats interviewctx.TokenStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if stats.MessageCount != 4 {
		t.Errorf("MessageCount = %d, want 4", stats.MessageCount)
	}
	// 10 words per turn: 13 tokens per entry, 52 total.
	if stats.TotalTokens != 52 {
		t.Errorf("TotalTokens = %d, want 52", stats.TotalTokens)
	}
	if stats.NeedsCompaction {
		t.Error("NeedsCompaction = true for a small transcript")
	}
}

func TestHTTPServerTimeouts(t *testing.T) {
	server, _ := newTestServer(t)

	srv := server.httpServer()
	if srv.Addr != ":0" {
		t.Errorf("Addr = %q, want %q", srv.Addr, ":0")
	}
	if srv.Handler == nil {
		t.Error("Handler not set")
	}
	if srv.ReadTimeout <= 0 || srv.WriteTimeout <= 0 || srv.IdleTimeout <= 0 {
		t.Errorf("timeouts not set: read %v, write %v, idle %v",
			srv.ReadTimeout, srv.WriteTimeout, srv.IdleTimeout)
	}
}

func TestContextStatsErrors(t *testing.T) {
	server, _ := newTestServer(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{
			name: "invalid session id",
			path: "/api/v1/sessions/not-a-uuid/context/stats",
			want: http.StatusBadRequest,
		},
		{
			name: "unknown session",
			path: "/api/v1/sessions/" + uuid.NewString() + "/context/stats",
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
			}
		})
	}
}
