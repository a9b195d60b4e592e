package boardshot

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/pitchside/league-stats/internal/platform/logging"
	"github.com/pitchside/league-stats/internal/platform/resilience"
	"github.com/pitchside/league-stats/internal/usecase"
)

func TestClient_RenderStandings_Success(t *testing.T) {
	var gotPath, gotAuth, gotRequestID string
	var gotPayload usecase.ExportPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")

		body, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(body, &gotPayload); err != nil {
			t.Errorf("decode render payload: %v", err)
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Token:   "render-token",
		Logger:  logging.NewNop(),
	})

	image, err := client.RenderStandings(context.Background(), usecase.ExportPayload{
		ChatID: -4242,
		Title:  "Sunday League",
		Rows:   []usecase.ExportRow{{Position: 1, Name: "Alba", Points: 4}},
	})
	if err != nil {
		t.Fatalf("render standings: %v", err)
	}

	if string(image) != "png-bytes" {
		t.Fatalf("unexpected image payload: %q", image)
	}
	if gotPath != "/v1/render/standings" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotAuth != "Bearer render-token" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if gotPayload.ChatID != -4242 || len(gotPayload.Rows) != 1 || gotPayload.Rows[0].Name != "Alba" {
		t.Fatalf("unexpected decoded payload: %+v", gotPayload)
	}
}

func TestClient_RenderStandings_NonRetryableStatusFailsOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	if _, err := client.RenderStandings(context.Background(), usecase.ExportPayload{}); err == nil {
		t.Fatalf("expected error for status 400")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestClient_RenderStandings_CircuitOpensAfterFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.RenderStandings(context.Background(), usecase.ExportPayload{}); err == nil {
		t.Fatalf("expected error for status 500")
	}
	_, err := client.RenderStandings(context.Background(), usecase.ExportPayload{})
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable from open circuit, got %v", err)
	}
}

func TestClient_RenderStandings_MissingBaseURL(t *testing.T) {
	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	_, err := client.RenderStandings(context.Background(), usecase.ExportPayload{})
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
