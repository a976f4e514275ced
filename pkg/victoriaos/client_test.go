package victoriaos_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"victoriaos-connector/pkg/victoriaos"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*victoriaos.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := victoriaos.NewClient(victoriaos.Config{
		Credentials: victoriaos.Credentials{APIKey: "sk_test_123", Environment: victoriaos.EnvironmentDevelopment},
		BaseURL:     srv.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestClient_Do(t *testing.T) {
	t.Run("GET injects bearer and decodes", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
				t.Errorf("unexpected Authorization header: %q", got)
			}
			if got := r.Header.Get("Accept"); got != "application/json" {
				t.Errorf("unexpected Accept header: %q", got)
			}
			if r.URL.Path != "/api/v1/tasks" || r.URL.RawQuery != "status=todo&limit=5" {
				t.Errorf("unexpected url: %s", r.URL.String())
			}
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "59")
			w.Header().Set("X-RateLimit-Reset", "1700000000")
			_ = json.NewEncoder(w).Encode(map[string]any{"tasks": []any{}, "pagination": map[string]any{"total": 0}})
		})

		resp, err := client.Do(context.Background(), victoriaos.Request{Method: http.MethodGet, Path: "/tasks?status=todo&limit=5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, ok := resp.Data.(map[string]any)
		if !ok || data["tasks"] == nil {
			t.Fatalf("unexpected data: %#v", resp.Data)
		}
		if resp.RateLimits.Remaining != "59" || resp.RateLimits.Limit != "60" {
			t.Errorf("unexpected rate limits: %+v", resp.RateLimits)
		}
	})

	t.Run("POST sends JSON body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("unexpected content type: %q", ct)
			}
			raw, _ := io.ReadAll(r.Body)
			if string(raw) != `{"title":"Write report"}` {
				t.Errorf("unexpected body: %s", raw)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"t1","title":"Write report"}`))
		})

		resp, err := client.Do(context.Background(), victoriaos.Request{
			Method: http.MethodPost,
			Path:   "/tasks",
			Body:   map[string]any{"title": "Write report"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("unexpected status: %d", resp.StatusCode)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		resp, err := client.Do(context.Background(), victoriaos.Request{Method: http.MethodDelete, Path: "/tasks/t1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Data != nil {
			t.Errorf("expected nil data, got %#v", resp.Data)
		}
	})

	t.Run("structured API error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"TASK_NOT_FOUND","message":"Task not found","details":{"id":"t9"}}}`))
		})

		_, err := client.Do(context.Background(), victoriaos.Request{Method: http.MethodGet, Path: "/tasks/t9"})
		var apiErr *victoriaos.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T %v", err, err)
		}
		if apiErr.Code != "TASK_NOT_FOUND" || apiErr.StatusCode != http.StatusNotFound || apiErr.Details["id"] != "t9" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("plain error status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.Do(context.Background(), victoriaos.Request{Method: http.MethodGet, Path: "/users/me"})
		var tErr *victoriaos.TransportError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected *TransportError, got %T %v", err, err)
		}
		if tErr.StatusCode != http.StatusInternalServerError || !strings.Contains(tErr.Message, "500") {
			t.Errorf("unexpected transport error: %+v", tErr)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := client.Do(context.Background(), victoriaos.Request{Path: "/users/me"})
		var tErr *victoriaos.TransportError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected *TransportError, got %T %v", err, err)
		}
	})
}

func TestClient_ServerDown(t *testing.T) {
	client, err := victoriaos.NewClient(victoriaos.Config{
		Credentials: victoriaos.Credentials{APIKey: "k"},
		BaseURL:     "http://127.0.0.1:1",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Do(context.Background(), victoriaos.Request{Path: "/users/me"})
	var tErr *victoriaos.TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TransportError, got %T %v", err, err)
	}
	if tErr.Message == "" {
		t.Errorf("expected a transport message")
	}
}

func TestClient_TestCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"ana@example.com"}`))
	})

	if err := client.TestCredentials(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := victoriaos.NewClient(victoriaos.Config{}); !errors.Is(err, victoriaos.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	_, err := victoriaos.NewClient(victoriaos.Config{Credentials: victoriaos.Credentials{APIKey: "k", Environment: "staging"}})
	if !errors.Is(err, victoriaos.ErrUnknownEnvironment) {
		t.Errorf("expected ErrUnknownEnvironment, got %v", err)
	}
}

func TestClient_URLAndBaseURL(t *testing.T) {
	prod, err := victoriaos.NewClient(victoriaos.Config{Credentials: victoriaos.Credentials{APIKey: "k", Environment: victoriaos.EnvironmentProduction}})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if got := prod.URL("tasks"); got != "https://app.victoriaos.com/api/v1/tasks" {
		t.Errorf("unexpected url: %s", got)
	}

	dev, _ := victoriaos.NewClient(victoriaos.Config{Credentials: victoriaos.Credentials{APIKey: "k", Environment: victoriaos.EnvironmentDevelopment}})
	if got := dev.BaseURL(); got != "http://localhost:3000/api/v1" {
		t.Errorf("unexpected base url: %s", got)
	}
}

func TestClient_Metrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	metrics := victoriaos.NewMetrics("test")
	client, err := victoriaos.NewClient(victoriaos.Config{
		Credentials: victoriaos.Credentials{APIKey: "k"},
		BaseURL:     srv.URL,
		Metrics:     metrics,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := client.Do(context.Background(), victoriaos.Request{Path: "/users/me"}); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}

	if got := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("200", "get")); got != 2 {
		t.Errorf("expected 2 requests counted, got %v", got)
	}
}
