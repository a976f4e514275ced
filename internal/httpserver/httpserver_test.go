package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	_ "victoriaos-connector/docs"
	"victoriaos-connector/internal/httpserver"
	"victoriaos-connector/pkg/log"
	"victoriaos-connector/pkg/victoriaos"
)

type stubTrigger struct{ called bool }

func (s *stubTrigger) HandleCallback(c *gin.Context) {
	s.called = true
	c.Status(http.StatusOK)
}

func (s *stubTrigger) HandleStatus(c *gin.Context)     { c.Status(http.StatusOK) }
func (s *stubTrigger) HandleActivate(c *gin.Context)   { c.Status(http.StatusOK) }
func (s *stubTrigger) HandleDeactivate(c *gin.Context) { c.Status(http.StatusOK) }
func (s *stubTrigger) Drain(context.Context) error     { return nil }

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		l    log.Logger
		cfg  httpserver.Config
	}{
		{"no logger", nil, httpserver.Config{Port: 8080, Mode: gin.TestMode}},
		{"no mode", log.NewNop(), httpserver.Config{Port: 8080}},
		{"no port", log.NewNop(), httpserver.Config{Mode: gin.TestMode}},
		{"trigger without path", log.NewNop(), httpserver.Config{Port: 8080, Mode: gin.TestMode, TriggerHandler: &stubTrigger{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := httpserver.New(tt.l, tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	metrics := victoriaos.NewMetrics("test")
	trig := &stubTrigger{}
	ready := errors.New("state store unreachable")

	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "production",
		TriggerHandler: trig,
		CallbackPath:   "/webhook/victoriaos",
		MetricsHandler: metrics.Handler(),
		Readiness:      func() error { return ready },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h := srv.Handler()

	for _, path := range []string{"/health", "/live", "/metrics", "/swagger/doc.json"} {
		if w := get(h, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}

	if w := get(h, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready = %d, want 503", w.Code)
	}
	ready = nil
	if w := get(h, "/ready"); w.Code != http.StatusOK {
		t.Errorf("GET /ready = %d, want 200", w.Code)
	}

	if w := get(h, "/swagger/doc.json"); !strings.Contains(w.Body.String(), "/webhook/victoriaos") {
		t.Error("swagger document does not describe the callback route")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/victoriaos", strings.NewReader(`{}`)))
	if w.Code != http.StatusOK || !trig.called {
		t.Errorf("POST callback = %d, called = %v", w.Code, trig.called)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 18089, Mode: gin.TestMode})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
