package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	triggerHTTP "victoriaos-connector/internal/trigger/delivery/http"
	"victoriaos-connector/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Trigger domain
	triggerHandler triggerHTTP.Handler
	callbackPath   string

	// Observability
	metricsHandler http.Handler
	readiness      func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Trigger domain
	TriggerHandler triggerHTTP.Handler
	CallbackPath   string

	// MetricsHandler is served at /metrics when set.
	MetricsHandler http.Handler
	// Readiness reports whether dependencies are usable; nil means always ready.
	Readiness func() error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		triggerHandler: cfg.TriggerHandler,
		callbackPath:   cfg.CallbackPath,
		metricsHandler: cfg.MetricsHandler,
		readiness:      cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.triggerHandler != nil && srv.callbackPath == "" {
		return errors.New("callback path is required with a trigger handler")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
