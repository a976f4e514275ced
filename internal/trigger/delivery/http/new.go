package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"victoriaos-connector/internal/model"
	"victoriaos-connector/internal/trigger"
	pkgLog "victoriaos-connector/pkg/log"
)

// Handler serves the endpoints of one trigger instance.
type Handler interface {
	HandleCallback(c *gin.Context)
	HandleStatus(c *gin.Context)
	HandleActivate(c *gin.Context)
	HandleDeactivate(c *gin.Context)
	// Drain blocks until accepted deliveries have been relayed.
	Drain(ctx context.Context) error
}

type handler struct {
	l        pkgLog.Logger
	uc       trigger.UseCase
	sink     trigger.Sink
	scope    model.Scope
	input    trigger.RegisterInput
	security *SecurityValidator
	async    bool
	inflight sync.WaitGroup
}

// Config is the dependency bag for New.
type Config struct {
	Scope model.Scope
	// Input is used by the activate route.
	Input    trigger.RegisterInput
	Security SecurityConfig
	// Sync delivers before acknowledging.
	Sync bool
}

// New creates the trigger HTTP handler.
func New(l pkgLog.Logger, uc trigger.UseCase, sink trigger.Sink, cfg Config) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		sink:     sink,
		scope:    cfg.Scope,
		input:    cfg.Input,
		security: NewSecurityValidator(cfg.Security),
		async:    !cfg.Sync,
	}
}

// RegisterRoutes mounts the callback at callbackPath and the status route under admin.
func RegisterRoutes(r gin.IRoutes, callbackPath string, admin *gin.RouterGroup, h Handler) {
	r.POST(callbackPath, h.HandleCallback)
	if admin != nil {
		admin.GET("/trigger", h.HandleStatus)
		admin.POST("/trigger", h.HandleActivate)
		admin.DELETE("/trigger", h.HandleDeactivate)
	}
}
