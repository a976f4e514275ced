package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"victoriaos-connector/config"
	_ "victoriaos-connector/docs" // Swagger docs
	"victoriaos-connector/internal/httpserver"
	"victoriaos-connector/internal/model"
	"victoriaos-connector/internal/trigger"
	triggerHTTP "victoriaos-connector/internal/trigger/delivery/http"
	"victoriaos-connector/internal/trigger/sink"
	triggerUC "victoriaos-connector/internal/trigger/usecase"
	"victoriaos-connector/pkg/log"
	"victoriaos-connector/pkg/victoriaos"
)

// @title       VictoriaOS Connector API
// @description Webhook trigger endpoint and health probes for the VictoriaOS connector.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting VictoriaOS connector...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. VictoriaOS client
	var metrics *victoriaos.Metrics
	if cfg.Metrics.Enabled {
		metrics = victoriaos.NewMetrics("victoriaos_connector")
	}
	client, err := victoriaos.NewClient(victoriaos.Config{
		Credentials: cfg.VictoriaOS.Credentials(),
		BaseURL:     cfg.VictoriaOS.BaseURL,
		Timeout:     cfg.VictoriaOS.Timeout,
		Logger:      logger,
		Metrics:     metrics,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create VictoriaOS client: ", err)
		return
	}
	logger.Infof(ctx, "VictoriaOS API: %s", client.BaseURL())

	user, err := currentUser(ctx, client)
	if err != nil {
		logger.Error(ctx, "VictoriaOS credential test failed: ", err)
		return
	}
	logger.Infof(ctx, "VictoriaOS credentials verified for %s (%s plan)", user.Email, user.Subscription.Plan)

	// 4. Trigger state
	store, err := openStore(ctx, cfg.State, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open trigger state store: ", err)
		return
	}
	defer store.Close()

	// 5. Trigger lifecycle
	if cfg.Trigger.PublicURL == "" && cfg.Trigger.NgrokAPI != "" {
		publicURL, ngrokErr := detectNgrokURL(ctx, cfg.Trigger.NgrokAPI)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			cfg.Trigger.PublicURL = publicURL
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", publicURL)
		}
	}

	scope := model.Scope{ID: cfg.Trigger.ScopeID, WorkflowName: cfg.Trigger.WorkflowName}
	uc := triggerUC.New(logger, store, client, trigger.StaticURL(cfg.Trigger.CallbackURL()))
	input := trigger.RegisterInput{
		Events:      trigger.ParseEvents(cfg.Trigger.Events),
		Description: cfg.Trigger.Description,
	}

	activated := false
	if cfg.Trigger.CallbackURL() == "" {
		logger.Warn(ctx, "trigger.public_url is not set, webhook registration skipped")
	} else {
		out, err := uc.Activate(ctx, scope, input)
		if err != nil {
			logger.Error(ctx, "Failed to activate trigger: ", err)
			return
		}
		activated = true
		if out.Existing {
			logger.Infof(ctx, "Webhook %s already registered", out.WebhookID)
		} else {
			logger.Infof(ctx, "Webhook %s registered at %s", out.WebhookID, cfg.Trigger.CallbackURL())
		}
	}

	// 6. HTTP Server
	handler := triggerHTTP.New(logger, uc, sink.NewWriter(os.Stdout), triggerHTTP.Config{
		Scope:    scope,
		Input:    input,
		Security: triggerHTTP.SecurityConfig{
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
	})

	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TriggerHandler: handler,
		CallbackPath:   cfg.Trigger.Path,
		Readiness: func() error {
			_, err := store.Get(context.Background(), scope.ID)
			return err
		},
	}
	if metrics != nil {
		srvCfg.MetricsHandler = metrics.Handler()
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 30*time.Second)
	if err := handler.Drain(drainCtx); err != nil {
		logger.Error(drainCtx, "Accepted deliveries not relayed: ", err)
	}
	cancelDrain()

	// 8. Deactivate
	if activated && cfg.Trigger.DeregisterOnShutdown {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		ok, err := uc.Deregister(shutdownCtx, scope)
		switch {
		case err != nil:
			logger.Error(shutdownCtx, "Failed to deregister webhook: ", err)
		case !ok:
			logger.Warn(shutdownCtx, "Webhook delete failed, id kept for the next shutdown")
		default:
			logger.Info(shutdownCtx, "Webhook deregistered")
		}
	}

	logger.Info(ctx, "Server stopped gracefully")
}
