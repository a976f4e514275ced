package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"victoriaos-connector/internal/trigger"
	pkgResponse "victoriaos-connector/pkg/response"
	"victoriaos-connector/pkg/victoriaos"
)

const maxBodyBytes = 1 << 20

// HandleCallback relays the raw callback body and acknowledges immediately.
// @Summary VictoriaOS webhook callback
// @Description Receives task events from VictoriaOS. The body is relayed unchanged.
// @Tags Trigger
// @Accept json
// @Produce json
// @Param payload body object true "Event payload"
// @Success 200 {object} response.Resp "Delivery accepted"
// @Failure 400 {object} response.Resp "Unreadable body"
// @Failure 403 {object} response.Resp "Source not allowed"
// @Failure 413 {object} response.Resp "Body too large, not relayed"
// @Failure 429 {object} response.Resp "Rate limit exceeded"
// @Router /webhook/victoriaos [post]
func (h *handler) HandleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "trigger.delivery.http.HandleCallback ValidateIPAddress: %v", err)
		pkgResponse.Forbidden(c)
		return
	}
	if err := h.security.CheckRateLimit(c.Request); err != nil {
		h.l.Warnf(ctx, "trigger.delivery.http.HandleCallback CheckRateLimit: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		h.l.Errorf(ctx, "trigger.delivery.http.HandleCallback ReadAll: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}
	if len(body) > maxBodyBytes {
		h.l.Warnf(ctx, "trigger.delivery.http.HandleCallback: body exceeds %d bytes, not relayed", maxBodyBytes)
		pkgResponse.PayloadTooLarge(c)
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		// Non-JSON bodies are relayed as a JSON string.
		quoted, err := json.Marshal(string(body))
		if err != nil {
			pkgResponse.Error(c, err, nil)
			return
		}
		body = quoted
	}

	d := trigger.Delivery{
		ID:         uuid.NewString(),
		ScopeID:    h.scope.ID,
		ReceivedAt: time.Now().UTC(),
		Payload:    json.RawMessage(body),
	}

	if h.async {
		h.inflight.Add(1)
		go func() {
			defer h.inflight.Done()
			h.relay(d)
		}()
	} else {
		h.relay(d)
	}

	pkgResponse.OK(c, acceptedResponse{
		Status:     "accepted",
		DeliveryID: d.ID,
		ReceivedAt: pkgResponse.NewDateTime(d.ReceivedAt),
	})
}

func (h *handler) relay(d trigger.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.sink.Deliver(ctx, d); err != nil {
		h.l.Errorf(ctx, "trigger.delivery.http.relay Deliver %s: %v", d.ID, err)
		return
	}
	h.l.Infof(ctx, "trigger.delivery.http.relay: delivery %s relayed (%d bytes)", d.ID, len(d.Payload))
}

// Drain waits for relays still in flight, or until ctx is done.
func (h *handler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain relays: %w", ctx.Err())
	}
}

// HandleStatus reports the stored webhook and whether it still exists remotely.
// @Summary Trigger status
// @Description Returns the lifecycle state of the trigger and verifies the stored webhook.
// @Tags Trigger
// @Produce json
// @Success 200 {object} response.Resp "Trigger state"
// @Failure 500 {object} response.Resp "State store failure"
// @Router /api/v1/trigger [get]
func (h *handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.uc.State(ctx, h.scope)
	if err != nil {
		h.l.Errorf(ctx, "trigger.delivery.http.HandleStatus State: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	exists, err := h.uc.Verify(ctx, h.scope)
	if err != nil {
		h.l.Errorf(ctx, "trigger.delivery.http.HandleStatus Verify: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, statusResponse{
		ScopeID:    h.scope.ID,
		State:      state.String(),
		WebhookID:  state.WebhookID,
		Registered: state.Registered,
		Verified:   exists,
		CheckedAt:  pkgResponse.NewDateTime(time.Now()),
	})
}

// HandleActivate registers the webhook unless the stored one still exists.
// @Summary Activate trigger
// @Description Verifies the stored webhook and registers a new one when it is gone.
// @Tags Trigger
// @Produce json
// @Success 200 {object} response.Resp "Trigger active"
// @Failure 400 {object} response.Resp "Invalid trigger configuration"
// @Failure 502 {object} response.Resp "VictoriaOS call failed"
// @Router /api/v1/trigger [post]
func (h *handler) HandleActivate(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Activate(ctx, h.scope, h.input)
	if err != nil {
		h.l.Errorf(ctx, "trigger.delivery.http.HandleActivate Activate: %v", err)
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, activateResponse{
		ScopeID:   h.scope.ID,
		WebhookID: out.WebhookID,
		Existing:  out.Existing,

		ActivatedAt: pkgResponse.NewDateTime(time.Now()),
	})
}

// HandleDeactivate deletes the registered webhook.
// @Summary Deactivate trigger
// @Description Deletes the stored webhook. A failed delete keeps the stored id.
// @Tags Trigger
// @Produce json
// @Success 200 {object} response.Resp "Trigger inactive"
// @Failure 502 {object} response.Resp "Webhook delete failed"
// @Router /api/v1/trigger [delete]
func (h *handler) HandleDeactivate(c *gin.Context) {
	ctx := c.Request.Context()

	ok, err := h.uc.Deregister(ctx, h.scope)
	if err != nil {
		h.l.Errorf(ctx, "trigger.delivery.http.HandleDeactivate Deregister: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	if !ok {
		pkgResponse.Upstream(c, errDeleteFailed)
		return
	}

	pkgResponse.OK(c, statusResponse{
		ScopeID:   h.scope.ID,
		State:     trigger.State{}.String(),
		CheckedAt: pkgResponse.NewDateTime(time.Now()),
	})
}

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trigger.ErrEmptyScope),
		errors.Is(err, trigger.ErrNoEvents),
		errors.Is(err, trigger.ErrInvalidEvent),
		errors.Is(err, trigger.ErrNoCallbackURL):
		pkgResponse.Error(c, err, nil)
	case errors.Is(err, trigger.ErrRegistrationFailed):
		pkgResponse.Upstream(c, err)
	default:
		var normalized *victoriaos.NormalizedError
		if errors.As(err, &normalized) {
			pkgResponse.Upstream(c, err)
			return
		}
		pkgResponse.InternalError(c, err)
	}
}
