package usecase

import (
	"context"
	"fmt"

	"victoriaos-connector/internal/model"
	"victoriaos-connector/internal/operation"
	"victoriaos-connector/internal/trigger"
	"victoriaos-connector/pkg/fields"
	"victoriaos-connector/pkg/victoriaos"
)

// Verify is false without a request when nothing is stored. Any API failure,
// 404 included, counts as "does not exist" and leaves the stored id alone.
func (uc *implUseCase) Verify(ctx context.Context, sc model.Scope) (bool, error) {
	id, err := uc.storedID(ctx, sc)
	if err != nil {
		return false, err
	}
	if id == "" {
		return false, nil
	}

	req, err := operation.Build(operation.ResourceWebhooks, operation.OpGet, operation.MapParams{
		operation.ParamWebhookID: id,
	})
	if err != nil {
		return false, err
	}
	resp, err := uc.api.Do(ctx, req.APIRequest())
	if err != nil {
		uc.l.Warnf(ctx, "uc.Verify Do %s: %v", id, victoriaos.Normalize(err))
		return false, nil
	}
	if resp != nil {
		if wh, err := model.Unwrap[model.Webhook](resp.Data); err == nil {
			uc.l.Debugf(ctx, "uc.Verify: webhook %s active=%v events=%v", id, wh.Active, wh.Events)
		}
	}
	return true, nil
}

// Register is false, with state untouched, when the response has no id.
func (uc *implUseCase) Register(ctx context.Context, sc model.Scope, input trigger.RegisterInput) (bool, error) {
	if sc.ID == "" {
		return false, trigger.ErrEmptyScope
	}
	if err := trigger.ValidateEvents(input.Events); err != nil {
		return false, err
	}
	if uc.resolver == nil {
		return false, trigger.ErrNoCallbackURL
	}
	url, err := uc.resolver(sc)
	if err != nil {
		return false, err
	}

	description := input.Description
	if description == "" {
		description = trigger.DefaultDescription(sc.WorkflowName)
	}

	events := make([]string, 0, len(input.Events))
	for _, e := range input.Events {
		events = append(events, string(e))
	}

	req, err := operation.Build(operation.ResourceWebhooks, operation.OpCreate, operation.MapParams{
		operation.ParamURL:                     url,
		operation.ParamEvents:                  events,
		operation.ParamWebhookAdditionalFields: fields.New("description", description, "active", true),
	})
	if err != nil {
		return false, err
	}

	resp, err := uc.api.Do(ctx, req.APIRequest())
	if err != nil {
		normalized := victoriaos.Normalize(err)
		uc.l.Errorf(ctx, "uc.Register Do: %v", normalized)
		return false, normalized
	}

	id := webhookID(resp)
	if id == "" {
		uc.l.Warnf(ctx, "uc.Register: response without webhook id")
		return false, nil
	}

	if err := uc.store.Set(ctx, sc.ID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Register Set: %v", err)
		return false, err
	}
	uc.l.Infof(ctx, "uc.Register: webhook %s registered for %s", id, sc.ID)
	return true, nil
}

// Deregister is a no-op when nothing is stored. A failed delete keeps the
// stored id so the remote webhook is never orphaned.
func (uc *implUseCase) Deregister(ctx context.Context, sc model.Scope) (bool, error) {
	id, err := uc.storedID(ctx, sc)
	if err != nil {
		return false, err
	}
	if id == "" {
		return true, nil
	}

	req, err := operation.Build(operation.ResourceWebhooks, operation.OpDelete, operation.MapParams{
		operation.ParamWebhookID: id,
	})
	if err != nil {
		return false, err
	}
	if _, err := uc.api.Do(ctx, req.APIRequest()); err != nil {
		uc.l.Errorf(ctx, "uc.Deregister Do %s: %v", id, victoriaos.Normalize(err))
		return false, nil
	}

	if err := uc.store.Clear(ctx, sc.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Deregister Clear: %v", err)
		return false, err
	}
	uc.l.Infof(ctx, "uc.Deregister: webhook %s removed for %s", id, sc.ID)
	return true, nil
}

func (uc *implUseCase) Activate(ctx context.Context, sc model.Scope, input trigger.RegisterInput) (trigger.ActivateOutput, error) {
	exists, err := uc.Verify(ctx, sc)
	if err != nil {
		return trigger.ActivateOutput{}, err
	}
	if exists {
		id, err := uc.storedID(ctx, sc)
		if err != nil {
			return trigger.ActivateOutput{}, err
		}
		return trigger.ActivateOutput{Existing: true, WebhookID: id}, nil
	}

	ok, err := uc.Register(ctx, sc, input)
	if err != nil {
		return trigger.ActivateOutput{}, err
	}
	if !ok {
		return trigger.ActivateOutput{}, trigger.ErrRegistrationFailed
	}

	id, err := uc.storedID(ctx, sc)
	if err != nil {
		return trigger.ActivateOutput{}, err
	}
	return trigger.ActivateOutput{WebhookID: id}, nil
}

func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (trigger.State, error) {
	id, err := uc.storedID(ctx, sc)
	if err != nil {
		return trigger.State{}, err
	}
	return trigger.State{Registered: id != "", WebhookID: id}, nil
}

func (uc *implUseCase) storedID(ctx context.Context, sc model.Scope) (string, error) {
	if sc.ID == "" {
		return "", trigger.ErrEmptyScope
	}
	id, err := uc.store.Get(ctx, sc.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.storedID Get: %v", err)
		return "", fmt.Errorf("read webhook id: %w", err)
	}
	return id, nil
}

// webhookID reads the top-level "id" of a creation response.
func webhookID(resp *victoriaos.Response) string {
	if resp == nil {
		return ""
	}
	obj, ok := resp.Data.(map[string]any)
	if !ok {
		return ""
	}
	v, ok := obj["id"]
	if !ok || fields.IsAbsent(v) {
		return ""
	}
	return fields.Stringify(v)
}
