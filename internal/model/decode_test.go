package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"victoriaos-connector/internal/model"
)

func decoded(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestUnwrap_BareBody(t *testing.T) {
	body := decoded(t, `{
		"tasks": [{"id":"t1","title":"Write","status":"todo","importance":0,"is_urgent":false}],
		"pagination": {"total": 1, "limit": 50, "offset": 0, "has_more": false}
	}`)

	list, err := model.Unwrap[model.TaskList](body)
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)

	task := list.Tasks[0]
	assert.Equal(t, model.TaskStatusTodo, task.Status)
	require.NotNil(t, task.Importance)
	assert.Equal(t, model.ImportanceLow, *task.Importance)
	require.NotNil(t, task.IsUrgent)
	assert.False(t, *task.IsUrgent)
	assert.Equal(t, 50, list.Pagination.Limit)
}

func TestUnwrap_Envelope(t *testing.T) {
	body := decoded(t, `{"success": true, "data": {"id":"u1","email":"a@b.c","subscription":{"plan":"pro","status":"active"}}}`)

	user, err := model.Unwrap[model.User](body)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
	assert.Equal(t, model.PlanPro, user.Subscription.Plan)
	assert.Equal(t, model.SubscriptionActive, user.Subscription.Status)
}

func TestUnwrap_FailedEnvelope(t *testing.T) {
	body := decoded(t, `{"success": false, "error": {"code":"NOT_FOUND","message":"gone"}}`)

	_, err := model.Unwrap[model.Webhook](body)
	require.ErrorIs(t, err, model.ErrEnvelopeFailed)
	assert.Contains(t, err.Error(), "[NOT_FOUND] gone")
}

func TestUnwrap_TypeMismatch(t *testing.T) {
	_, err := model.Unwrap[model.WebhookStats](decoded(t, `["not","an","object"]`))
	assert.Error(t, err)
}

func TestWebhookEventValid(t *testing.T) {
	for _, e := range model.WebhookEvents {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, model.WebhookEvent("task.moved").Valid())
}
