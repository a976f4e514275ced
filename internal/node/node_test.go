package node_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"victoriaos-connector/internal/executor"
	"victoriaos-connector/internal/node"
	"victoriaos-connector/internal/operation"
	"victoriaos-connector/pkg/victoriaos"
)

type recordingHost struct {
	params []map[string]any
	paths  []string
}

func (h *recordingHost) Parameter(name string, i int, fallback any) (any, error) {
	if v, ok := h.params[i][name]; ok {
		return v, nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, executor.ErrParameterNotSet
}

func (h *recordingHost) Credentials(context.Context) (victoriaos.Credentials, error) {
	return victoriaos.Credentials{APIKey: "k"}, nil
}

func (h *recordingHost) HTTPCall(_ context.Context, req victoriaos.Request) (*victoriaos.Response, error) {
	h.paths = append(h.paths, req.Method+" "+req.Path)
	return &victoriaos.Response{StatusCode: 200, Data: map[string]any{"ok": true}}, nil
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name     string
		node     node.Node
		params   operation.MapParams
		resource operation.Resource
		op       operation.Operation
		wantErr  error
	}{
		{"switch defaults", node.VictoriaOS, nil, operation.ResourceTasks, operation.OpList, nil},
		{"switch picks resource", node.VictoriaOS, operation.MapParams{"resource": "webhooks", "operation": "stats"}, operation.ResourceWebhooks, operation.OpStats, nil},
		{"user default operation", node.VictoriaOS, operation.MapParams{"resource": "user"}, operation.ResourceUser, operation.OpGetInfo, nil},
		{"switch rejects unknown", node.VictoriaOS, operation.MapParams{"resource": "projects"}, "", "", node.ErrInvalidResource},
		{"single resource ignores resource param", node.Tasks, operation.MapParams{"resource": "webhooks", "operation": "get"}, operation.ResourceTasks, operation.OpGet, nil},
		{"user node", node.User, nil, operation.ResourceUser, operation.OpGetInfo, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource, op, err := tt.node.Target()(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.resource, resource)
			assert.Equal(t, tt.op, op)
		})
	}
}

func TestSurfacesShareBuilders(t *testing.T) {
	params := map[string]any{"taskId": "t-1", "resource": "tasks", "operation": "get"}

	for _, n := range []node.Node{node.VictoriaOS, node.Tasks} {
		host := &recordingHost{params: []map[string]any{params}}
		out, err := n.Execute(context.Background(), nil, host, 1, executor.Options{})
		require.NoError(t, err, n.Name)
		require.Len(t, out, 1)
		assert.Equal(t, []string{"GET /tasks/t-1"}, host.paths, n.Name)
	}
}

func TestLookupAndDescriptor(t *testing.T) {
	n, err := node.Lookup("webhooks")
	require.NoError(t, err)

	d := n.Descriptor()
	assert.Equal(t, node.CredentialName, d.Credential)
	require.Len(t, d.Resources, 1)
	assert.Equal(t, operation.OpList, d.Resources[0].DefaultOperation)
	assert.Contains(t, d.Resources[0].Operations, operation.OpStats)

	_, err = node.Lookup("nope")
	assert.ErrorIs(t, err, node.ErrUnknownNode)

	assert.Len(t, node.VictoriaOS.Descriptor().Resources, 3)
}
