package executor

import (
	"context"

	"victoriaos-connector/pkg/victoriaos"
)

// Host is what the surrounding runtime provides to a node run.
type Host interface {
	// Parameter resolves name for the item at itemIndex. When the parameter
	// is not set, fallback is returned; a nil fallback yields ErrParameterNotSet.
	Parameter(name string, itemIndex int, fallback any) (any, error)
	// Credentials returns the stored API credentials.
	Credentials(ctx context.Context) (victoriaos.Credentials, error)
	// HTTPCall performs an authenticated request against the selected base URL.
	HTTPCall(ctx context.Context, req victoriaos.Request) (*victoriaos.Response, error)
}
