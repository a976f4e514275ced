package trigger

import (
	"context"

	"victoriaos-connector/internal/model"
)

// UseCase manages the remote webhook subscription owned by one trigger instance.
// The boolean results report the lifecycle outcome; errors are reserved for
// configuration and state-store failures.
type UseCase interface {
	// Verify reports whether the stored webhook still exists remotely.
	Verify(ctx context.Context, sc model.Scope) (bool, error)
	// Register creates the remote webhook and stores its identifier.
	Register(ctx context.Context, sc model.Scope, input RegisterInput) (bool, error)
	// Deregister deletes the remote webhook and clears the stored identifier.
	Deregister(ctx context.Context, sc model.Scope) (bool, error)
	// Activate verifies the stored webhook and registers a new one when needed.
	Activate(ctx context.Context, sc model.Scope, input RegisterInput) (ActivateOutput, error)
	// State returns the current lifecycle state.
	State(ctx context.Context, sc model.Scope) (State, error)
}
