// Package host runs nodes outside a workflow engine: parameters come from a
// job file, credentials from configuration and HTTP goes through the API client.
package host

import (
	"context"
	"fmt"

	"victoriaos-connector/internal/executor"
	"victoriaos-connector/pkg/victoriaos"
)

// APIClient is the transport the host delegates to.
type APIClient interface {
	Do(ctx context.Context, req victoriaos.Request) (*victoriaos.Response, error)
}

// Host implements executor.Host for a single Job.
type Host struct {
	job    Job
	creds  victoriaos.Credentials
	client APIClient
}

// New creates a Host. The client is expected to be bound to creds.
func New(job Job, creds victoriaos.Credentials, client APIClient) (*Host, error) {
	if client == nil {
		return nil, ErrNoClient
	}
	return &Host{job: job, creds: creds, client: client}, nil
}

// Parameter looks in the item first, then in the job parameters.
func (h *Host) Parameter(name string, itemIndex int, fallback any) (any, error) {
	if itemIndex < 0 || itemIndex >= h.job.ItemCount() {
		return nil, fmt.Errorf("%w: %d", ErrItemOutOfRange, itemIndex)
	}
	if itemIndex < len(h.job.Items) {
		if v, ok := h.job.Items[itemIndex].Get(name); ok && v != nil {
			return v, nil
		}
	}
	if v, ok := h.job.Parameters.Get(name); ok && v != nil {
		return v, nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, executor.ErrParameterNotSet
}

func (h *Host) Credentials(context.Context) (victoriaos.Credentials, error) {
	if err := h.creds.Validate(); err != nil {
		return victoriaos.Credentials{}, err
	}
	return h.creds, nil
}

func (h *Host) HTTPCall(ctx context.Context, req victoriaos.Request) (*victoriaos.Response, error) {
	return h.client.Do(ctx, req)
}

// Options returns the executor options declared by the job.
func (h *Host) Options() executor.Options {
	return executor.Options{
		ContinueOnFail: h.job.ContinueOnFail,
		ValidateIDs:    h.job.ValidateIDs,
	}
}

// Job returns the job the host serves.
func (h *Host) Job() Job {
	return h.job
}
