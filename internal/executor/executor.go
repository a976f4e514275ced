// Package executor runs a node over a batch of input items, one request per
// item, strictly in order.
package executor

import (
	"context"
	"errors"
	"fmt"

	"victoriaos-connector/internal/operation"
	"victoriaos-connector/pkg/log"
	"victoriaos-connector/pkg/victoriaos"
)

// Executor runs the per-item request loop.
type Executor struct {
	l    log.Logger
	host Host
	opts Options
}

// New creates an Executor.
func New(l log.Logger, host Host, opts Options) *Executor {
	if l == nil {
		l = log.NewNop()
	}
	return &Executor{l: l, host: host, opts: opts}
}

// Run processes count items. Output items keep the input order; an array
// response contributes one output item per element.
func (e *Executor) Run(ctx context.Context, count int, target Target) ([]Item, error) {
	if e.host == nil {
		return nil, ErrNoHost
	}
	if _, err := e.host.Credentials(ctx); err != nil {
		e.l.Errorf(ctx, "executor.Run Credentials: %v", err)
		return nil, fmt.Errorf("credentials: %w", err)
	}

	out := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := e.runItem(ctx, i, target)
		if err != nil {
			normalized := victoriaos.Normalize(err)
			if e.opts.ContinueOnFail {
				e.l.Warnf(ctx, "executor.Run item %d: %v", i, normalized)
				out = append(out, Item{JSON: map[string]any{"error": normalized.Error()}, PairedItem: i})
				continue
			}
			e.l.Errorf(ctx, "executor.Run item %d: %v", i, normalized)
			return nil, normalized
		}

		out = append(out, frame(data, i)...)
	}
	return out, nil
}

func (e *Executor) runItem(ctx context.Context, i int, target Target) (any, error) {
	p := &itemParams{host: e.host, index: i}

	resource, op, err := target(p)
	if err == nil {
		err = p.err
	}
	if err != nil {
		return nil, err
	}

	req, err := operation.Build(resource, op, p)
	if err == nil {
		err = p.err
	}
	if err != nil {
		return nil, err
	}

	if e.opts.ValidateIDs {
		if err := validateID(p, resource, op); err != nil {
			return nil, err
		}
	}

	resp, err := e.host.HTTPCall(ctx, req.APIRequest())
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Data, nil
}

// frame turns a response body into output items. Empty bodies become {}.
func frame(data any, i int) []Item {
	switch t := data.(type) {
	case nil:
		return []Item{{JSON: map[string]any{}, PairedItem: i}}
	case []any:
		items := make([]Item, 0, len(t))
		for _, el := range t {
			items = append(items, Item{JSON: el, PairedItem: i})
		}
		return items
	default:
		return []Item{{JSON: data, PairedItem: i}}
	}
}

// validateID checks the identifier the operation puts in its path. Other
// identifier parameters of the item are ignored.
func validateID(p operation.Params, resource operation.Resource, op operation.Operation) error {
	name, ok := operation.IDParameter(resource, op)
	if !ok {
		return nil
	}
	v, _ := p.Parameter(name)
	id, _ := v.(string)
	if !victoriaos.ValidID(id) {
		return fmt.Errorf("%w: %s %q", ErrInvalidID, name, id)
	}
	return nil
}

// itemParams exposes the host parameters of one item as operation.Params.
// Resolution errors other than "not set" are kept for the caller.
type itemParams struct {
	host  Host
	index int
	err   error
}

func (p *itemParams) Parameter(name string) (any, bool) {
	v, err := p.host.Parameter(name, p.index, nil)
	if err != nil {
		if !errors.Is(err, ErrParameterNotSet) && p.err == nil {
			p.err = fmt.Errorf("parameter %s: %w", name, err)
		}
		return nil, false
	}
	return v, v != nil
}
