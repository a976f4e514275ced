// Package node defines the surfaces that expose the request builders: one
// resource-switch node and one node per resource.
package node

import (
	"context"
	"errors"
	"fmt"

	"victoriaos-connector/internal/executor"
	"victoriaos-connector/internal/operation"
	"victoriaos-connector/pkg/fields"
	"victoriaos-connector/pkg/log"
)

var (
	ErrUnknownNode     = errors.New("unknown node")
	ErrInvalidResource = errors.New("resource not available on this node")
)

// Node is a thin surface over the shared request builders.
type Node struct {
	Name        string
	DisplayName string
	Description string
	// Resources lists what the node can address. A node with a single
	// resource does not read the resource parameter.
	Resources []operation.Resource
}

// ResourceDescriptor describes one resource of a node.
type ResourceDescriptor struct {
	Name             operation.Resource    `json:"name" yaml:"name"`
	Operations       []operation.Operation `json:"operations" yaml:"operations"`
	DefaultOperation operation.Operation   `json:"defaultOperation" yaml:"defaultOperation"`
}

// Descriptor is the published shape of a node.
type Descriptor struct {
	Name        string               `json:"name" yaml:"name"`
	DisplayName string               `json:"displayName" yaml:"displayName"`
	Description string               `json:"description" yaml:"description"`
	Credential  string               `json:"credential" yaml:"credential"`
	Resources   []ResourceDescriptor `json:"resources" yaml:"resources"`
}

// CredentialName is the credential type every node requires.
const CredentialName = "victoriaOsApi"

var defaultOperations = map[operation.Resource]operation.Operation{
	operation.ResourceTasks:    operation.OpList,
	operation.ResourceWebhooks: operation.OpList,
	operation.ResourceUser:     operation.OpGetInfo,
}

// Descriptor describes n.
func (n Node) Descriptor() Descriptor {
	d := Descriptor{
		Name:        n.Name,
		DisplayName: n.DisplayName,
		Description: n.Description,
		Credential:  CredentialName,
	}
	for _, r := range n.Resources {
		d.Resources = append(d.Resources, ResourceDescriptor{
			Name:             r,
			Operations:       operation.Operations(r),
			DefaultOperation: defaultOperations[r],
		})
	}
	return d
}

// Target resolves resource and operation for one item. The resource
// parameter defaults to the node's first resource, the operation parameter
// to the resource's default operation.
func (n Node) Target() executor.Target {
	return func(p operation.Params) (operation.Resource, operation.Operation, error) {
		if len(n.Resources) == 0 {
			return "", "", fmt.Errorf("%w: %s has no resources", ErrInvalidResource, n.Name)
		}

		resource := n.Resources[0]
		if len(n.Resources) > 1 {
			if v, ok := p.Parameter(operation.ParamResource); ok && !fields.IsAbsent(v) {
				resource = operation.Resource(fields.Stringify(v))
			}
			if !n.has(resource) {
				return "", "", fmt.Errorf("%w: %s on %s", ErrInvalidResource, resource, n.Name)
			}
		}

		op := defaultOperations[resource]
		if v, ok := p.Parameter(operation.ParamOperation); ok && !fields.IsAbsent(v) {
			op = operation.Operation(fields.Stringify(v))
		}
		return resource, op, nil
	}
}

// Execute runs n over count items provided by host.
func (n Node) Execute(ctx context.Context, l log.Logger, host executor.Host, count int, opts executor.Options) ([]executor.Item, error) {
	return executor.New(l, host, opts).Run(ctx, count, n.Target())
}

func (n Node) has(r operation.Resource) bool {
	for _, known := range n.Resources {
		if known == r {
			return true
		}
	}
	return false
}
