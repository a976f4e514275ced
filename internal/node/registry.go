package node

import (
	"fmt"

	"victoriaos-connector/internal/operation"
)

// Surfaces published by this module.
var (
	VictoriaOS = Node{
		Name:        "victoriaOs",
		DisplayName: "VictoriaOS",
		Description: "Work with the VictoriaOS API: tasks, webhooks and user info",
		Resources:   []operation.Resource{operation.ResourceTasks, operation.ResourceWebhooks, operation.ResourceUser},
	}
	Tasks = Node{
		Name:        "tasks",
		DisplayName: "VictoriaOS Tasks",
		Description: "Manage tasks in VictoriaOS",
		Resources:   []operation.Resource{operation.ResourceTasks},
	}
	Webhooks = Node{
		Name:        "webhooks",
		DisplayName: "VictoriaOS Webhooks",
		Description: "Manage webhooks in VictoriaOS",
		Resources:   []operation.Resource{operation.ResourceWebhooks},
	}
	User = Node{
		Name:        "user",
		DisplayName: "VictoriaOS User",
		Description: "Get information about the authenticated VictoriaOS user",
		Resources:   []operation.Resource{operation.ResourceUser},
	}
)

// All returns every node in display order.
func All() []Node {
	return []Node{VictoriaOS, Tasks, Webhooks, User}
}

// Lookup finds a node by name.
func Lookup(name string) (Node, error) {
	for _, n := range All() {
		if n.Name == name {
			return n, nil
		}
	}
	return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
}
