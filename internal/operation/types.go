package operation

import (
	"victoriaos-connector/pkg/fields"
	"victoriaos-connector/pkg/victoriaos"
)

// Resource is a remote entity category.
type Resource string

const (
	ResourceTasks    Resource = "tasks"
	ResourceWebhooks Resource = "webhooks"
	ResourceUser     Resource = "user"
)

// Operation is a verb within a resource.
type Operation string

const (
	OpList    Operation = "list"
	OpGet     Operation = "get"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpStats   Operation = "stats"
	OpGetInfo Operation = "getInfo"
)

// Parameter names read from a Params source.
const (
	ParamResource                = "resource"
	ParamOperation               = "operation"
	ParamTaskID                  = "taskId"
	ParamTitle                   = "title"
	ParamAdditionalFields        = "additionalFields"
	ParamUpdateFields            = "updateFields"
	ParamFilters                 = "filters"
	ParamWebhookID               = "webhookId"
	ParamURL                     = "url"
	ParamEvents                  = "events"
	ParamWebhookAdditionalFields = "webhookAdditionalFields"
	ParamWebhookUpdateFields     = "webhookUpdateFields"
	ParamOptions                 = "options"
)

// Params resolves the parameters of a single item.
type Params interface {
	// Parameter returns the raw value for name and whether it was set.
	Parameter(name string) (any, bool)
}

// ParamsFunc adapts a function to Params.
type ParamsFunc func(name string) (any, bool)

func (f ParamsFunc) Parameter(name string) (any, bool) { return f(name) }

// Request describes one HTTP call. Builders never perform it.
type Request struct {
	Method string
	// Path is relative and starts with exactly one slash.
	Path string
	// Query is "" or a "?k=v" suffix.
	Query string
	// Body is nil for requests without a payload.
	Body fields.Fields
}

// URL is Path followed by Query.
func (r Request) URL() string {
	return r.Path + r.Query
}

// APIRequest converts r into the transport form.
func (r Request) APIRequest() victoriaos.Request {
	req := victoriaos.Request{Method: r.Method, Path: r.URL()}
	if r.Body != nil {
		req.Body = r.Body
	}
	return req
}

// Key identifies one row of the builder table.
type Key struct {
	Resource  Resource
	Operation Operation
}

func (k Key) String() string {
	return string(k.Resource) + "." + string(k.Operation)
}
