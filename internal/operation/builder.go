// Package operation maps a (resource, operation) pair and its parameters to
// an HTTP request descriptor for the VictoriaOS REST API.
package operation

import (
	"fmt"
	"net/http"
	"sort"

	"victoriaos-connector/pkg/fields"
)

type buildFunc func(p Params) (Request, error)

var builders = map[Key]buildFunc{
	{ResourceTasks, OpList}:   listTasks,
	{ResourceTasks, OpGet}:    byID(ResourceTasks, ParamTaskID, http.MethodGet, ""),
	{ResourceTasks, OpCreate}: createTask,
	{ResourceTasks, OpUpdate}: updateTask,
	{ResourceTasks, OpDelete}: byID(ResourceTasks, ParamTaskID, http.MethodDelete, ""),

	{ResourceWebhooks, OpList}:   listWebhooks,
	{ResourceWebhooks, OpGet}:    byID(ResourceWebhooks, ParamWebhookID, http.MethodGet, ""),
	{ResourceWebhooks, OpCreate}: createWebhook,
	{ResourceWebhooks, OpUpdate}: updateWebhook,
	{ResourceWebhooks, OpDelete}: byID(ResourceWebhooks, ParamWebhookID, http.MethodDelete, ""),
	{ResourceWebhooks, OpStats}:  byID(ResourceWebhooks, ParamWebhookID, http.MethodGet, "/stats"),

	{ResourceUser, OpGetInfo}: getUserInfo,
}

// idParams names the identifier parameter each row places in its path.
var idParams = map[Key]string{
	{ResourceTasks, OpGet}:    ParamTaskID,
	{ResourceTasks, OpUpdate}: ParamTaskID,
	{ResourceTasks, OpDelete}: ParamTaskID,

	{ResourceWebhooks, OpGet}:    ParamWebhookID,
	{ResourceWebhooks, OpUpdate}: ParamWebhookID,
	{ResourceWebhooks, OpDelete}: ParamWebhookID,
	{ResourceWebhooks, OpStats}:  ParamWebhookID,
}

// IDParameter returns the identifier parameter resource/op consumes, if any.
func IDParameter(resource Resource, op Operation) (string, bool) {
	name, ok := idParams[Key{resource, op}]
	return name, ok
}

// Build returns the request for resource/op using the parameters in p.
func Build(resource Resource, op Operation, p Params) (Request, error) {
	fn, ok := builders[Key{resource, op}]
	if !ok {
		return Request{}, fmt.Errorf("%w: %s.%s", ErrUnknownOperation, resource, op)
	}
	req, err := fn(p)
	if err != nil {
		return Request{}, fmt.Errorf("%s.%s: %w", resource, op, err)
	}
	return req, nil
}

// Supported reports whether resource/op has a builder.
func Supported(resource Resource, op Operation) bool {
	_, ok := builders[Key{resource, op}]
	return ok
}

// Operations lists the operations available for resource, sorted.
func Operations(resource Resource) []Operation {
	var ops []Operation
	for k := range builders {
		if k.Resource == resource {
			ops = append(ops, k.Operation)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

func byID(resource Resource, param, method, suffix string) buildFunc {
	return func(p Params) (Request, error) {
		id, err := requiredString(p, param)
		if err != nil {
			return Request{}, err
		}
		return Request{Method: method, Path: "/" + string(resource) + "/" + id + suffix}, nil
	}
}

func listTasks(p Params) (Request, error) {
	filters, err := optionalFields(p, ParamFilters)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Method: http.MethodGet,
		Path:   "/tasks",
		Query:  fields.Query(fields.Sanitize(filters)),
	}, nil
}

func createTask(p Params) (Request, error) {
	title, err := requiredString(p, ParamTitle)
	if err != nil {
		return Request{}, err
	}
	extra, err := optionalFields(p, ParamAdditionalFields)
	if err != nil {
		return Request{}, err
	}
	body, err := formatTaskDates(fields.Sanitize(fields.New("title", title).Merge(extra)))
	if err != nil {
		return Request{}, err
	}
	return Request{Method: http.MethodPost, Path: "/tasks", Body: body}, nil
}

func updateTask(p Params) (Request, error) {
	id, err := requiredString(p, ParamTaskID)
	if err != nil {
		return Request{}, err
	}
	update, err := optionalFields(p, ParamUpdateFields)
	if err != nil {
		return Request{}, err
	}
	body, err := formatTaskDates(fields.Sanitize(update))
	if err != nil {
		return Request{}, err
	}
	return Request{Method: http.MethodPatch, Path: "/tasks/" + id, Body: body}, nil
}

func listWebhooks(p Params) (Request, error) {
	opts, err := optionalFields(p, ParamOptions)
	if err != nil {
		return Request{}, err
	}
	paging := fields.Fields{}
	for _, key := range []string{"limit", "offset"} {
		if v, ok := opts.Get(key); ok {
			paging = paging.Set(key, v)
		}
	}
	return Request{
		Method: http.MethodGet,
		Path:   "/webhooks",
		Query:  fields.Query(fields.Sanitize(paging)),
	}, nil
}

func createWebhook(p Params) (Request, error) {
	url, err := requiredString(p, ParamURL)
	if err != nil {
		return Request{}, err
	}
	events, err := requiredEvents(p, ParamEvents)
	if err != nil {
		return Request{}, err
	}
	extra, err := optionalFields(p, ParamWebhookAdditionalFields)
	if err != nil {
		return Request{}, err
	}
	body := fields.Sanitize(fields.New("url", url, "events", events).Merge(extra))
	return Request{Method: http.MethodPost, Path: "/webhooks", Body: body}, nil
}

func updateWebhook(p Params) (Request, error) {
	id, err := requiredString(p, ParamWebhookID)
	if err != nil {
		return Request{}, err
	}
	update, err := optionalFields(p, ParamWebhookUpdateFields)
	if err != nil {
		return Request{}, err
	}
	return Request{Method: http.MethodPatch, Path: "/webhooks/" + id, Body: fields.Sanitize(update)}, nil
}

func getUserInfo(Params) (Request, error) {
	return Request{Method: http.MethodGet, Path: "/users/me"}, nil
}
