package operation

import (
	"fmt"
	"strings"
	"time"

	"victoriaos-connector/pkg/fields"
	"victoriaos-connector/pkg/victoriaos"
)

// MapParams is a Params backed by a plain map.
type MapParams map[string]any

func (m MapParams) Parameter(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// FieldsParams is a Params backed by an ordered field set.
type FieldsParams fields.Fields

func (f FieldsParams) Parameter(name string) (any, bool) {
	return fields.Fields(f).Get(name)
}

// requiredString returns the string parameter name. Identifiers are not
// validated or escaped.
func requiredString(p Params, name string) (string, error) {
	v, ok := p.Parameter(name)
	if !ok || fields.IsAbsent(v) {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return fields.Stringify(v), nil
	}
}

// optionalFields returns the collection parameter name, or an empty set.
func optionalFields(p Params, name string) (fields.Fields, error) {
	v, ok := p.Parameter(name)
	if !ok || v == nil {
		return fields.Fields{}, nil
	}
	f, err := toFields(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, name, err)
	}
	return f, nil
}

func toFields(v any) (fields.Fields, error) {
	switch t := v.(type) {
	case fields.Fields:
		return t.Clone(), nil
	case map[string]any:
		return fields.FromMap(t), nil
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = val
		}
		return fields.FromMap(m), nil
	default:
		return nil, fmt.Errorf("expected a collection, got %T", v)
	}
}

// requiredEvents accepts a list or a comma-separated string.
func requiredEvents(p Params, name string) ([]string, error) {
	v, ok := p.Parameter(name)
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}

	var events []string
	switch t := v.(type) {
	case []string:
		events = append(events, t...)
	case []any:
		for _, e := range t {
			events = append(events, fields.Stringify(e))
		}
	case string:
		for _, e := range strings.Split(t, ",") {
			if e = strings.TrimSpace(e); e != "" {
				events = append(events, e)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s: expected a list, got %T", ErrInvalidParameter, name, v)
	}
	if events == nil {
		events = []string{}
	}
	return events, nil
}

// formatTaskDates renders time values of the task date fields as ISO-8601.
func formatTaskDates(f fields.Fields) (fields.Fields, error) {
	for _, key := range []string{"due_date", "scheduled_date"} {
		v, ok := f.Get(key)
		if !ok {
			continue
		}
		switch v.(type) {
		case time.Time, *time.Time:
			s, err := victoriaos.FormatDate(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, key, err)
			}
			f = f.Set(key, s)
		}
	}
	return f, nil
}
