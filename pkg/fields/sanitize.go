package fields

import "reflect"

// IsAbsent reports whether v counts as "not provided": nil, a nil pointer,
// map or slice, or the empty string. Zero numbers and false are values.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Sanitize returns a new Fields without absent entries. Order is kept.
func Sanitize(f Fields) Fields {
	out := make(Fields, 0, len(f))
	for _, fd := range f {
		if IsAbsent(fd.Value) {
			continue
		}
		out = append(out, fd)
	}
	return out
}

// SanitizeMap is Sanitize for a plain map.
func SanitizeMap(m map[string]any) Fields {
	return Sanitize(FromMap(m))
}
