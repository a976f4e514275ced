// Package fields holds the ordered key/value set used for request bodies and
// query strings, plus the sanitizer and query encoder that operate on it.
package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Field is a single key/value entry.
type Field struct {
	Key   string
	Value any
}

// Fields is an insertion-ordered set of fields. Keys are unique.
type Fields []Field

// New builds Fields from alternating key/value arguments. A trailing key
// without a value is ignored.
func New(kv ...any) Fields {
	var f Fields
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f = f.Set(key, kv[i+1])
	}
	return f
}

// FromMap converts m into Fields. Map iteration order is random, so keys are
// sorted to keep the result deterministic.
func FromMap(m map[string]any) Fields {
	if len(m) == 0 {
		return Fields{}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := make(Fields, 0, len(keys))
	for _, k := range keys {
		f = append(f, Field{Key: k, Value: m[k]})
	}
	return f
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	for _, fd := range f {
		if fd.Key == key {
			return fd.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (f Fields) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (f Fields) Set(key string, value any) Fields {
	for i := range f {
		if f[i].Key == key {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Key: key, Value: value})
}

// Merge returns a copy of f with every entry of other applied on top, the
// same way an object spread overrides earlier keys.
func (f Fields) Merge(other Fields) Fields {
	out := f.Clone()
	for _, fd := range other {
		out = out.Set(fd.Key, fd.Value)
	}
	return out
}

// Clone returns a shallow copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// Keys returns the keys in order.
func (f Fields) Keys() []string {
	keys := make([]string, len(f))
	for i, fd := range f {
		keys[i] = fd.Key
	}
	return keys
}

// Map returns the fields as a plain map.
func (f Fields) Map() map[string]any {
	m := make(map[string]any, len(f))
	for _, fd := range f {
		m[fd.Key] = fd.Value
	}
	return m
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fd := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fd.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(fd.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("fields: expected JSON object")
	}

	out := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out = out.Set(key, normalizeNumber(v))
	}
	*f = out
	return nil
}

func normalizeNumber(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if fl, err := t.Float64(); err == nil {
			return fl
		}
		return t.String()
	case []any:
		for i := range t {
			t[i] = normalizeNumber(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeNumber(t[k])
		}
		return t
	default:
		return v
	}
}
