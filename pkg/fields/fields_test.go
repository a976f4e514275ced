package fields_test

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"victoriaos-connector/pkg/fields"
)

func TestSanitize(t *testing.T) {
	var nilPtr *string
	in := fields.New(
		"zero", 0,
		"no", false,
		"name", "write docs",
		"undefined", nilPtr,
		"null", nil,
		"empty", "",
	)

	got := fields.Sanitize(in)

	want := []string{"zero", "no", "name"}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %d: %+v", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("position %d: expected %q, got %q", i, k, got[i].Key)
		}
	}
	if v, _ := got.Get("zero"); v != 0 {
		t.Errorf("zero must be kept as 0, got %v", v)
	}
	if v, _ := got.Get("no"); v != false {
		t.Errorf("false must be kept, got %v", v)
	}

	// input untouched
	if len(in) != 6 {
		t.Errorf("input mutated: %+v", in)
	}
}

func TestSanitize_Empty(t *testing.T) {
	got := fields.Sanitize(fields.Fields{})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil fields, got %#v", got)
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		in   fields.Fields
		want string
	}{
		{"empty", fields.Fields{}, ""},
		{"nil", nil, ""},
		{"insertion order", fields.New("a", 1, "b", "x"), "?a=1&b=x"},
		{"reverse order kept", fields.New("b", "x", "a", 1), "?b=x&a=1"},
		{"stray empties skipped", fields.New("a", "", "b", nil, "c", 0), "?c=0"},
		{"only empties", fields.New("a", ""), ""},
		{"bool and float", fields.New("is_urgent", false, "limit", 50.0), "?is_urgent=false&limit=50"},
		{"escaping", fields.New("q", "a b&c=d", "k/y", "ñ"), "?q=a+b%26c%3Dd&k%2Fy=%C3%B1"},
		{"list", fields.New("events", []any{"task.created", "task.deleted"}), "?events=task.created%2Ctask.deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fields.Query(tt.in); got != tt.want {
				t.Errorf("Query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeOverridesInPlace(t *testing.T) {
	base := fields.New("title", "from param", "status", "todo")
	extra := fields.New("title", "from extra", "importance", 2)

	got := base.Merge(extra)

	if keys := got.Keys(); len(keys) != 3 || keys[0] != "title" || keys[2] != "importance" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	if v, _ := got.Get("title"); v != "from extra" {
		t.Errorf("expected extra to override title, got %v", v)
	}
	if v, _ := base.Get("title"); v != "from param" {
		t.Errorf("base mutated: %v", v)
	}
}

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	raw := []byte(`{"url":"https://x","events":["task.created"],"active":true,"limit":5}`)

	var f fields.Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if keys := f.Keys(); keys[0] != "url" || keys[3] != "limit" {
		t.Fatalf("unexpected order: %v", keys)
	}
	if v, _ := f.Get("limit"); v != int64(5) {
		t.Errorf("expected int64 5, got %T %v", v, v)
	}

	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != string(raw) {
		t.Errorf("expected %s, got %s", raw, out)
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	f := fields.FromMap(map[string]any{"offset": 0, "limit": 10, "has_more": false})
	keys := f.Keys()
	if keys[0] != "has_more" || keys[1] != "limit" || keys[2] != "offset" {
		t.Errorf("unexpected order: %v", keys)
	}
}

func TestYAMLKeepsOrderAndNests(t *testing.T) {
	doc := []byte("zeta: 1\nalpha: x\nextra:\n  b: true\n  a: \"\"\nlist: [1, two]\n")

	var f fields.Fields
	if err := yaml.Unmarshal(doc, &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got, want := strings.Join(f.Keys(), ","), "zeta,alpha,extra,list"; got != want {
		t.Fatalf("keys = %q, want %q", got, want)
	}

	extra, _ := f.Get("extra")
	nested, ok := extra.(fields.Fields)
	if !ok {
		t.Fatalf("extra = %T, want fields.Fields", extra)
	}
	if got, want := strings.Join(nested.Keys(), ","), "b,a"; got != want {
		t.Fatalf("nested keys = %q, want %q", got, want)
	}
	if got := fields.Sanitize(nested); len(got) != 1 || got[0].Key != "b" {
		t.Fatalf("sanitized nested = %v", got)
	}

	list, _ := f.Get("list")
	if items, ok := list.([]any); !ok || len(items) != 2 || items[1] != "two" {
		t.Fatalf("list = %#v", list)
	}
}

func TestYAMLRejectsScalar(t *testing.T) {
	var f fields.Fields
	if err := yaml.Unmarshal([]byte("just text"), &f); err == nil {
		t.Fatal("expected error for scalar document")
	}
}
