package victoriaos

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidID reports whether id is a canonical 8-4-4-4-12 hex UUID.
// Builders do not call it; it is an opt-in pre-flight check.
func ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	return uuid.Validate(id) == nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDate renders v as ISO-8601 UTC with millisecond precision.
// v may be a time.Time or a string in one of the common date layouts;
// strings without a zone are read as UTC.
func FormatDate(v any) (string, error) {
	switch t := v.(type) {
	case time.Time:
		return isoString(t), nil
	case *time.Time:
		if t == nil {
			return "", fmt.Errorf("invalid date: nil")
		}
		return isoString(*t), nil
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return isoString(parsed), nil
			}
		}
		return "", fmt.Errorf("invalid date: %q", t)
	default:
		return "", fmt.Errorf("invalid date: unsupported type %T", v)
	}
}

func isoString(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
