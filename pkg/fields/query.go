package fields

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query encodes f as a query suffix: "" when nothing remains, otherwise "?"
// followed by key=value pairs in order. Absent values are skipped.
func Query(f Fields) string {
	var sb strings.Builder
	for _, fd := range f {
		if IsAbsent(fd.Value) {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(fd.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(Stringify(fd.Value)))
	}
	return sb.String()
}

// Stringify renders v the way a query parameter expects it: numbers in their
// shortest form, booleans as true/false, lists joined by commas.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", t)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format("2006-01-02T15:04:05.000Z")
	case fmt.Stringer:
		return t.String()
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
