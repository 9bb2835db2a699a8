package convert

import (
	"time"
)

// EpochSeconder is accepted as a last-resort time representation: any
// value that can report itself as Unix seconds.
type EpochSeconder interface {
	Unix() int64
}

// isoLayouts are tried in order for string time values. Zone-less layouts
// are parsed in UTC, never local time.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToUnixSeconds coerces a time value to integer Unix seconds (UTC).
// Integers pass through, floats truncate toward zero, ISO-8601 strings
// parse (a trailing "Z" or explicit offset is honored, zone-less values
// are assumed UTC), and time.Time values convert directly. Anything else
// must implement EpochSeconder or an UnsupportedTimeTypeError is returned.
func ToUnixSeconds(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return parseISOString(v)
	case time.Time:
		return v.Unix(), nil
	}

	if es, ok := value.(EpochSeconder); ok {
		return es.Unix(), nil
	}

	return 0, &UnsupportedTimeTypeError{Value: value}
}

// parseISOString parses an ISO-8601 date or datetime string to Unix seconds.
func parseISOString(s string) (int64, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, &UnsupportedTimeTypeError{Value: s}
}
