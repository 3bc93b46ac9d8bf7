package message

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wire and storage format of insertion timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a UTC instant with second precision in TimestampLayout.
//
// Drivers hand the insertion column back in different shapes: MySQL with
// parseTime and Postgres return time.Time, SQLite returns time.Time for
// DATETIME columns and text otherwise. Scan folds all of them into the same
// string so callers never see a driver difference.
type Timestamp string

// NewTimestamp formats t in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(TimestampLayout))
}

func (t Timestamp) String() string {
	return string(t)
}

// Time parses the timestamp as UTC.
func (t Timestamp) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, string(t), time.UTC)
}

// Scan implements the sql.Scanner interface.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case []byte:
		return t.scanText(string(v))
	case string:
		return t.scanText(v)
	default:
		return fmt.Errorf("timestamp: unsupported scan type %T", value)
	}
}

var textLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
}

func (t *Timestamp) scanText(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range textLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("timestamp: cannot parse %q", s)
}

// Value implements the driver.Valuer interface.
func (t Timestamp) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}
