package database

import (
	"fmt"
	"time"
)

// TimestampLayout is the on-disk encoding of file.time_created: the UTC
// instant with nine fractional digits, e.g. 2024-01-15T10:30:00.000000000Z.
// Rows written by the first release of the tool use the same text.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// legacyTimestampLayout is the older binding form, which separates the
// nanoseconds with a colon: 2024-01-15 10:30:00:000000000 UTC.
// The colon is rewritten to a dot before parsing.
const legacyTimestampLayout = "2006-01-02 15:04:05.000000000 MST"

// FormatTimestamp encodes t for the time_created column.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp decodes a time_created value written by FormatTimestamp or
// by an older release.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	if len(s) > 20 && s[10] == ' ' && s[19] == ':' {
		if t, err := time.Parse(legacyTimestampLayout, s[:19]+"."+s[20:]); err == nil {
			return t.UTC(), nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
