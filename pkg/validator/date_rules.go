package validator

import (
	"strings"
	"time"
)

// timeLayouts are tried in order by the "time" rule.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
	time.TimeOnly,
	"15:04",
	"2006/01/02",
	"02.01.2006",
	"02.01.2006 15:04",
	"02.01.2006 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// validTime passes when the value parses with any supported layout.
func validTime(f Field, _ string) bool {
	if !f.Present {
		return false
	}
	_, ok := parseTime(f.Value)
	return ok
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
