package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

const (
	NotProvided = "Not provided"
	InvalidDate = "Invalid date"
)

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend date as "January 2, 2006". Date-only values
// are taken as calendar dates, without any time zone shift.
func FormatDate(s string) string {
	if s == "" {
		return NotProvided
	}
	t, ok := parseDate(s)
	if !ok {
		return InvalidDate
	}
	return t.Format("January 2, 2006")
}

// Date is a backend timestamp kept in its textual form. Epoch
// milliseconds, the backend's default date encoding, are normalised to
// RFC 3339 in UTC.
type Date string

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Date(s)
		return nil
	}
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*d = Date(time.UnixMilli(ms).UTC().Format(time.RFC3339))
	return nil
}

func (d Date) String() string {
	return string(d)
}

// Format renders d with FormatDate.
func (d Date) Format() string {
	return FormatDate(string(d))
}

// DateOnly returns d as YYYY-MM-DD, the form the edit inputs expect.
// Unparsable values are returned unchanged.
func (d Date) DateOnly() string {
	t, ok := parseDate(string(d))
	if !ok {
		return string(d)
	}
	return t.Format(dateLayout)
}
