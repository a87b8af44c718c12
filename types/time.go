package types

import (
	"fmt"
	"strings"
	"time"
)

// Time represents a time.Time object that can be unmarshalled from the
// zone-less ISO-8601 strings some exchanges emit, e.g.
// "2015-07-08T02:43:34.823". Zone-less values are interpreted as UTC.
type Time time.Time

var layouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// UnmarshalJSON deserializes timestamp information
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*t = Time(time.Time{})
		return nil
	}

	for _, layout := range layouts {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			*t = Time(parsed)
			return nil
		}
	}
	return fmt.Errorf("cannot unmarshal %s into Time", string(data))
}

// MarshalJSON serializes the time to json
func (t Time) MarshalJSON() ([]byte, error) {
	return t.Time().MarshalJSON()
}

// Time returns the underlying time instance
func (t Time) Time() time.Time { return time.Time(t) }

// String returns a string representation of the time
func (t Time) String() string {
	return t.Time().String()
}
