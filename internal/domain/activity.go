package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Counter is a numeric value the instance reports as a JSON string.
// Bare numbers and null are accepted too, to survive schema drift.
type Counter string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Counter) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Counter(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			// booleans, objects and arrays read as unparsable
			*c = ""
			return nil
		}
		*c = Counter(n.String())
		return nil
	}
}

// Float parses the counter, falling back to zero when it is not a finite number.
func (c Counter) Float() float64 {
	v, err := strconv.ParseFloat(string(c), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// WeeklyActivity is one week of usage counters as reported by
// GET /api/v1/instance/activity.
type WeeklyActivity struct {
	Week          string  `json:"week"`
	Statuses      Counter `json:"statuses"`
	Logins        Counter `json:"logins"`
	Registrations Counter `json:"registrations"`
}

// ActivityHistory keeps the order the instance returned.
type ActivityHistory []WeeklyActivity
