package google

import (
	"encoding/json"
	"time"
)

// DateTime is an ISO 8601 timestamp as used by the Google Wallet API.
type DateTime struct {
	Date time.Time
}

// NewDateTime returns a DateTime for t.
func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Date: t}
}

type dateTimeJSON struct {
	Date string `json:"date"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateTimeJSON{Date: d.Date.Format(time.RFC3339)})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw dateTimeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Date == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, raw.Date)
	if err != nil {
		// Dates without an offset are local to the venue.
		t, err = time.Parse("2006-01-02T15:04:05", raw.Date)
		if err != nil {
			return err
		}
	}

	d.Date = t
	return nil
}
