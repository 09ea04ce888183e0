package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel/shared/timezone"
)

// Date is a calendar day without time-of-day. The zero value means "unset".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: timezone.DateOf(t)}
}

// ParseDate accepts YYYY-MM-DD or a full ISO timestamp, keeping only the day part.
func ParseDate(value string) (Date, error) {
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		value = value[:i]
	}

	t, err := timezone.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	return timezone.FormatDate(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
