package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel/shared/constant"
	"hotel/shared/timezone"
)

// Timestamp is an instant sent as RFC 3339. Date-only values are read as
// midnight in the application timezone.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(constant.TimestampFormat))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	raw = strings.TrimSpace(raw)
	if raw == constant.Empty {
		*t = Timestamp{}

		return nil
	}

	if !strings.Contains(raw, "T") {
		day, err := timezone.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", raw, err)
		}

		*t = Timestamp{Time: day}

		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}

	*t = Timestamp{Time: parsed}

	return nil
}
