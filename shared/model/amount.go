package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Amount is a booking price in whole currency units.
type Amount int64

// UnmarshalJSON accepts a JSON number or a numeric string such as "360000.00",
// which is how decimal columns usually come back from the data service.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = 0

		return nil
	}

	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		*a = 0

		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}

	*a = Amount(math.Round(value))

	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(a))
}
