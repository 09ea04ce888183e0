package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"hotel/shared"
)

// Flag is a boolean that also reads the 0/1 integers some SQL backends emit.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = false

		return nil
	}

	value := shared.ConvertStringToBool(string(bytes.Trim(data, `"`)))
	if value == nil {
		return fmt.Errorf("invalid boolean %s", data)
	}

	*f = Flag(*value)

	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}
