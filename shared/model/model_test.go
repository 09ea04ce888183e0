package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Date
		wantErr  bool
	}{
		{
			name:     "plain day",
			input:    `"2024-01-10"`,
			expected: model.Date{Time: timezone.Date(2024, time.January, 10)},
		},
		{
			name:     "iso timestamp keeps the day part",
			input:    `"2024-01-10T00:00:00.000Z"`,
			expected: model.Date{Time: timezone.Date(2024, time.January, 10)},
		},
		{
			name:     "late timestamp does not roll the day",
			input:    `"2024-01-10T23:30:00-04:00"`,
			expected: model.Date{Time: timezone.Date(2024, time.January, 10)},
		},
		{name: "null is unset", input: `null`, expected: model.Date{}},
		{name: "empty is unset", input: `""`, expected: model.Date{}},
		{name: "number is rejected", input: `20240110`, wantErr: true},
		{name: "garbage is rejected", input: `"10/01/2024"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d model.Date
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(d.Time), "expected %s, got %s", tt.expected, d)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		In  model.Date `json:"in"`
		Out model.Date `json:"out"`
	}{In: model.NewDate(timezone.Date(2024, time.March, 1).Add(15 * time.Hour))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"in":"2024-03-01","out":null}`, string(out))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Amount
		wantErr  bool
	}{
		{name: "number", input: `360000`, expected: 360000},
		{name: "decimal string", input: `"360000.00"`, expected: 360000},
		{name: "float rounds", input: `119999.6`, expected: 120000},
		{name: "null", input: `null`, expected: 0},
		{name: "formatted display string is rejected", input: `"Gs. 360.000"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a model.Amount
			err := json.Unmarshal([]byte(tt.input), &a)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(model.Amount(360000))

	require.NoError(t, err)
	assert.Equal(t, "360000", string(out))
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Flag
		wantErr  bool
	}{
		{input: `true`, expected: true},
		{input: `false`, expected: false},
		{input: `1`, expected: true},
		{input: `0`, expected: false},
		{input: `"1"`, expected: true},
		{input: `null`, expected: false},
		{input: `"yes"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f model.Flag
			err := json.Unmarshal([]byte(tt.input), &f)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestTimestamp_JSON(t *testing.T) {
	var ts model.Timestamp

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T10:15:00Z"`), &ts))
	assert.True(t, time.Date(2024, time.March, 1, 10, 15, 0, 0, time.UTC).Equal(ts.Time))

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01"`), &ts))
	assert.True(t, timezone.Date(2024, time.March, 1).Equal(ts.Time))

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))

	data, err := json.Marshal(model.NewTimestamp(time.Date(2024, time.March, 1, 10, 15, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:15:00Z"`, string(data))

	data, err = json.Marshal(model.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
