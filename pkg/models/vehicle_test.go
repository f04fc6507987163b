package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresence_Present(t *testing.T) {
	tests := []struct {
		given     string
		expected  bool
		entryTime string
	}{
		{given: `{"entryTime":"2024-01-01T00:00:00Z"}`, expected: true, entryTime: "2024-01-01T00:00:00Z"},
		{given: `{"entryTime":1704067200000}`, expected: true, entryTime: "1704067200000"},
		{given: `{}`, expected: false},
		{given: `{"entryTime":null}`, expected: false},
		{given: `{"entryTime":""}`, expected: false},
	}

	for _, test := range tests {
		var p Presence
		require.NoError(t, json.Unmarshal([]byte(test.given), &p), test.given)
		assert.Equal(t, test.expected, p.Present(), test.given)
		assert.Equal(t, test.entryTime, p.EntryTimeString(), test.given)
	}

	var nilPresence *Presence
	assert.False(t, nilPresence.Present())
}

func TestConfirmation_Message(t *testing.T) {
	tests := []struct {
		given    string
		expected string
	}{
		{given: `{"message":"ok"}`, expected: "ok"},
		{given: `{"message":12}`, expected: ""},
		{given: `"Vehicle exited"`, expected: "Vehicle exited"},
		{given: `true`, expected: ""},
		{given: `[]`, expected: ""},
		{given: `null`, expected: ""},
	}

	for _, test := range tests {
		var c Confirmation
		require.NoError(t, json.Unmarshal([]byte(test.given), &c), test.given)
		assert.Equal(t, test.expected, c.Message(), test.given)
	}

	assert.Equal(t, "", Confirmation{}.Message())
}

func TestConfirmation_MarshalJSON(t *testing.T) {
	var c Confirmation
	require.NoError(t, json.Unmarshal([]byte(`{"message":"ok"}`), &c))

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"ok"}`, string(data))
}
