package models

import (
	"encoding/json"
	"strings"
)

// EntryPayload is the body for POST /entry
type EntryPayload struct {
	Model string `json:"model"`
	Plate string `json:"plate"`
}

// UpdatePayload is the body for PUT /update/{plate}
type UpdatePayload struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
}

// StayTime wraps the GET /time/{plate} response
type StayTime struct {
	ParkedTime float64 `json:"parkedTime"` // minutes
}

// Presence wraps the GET /check/{plate} response.
// The API omits entryTime when the vehicle is not parked. The timestamp may
// arrive as an ISO string or as epoch milliseconds, so it is kept raw.
type Presence struct {
	EntryTime json.RawMessage `json:"entryTime,omitempty"`
}

// Present reports whether the vehicle has an open entry record.
// An absent, null or empty-string entryTime means it has none.
func (p *Presence) Present() bool {
	if p == nil {
		return false
	}
	switch strings.TrimSpace(string(p.EntryTime)) {
	case "", "null", `""`:
		return false
	}
	return true
}

// EntryTimeString returns the entry time for display: the unquoted value for
// strings, the literal JSON text otherwise.
func (p *Presence) EntryTimeString() string {
	if !p.Present() {
		return ""
	}
	var s string
	if err := json.Unmarshal(p.EntryTime, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(p.EntryTime))
}

// Confirmation is the body returned by the entry, exit, update and cancel
// endpoints. Any JSON value is accepted; objects usually carry a message.
type Confirmation struct {
	Value interface{}
}

func (c *Confirmation) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.Value)
}

func (c Confirmation) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value)
}

// Message returns the "message" field of an object body, or the body itself
// when the server answered with a bare string.
func (c Confirmation) Message() string {
	switch v := c.Value.(type) {
	case map[string]interface{}:
		if msg, ok := v["message"].(string); ok {
			return msg
		}
	case string:
		return v
	}
	return ""
}
