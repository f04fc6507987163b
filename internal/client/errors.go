package client

import (
	"encoding/json"
	"fmt"
)

const (
	// FallbackMessage is used when an error response body is not valid JSON.
	FallbackMessage = "unknown error"
	// EmptyMessage is used when the error body is JSON but carries no usable message.
	EmptyMessage = "request failed"
)

// APIError is returned when the parking API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError reads the {"message": ...} field the API uses for failures.
// Bodies that are JSON but not an object, or whose message is empty, null,
// false or 0, get EmptyMessage. Non-string messages are formatted as text.
func newAPIError(status int, body []byte) *APIError {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return &APIError{StatusCode: status, Message: FallbackMessage}
	}

	obj, _ := decoded.(map[string]interface{})
	switch msg := obj["message"].(type) {
	case string:
		if msg != "" {
			return &APIError{StatusCode: status, Message: msg}
		}
	case float64:
		if msg != 0 {
			return &APIError{StatusCode: status, Message: fmt.Sprint(msg)}
		}
	case bool:
		if msg {
			return &APIError{StatusCode: status, Message: "true"}
		}
	case nil:
	default:
		if b, err := json.Marshal(msg); err == nil {
			return &APIError{StatusCode: status, Message: string(b)}
		}
	}
	return &APIError{StatusCode: status, Message: EmptyMessage}
}
