package httpclient

import (
	"encoding/json"
	"strings"
)

// ErrorResponse is the part of an error body the client relies on. Both
// members are kept raw so an unexpected shape never hides the status.
type ErrorResponse struct {
	Error json.RawMessage `json:"error"`
	Code  json.RawMessage `json:"code"`
}

// Message returns "error" as is when it is a string, otherwise its JSON text.
func (r ErrorResponse) Message() string {
	if len(r.Error) == 0 {
		return ""
	}

	var message string
	if err := json.Unmarshal(r.Error, &message); err == nil {
		return message
	}

	return strings.TrimSpace(string(r.Error))
}

// StatusCode returns "code" when it is an integer and 0 otherwise.
func (r ErrorResponse) StatusCode() int {
	var code int
	if err := json.Unmarshal(r.Code, &code); err != nil {
		return 0
	}

	return code
}
