package httpapi

import (
	"encoding/json"
	"net/http"
)

// Envelope standardizes JSON responses across all API namespaces.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data any) error {
	return WriteJSON(w, status, &Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	return WriteJSON(w, status, &Envelope{
		Status:  "error",
		Message: message,
		Code:    code,
	})
}

// WriteErrorData is WriteError with a payload, e.g. per-field validation
// messages.
func WriteErrorData(w http.ResponseWriter, status int, code, message string, data any) error {
	return WriteJSON(w, status, &Envelope{
		Status:  "error",
		Message: message,
		Code:    code,
		Data:    data,
	})
}
