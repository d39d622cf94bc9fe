package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope of the API: {"error": "...",
// "details": ..., "fields": ...}. Details and fields are optional.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Fields  any    `json:"fields,omitempty"`
}

// ResponseJSON writes any payload with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, fields any) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Fields: fields})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message, details string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Error: message, Details: details})
}
