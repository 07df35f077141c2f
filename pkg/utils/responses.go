package utils

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "S"
	StatusError   = "E"
)

// Payload carries extra top-level keys merged into the response envelope
// (e.g. "user", "token", "aset").
type Payload map[string]any

// ResponseJSON writes the uniform envelope {status, message, ...payload}
// with a custom HTTP status code.
func ResponseJSON(w http.ResponseWriter, code int, status, message string, payload Payload) {
	body := map[string]any{
		"status":  status,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, payload Payload) {
	ResponseJSON(w, http.StatusOK, StatusSuccess, message, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, payload Payload) {
	ResponseJSON(w, http.StatusCreated, StatusSuccess, message, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request, errors is the field->message map
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	var payload Payload
	if errors != nil {
		payload = Payload{"errors": errors}
	}
	ResponseJSON(w, http.StatusBadRequest, StatusError, message, payload)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, StatusError, message, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, StatusError, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, StatusError, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, StatusError, message, nil)
}
