package response

import (
	"encoding/json"
	"net/http"
)

// The record store speaks flat JSON: entities and arrays as-is, errors as
// {"error": message}. The proxy relays these bodies untouched, so no
// envelope is added here.

type ErrorBody struct {
	Error  string      `json:"error"`
	Fields interface{} `json:"fields,omitempty"`
}

// DeleteResult is the uniform body the proxy returns for a successful
// delete, regardless of whether the store answered 204 or 200.
type DeleteResult struct {
	Success bool `json:"success"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func ValidationError(w http.ResponseWriter, fields interface{}) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: "Validation failed", Fields: fields})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
