package formserver

import (
	"encoding/json"
	"net/http"
)

type valuesResponse struct {
	Values map[string]any `json:"values"`
}

type errorsResponse struct {
	Errors map[string][]string `json:"errors"`
}

type formInfo struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type formsResponse struct {
	Forms []formInfo `json:"forms"`
}

// ErrorDetail is the body of every non-validation error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
