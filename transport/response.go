package transport

import (
	"encoding/json"
	"net/http"

	"github.com/baraholka/marketplace/utils/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps CustomError to its HTTP code; anything else is a 500 with
// the error text passed through as-is.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if ce, ok := err.(errors.CustomError); ok {
		status = ce.ErrorHTTPCode()
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
