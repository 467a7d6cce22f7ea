// Package httputil provides JSON response helpers shared by HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "kycgate/pkg/domain-errors"
)

// WriteJSON serializes v with the given status. Encoding failures are
// swallowed; headers are already on the wire at that point.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape for error responses.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteError translates an error into a JSON error response. Domain errors
// carry their own code and status; anything else is an opaque internal
// error. Internal error messages never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	var de *dErrors.Error
	if !errors.As(err, &de) {
		de = dErrors.New(dErrors.CodeInternal, err.Error())
	}

	body := errorBody{Error: string(de.Code)}
	if de.ClientSafe() {
		body.Description = de.Message
	}
	WriteJSON(w, de.HTTPStatus(), body)
}
