package web

// errors.go maps library errors onto HTTP responses. Every error is logged
// with its request ID server-side and returned to the client as a JSON
// body with a stable machine-readable code.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ukaji3/scorelens/internal/logging"
	"github.com/ukaji3/scorelens/pkg/scorelens"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError classifies err, logs it, and writes the JSON error response.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classifyError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", code,
		"error", err.Error(),
	)

	writeErrorJSON(w, status, code, err.Error())
}

// classifyError maps library error types to an HTTP status and code.
func classifyError(err error) (int, string) {
	var parseErr *scorelens.ParseError
	var shapeErr *scorelens.ShapeError
	var formatErr *scorelens.FormatError

	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, "parse_error"
	case errors.As(err, &shapeErr):
		return http.StatusBadRequest, "shape_error"
	case errors.Is(err, scorelens.ErrHeaderMismatch):
		return http.StatusBadRequest, "header_mismatch"
	case errors.Is(err, scorelens.ErrNoNumericColumn):
		return http.StatusUnprocessableEntity, "no_numeric_column"
	case errors.Is(err, scorelens.ErrInsufficientData):
		return http.StatusUnprocessableEntity, "insufficient_data"
	case errors.As(err, &formatErr):
		return http.StatusInternalServerError, "format_error"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// writeJSON encodes v as JSON. Encoding errors are logged only, since the
// header has already been written.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
