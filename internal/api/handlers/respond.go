package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// messages holds the response texts for one resource.
type messages struct {
	invalid  string // 400
	notFound string // 404
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// WriteMessage writes a {"message": ...} body.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// fieldErrors flattens ozzo validation errors, sorted by field name.
func fieldErrors(errs validation.Errors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for field, err := range errs {
		if err == nil {
			continue
		}
		out = append(out, FieldError{Field: field, Message: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// decode reads a JSON request body into v. A malformed body is reported
// as a 400 with the resource's invalid-data message.
func decode(w http.ResponseWriter, r *http.Request, v interface{}, invalid string) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("Invalid request body")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: invalid,
			Errors:  []FieldError{{Field: "body", Message: "must be a valid JSON object"}},
		})
		return false
	}
	return true
}

// writeServiceError maps a service error to a response. Unknown errors are
// logged and reported with the generic failure text.
func writeServiceError(w http.ResponseWriter, err error, msgs messages, failure string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: msgs.invalid, Errors: fieldErrors(verrs)})
	case errors.Is(err, services.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, msgs.notFound)
	default:
		log.Error().Err(err).Msg(failure)
		WriteMessage(w, http.StatusInternalServerError, failure)
	}
}
