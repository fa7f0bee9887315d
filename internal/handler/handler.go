package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog/internal/middleware"
	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError maps a domain error to its status code and writes the standard
// error body. The message field always carries human-readable detail.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	status := http.StatusInternalServerError
	code := model.ErrCodeInternalError
	message := "internal server error"

	var (
		validationErr *model.ValidationError
		notFoundErr   *model.NotFoundError
		mediaTypeErr  *model.UnsupportedMediaTypeError
	)

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		code = model.ErrCodeValidation
		message = validationErr.Message
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		code = model.ErrCodeProductNotFound
		message = notFoundErr.Error()
	case errors.As(err, &mediaTypeErr):
		status = http.StatusUnsupportedMediaType
		code = model.ErrCodeUnsupportedMediaType
		message = mediaTypeErr.Error()
	}

	logger.Error().
		Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request failed")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.RequestIDFromContext(r.Context()),
	})
}
