package handler

import (
	"errors"
	"net/http"

	"clientmap-api/internal/logger"
	"clientmap-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps service errors onto HTTP status codes and client-facing messages.
func errorStatus(err error) (int, string) {
	var connErr *models.ConnectionError
	var parseErr *models.ParseError

	switch {
	case errors.As(err, &connErr):
		return http.StatusServiceUnavailable, "database unavailable, try again later"
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, parseErr.Error()
	case errors.Is(err, models.ErrInvalidQuery):
		return http.StatusBadRequest, "invalid query: the search term must not be blank and limit and focus must be in range"
	case errors.Is(err, models.ErrFocusNotFound):
		return http.StatusNotFound, "focus client not found among the results"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", logger.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
