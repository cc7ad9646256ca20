// Package controllers maps HTTP requests onto the services. One
// controller struct per surface; each holds the service interfaces it
// needs so tests can substitute mocks.
// file: controllers/respond.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"campus-teams/logger"
	"campus-teams/services"
)

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a service error as a structured payload. Unexpected
// errors are logged and masked.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// writeBindError renders a request-binding failure, translating
// validator field errors into one readable message.
func writeBindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, e := range fieldErrs {
			switch e.ActualTag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
			case "rollnumber":
				msgs = append(msgs, fmt.Sprintf("field %s must match YYYYBTCS/AI/CSD###", e.Field()))
			default:
				msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(msgs, ", ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
