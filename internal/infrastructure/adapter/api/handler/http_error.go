package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainerr "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/dto"
)

// respondError maps domain errors onto HTTP responses. Anything that is not
// a recognized domain error becomes an opaque 500.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})
		return
	}

	var fundsErr *domainerr.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Insufficient funds",
		})
		return
	}

	switch {
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		// Bad email and bad password share one message so a caller cannot
		// probe which of the two was wrong
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid email or password"})
	case domainerr.IsValidationError(err) || domainerr.IsInsufficientFundsError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Email already exists",
			Field:   "email",
		})
	case domainerr.IsAuthenticationError(err):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Internal server error",
		})
	}
}

// respondBindError maps request binding failures onto field-named 400s
func respondBindError(c *gin.Context, err error) {
	var bindingErrs validator.ValidationErrors
	if errors.As(err, &bindingErrs) && len(bindingErrs) > 0 {
		field := jsonFieldName(bindingErrs[0].Field())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: bindingMessage(field, bindingErrs[0]),
			Field:   field,
		})
		return
	}

	if errors.Is(err, domainerr.ErrInvalidAmount) || errors.Is(err, domainerr.ErrNegativeAmount) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: err.Error(),
			Field:   "amount",
		})
		return
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: "Invalid request format",
	})
}

// jsonFieldName lowercases the first letter of a struct field name, which
// matches the lowerCamel json tags used on all request DTOs
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// bindingMessage renders a human-readable message for a failed binding rule
func bindingMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
