// Package restapi serves the loan portal REST contract consumed by the site.
package restapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/domain/admin"
	"loan-portal/internal/domain/enquiry"
	"loan-portal/internal/domain/loan"
	"loan-portal/internal/validation"
	"loan-portal/pkg/id"
)

type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string                 `json:"message"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
}

func ok(c echo.Context, status int, data any, msg string) error {
	return c.JSON(status, envelope{Data: data, Message: msg})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Message: msg})
}

// statusFor maps domain errors onto the wire contract.
func statusFor(err error) (int, string) {
	var fe validation.FieldErrors
	switch {
	case errors.As(err, &fe):
		return http.StatusUnprocessableEntity, fe.Error()
	case errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound, "Loan application not found"
	case errors.Is(err, enquiry.ErrNotFound):
		return http.StatusNotFound, "Enquiry not found"
	case errors.Is(err, admin.ErrNotFound):
		return http.StatusNotFound, "Admin not found"
	case errors.Is(err, admin.ErrConflict):
		return http.StatusConflict, "Email is already registered"
	case errors.Is(err, admin.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeErr(c echo.Context, err error) error {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("restapi: %s %s: %v", c.Request().Method, c.Path(), err)
	}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return c.JSON(status, errorResponse{Message: msg, Errors: fe})
	}
	return fail(c, status, msg)
}

// bind decodes the body; decoding failures come back as one field error.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			var ute *json.UnmarshalTypeError
			if errors.As(he.Internal, &ute) && ute.Field != "" {
				return validation.FieldErrors{{Field: ute.Field, Message: validation.TypeMessage(ute.Field)}}
			}
		}
		return validation.FieldErrors{{Field: "_", Message: "Invalid request body"}}
	}
	return nil
}

// pathID returns the :id param, or notFound when it cannot name a stored record.
func pathID(c echo.Context, notFound error) (string, error) {
	v := c.Param("id")
	if !id.Valid(v) {
		return "", notFound
	}
	return v, nil
}
