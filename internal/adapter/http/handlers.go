// Package http serves the public site and the admin back office.
package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/apiclient"
	"loan-portal/internal/session"
	"loan-portal/internal/usecase/listing"
	"loan-portal/internal/validation"
)

// Backend is the part of the api client the pages call directly.
// Paginated lists go through the listing usecase instead.
type Backend interface {
	CreateLoan(ctx context.Context, in validation.LoanApplicationInput) (*apiclient.LoanApplication, error)
	GetLoan(ctx context.Context, id string) (*apiclient.LoanApplication, error)
	CreateEnquiry(ctx context.Context, in validation.EnquiryInput) (*apiclient.Enquiry, error)
	GetEnquiry(ctx context.Context, id string) (*apiclient.Enquiry, error)
	Login(ctx context.Context, in validation.LoginInput) (*apiclient.LoginResult, error)
	ListAdmins(ctx context.Context) ([]apiclient.Admin, error)
	CreateAdmin(ctx context.Context, in validation.AdminInput) (*apiclient.Admin, error)
	UpdateAdmin(ctx context.Context, id string, in validation.AdminUpdateInput) (*apiclient.Admin, error)
	DeleteAdmin(ctx context.Context, id string) error
}

type Handler struct {
	api   Backend
	lists *listing.Usecase
	sess  *session.Store
}

func NewHandler(api Backend, lists *listing.Usecase, sess *session.Store) *Handler {
	return &Handler{api: api, lists: lists, sess: sess}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// render pops the pending flash unless the view already carries one.
func (h *Handler) render(c echo.Context, status int, name string, v view) error {
	if v.Flash == nil {
		v.Flash = session.PopFlash(c)
	}
	return c.Render(status, name, v)
}

func flashError(msg string) *session.Flash {
	return &session.Flash{Kind: session.FlashError, Message: msg}
}

func flashSuccess(msg string) *session.Flash {
	return &session.Flash{Kind: session.FlashSuccess, Message: msg}
}

func isUnauthorized(err error) bool { return errors.Is(err, apiclient.ErrUnauthorized) }

// merge appends b to a, skipping fields a already reports.
func merge(a, b validation.FieldErrors) validation.FieldErrors {
	for _, fe := range b {
		if !a.Has(fe.Field) {
			a = append(a, fe)
		}
	}
	return a
}

// ErrorHandler renders failures as a page instead of echo's JSON body.
func (h *Handler) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Something went wrong. Please try again later."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if code >= http.StatusInternalServerError {
		log.Printf("web: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if rerr := c.Render(code, "error", view{Title: http.StatusText(code), Data: msg}); rerr != nil {
		_ = c.String(code, msg)
	}
}
