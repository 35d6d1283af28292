package restapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/usecase/admin"
)

type Handlers struct {
	Loans     *LoanHandler
	Enquiries *EnquiryHandler
	Admins    *AdminHandler
	Tokens    *admin.Tokens
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Register mounts every endpoint on e.
func Register(e *echo.Echo, h Handlers) {
	auth := BearerAuth(h.Tokens)

	e.GET("/health", Health)

	e.POST("/loan/create", h.Loans.Create)
	e.GET("/loan/all", h.Loans.List, auth)
	e.GET("/loan/:id", h.Loans.Get, auth)
	e.DELETE("/loan/:id", h.Loans.Delete, auth)

	e.POST("/enquiry/create", h.Enquiries.Create)
	e.GET("/enquiry/all", h.Enquiries.List, auth)
	e.GET("/enquiry/:id", h.Enquiries.Get, auth)
	e.DELETE("/enquiry/:id", h.Enquiries.Delete, auth)

	e.POST("/admin/login", h.Admins.Login)
	e.GET("/admin/all", h.Admins.List, auth)
	e.POST("/admin/create", h.Admins.Create, auth)
	e.POST("/admin/:id", h.Admins.Update, auth)
	e.DELETE("/admin/:id", h.Admins.Delete, auth)
}
