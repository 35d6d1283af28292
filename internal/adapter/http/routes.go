package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	mw "loan-portal/internal/adapter/middleware"
	"loan-portal/internal/session"
)

type Options struct {
	// Redis backs the double-submit guard. Nil disables it.
	Redis         *redis.Client
	SubmissionTTL time.Duration

	// per client IP
	LoginPerMinute int
	FormPerMinute  int
}

func DefaultOptions() Options {
	return Options{SubmissionTTL: 10 * time.Minute, LoginPerMinute: 5, FormPerMinute: 20}
}

// perMinute limits each client IP to n requests a minute. n <= 0 disables the limit.
func perMinute(n int) echo.MiddlewareFunc {
	if n <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(time.Minute / time.Duration(n)),
			Burst:     n,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again in a minute.")
		},
	})
}

// Register mounts the site on e, including its renderer and error page.
func Register(e *echo.Echo, h *Handler, opt Options) error {
	r, err := NewRenderer()
	if err != nil {
		return err
	}
	e.Renderer = r
	e.HTTPErrorHandler = h.ErrorHandler
	e.Use(h.sess.ExpireOnUnauthorized)

	e.GET("/health", h.Health)

	// public
	e.GET("/", h.Home)
	e.GET("/about", h.About)
	e.GET("/emi-calculator", h.EMICalculator)
	e.GET("/api/emi", h.EMIJSON)
	e.GET("/apply", h.ApplyPage)
	e.GET("/contact", h.ContactPage)

	forms := perMinute(opt.FormPerMinute)
	e.POST("/apply", h.SubmitApply, forms, mw.SubmissionGuard(opt.Redis, opt.SubmissionTTL, h.ApplyDuplicate))
	e.POST("/contact", h.SubmitContact, forms, mw.SubmissionGuard(opt.Redis, opt.SubmissionTTL, h.ContactDuplicate))

	// session
	e.GET(session.LoginPath, h.LoginPage)
	e.POST(session.LoginPath, h.Login, perMinute(opt.LoginPerMinute))
	e.POST("/admin/logout", h.Logout)

	// back office
	g := e.Group("/admin", h.sess.RequireToken)
	g.GET("", func(c echo.Context) error { return c.Redirect(http.StatusFound, "/admin/dashboard") })
	g.GET("/dashboard", h.Dashboard)

	g.GET("/loans", h.Loans)
	g.GET("/loans/:id", h.LoanDetail)
	g.POST("/loans/:id/delete", h.DeleteLoan)

	g.GET("/enquiries", h.Enquiries)
	g.GET("/enquiries/:id", h.EnquiryDetail)
	g.POST("/enquiries/:id/delete", h.DeleteEnquiry)

	g.GET("/users", h.Users)
	g.POST("/users", h.CreateUser)
	g.POST("/users/:id", h.UpdateUser)
	g.POST("/users/:id/delete", h.DeleteUser)
	return nil
}
