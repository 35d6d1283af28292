package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/infrastructure/cache"
	"loan-portal/internal/session"
	"loan-portal/internal/usecase/listing"
)

func TestLoginIsRateLimited(t *testing.T) {
	api := &fakeAPI{}
	lists := listing.NewUsecase(api, cache.NewListCache(nil, time.Minute))
	h := NewHandler(api, lists, session.NewStore(cookieName, false))

	e := echo.New()
	opt := DefaultOptions()
	opt.LoginPerMinute = 2
	if err := Register(e, h, opt); err != nil {
		t.Fatalf("Register: %v", err)
	}

	form := url.Values{"email": {"root@example.com"}, "password": {"password1"}}.Encode()
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, session.LoginPath, strings.NewReader(form))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusSeeOther || codes[1] != http.StatusSeeOther {
		t.Fatalf("first two logins should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third login = %d, want 429", codes[2])
	}
}

func TestPerMinute_ZeroDisables(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, perMinute(0))
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: code = %d", i, rec.Code)
		}
	}
}
