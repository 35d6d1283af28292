package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	// FieldSubmissionID is the hidden form field carrying the per-render token.
	FieldSubmissionID = "submission_id"

	// held while the first request is still talking to the api
	provisionalLockTTL = 60 * time.Second

	acceptedKey = "submission.accepted"
)

type submissionEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// NewSubmissionID returns a fresh token for a rendered form.
func NewSubmissionID() string { return uuid.NewString() }

// MarkAccepted tells the guard the submission reached the api and must not run again.
func MarkAccepted(c echo.Context) { c.Set(acceptedKey, true) }

func accepted(c echo.Context) bool {
	v, _ := c.Get(acceptedKey).(bool)
	return v
}

// SubmissionGuard lets each rendered public form be submitted once.
// The first POST carrying a submission id claims it with SETNX. A replay gets the
// recorded response. A replay racing the first request gets duplicate instead.
// Submissions that were not accepted (e.g. validation errors) release the id.
// A nil client disables the guard.
func SubmissionGuard(rdb *redis.Client, ttl time.Duration, duplicate echo.HandlerFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || c.Request().Method != http.MethodPost {
				return next(c)
			}
			subID := strings.TrimSpace(c.FormValue(FieldSubmissionID))
			if _, err := uuid.Parse(subID); err != nil {
				return next(c)
			}

			key := buildKey(c.Path(), subID)
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			claimed, err := provisionalSet(ctx, rdb, key, submissionEntry{InProgress: true, CreatedAt: nowUTC()})
			if err != nil {
				log.Printf("submission guard: %s: %v", key, err)
				return next(c)
			}
			if !claimed {
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil {
					log.Printf("submission guard: load %s: %v", key, errLoad)
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					return c.HTMLBlob(cur.Code, cur.Body)
				}
				return duplicate(c)
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			bg := context.WithoutCancel(c.Request().Context())
			if !accepted(c) {
				if err := release(bg, rdb, key); err != nil {
					log.Printf("submission guard: release %s: %v", key, err)
				}
				return nil
			}
			final := submissionEntry{Code: rec.code, Body: rec.buf.Bytes(), CreatedAt: nowUTC()}
			if err := saveFinal(bg, rdb, key, final, ttl); err != nil {
				log.Printf("submission guard: save %s: %v", key, err)
			}
			return nil
		}
	}
}
