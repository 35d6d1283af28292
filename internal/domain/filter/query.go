// Package filter carries the list query shared by the paginated repositories.
package filter

import "time"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Query struct {
	Page   int
	Limit  int
	Search string
	IsSeen *bool
	// Date restricts results to records created on that calendar day. Zero means any day.
	Date time.Time
}

// Normalize clamps page and limit into usable bounds.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q Query) Offset() int {
	q = q.Normalize()
	return (q.Page - 1) * q.Limit
}

// TotalPages is ceil(count/limit).
func TotalPages(count int64, limit int) int {
	if limit <= 0 || count <= 0 {
		return 0
	}
	return int((count + int64(limit) - 1) / int64(limit))
}
