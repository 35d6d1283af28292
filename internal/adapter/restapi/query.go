package restapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/domain/filter"
	"loan-portal/internal/validation"
)

const dateLayout = "2006-01-02"

type listParams struct {
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	SearchQuery string `query:"searchQuery"`
	IsSeen      string `query:"isSeen"`
	Date        string `query:"date"`
}

func parseListQuery(c echo.Context) (filter.Query, error) {
	var p listParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &p); err != nil {
		return filter.Query{}, validation.FieldErrors{{Field: "page", Message: "Page and limit must be numbers"}}
	}
	q := filter.Query{Page: p.Page, Limit: p.Limit, Search: p.SearchQuery}
	if p.IsSeen != "" {
		b, err := strconv.ParseBool(p.IsSeen)
		if err != nil {
			return filter.Query{}, validation.FieldErrors{{Field: "isSeen", Message: "isSeen must be true or false"}}
		}
		q.IsSeen = &b
	}
	if p.Date != "" {
		d, err := time.ParseInLocation(dateLayout, p.Date, time.Local)
		if err != nil {
			return filter.Query{}, validation.FieldErrors{{Field: "date", Message: "Date must be YYYY-MM-DD"}}
		}
		q.Date = d
	}
	return q.Normalize(), nil
}
