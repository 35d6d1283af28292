package gormrepo

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"loan-portal/internal/domain/filter"
)

// search matches q case-insensitively as a substring of any of cols.
func search(q string, cols ...string) func(*gorm.DB) *gorm.DB {
	q = strings.TrimSpace(q)
	return func(db *gorm.DB) *gorm.DB {
		if q == "" || len(cols) == 0 {
			return db
		}
		like := "%" + escapeLike(strings.ToLower(q)) + "%"
		conds := make([]string, len(cols))
		args := make([]any, len(cols))
		for i, c := range cols {
			conds[i] = "LOWER(" + c + ") LIKE ? ESCAPE '!'"
			args[i] = like
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// LIKE escape char is '!'
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func seen(v *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where("is_seen = ?", *v)
	}
}

// createdOn keeps rows created on the calendar day of d.
func createdOn(d time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if d.IsZero() {
			return db
		}
		day := now.With(d)
		return db.Where("created_at BETWEEN ? AND ?", day.BeginningOfDay(), day.EndOfDay())
	}
}

func paginate(q filter.Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = q.Normalize()
		return db.Offset(q.Offset()).Limit(q.Limit)
	}
}

// list runs the filtered count and page queries for model into out.
func list(db *gorm.DB, model any, out any, q filter.Query, searchCols ...string) (int64, error) {
	base := db.Model(model).Scopes(search(q.Search, searchCols...), seen(q.IsSeen), createdOn(q.Date))

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	err := base.Session(&gorm.Session{}).
		Scopes(paginate(q)).
		Order("created_at DESC, id DESC").
		Find(out).Error
	return total, err
}
