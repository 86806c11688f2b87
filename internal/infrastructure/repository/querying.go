package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// groupCount is one row of a GROUP BY count.
type groupCount struct {
	Grp   *string
	Count int64
}

func countBy(query *gorm.DB, column string) ([]groupCount, error) {
	var rows []groupCount
	err := query.Select(fmt.Sprintf("%s AS grp, COUNT(*) AS count", column)).
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// applyOrder orders by sortBy when it is whitelisted, otherwise by created_at.
func applyOrder(query *gorm.DB, allowed map[string]bool, sortBy, sortOrder string) *gorm.DB {
	sortBy = strings.ToLower(sortBy)
	if sortBy == "" || !allowed[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	return query.Order(fmt.Sprintf("%s %s", sortBy, order))
}

func applyPage(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page > 0 && pageSize > 0 {
		return query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	return query
}

// likeAny matches the folded term against the lower-cased columns.
func likeAny(query *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return query
	}
	pattern := "%" + strings.ToLower(term) + "%"
	clauses := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", col))
		args = append(args, pattern)
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func toLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
