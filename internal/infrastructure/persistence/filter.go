package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
)

// orderableColumns whitelists the columns that callers may sort by.
// Anything else falls back to the primary key so user input never
// reaches the ORDER BY clause verbatim.
var orderableColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"category":   true,
	"status":     true,
	"total":      true,
	"username":   true,
	"created_at": true,
	"updated_at": true,
}

// applyPagination applies page/page-size and ordering from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := filter.OrderBy
	if !orderableColumns[orderBy] {
		orderBy = "id"
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}

	return query.Order(orderBy + " " + orderDir)
}
