package query

import (
	"strings"

	"gorm.io/gorm"
)

// Order is one sort key parsed from a request token.
type Order struct {
	Field string
	Desc  bool
}

// ParseSort turns request sort tokens into an ordered list of sort keys.
// "+field" sorts ascending, "-field" descending. Tokens without a direction
// prefix are dropped silently; order among valid tokens is preserved and
// duplicates are passed through.
func ParseSort(tokens []string) []Order {
	orders := make([]Order, 0, len(tokens))
	for _, token := range tokens {
		switch {
		case strings.HasPrefix(token, "+") && len(token) > 1:
			orders = append(orders, Order{Field: token[1:]})
		case strings.HasPrefix(token, "-") && len(token) > 1:
			orders = append(orders, Order{Field: token[1:], Desc: true})
		}
	}
	return orders
}

// ApplyOrders attaches the parsed sort keys to a gorm query. columns maps
// exposed field names to SQL columns; keys outside the map are dropped so
// client input never reaches the ORDER BY clause unvetted. The first key is
// the primary sort.
func ApplyOrders(db *gorm.DB, orders []Order, columns map[string]string) *gorm.DB {
	for _, order := range orders {
		column, ok := columns[order.Field]
		if !ok {
			continue
		}
		if order.Desc {
			db = db.Order(column + " DESC")
		} else {
			db = db.Order(column + " ASC")
		}
	}
	return db
}
