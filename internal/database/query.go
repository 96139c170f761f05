package database

import (
	"fmt"
	"net/url"
	"strings"
)

// Query builds PostgREST query strings.
type Query struct {
	filters []string
	orders  []string
	limit   int
}

// NewQuery starts a new query builder.
func NewQuery() *Query {
	return &Query{}
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column string, value string) *Query {
	q.filters = append(q.filters, fmt.Sprintf("%s=eq.%s", column, url.QueryEscape(value)))
	return q
}

// OrderAsc orders results by a column, ascending.
func (q *Query) OrderAsc(column string) *Query {
	q.orders = append(q.orders, column+".asc")
	return q
}

// OrderDesc orders results by a column, descending.
func (q *Query) OrderDesc(column string) *Query {
	q.orders = append(q.orders, column+".desc")
	return q
}

// Limit caps the number of returned rows. Non-positive values are ignored.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Build renders the query string for the REST call.
func (q *Query) Build() string {
	parts := make([]string, 0, len(q.filters)+2)
	parts = append(parts, q.filters...)
	if len(q.orders) > 0 {
		parts = append(parts, "order="+strings.Join(q.orders, ","))
	}
	if q.limit > 0 {
		parts = append(parts, fmt.Sprintf("limit=%d", q.limit))
	}
	return strings.Join(parts, "&")
}
