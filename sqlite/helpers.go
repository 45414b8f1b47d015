package sqlite

import (
	"strings"
	"time"

	"github.com/fwojciec/presrag"
)

// parseRFC3339 parses a stored RFC3339 timestamp.
func parseRFC3339(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, presrag.Errorf(presrag.EINTERNAL, "invalid %s timestamp: %q", field, value)
	}
	return t, nil
}

// appendPagination appends LIMIT/OFFSET clauses when the filter requests them.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
