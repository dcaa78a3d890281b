// Package sandbox runs user-submitted SQL against the seeded sandbox tables.
//
// The gate is a keyword blacklist, not a real security boundary: matching is
// substring-based on the uppercased statement with no tokenizer, so a query
// mentioning a column named update_count is rejected too. Real isolation
// would need a parsed allow-list or a read-only database role; the blacklist
// is kept for compatibility with the existing frontend contract.
package sandbox

import (
	"errors"
	"strings"
)

// ErrForbidden is returned by Check when the statement contains a
// blacklisted keyword.
var ErrForbidden = errors.New("Only SELECT queries are allowed in this sandbox.")

var forbiddenKeywords = []string{
	"DROP", "DELETE", "TRUNCATE", "ALTER", "UPDATE", "INSERT", "GRANT", "REVOKE",
}

// Check rejects statements that could mutate state. The match is
// case-insensitive and substring-based over the whole statement.
func Check(query string) error {
	upper := strings.ToUpper(query)
	for _, kw := range forbiddenKeywords {
		if strings.Contains(upper, kw) {
			return ErrForbidden
		}
	}

	return nil
}
