package resultcache

import "database/sql"

// Cache wraps a *sql.DB holding the single result_cache table.
type Cache struct {
	*sql.DB
}
