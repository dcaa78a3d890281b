package sandbox

import (
	"context"

	"github.com/ciphersql/studio/internal/db"
)

// Result carries the rows a sandbox query produced. Rows preserve the
// column order of the statement only through the per-row maps; RowCount is
// the number of rows returned.
type Result struct {
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"rowCount"`
}

// Runner executes an already-vetted query string against the store.
type Runner interface {
	Run(ctx context.Context, query string) (*Result, error)
}

// SQLRunner forwards the literal query text to the database and collects
// every row. There is no statement timeout or row cap; the store's own
// limits apply.
type SQLRunner struct {
	conn *db.DB
}

var _ Runner = (*SQLRunner)(nil)

func NewSQLRunner(conn *db.DB) *SQLRunner {
	return &SQLRunner{conn: conn}
}

func (r *SQLRunner) Run(ctx context.Context, query string) (*Result, error) {
	rows, err := r.conn.QueryRows(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, c := range cols {
			v := values[i]
			// drivers hand back []byte for text-ish columns; keep the
			// JSON encoding readable
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[c] = v
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Result{Rows: out, RowCount: len(out)}, nil
}
