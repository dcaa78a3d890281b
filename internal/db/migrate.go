package db

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/ciphersql/studio/pkg/models"
)

// Migrate applies embedded migrations. It creates a `schema_migrations`
// table to track applied migrations and applies any SQL files in
// `db/migrations/` that have not yet been recorded.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS) error {
	// ensure migrations table exists
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	// embedded migrations are provided under "migrations/..." in the top-level db package
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// use filename (without extension) as migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			// already applied
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	return nil
}

// Seed loads the embedded assignment catalog, validates it against the
// embedded JSON schema, upserts the catalog rows and rebuilds the sandbox
// tables each assignment defines. Seeding is idempotent: catalog rows are
// replaced and sandbox tables are dropped and recreated.
func Seed(ctx context.Context, d *DB, seedFS embed.FS) error {
	catalogBytes, err := fs.ReadFile(seedFS, path.Join("seed", "assignments.json"))
	if err != nil {
		return fmt.Errorf("read assignment catalog: %w", err)
	}

	schemaBytes, err := fs.ReadFile(seedFS, path.Join("seed", "assignment.schema.json"))
	if err != nil {
		return fmt.Errorf("read catalog schema: %w", err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaBytes, rs); err != nil {
		return fmt.Errorf("parse catalog schema: %w", err)
	}
	keyErrs, err := rs.ValidateBytes(ctx, catalogBytes)
	if err != nil {
		return fmt.Errorf("validate assignment catalog: %w", err)
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("invalid assignment catalog: %s: %s", keyErrs[0].PropertyPath, keyErrs[0].Message)
	}

	var assignments []models.Assignment
	if err := json.Unmarshal(catalogBytes, &assignments); err != nil {
		return fmt.Errorf("parse assignment catalog: %w", err)
	}

	for i := range assignments {
		a := &assignments[i]
		reqs, err := json.Marshal(a.Requirements)
		if err != nil {
			return fmt.Errorf("marshal requirements for %s: %w", a.ID, err)
		}
		schemas, err := json.Marshal(a.Schemas)
		if err != nil {
			return fmt.Errorf("marshal schemas for %s: %w", a.ID, err)
		}
		if _, err := d.Exec(ctx,
			`INSERT OR REPLACE INTO assignments (id, title, difficulty, description, requirements, initial_query, schemas) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Title, a.Difficulty, a.Description, string(reqs), a.InitialQuery, string(schemas)); err != nil {
			return fmt.Errorf("seed assignment %s: %w", a.ID, err)
		}

		for _, ts := range a.Schemas {
			if err := createSandboxTable(ctx, d, ts); err != nil {
				return fmt.Errorf("sandbox table %s: %w", ts.TableName, err)
			}
		}
	}

	return nil
}

func createSandboxTable(ctx context.Context, d *DB, ts models.TableSchema) error {
	if _, err := d.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, ts.TableName)); err != nil {
		return fmt.Errorf("drop: %w", err)
	}

	cols := make([]string, 0, len(ts.Columns))
	for _, c := range ts.Columns {
		cols = append(cols, c.Name+" "+c.Type)
	}
	if _, err := d.Exec(ctx, fmt.Sprintf(`CREATE TABLE %s (%s)`, ts.TableName, strings.Join(cols, ", "))); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if len(ts.SampleData) == 0 {
		return nil
	}

	names := make([]string, 0, len(ts.Columns))
	marks := make([]string, 0, len(ts.Columns))
	for _, c := range ts.Columns {
		names = append(names, c.Name)
		marks = append(marks, "?")
	}
	stmt := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, ts.TableName, strings.Join(names, ", "), strings.Join(marks, ", "))

	for _, row := range ts.SampleData {
		args := make([]any, 0, len(ts.Columns))
		for _, c := range ts.Columns {
			args = append(args, row[c.Name])
		}
		if _, err := d.Exec(ctx, stmt, args...); err != nil {
			return fmt.Errorf("insert sample row: %w", err)
		}
	}

	return nil
}
