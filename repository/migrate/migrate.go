package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version VARCHAR(255) NOT NULL PRIMARY KEY,
    applied_at DATETIME(6) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// ApplyMigrations executes every not yet applied SQL file of filesystem in lexicographical order.
// Applied file names are recorded in schema_migrations.
func ApplyMigrations(ctx context.Context, conn *sqlx.DB, filesystem fs.FS) error {
	if _, err := conn.ExecContext(ctx, createVersionTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := make([]string, 0)
	if err := conn.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations"); err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}
	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	entries, err := fs.ReadDir(filesystem, ".")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		if _, ok := done[entry.Name()]; ok {
			continue
		}

		sqlBytes, err := fs.ReadFile(filesystem, entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		// MySQL DDL commits implicitly, so statements run one by one outside a transaction.
		for _, stmt := range SplitStatements(string(sqlBytes)) {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("execute migration %s: %w", entry.Name(), err)
			}
		}

		if _, err := conn.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			entry.Name(), time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("record migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// SplitStatements breaks a script on semicolons that end a line and drops blank or comment-only parts.
func SplitStatements(script string) []string {
	stmts := make([]string, 0)
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmts = appendStatement(stmts, b.String())
			b.Reset()
		}
	}
	return appendStatement(stmts, b.String())
}

func appendStatement(stmts []string, raw string) []string {
	stmt := strings.TrimSuffix(strings.TrimSpace(raw), ";")
	if stmt == "" {
		return stmts
	}
	return append(stmts, stmt)
}
