// Package schema holds the one-time datastore setup: table definitions and
// the reference rows (roles, countries) the application expects.
package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	//go:embed schema.sql
	schemaSQL string

	//go:embed seed.sql
	seedSQL string
)

// Apply creates all tables that do not exist yet.
func Apply(ctx context.Context, db *gorm.DB) error {
	return run(ctx, db, schemaSQL)
}

// Seed inserts the reference roles and countries, skipping rows that
// already exist.
func Seed(ctx context.Context, db *gorm.DB) error {
	return run(ctx, db, seedSQL)
}

// Statements splits a SQL script on ';' and drops comment lines and
// empty statements.
func Statements(src string) []string {
	var out []string
	for _, chunk := range strings.Split(src, ";") {
		lines := make([]string, 0)
		for _, line := range strings.Split(chunk, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		out = append(out, strings.TrimSpace(strings.Join(lines, "\n")))
	}
	return out
}

func run(ctx context.Context, db *gorm.DB, src string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range Statements(src) {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
			}
		}
		return nil
	})
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return line
}
