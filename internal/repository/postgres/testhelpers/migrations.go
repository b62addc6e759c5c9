package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// migrationFiles - файлы с суффиксом suffix, отсортированные по имени
func migrationFiles(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func execFiles(ctx context.Context, db *sqlx.DB, dir string, names []string) error {
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// ApplyMigrations применяет *.up.sql по возрастанию имен
func ApplyMigrations(ctx context.Context, db *sqlx.DB, dir string) error {
	names, err := migrationFiles(dir, ".up.sql")
	if err != nil {
		return err
	}
	return execFiles(ctx, db, dir, names)
}

// RollbackMigrations применяет *.down.sql в обратном порядке
func RollbackMigrations(ctx context.Context, db *sqlx.DB, dir string) error {
	names, err := migrationFiles(dir, ".down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return execFiles(ctx, db, dir, names)
}
