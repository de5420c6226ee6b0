package database

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Migration represents a single versioned schema change
type Migration struct {
	Version  string
	Title    string
	UpSQL    string
	DownSQL  string
	Checksum string // SHA256 of the up migration content
}

// MigrationExecutor applies pending migrations and verifies applied ones
type MigrationExecutor struct {
	db *sql.DB
}

// NewMigrationExecutor creates a new migration executor
func NewMigrationExecutor(db *sql.DB) *MigrationExecutor {
	return &MigrationExecutor{db: db}
}

// RunMigrations executes all pending migrations from the given directory
func (m *MigrationExecutor) RunMigrations(migrationsPath string) error {
	if err := m.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := m.readMigrationFiles(migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	if err := m.validateChecksums(migrations); err != nil {
		return fmt.Errorf("migration validation failed: %w", err)
	}

	applied, err := m.appliedVersions()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}
		if err := m.executeMigration(migration); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", migration.Version, err)
		}
		slog.Info("Applied migration", "version", migration.Version, "title", migration.Title)
	}

	return nil
}

func (m *MigrationExecutor) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			title VARCHAR(500),
			checksum VARCHAR(64),
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	return err
}

// readMigrationFiles pairs NNNN_name.up.sql / NNNN_name.down.sql files by version
func (m *MigrationExecutor) readMigrationFiles(migrationsPath string) ([]Migration, error) {
	files, err := os.ReadDir(migrationsPath)
	if err != nil {
		return nil, err
	}

	byVersion := make(map[string]*Migration)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		filename := file.Name()
		isUp := strings.HasSuffix(filename, ".up.sql")
		isDown := strings.HasSuffix(filename, ".down.sql")
		if !isUp && !isDown {
			continue
		}

		version, rest, ok := strings.Cut(filename, "_")
		if !ok {
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsPath, filename))
		if err != nil {
			return nil, err
		}

		migration := byVersion[version]
		if migration == nil {
			title := strings.TrimSuffix(strings.TrimSuffix(rest, ".up.sql"), ".down.sql")
			title = strings.ReplaceAll(title, "_", " ")
			migration = &Migration{Version: version, Title: title}
			byVersion[version] = migration
		}

		if isUp {
			migration.UpSQL = string(content)
			migration.Checksum = calculateChecksum(string(content))
		} else {
			migration.DownSQL = string(content)
		}
	}

	var migrations []Migration
	for _, migration := range byVersion {
		if migration.UpSQL != "" {
			migrations = append(migrations, *migration)
		}
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func (m *MigrationExecutor) appliedVersions() (map[string]bool, error) {
	rows, err := m.db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("Failed to close rows", "error", err)
		}
	}()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// executeMigration runs one migration and records it inside a single transaction
func (m *MigrationExecutor) executeMigration(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("Failed to rollback transaction", "error", err)
		}
	}()

	if _, err := tx.Exec(migration.UpSQL); err != nil {
		return fmt.Errorf("migration SQL failed: %w", err)
	}

	query := `INSERT INTO schema_migrations (version, title, checksum) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(query, migration.Version, migration.Title, migration.Checksum); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// validateChecksums verifies that already applied migrations haven't been edited on disk
func (m *MigrationExecutor) validateChecksums(migrations []Migration) error {
	rows, err := m.db.Query(`SELECT version, checksum FROM schema_migrations WHERE checksum IS NOT NULL`)
	if err != nil {
		return err
	}
	defer rows.Close()

	appliedChecksums := make(map[string]string)
	for rows.Next() {
		var version, checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return err
		}
		appliedChecksums[version] = checksum
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var mismatches []string
	for _, migration := range migrations {
		if applied, exists := appliedChecksums[migration.Version]; exists && applied != migration.Checksum {
			mismatches = append(mismatches, fmt.Sprintf(
				"\n  Migration %s (%s):\n    Recorded checksum: %s\n    Current checksum:  %s",
				migration.Version, migration.Title, applied, migration.Checksum,
			))
		}
	}

	if len(mismatches) > 0 {
		return fmt.Errorf(
			"applied migrations have been modified on disk:%s\n"+
				"Restore the original files or add a new migration for the change.",
			strings.Join(mismatches, ""),
		)
	}

	return nil
}

func calculateChecksum(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
