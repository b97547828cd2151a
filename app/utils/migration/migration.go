// Package migration applies the embedded portal schema migrations in
// version order, tracking applied versions in a schema_migrations table.
package migration

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Migration is one versioned schema change, loaded as an up/down SQL pair
// named NNN_description.up.sql / NNN_description.down.sql.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	AppliedAt time.Time
}

// Migrator runs migrations from a filesystem against a database handle.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
	files  fs.FS
}

// NewMigrator creates a new migration runner
func NewMigrator(db *sql.DB, logger *slog.Logger, files fs.FS) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger.With("component", "migrator"),
		files:  files,
	}
}

// ensureVersionTable creates the tracking table on first use.
func (m *Migrator) ensureVersionTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum CHAR(64) NOT NULL
	)`

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

// Load reads every up/down pair from the filesystem, sorted by version.
// A missing down file or a duplicate version is an error; files that do not
// follow the naming convention are skipped with a warning.
func (m *Migrator) Load() ([]Migration, error) {
	var migrations []Migration
	seen := make(map[int]string)

	err := fs.WalkDir(m.files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		filename := filepath.Base(path)
		version, name, ok := parseMigrationFile(filename)
		if !ok {
			m.logger.Warn("skipping file with unrecognized migration name", "filename", filename)
			return nil
		}

		if prev, dup := seen[version]; dup {
			return fmt.Errorf("duplicate migration version %d: %s and %s", version, prev, filename)
		}
		seen[version] = filename

		upSQL, err := fs.ReadFile(m.files, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		downPath := strings.TrimSuffix(path, ".up.sql") + ".down.sql"
		downSQL, err := fs.ReadFile(m.files, downPath)
		if err != nil {
			return fmt.Errorf("migration %d has no down file %s: %w", version, downPath, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Applied returns the versions recorded in the tracking table with their
// application times.
func (m *Migrator) Applied() (map[int]time.Time, error) {
	rows, err := m.db.Query(`SELECT version, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var appliedAt time.Time
		if err := rows.Scan(&version, &appliedAt); err != nil {
			return nil, fmt.Errorf("scan migration row: %w", err)
		}
		applied[version] = appliedAt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate migration rows: %w", err)
	}

	return applied, nil
}

// Up applies every pending migration in version order.
func (m *Migrator) Up() error {
	if err := m.ensureVersionTable(); err != nil {
		return err
	}

	migrations, err := m.Load()
	if err != nil {
		return err
	}

	applied, err := m.Applied()
	if err != nil {
		return err
	}

	pending := 0
	for _, migration := range migrations {
		if _, done := applied[migration.Version]; done {
			continue
		}

		if err := m.apply(migration); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", migration.Version, migration.Name, err)
		}

		m.logger.Info("applied migration",
			"version", migration.Version,
			"name", migration.Name)
		pending++
	}

	if pending == 0 {
		m.logger.Info("schema is up to date")
	}
	return nil
}

// Down rolls back the most recent migrations, newest first.
func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	migrations, err := m.Load()
	if err != nil {
		return err
	}
	byVersion := make(map[int]Migration, len(migrations))
	for _, migration := range migrations {
		byVersion[migration.Version] = migration
	}

	for i := 0; i < steps; i++ {
		applied, err := m.Applied()
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			m.logger.Info("no migrations to roll back")
			return nil
		}

		latest := 0
		for version := range applied {
			if version > latest {
				latest = version
			}
		}

		migration, ok := byVersion[latest]
		if !ok {
			return fmt.Errorf("applied migration %d has no file on disk", latest)
		}

		if err := m.rollback(migration); err != nil {
			return fmt.Errorf("roll back migration %d (%s): %w", migration.Version, migration.Name, err)
		}

		m.logger.Info("rolled back migration",
			"version", migration.Version,
			"name", migration.Name)
	}

	return nil
}

// Status logs each known migration with its applied state.
func (m *Migrator) Status() error {
	migrations, err := m.Load()
	if err != nil {
		return err
	}

	applied, err := m.Applied()
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if appliedAt, done := applied[migration.Version]; done {
			m.logger.Info("migration applied",
				"version", migration.Version,
				"name", migration.Name,
				"applied_at", appliedAt.Format(time.RFC3339))
		} else {
			m.logger.Info("migration pending",
				"version", migration.Version,
				"name", migration.Name)
		}
	}

	return nil
}

// apply runs one up migration and records it in a single transaction.
func (m *Migrator) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.UpSQL); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}

	insert := `INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(insert, migration.Version, migration.Name, checksum(migration.UpSQL)); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}

// rollback runs one down migration and removes its record in a single
// transaction.
func (m *Migrator) rollback(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.DownSQL); err != nil {
		return fmt.Errorf("execute rollback: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, migration.Version); err != nil {
		return fmt.Errorf("remove migration record: %w", err)
	}

	return tx.Commit()
}

// parseMigrationFile splits "NNN_description.up.sql" into its version and
// description.
func parseMigrationFile(filename string) (int, string, bool) {
	base := strings.TrimSuffix(filename, ".up.sql")
	versionStr, name, found := strings.Cut(base, "_")
	if !found || name == "" {
		return 0, "", false
	}

	version, err := strconv.Atoi(versionStr)
	if err != nil || version <= 0 {
		return 0, "", false
	}

	return version, name, true
}

// checksum fingerprints migration content so a rewritten file is detectable
// against the recorded value.
func checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
