// Package storage implements the package database: a SQLite file holding
// the catalog records the session browses. The session only ever reads it
// (one LoadAll at startup or reload); writes happen through the import
// subcommand.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/paqtool/paq/internal/pkg"
)

const currentSchemaVersion = 1

// DB wraps the package database file.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the package database at path.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &DB{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *DB) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *DB) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *DB) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *DB) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS packages (
			name TEXT PRIMARY KEY NOT NULL,
			version TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			repository TEXT NOT NULL DEFAULT '',
			packager TEXT NOT NULL DEFAULT '',
			build_date TEXT NOT NULL DEFAULT '',
			install_state TEXT NOT NULL DEFAULT 'not installed',
			license TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_packages_repository ON packages(repository);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}

// LoadAll reads every record ordered by name. The primary key guarantees
// name uniqueness, so the result is deduplicated by construction.
func (s *DB) LoadAll() ([]*pkg.Record, error) {
	rows, err := s.db.Query(`
		SELECT name, version, description, url, repository, packager,
		       build_date, install_state, license
		FROM packages ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	defer rows.Close()

	var records []*pkg.Record
	for rows.Next() {
		r := &pkg.Record{}
		if err := rows.Scan(&r.Name, &r.Version, &r.Description, &r.URL,
			&r.Repository, &r.Packager, &r.BuildDate, &r.InstallState,
			&r.License); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Upsert writes records into the database, replacing rows that share a name.
func (s *DB) Upsert(records []*pkg.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO packages
			(name, version, description, url, repository, packager,
			 build_date, install_state, license)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			version = excluded.version,
			description = excluded.description,
			url = excluded.url,
			repository = excluded.repository,
			packager = excluded.packager,
			build_date = excluded.build_date,
			install_state = excluded.install_state,
			license = excluded.license
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Name, r.Version, r.Description, r.URL,
			r.Repository, r.Packager, r.BuildDate, r.InstallState,
			r.License); err != nil {
			return fmt.Errorf("upsert %s: %w", r.Name, err)
		}
	}

	return tx.Commit()
}
