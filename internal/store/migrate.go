package store

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

// Migrate creates the schema. It is safe to run on every start.
func Migrate(db *sql.DB) error {
	schema := []string{
		// phrases: one row per distinct normalized phrase and source
		`CREATE TABLE IF NOT EXISTS phrases (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			text        TEXT NOT NULL,
			hash        TEXT NOT NULL,
			count       INTEGER NOT NULL DEFAULT 1,
			source      TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(source, hash)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phrases_hash ON phrases(hash);`,
		`CREATE INDEX IF NOT EXISTS idx_phrases_source ON phrases(source);`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS phrases_fts USING fts5(
			text, content='phrases', content_rowid='id'
		);`,
		`CREATE TRIGGER IF NOT EXISTS phrases_ai AFTER INSERT ON phrases BEGIN
			INSERT INTO phrases_fts(rowid, text) VALUES (new.id, new.text);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS phrases_ad AFTER DELETE ON phrases BEGIN
			INSERT INTO phrases_fts(phrases_fts, rowid, text) VALUES ('delete', old.id, old.text);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS phrases_au AFTER UPDATE OF text ON phrases BEGIN
			INSERT INTO phrases_fts(phrases_fts, rowid, text) VALUES ('delete', old.id, old.text);
			INSERT INTO phrases_fts(rowid, text) VALUES (new.id, new.text);
		END;`,
		// meta: last synced mtime of each corpus file
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
