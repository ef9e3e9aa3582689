package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/logger"
)

//go:generate mockgen -source=phrase.go -destination=mock_phrase_store.go -package=store

type Stats struct {
	Phrases int
	Weight  int
	Sources int
}

type PhraseStore interface {
	// SavePhrases replaces everything previously saved under source.
	SavePhrases(source string, phrases []corpus.Phrase) error
	LoadPhrases(ctx context.Context) ([]corpus.Phrase, error)
	LoadMatching(ctx context.Context, words []string) ([]corpus.Phrase, error)
	Stats(ctx context.Context) (Stats, error)
	GetLastProcessedMtime(key, path string) (int64, error)
	UpdateMetadata(key, path string, mtime int64) error
}

type SQLPhraseStore struct {
	db *sql.DB
}

func NewSQLPhraseStore(db *sql.DB) PhraseStore {
	return &SQLPhraseStore{db: db}
}

func hashPhrase(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (s *SQLPhraseStore) SavePhrases(source string, phrases []corpus.Phrase) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM phrases WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to clear source %s: %w", source, err)
	}

	stmt, err := tx.Prepare(`
        INSERT INTO phrases(text, hash, count, source)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(source, hash) DO UPDATE SET count = count + excluded.count
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range phrases {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			continue
		}
		count := p.Count
		if count <= 0 {
			count = 1
		}
		if _, err := stmt.Exec(text, hashPhrase(text), count, source); err != nil {
			return fmt.Errorf("failed to insert phrase %q: %w", text, err)
		}
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit phrase tx: %v", err)
		return err
	}
	return nil
}

func (s *SQLPhraseStore) LoadPhrases(ctx context.Context) ([]corpus.Phrase, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT MIN(text), SUM(count)
		FROM phrases
		GROUP BY hash
		ORDER BY MIN(id)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phrases: %w", err)
	}
	return scanPhrases(rows)
}

// LoadMatching returns the phrases the full-text index says contain words
// in order. The result is a superset; the scorer still checks adjacency.
func (s *SQLPhraseStore) LoadMatching(ctx context.Context, words []string) ([]corpus.Phrase, error) {
	if len(words) == 0 {
		return s.LoadPhrases(ctx)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT MIN(p.text), SUM(p.count)
		FROM phrases_fts f
		JOIN phrases p ON f.rowid = p.id
		WHERE phrases_fts MATCH ?
		GROUP BY p.hash
		ORDER BY MIN(p.id)
	`, ftsPhraseQuery(words))
	if err != nil {
		return nil, fmt.Errorf("failed to search phrases: %w", err)
	}
	return scanPhrases(rows)
}

func (s *SQLPhraseStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT hash), COALESCE(SUM(count), 0), COUNT(DISTINCT source)
		FROM phrases
	`).Scan(&st.Phrases, &st.Weight, &st.Sources)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read stats: %w", err)
	}
	return st, nil
}

func (s *SQLPhraseStore) GetLastProcessedMtime(key, path string) (int64, error) {
	var mtime int64
	err := s.db.QueryRow("SELECT mtime FROM meta WHERE key = ? AND path = ?", key, path).Scan(&mtime)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return mtime, err
}

func (s *SQLPhraseStore) UpdateMetadata(key, path string, mtime int64) error {
	_, err := s.db.Exec(`
        INSERT INTO meta (key, path, mtime) 
        VALUES (?, ?, ?) 
        ON CONFLICT(key) DO UPDATE SET 
            path = excluded.path,
            mtime = excluded.mtime`,
		key, path, mtime)
	return err
}

func scanPhrases(rows *sql.Rows) ([]corpus.Phrase, error) {
	defer rows.Close()

	var phrases []corpus.Phrase
	for rows.Next() {
		var text string
		var count int
		if err := rows.Scan(&text, &count); err != nil {
			return nil, fmt.Errorf("failed to scan phrase: %w", err)
		}
		phrases = append(phrases, corpus.Phrase{Words: strings.Fields(text), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return phrases, nil
}

// ftsPhraseQuery quotes words as a single FTS5 phrase.
func ftsPhraseQuery(words []string) string {
	joined := strings.Join(words, " ")
	return `"` + strings.ReplaceAll(joined, `"`, `""`) + `"`
}
