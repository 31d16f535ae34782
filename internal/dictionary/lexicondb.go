package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"

	// sqlite3 driver is used for lexicon databases.
	_ "github.com/mattn/go-sqlite3"
)

// wordsQuery reads the words table of a lexicon database, in insertion
// order.
const wordsQuery = `SELECT word FROM words WHERE length(word) >= ? ORDER BY rowid`

// lexiconDB reads words out of a lexicon database.
type lexiconDB struct {
	db *sql.DB
}

// lexiconDSN builds a sqlite URI for path, escaping characters such as
// '?' and '#' that would otherwise end the file name.
func lexiconDSN(path, mode string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=" + mode}
	return u.String(), nil
}

func openLexiconDB(path string) (*lexiconDB, error) {
	dsn, err := lexiconDSN(path, "ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	return &lexiconDB{db: db}, nil
}

func (l *lexiconDB) Words(ctx context.Context, minLength int, fn func(word string)) error {
	rows, err := l.db.QueryContext(ctx, wordsQuery, minLength)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	defer rows.Close()
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return fmt.Errorf("%w: %v", ErrDictionaryRead, err)
		}
		w, ok := normalize(word)
		if !ok || len(w) < minLength {
			continue
		}
		fn(w)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDictionaryRead, err)
	}
	return nil
}

func (l *lexiconDB) Close() error {
	return l.db.Close()
}
