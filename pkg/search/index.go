// Package search maintains a sqlite full-text index over note text so the
// CLI can find notes anywhere in the board hierarchy. The index is derived
// state: it is rebuilt from the project and is never the source of truth.
package search

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/golker16/pizarra/pkg/models"
)

// Index manages the search index.
type Index struct {
	db     *sql.DB
	useFTS bool
}

// Result is one search hit.
type Result struct {
	BoardID    string
	BoardTitle string
	NoteID     string
	Kind       models.Kind
	Title      string
	Content    string
}

// NewIndex opens (creating if needed) the index at dbPath.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) init() error {
	idx.useFTS = idx.checkFTS5Support()

	metaSchema := `
	CREATE TABLE IF NOT EXISTS notes_meta (
		note_id TEXT PRIMARY KEY,
		board_id TEXT,
		board_title TEXT,
		kind TEXT,
		title TEXT,
		content TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_notes_meta_board ON notes_meta(board_id);
	CREATE INDEX IF NOT EXISTS idx_notes_meta_kind ON notes_meta(kind);
	`
	if _, err := idx.db.Exec(metaSchema); err != nil {
		return err
	}

	if idx.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
			note_id UNINDEXED,
			board_id UNINDEXED,
			board_title,
			kind,
			title,
			content,
			tokenize = 'porter unicode61'
		);
		`
		if _, err := idx.db.Exec(ftsSchema); err != nil {
			// FTS5 not compiled in; fall back to LIKE matching.
			idx.useFTS = false
		}
	}
	return nil
}

func (idx *Index) checkFTS5Support() bool {
	_, err := idx.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_test USING fts5(content)")
	if err != nil {
		return false
	}
	_, _ = idx.db.Exec("DROP TABLE IF EXISTS fts5_test")
	return true
}

// Close releases the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// Rebuild drops the index and re-derives it from the project.
func (idx *Index) Rebuild(p *models.Project) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM notes_meta"); err != nil {
		return err
	}
	if idx.useFTS {
		if _, err := tx.Exec("DELETE FROM notes_fts"); err != nil {
			return err
		}
	}

	for _, b := range p.Boards {
		for _, n := range b.Notes() {
			title, content := noteText(n)
			if title == "" && content == "" {
				continue
			}
			if idx.useFTS {
				_, err = tx.Exec(`
					INSERT INTO notes_fts (note_id, board_id, board_title, kind, title, content)
					VALUES (?, ?, ?, ?, ?, ?)
				`, n.ID, b.ID, b.Title, string(n.Kind), title, content)
				if err != nil {
					return err
				}
			}
			_, err = tx.Exec(`
				INSERT OR REPLACE INTO notes_meta (note_id, board_id, board_title, kind, title, content)
				VALUES (?, ?, ?, ?, ?, ?)
			`, n.ID, b.ID, b.Title, string(n.Kind), title, content)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// Search performs a full-text search over note titles and content.
func (idx *Index) Search(query string, limit int) ([]*Result, error) {
	if limit <= 0 {
		limit = 50
	}
	if idx.useFTS {
		return idx.searchWithFTS(query, limit)
	}
	return idx.searchWithoutFTS(query, limit)
}

func (idx *Index) searchWithFTS(query string, limit int) ([]*Result, error) {
	rows, err := idx.db.Query(`
		SELECT note_id, board_id, board_title, kind, title, content
		FROM notes_fts WHERE notes_fts MATCH ?
		ORDER BY rank LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fts query: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func (idx *Index) searchWithoutFTS(query string, limit int) ([]*Result, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := idx.db.Query(`
		SELECT note_id, board_id, board_title, kind, title, content
		FROM notes_meta
		WHERE lower(title) LIKE ? OR lower(content) LIKE ?
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("like query: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]*Result, error) {
	var results []*Result
	for rows.Next() {
		r := &Result{}
		var kind string
		if err := rows.Scan(&r.NoteID, &r.BoardID, &r.BoardTitle, &kind, &r.Title, &r.Content); err != nil {
			return nil, err
		}
		r.Kind = models.Kind(kind)
		results = append(results, r)
	}
	return results, rows.Err()
}

// noteText extracts the searchable text of a note.
func noteText(n *models.Note) (title, content string) {
	switch p := n.Payload.(type) {
	case models.IdeaPayload:
		return p.Title, p.Subtitle
	case models.TextPayload:
		return "", p.Body
	case models.EmojiPayload:
		return "", p.Glyph
	default:
		return "", ""
	}
}
