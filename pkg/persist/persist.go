// Package persist serializes a whole project to a single JSON file and
// back. The file is the sole source of truth on disk and is fully
// overwritten on every save; writes go through a temp file and rename so a
// crashed save never leaves a half-written project behind.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/golker16/pizarra/pkg/models"
)

// Wire records. The layout is the version-3 format: a flat map of boards,
// each holding an ordered id list plus a map of note records with the
// superset payload.
type projectRecord struct {
	Version     int                    `json:"version"`
	ProjectID   string                 `json:"project_id"`
	RootBoardID string                 `json:"root_board_id"`
	LastOpened  float64                `json:"last_opened"`
	Boards      map[string]boardRecord `json:"boards"`
}

type boardRecord struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	ItemsOrder []string              `json:"items_order"`
	Items      map[string]noteRecord `json:"items"`
}

type noteRecord struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Pos          [2]float64           `json:"pos"`
	Size         [2]float64           `json:"size"`
	Z            int                  `json:"z"`
	ChildBoardID *string              `json:"child_board_id"`
	Payload      models.PayloadRecord `json:"payload"`
}

// Save writes the project to path, refreshing LastOpened. Failure is
// reported but must never roll back the in-memory mutation that triggered
// the save; the running session stays authoritative.
func Save(p *models.Project, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}

	p.LastOpened = models.EpochNow()
	rec := projectRecord{
		Version:     p.Version,
		ProjectID:   p.ProjectID,
		RootBoardID: p.RootBoardID,
		LastOpened:  p.LastOpened,
		Boards:      make(map[string]boardRecord, len(p.Boards)),
	}
	for bid, b := range p.Boards {
		br := boardRecord{
			ID:         b.ID,
			Title:      b.Title,
			ItemsOrder: append([]string(nil), b.ItemsOrder...),
			Items:      make(map[string]noteRecord, len(b.Items)),
		}
		for nid, n := range b.Items {
			br.Items[nid] = encodeNote(n)
		}
		rec.Boards[bid] = br
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	return writeFileAtomic(path, data, 0644)
}

// Load reads a project from path. A missing file yields a fresh empty
// project; first run must never error. Content that exists but cannot be
// decoded fails with ErrCorruptState; the caller decides the fallback.
func Load(path string) (*models.Project, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.NewProject(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	var rec projectRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse project: %w", models.ErrCorruptState)
	}
	if rec.RootBoardID == "" || rec.Boards == nil {
		return nil, fmt.Errorf("project missing root board: %w", models.ErrCorruptState)
	}
	if _, ok := rec.Boards[rec.RootBoardID]; !ok {
		return nil, fmt.Errorf("root board %s unresolved: %w", rec.RootBoardID, models.ErrCorruptState)
	}

	p := &models.Project{
		Version:     rec.Version,
		ProjectID:   rec.ProjectID,
		RootBoardID: rec.RootBoardID,
		LastOpened:  rec.LastOpened,
		Boards:      make(map[string]*models.Board, len(rec.Boards)),
	}
	if p.Version == 0 {
		p.Version = models.Version
	}
	if p.ProjectID == "" {
		p.ProjectID = models.NewID()
	}
	for bid, br := range rec.Boards {
		p.Boards[bid] = decodeBoard(bid, br)
	}
	return p, nil
}

func encodeNote(n *models.Note) noteRecord {
	rec := noteRecord{
		ID:      n.ID,
		Type:    string(n.Kind),
		Pos:     n.Pos,
		Size:    n.Size,
		Z:       n.Z,
		Payload: n.Payload.Record(),
	}
	if n.Kind == models.KindIdea && n.ChildBoardID != "" {
		child := n.ChildBoardID
		rec.ChildBoardID = &child
	}
	return rec
}

func decodeBoard(bid string, br boardRecord) *models.Board {
	b := &models.Board{
		ID:         br.ID,
		Title:      br.Title,
		ItemsOrder: br.ItemsOrder,
		Items:      make(map[string]*models.Note, len(br.Items)),
	}
	if b.ID == "" {
		b.ID = bid
	}
	if b.Title == "" {
		b.Title = "Pizarra"
	}
	for nid, nr := range br.Items {
		n := decodeNote(nid, nr)
		if n == nil {
			continue
		}
		b.Items[n.ID] = n
	}
	// Order entries for notes that failed to decode are pruned lazily on
	// iteration; notes missing from the order list are appended so the
	// permutation invariant holds from the start.
	inOrder := make(map[string]bool, len(b.ItemsOrder))
	for _, id := range b.ItemsOrder {
		inOrder[id] = true
	}
	var missing []string
	for id := range b.Items {
		if !inOrder[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	b.ItemsOrder = append(b.ItemsOrder, missing...)
	return b
}

func decodeNote(nid string, nr noteRecord) *models.Note {
	kind := models.Kind(nr.Type)
	if !kind.Valid() {
		return nil
	}
	n := &models.Note{
		ID:      nr.ID,
		Kind:    kind,
		Pos:     nr.Pos,
		Size:    nr.Size,
		Z:       nr.Z,
		Payload: nr.Payload.Payload(kind),
	}
	if n.ID == "" {
		n.ID = nid
	}
	if kind == models.KindIdea && nr.ChildBoardID != nil {
		n.ChildBoardID = *nr.ChildBoardID
	}
	if n.Size[0] <= 0 || n.Size[1] <= 0 {
		n.Size = models.DefaultSize(kind)
	}
	return n
}
