package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golker16/pizarra/pkg/history"
	"github.com/golker16/pizarra/pkg/models"
)

// sessionRecord is the on-disk form of the navigation state, so the CLI
// picks up where it left off across invocations. It is a cache: anything
// stale or unreadable falls back to a fresh session at the root board.
type sessionRecord struct {
	CurrentBoard string   `json:"current_board"`
	Back         []string `json:"back"`
	Forward      []string `json:"forward"`
	Recent       []string `json:"recent"`
}

// LoadSession restores navigation history from path, validated against the
// live project. A missing or corrupt session, or one whose current board
// no longer exists, starts over at the root.
func LoadSession(path string, p *models.Project, capacity int) *history.History {
	data, err := os.ReadFile(path)
	if err != nil {
		return history.New(p.RootBoardID, capacity)
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return history.New(p.RootBoardID, capacity)
	}
	if _, ok := p.Boards[rec.CurrentBoard]; !ok {
		return history.New(p.RootBoardID, capacity)
	}
	return history.Restore(rec.CurrentBoard, rec.Back, rec.Forward, rec.Recent, capacity)
}

// SaveSession writes the navigation state to path.
func SaveSession(path string, h *history.History) error {
	current, back, forward, mru := h.Snapshot()
	rec := sessionRecord{
		CurrentBoard: current,
		Back:         back,
		Forward:      forward,
		Recent:       mru,
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
