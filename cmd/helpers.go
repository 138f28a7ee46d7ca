// Package cmd holds the cobra subcommands of the pizarra CLI. Commands
// are thin: argument parsing and printing here, semantics in pkg/service.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/golker16/pizarra/cmd/config"
	"github.com/golker16/pizarra/pkg/models"
)

// shortID trims an id for display; full ids are 32 hex chars.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveNote finds a note on the board by unique id prefix.
func resolveNote(b *models.Board, prefix string) (*models.Note, error) {
	if prefix == "" {
		return nil, fmt.Errorf("empty note id")
	}
	var found *models.Note
	for _, n := range b.Notes() {
		if strings.HasPrefix(n.ID, prefix) {
			if found != nil {
				return nil, fmt.Errorf("note id %q is ambiguous", prefix)
			}
			found = n
		}
	}
	if found == nil {
		return nil, fmt.Errorf("note %q: %w", prefix, models.ErrNotFound)
	}
	return found, nil
}

// resolveBoard finds a board by unique id prefix anywhere in the project.
func resolveBoard(p *models.Project, prefix string) (*models.Board, error) {
	if prefix == "" {
		return nil, fmt.Errorf("empty board id")
	}
	var found *models.Board
	for id, b := range p.Boards {
		if strings.HasPrefix(id, prefix) {
			if found != nil {
				return nil, fmt.Errorf("board id %q is ambiguous", prefix)
			}
			found = b
		}
	}
	if found == nil {
		return nil, fmt.Errorf("board %q: %w", prefix, models.ErrNotFound)
	}
	return found, nil
}

// parsePos parses an "x,y" flag value.
func parsePos(s string) ([2]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("position must be x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("position %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("position %q: %w", s, err)
	}
	return [2]float64{x, y}, nil
}

// parseSize parses a "WxH" flag value.
func parseSize(s string) ([2]float64, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("size must be WxH, got %q", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("size %q: %w", s, err)
	}
	return [2]float64{w, h}, nil
}

// writeClip puts clip text on the system clipboard, falling back to a clip
// file in the data dir on headless systems.
func writeClip(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return os.WriteFile(config.ClipFallbackPath(), []byte(text), 0644)
}

// readClip reads clip text, preferring the system clipboard.
func readClip() (string, error) {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text, nil
	}
	data, err := os.ReadFile(config.ClipFallbackPath())
	if err != nil {
		return "", fmt.Errorf("nothing to paste: %w", err)
	}
	return string(data), nil
}

// noteLabel is a one-line description of a note for listings.
func noteLabel(n *models.Note) string {
	switch p := n.Payload.(type) {
	case models.IdeaPayload:
		return p.Title
	case models.TextPayload:
		body := strings.ReplaceAll(p.Body, "\n", " ")
		if len(body) > 40 {
			body = body[:40] + "…"
		}
		return body
	case models.ImagePayload:
		return p.Asset
	case models.AudioPayload:
		return p.Asset
	case models.EmojiPayload:
		return p.Glyph
	case models.ArrowPayload:
		return fmt.Sprintf("(%g,%g)→(%g,%g)", p.From[0], p.From[1], p.To[0], p.To[1])
	}
	return ""
}
