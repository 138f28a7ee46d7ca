package models

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Kind identifies the type of a note. The wire tags are preserved from
// version-3 project files, which is why text notes are tagged "texto".
type Kind string

const (
	KindIdea  Kind = "idea"
	KindText  Kind = "texto"
	KindAudio Kind = "audio"
	KindImage Kind = "image"
	KindEmoji Kind = "emoji"
	KindArrow Kind = "arrow"
)

// Valid reports whether k is a known note kind.
func (k Kind) Valid() bool {
	switch k {
	case KindIdea, KindText, KindAudio, KindImage, KindEmoji, KindArrow:
		return true
	}
	return false
}

// NewID returns a fresh 128-bit random identifier, hex encoded.
// Identifiers are never reused or derived from content.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// Note is a typed item placed on a board. An idea note may own a child
// board, created lazily on first enter or nest; ChildBoardID is empty for
// every other kind.
type Note struct {
	ID           string
	Kind         Kind
	Pos          [2]float64
	Size         [2]float64
	Z            int
	ChildBoardID string
	Payload      Payload
}

// DefaultSize returns the initial size for a note of the given kind.
func DefaultSize(k Kind) [2]float64 {
	switch k {
	case KindText:
		return [2]float64{280, 160}
	case KindImage:
		return [2]float64{320, 220}
	case KindAudio:
		return [2]float64{280, 120}
	default:
		return [2]float64{260, 140}
	}
}

// NewNote allocates a note of the given kind at pos with a fresh id, the
// kind's default size and default payload.
func NewNote(kind Kind, pos [2]float64) *Note {
	return &Note{
		ID:      NewID(),
		Kind:    kind,
		Pos:     pos,
		Size:    DefaultSize(kind),
		Payload: DefaultPayload(kind),
	}
}

// HasChildBoard reports whether the note owns a child board.
func (n *Note) HasChildBoard() bool {
	return n.Kind == KindIdea && n.ChildBoardID != ""
}
