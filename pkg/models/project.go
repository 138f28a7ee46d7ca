package models

import (
	"fmt"
	"time"
)

// Version is the current project file format version.
const Version = 3

// Project is the whole document: a flat arena of boards keyed by id, with
// parent/child links expressed only through idea notes' ChildBoardID. The
// board graph is an out-forest rooted at RootBoardID; boards never share a
// parent note.
type Project struct {
	Version     int
	ProjectID   string
	RootBoardID string
	Boards      map[string]*Board
	LastOpened  float64 // epoch seconds
}

// NewProject creates a fresh project holding one empty root board.
func NewProject() *Project {
	root := NewBoard("Raíz")
	return &Project{
		Version:     Version,
		ProjectID:   NewID(),
		RootBoardID: root.ID,
		Boards:      map[string]*Board{root.ID: root},
		LastOpened:  EpochNow(),
	}
}

// EpochNow returns the current time as epoch seconds, the unit LastOpened
// is persisted in.
func EpochNow() float64 {
	return float64(time.Now().UnixMilli()) / 1000
}

// Board resolves a board id, returning ErrNotFound for unknown ids.
func (p *Project) Board(boardID string) (*Board, error) {
	b, ok := p.Boards[boardID]
	if !ok {
		return nil, fmt.Errorf("board %s: %w", boardID, ErrNotFound)
	}
	return b, nil
}

// Root returns the root board. The root always resolves in a well-formed
// project.
func (p *Project) Root() *Board {
	return p.Boards[p.RootBoardID]
}

// FindNote resolves a (board, note) pair, returning ErrNotFound when either
// id is unknown.
func (p *Project) FindNote(boardID, noteID string) (*Board, *Note, error) {
	b, err := p.Board(boardID)
	if err != nil {
		return nil, nil, err
	}
	n, ok := b.Get(noteID)
	if !ok {
		return nil, nil, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	return b, n, nil
}

// EnsureChildBoard returns the child board of an idea note, allocating it
// lazily on first use. Child boards are never created eagerly with the note.
func (p *Project) EnsureChildBoard(n *Note) (*Board, error) {
	if n.Kind != KindIdea {
		return nil, fmt.Errorf("note %s is %s, not idea: %w", n.ID, n.Kind, ErrNotFound)
	}
	if n.ChildBoardID != "" {
		if b, ok := p.Boards[n.ChildBoardID]; ok {
			return b, nil
		}
	}
	title := "Sub-pizarra"
	if idea, ok := n.Payload.(IdeaPayload); ok && idea.Title != "" {
		title = idea.Title
	}
	child := NewBoard(title)
	n.ChildBoardID = child.ID
	p.Boards[child.ID] = child
	return child, nil
}
