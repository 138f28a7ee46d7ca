package service

import (
	"errors"
	"fmt"

	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/subtree"
)

// CurrentBoard resolves the board the session is on.
func (s *Service) CurrentBoard() (*models.Board, error) {
	return s.project.Board(s.hist.Current())
}

// CreateNote allocates a note of the given kind at pos on the current
// board.
func (s *Service) CreateNote(kind models.Kind, pos [2]float64) (*models.Note, error) {
	return s.CreateNoteOn(s.hist.Current(), kind, pos)
}

// CreateNoteOn allocates a note on an explicit board. Fails with
// ErrNotFound when the board id is unknown.
func (s *Service) CreateNoteOn(boardID string, kind models.Kind, pos [2]float64) (*models.Note, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown note kind %q", kind)
	}
	b, err := s.project.Board(boardID)
	if err != nil {
		return nil, err
	}
	n := models.NewNote(kind, pos)
	b.Insert(n)
	s.writeThrough("create")
	return n, nil
}

// DeleteNote removes a note from the current board. An idea owning a child
// board is only deleted when cascade is true; the presentation layer is
// expected to confirm with the user first. Boards removed by the cascade
// are scrubbed from navigation history, relocating the session to the root
// if it was inside the deleted subtree.
func (s *Service) DeleteNote(noteID string, cascade bool) error {
	return s.DeleteNoteOn(s.hist.Current(), noteID, cascade)
}

// DeleteNoteOn deletes from an explicit board, for callers acting on a
// hierarchy view rather than the session's current board.
func (s *Service) DeleteNoteOn(boardID, noteID string, cascade bool) error {
	_, n, err := s.project.FindNote(boardID, noteID)
	if err != nil {
		return err
	}
	doomed := subtree.DeletedBoards(s.project, n)

	if err := subtree.Delete(s.project, boardID, noteID, cascade); err != nil {
		return err
	}
	for _, id := range doomed {
		if id == s.hist.Current() {
			s.hist.Reset(s.project.RootBoardID)
		}
		s.hist.Drop(id)
	}
	s.writeThrough("delete")
	return nil
}

// MutateNote applies fn to a note on the current board and persists the
// result. The model stores ground truth; the presentation layer pushes
// position/size updates through here on every interaction.
func (s *Service) MutateNote(noteID string, fn func(*models.Note)) error {
	_, n, err := s.project.FindNote(s.hist.Current(), noteID)
	if err != nil {
		return err
	}
	fn(n)
	s.writeThrough("mutate")
	return nil
}

// MoveNote updates a note's position.
func (s *Service) MoveNote(noteID string, pos [2]float64) error {
	return s.MutateNote(noteID, func(n *models.Note) {
		n.Pos = pos
	})
}

// ResizeNote updates a note's size, ignoring non-positive dimensions.
func (s *Service) ResizeNote(noteID string, size [2]float64) error {
	if size[0] <= 0 || size[1] <= 0 {
		return fmt.Errorf("size must be positive, got %gx%g", size[0], size[1])
	}
	return s.MutateNote(noteID, func(n *models.Note) {
		n.Size = size
	})
}

// CopyNote captures the note's subtree and returns the clipboard text.
// Copying mutates nothing.
func (s *Service) CopyNote(noteID string) (string, error) {
	_, n, err := s.project.FindNote(s.hist.Current(), noteID)
	if err != nil {
		return "", err
	}
	return subtree.EncodeClip(subtree.Capture(s.project, n))
}

// CutNote is copy followed by delete; the cascade contract is the same as
// DeleteNote's, and the clip survives even though the source is gone.
func (s *Service) CutNote(noteID string, cascade bool) (string, error) {
	clip, err := s.CopyNote(noteID)
	if err != nil {
		return "", err
	}
	if err := s.DeleteNote(noteID, cascade); err != nil {
		return "", err
	}
	return clip, nil
}

// PasteClip instantiates clipboard text on the current board at pos (nil
// means the default paste position). Foreign clipboard content reports
// ok=false and is otherwise ignored.
func (s *Service) PasteClip(text string, pos *[2]float64) (*models.Note, bool, error) {
	snap, ours := subtree.DecodeClip(text)
	if !ours {
		return nil, false, nil
	}
	n, err := s.engine.Paste(s.project, snap, s.hist.Current(), pos)
	if err != nil {
		return nil, true, err
	}
	s.writeThrough("paste")
	return n, true, nil
}

// NestNote moves a dragged note into a target idea's child board when the
// drop overlaps enough of the target. Reports whether the note moved.
func (s *Service) NestNote(draggedID, targetID string) (bool, error) {
	moved, err := s.engine.Nest(s.project, s.hist.Current(), draggedID, targetID)
	if err != nil {
		return false, err
	}
	if moved {
		s.writeThrough("nest")
	}
	return moved, nil
}

// EnterNote descends into an idea note's child board, creating it lazily,
// and pushes the move onto navigation history.
func (s *Service) EnterNote(noteID string) (string, error) {
	_, n, err := s.project.FindNote(s.hist.Current(), noteID)
	if err != nil {
		return "", err
	}
	if n.Kind != models.KindIdea {
		return "", fmt.Errorf("note %s is %s, not idea", noteID, n.Kind)
	}
	created := n.ChildBoardID == ""
	child, err := s.project.EnsureChildBoard(n)
	if err != nil {
		return "", err
	}
	s.hist.Enter(child.ID)
	if created {
		s.writeThrough("enter")
	}
	return child.ID, nil
}

// IsCascadeConfirm reports whether err is the cascade-approval contract
// violation, so callers can turn it into a confirmation prompt.
func IsCascadeConfirm(err error) bool {
	return errors.Is(err, models.ErrCascadeConfirm)
}
