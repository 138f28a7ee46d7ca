package subtree

import (
	"fmt"

	"github.com/golker16/pizarra/pkg/models"
)

// Delete removes a note from its board. Deleting an idea that owns a child
// board requires cascade approval; without it the operation aborts with
// ErrCascadeConfirm and nothing is mutated. With cascade the entire
// descendant hierarchy is torn down depth-first, post-order: child boards
// are fully removed before their ancestor's board entry is dropped.
//
// Assets referenced by deleted notes stay in the asset store on purpose.
func Delete(p *models.Project, boardID, noteID string, cascade bool) error {
	b, n, err := p.FindNote(boardID, noteID)
	if err != nil {
		return err
	}
	if n.HasChildBoard() {
		if !cascade {
			return fmt.Errorf("note %s owns board %s: %w", noteID, n.ChildBoardID, models.ErrCascadeConfirm)
		}
		deleteBoardRecursive(p, n.ChildBoardID)
	}
	b.Remove(noteID)
	return nil
}

// DeletedBoards returns the ids of every board that a cascading delete of
// the note would remove. Callers use it to scrub navigation history after
// the fact.
func DeletedBoards(p *models.Project, n *models.Note) []string {
	if !n.HasChildBoard() {
		return nil
	}
	var ids []string
	collectBoards(p, n.ChildBoardID, &ids)
	return ids
}

func collectBoards(p *models.Project, boardID string, ids *[]string) {
	b, ok := p.Boards[boardID]
	if !ok {
		return
	}
	for _, n := range b.Notes() {
		if n.HasChildBoard() {
			collectBoards(p, n.ChildBoardID, ids)
		}
	}
	*ids = append(*ids, boardID)
}

func deleteBoardRecursive(p *models.Project, boardID string) {
	b, ok := p.Boards[boardID]
	if !ok {
		return
	}
	for _, n := range b.Notes() {
		if n.HasChildBoard() {
			deleteBoardRecursive(p, n.ChildBoardID)
		}
	}
	delete(p.Boards, boardID)
}
