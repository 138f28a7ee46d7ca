package service

import (
	"github.com/golker16/pizarra/pkg/models"
)

// DoctorReport summarizes project health: recoverable inconsistencies and
// attachments whose files have gone missing from disk.
type DoctorReport struct {
	BoardCount         int
	NoteCount          int
	PrunedOrderEntries int
	MissingAssets      []string
	UnreachableBoards  []string
}

// Doctor inspects the project, pruning dangling order entries (they are
// recoverable, never fatal) and reporting missing asset files and boards
// unreachable from the root. When persist is true the pruned state is
// saved.
func (s *Service) Doctor(persist bool) *DoctorReport {
	rep := &DoctorReport{BoardCount: len(s.project.Boards)}

	for _, b := range s.project.Boards {
		before := len(b.ItemsOrder)
		notes := b.Notes()
		rep.PrunedOrderEntries += before - len(b.ItemsOrder)
		rep.NoteCount += len(notes)

		for _, n := range notes {
			switch p := n.Payload.(type) {
			case models.ImagePayload:
				if p.Asset != "" && s.store.Resolve(p.Asset) == "" {
					rep.MissingAssets = append(rep.MissingAssets, p.Asset)
				}
			case models.AudioPayload:
				if p.Asset != "" && s.store.Resolve(p.Asset) == "" {
					rep.MissingAssets = append(rep.MissingAssets, p.Asset)
				}
			}
		}
	}
	// Walk child links from the root; anything left over is orphaned.
	reachable := map[string]bool{}
	var walk func(boardID string)
	walk = func(boardID string) {
		if reachable[boardID] {
			return
		}
		reachable[boardID] = true
		b, ok := s.project.Boards[boardID]
		if !ok {
			return
		}
		for _, n := range b.Notes() {
			if n.HasChildBoard() {
				walk(n.ChildBoardID)
			}
		}
	}
	walk(s.project.RootBoardID)
	for bid := range s.project.Boards {
		if !reachable[bid] {
			rep.UnreachableBoards = append(rep.UnreachableBoards, bid)
		}
	}

	if persist && rep.PrunedOrderEntries > 0 {
		s.writeThrough("doctor")
	}
	return rep
}
