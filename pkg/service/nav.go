package service

// RecentBoard is one entry of the most-recently-used list, resolved
// against the live project.
type RecentBoard struct {
	ID    string
	Title string
}

// GoToBoard switches the session to an arbitrary board. An id that no
// longer resolves (deleted behind history's back) is scrubbed from history
// and reported as ErrNotFound for the caller to handle.
func (s *Service) GoToBoard(boardID string) error {
	if _, err := s.project.Board(boardID); err != nil {
		s.hist.Drop(boardID)
		return err
	}
	s.hist.Enter(boardID)
	return nil
}

// Back walks the back stack, skipping over boards that were deleted while
// referenced in history. Reports false when the stack runs empty, leaving
// the current board unchanged.
func (s *Service) Back() (string, bool) {
	for {
		id, ok := s.hist.Back()
		if !ok {
			return s.hist.Current(), false
		}
		if _, err := s.project.Board(id); err == nil {
			return id, true
		}
		// Stale entry: undo the move, then scrub the id everywhere.
		s.hist.Forward()
		s.hist.Drop(id)
	}
}

// Forward is the mirror of Back over the forward stack.
func (s *Service) Forward() (string, bool) {
	for {
		id, ok := s.hist.Forward()
		if !ok {
			return s.hist.Current(), false
		}
		if _, err := s.project.Board(id); err == nil {
			return id, true
		}
		s.hist.Back()
		s.hist.Drop(id)
	}
}

// Recent returns the most-recently-used boards that still exist, newest
// first; stale entries are scrubbed as they are found.
func (s *Service) Recent() []RecentBoard {
	var out []RecentBoard
	for _, id := range s.hist.Recent() {
		b, err := s.project.Board(id)
		if err != nil {
			s.hist.Drop(id)
			continue
		}
		out = append(out, RecentBoard{ID: b.ID, Title: b.Title})
	}
	return out
}

// BoardPath returns the chain of board titles from the root to the given
// board, for breadcrumb display. Boards unreachable from the root come
// back as just their own title.
func (s *Service) BoardPath(boardID string) []string {
	b, err := s.project.Board(boardID)
	if err != nil {
		return nil
	}
	parents := make(map[string]string) // child board -> parent board
	titles := make(map[string]string)
	for bid, board := range s.project.Boards {
		titles[bid] = board.Title
		for _, n := range board.Notes() {
			if n.HasChildBoard() {
				parents[n.ChildBoardID] = bid
			}
		}
	}
	path := []string{b.Title}
	for id := boardID; ; {
		parent, ok := parents[id]
		if !ok {
			break
		}
		path = append([]string{titles[parent]}, path...)
		id = parent
	}
	return path
}
