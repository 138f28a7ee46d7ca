package models

// Board is a named container of notes. ItemsOrder defines paint stacking
// and iteration order and is kept a permutation of the keys of Items;
// dangling order entries are a recoverable inconsistency pruned lazily on
// iteration.
type Board struct {
	ID         string
	Title      string
	ItemsOrder []string
	Items      map[string]*Note
}

// NewBoard allocates an empty board with a fresh id.
func NewBoard(title string) *Board {
	if title == "" {
		title = "Pizarra"
	}
	return &Board{
		ID:    NewID(),
		Title: title,
		Items: make(map[string]*Note),
	}
}

// Get looks up a note by id.
func (b *Board) Get(noteID string) (*Note, bool) {
	n, ok := b.Items[noteID]
	return n, ok
}

// Contains reports whether the board holds the note.
func (b *Board) Contains(noteID string) bool {
	_, ok := b.Items[noteID]
	return ok
}

// Insert adds a note to the board, appending it to the order list.
func (b *Board) Insert(n *Note) {
	if b.Items == nil {
		b.Items = make(map[string]*Note)
	}
	b.Items[n.ID] = n
	b.ItemsOrder = append(b.ItemsOrder, n.ID)
}

// Remove detaches a note from the board, dropping it from both the map and
// the order list. Returns nil when the note is not a member.
func (b *Board) Remove(noteID string) *Note {
	n, ok := b.Items[noteID]
	if !ok {
		return nil
	}
	delete(b.Items, noteID)
	for i, id := range b.ItemsOrder {
		if id == noteID {
			b.ItemsOrder = append(b.ItemsOrder[:i], b.ItemsOrder[i+1:]...)
			break
		}
	}
	return n
}

// Notes returns the board's notes in stacking order. Order entries with no
// backing note are pruned as they are encountered, never treated as fatal.
func (b *Board) Notes() []*Note {
	notes := make([]*Note, 0, len(b.ItemsOrder))
	kept := b.ItemsOrder[:0]
	for _, id := range b.ItemsOrder {
		n, ok := b.Items[id]
		if !ok {
			continue
		}
		kept = append(kept, id)
		notes = append(notes, n)
	}
	b.ItemsOrder = kept
	return notes
}
