// Package subtree implements the recursive operations over the board
// forest: whole-subtree capture for copy, instantiation for paste,
// cascading delete, and nest-by-containment. All of them preserve the
// forest invariants: boards never share a parent note, ids are never
// reused, and a note always belongs to exactly one board.
package subtree

import (
	"encoding/json"
	"fmt"

	"github.com/golker16/pizarra/pkg/models"
)

// Snapshot is a value-only copy of a note and, for ideas with a child
// board, its entire descendant hierarchy. Position is intentionally
// excluded: paste always re-positions.
type Snapshot struct {
	Kind     models.Kind          `json:"kind"`
	Size     [2]float64           `json:"size"`
	Z        int                  `json:"z"`
	Payload  models.PayloadRecord `json:"payload"`
	Children []*Snapshot          `json:"children,omitempty"`
}

// clipEnvelope is the clipboard transfer form. The marker field lets paste
// distinguish our own clips from arbitrary clipboard text.
type clipEnvelope struct {
	Marker bool      `json:"whiteboard_clip"`
	Root   *Snapshot `json:"root"`
}

// Capture produces a snapshot of the note's subtree, recursing over child
// boards in their stored order.
func Capture(p *models.Project, n *models.Note) *Snapshot {
	s := &Snapshot{
		Kind:    n.Kind,
		Size:    n.Size,
		Z:       n.Z,
		Payload: n.Payload.Record(),
	}
	if n.HasChildBoard() {
		if child, ok := p.Boards[n.ChildBoardID]; ok {
			for _, c := range child.Notes() {
				s.Children = append(s.Children, Capture(p, c))
			}
		}
	}
	return s
}

// EncodeClip serializes a snapshot to its clipboard text form.
func EncodeClip(s *Snapshot) (string, error) {
	data, err := json.Marshal(clipEnvelope{Marker: true, Root: s})
	if err != nil {
		return "", fmt.Errorf("encode clip: %w", err)
	}
	return string(data), nil
}

// DecodeClip parses clipboard text. The second return is false when the
// text is not one of our clips; paste treats that as a silent no-op, never
// an error surfaced to the user.
func DecodeClip(text string) (*Snapshot, bool) {
	var env clipEnvelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, false
	}
	if !env.Marker || env.Root == nil {
		return nil, false
	}
	return env.Root, true
}
