package subtree

import (
	"fmt"

	"github.com/golker16/pizarra/pkg/models"
)

// AssetDuplicator re-stores an attachment under a fresh reference. Paste
// never aliases asset references between source and destination.
type AssetDuplicator interface {
	Duplicate(ref string) (string, error)
}

// Policy holds the tunable constants of the engine. They are policy, not
// correctness: exact values may be changed through configuration.
type Policy struct {
	// NestThreshold is the minimum fraction of the dragged note's area
	// that must overlap the target idea's bounds for a drop to nest.
	NestThreshold float64
	// PastePos is where pasted notes land when the caller gives no target
	// position; children of a pasted subtree always land here.
	PastePos [2]float64
	// NestPos is where a nested note lands inside its new board, since its
	// old coordinates were local to the source board.
	NestPos [2]float64
}

// DefaultPolicy returns the stock constants.
func DefaultPolicy() Policy {
	return Policy{
		NestThreshold: 0.35,
		PastePos:      [2]float64{60, 60},
		NestPos:       [2]float64{40, 40},
	}
}

// Engine runs the subtree operations that need an asset store or policy
// constants.
type Engine struct {
	Assets AssetDuplicator
	Policy Policy
}

// NewEngine builds an engine over the given asset store with the given
// policy.
func NewEngine(assets AssetDuplicator, policy Policy) *Engine {
	return &Engine{Assets: assets, Policy: policy}
}

// Paste instantiates a snapshot on the destination board. The top-level
// note honors pos when given; children always land at the policy's default
// position. Every id is freshly allocated and every asset reference is
// re-stored, so repeated pastes of the same clip are fully independent.
func (e *Engine) Paste(p *models.Project, snap *Snapshot, boardID string, pos *[2]float64) (*models.Note, error) {
	b, err := p.Board(boardID)
	if err != nil {
		return nil, err
	}
	if !snap.Kind.Valid() {
		return nil, fmt.Errorf("clip kind %q: %w", snap.Kind, models.ErrCorruptState)
	}
	return e.instantiate(p, snap, b, pos)
}

func (e *Engine) instantiate(p *models.Project, snap *Snapshot, b *models.Board, pos *[2]float64) (*models.Note, error) {
	rec := snap.Payload
	if rec.ImageAsset != "" {
		ref, err := e.Assets.Duplicate(rec.ImageAsset)
		if err != nil {
			ref = ""
		}
		rec.ImageAsset = ref
	}
	if rec.AudioAsset != "" {
		ref, err := e.Assets.Duplicate(rec.AudioAsset)
		if err != nil {
			ref = ""
		}
		rec.AudioAsset = ref
	}

	n := &models.Note{
		ID:      models.NewID(),
		Kind:    snap.Kind,
		Pos:     e.Policy.PastePos,
		Size:    snap.Size,
		Z:       snap.Z,
		Payload: rec.Payload(snap.Kind),
	}
	if pos != nil {
		n.Pos = *pos
	}
	if n.Size[0] <= 0 || n.Size[1] <= 0 {
		n.Size = models.DefaultSize(n.Kind)
	}
	b.Insert(n)

	if n.Kind == models.KindIdea && len(snap.Children) > 0 {
		child, err := p.EnsureChildBoard(n)
		if err != nil {
			return nil, err
		}
		for _, ch := range snap.Children {
			if !ch.Kind.Valid() {
				continue
			}
			if _, err := e.instantiate(p, ch, child, nil); err != nil {
				return nil, err
			}
		}
	}
	return n, nil
}

// Nest moves a dragged note into the child board of a target idea note on
// the same board, creating the child board lazily. The move happens only
// when the dragged note's area overlaps the target by at least the policy
// threshold; self-drops, drops on non-idea notes and thin overlaps are
// silent no-ops. Returns whether the note was moved.
//
// Dragged and target are siblings, so the one-hop move can never introduce
// a cycle in the board forest.
func (e *Engine) Nest(p *models.Project, boardID, draggedID, targetID string) (bool, error) {
	if draggedID == targetID {
		return false, nil
	}
	b, err := p.Board(boardID)
	if err != nil {
		return false, err
	}
	dragged, ok := b.Get(draggedID)
	if !ok {
		return false, fmt.Errorf("note %s: %w", draggedID, models.ErrNotFound)
	}
	target, ok := b.Get(targetID)
	if !ok || target.Kind != models.KindIdea {
		return false, nil
	}
	if target.ChildBoardID == boardID {
		return false, nil
	}
	if overlapRatio(dragged, target) < e.Policy.NestThreshold {
		return false, nil
	}

	child, err := p.EnsureChildBoard(target)
	if err != nil {
		return false, err
	}
	if child.Contains(draggedID) {
		return false, nil
	}

	b.Remove(draggedID)
	dragged.Pos = e.Policy.NestPos
	child.Insert(dragged)
	return true, nil
}

// overlapRatio returns the fraction of the dragged note's area that lies
// inside the target's bounds.
func overlapRatio(dragged, target *models.Note) float64 {
	area := dragged.Size[0] * dragged.Size[1]
	if area <= 0 {
		return 0
	}
	w := overlap1D(dragged.Pos[0], dragged.Size[0], target.Pos[0], target.Size[0])
	h := overlap1D(dragged.Pos[1], dragged.Size[1], target.Pos[1], target.Size[1])
	return w * h / area
}

func overlap1D(aPos, aLen, bPos, bLen float64) float64 {
	lo := aPos
	if bPos > lo {
		lo = bPos
	}
	hi := aPos + aLen
	if bPos+bLen < hi {
		hi = bPos + bLen
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
