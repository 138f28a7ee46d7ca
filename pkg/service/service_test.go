package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golker16/pizarra/pkg/assets"
	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/persist"
	"github.com/golker16/pizarra/pkg/subtree"
)

type fixture struct {
	svc   *Service
	saves int
	fail  bool
	path  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	store, err := assets.New(filepath.Join(dir, "assets"))
	require.NoError(t, err)

	f := &fixture{path: filepath.Join(dir, "last.json")}
	svc, err := New(Options{
		Project: models.NewProject(),
		Assets:  store,
		Save: func(p *models.Project) error {
			if f.fail {
				return fmt.Errorf("disk full")
			}
			f.saves++
			return persist.Save(p, f.path)
		},
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestPartialPolicyKeepsSetFields(t *testing.T) {
	store, err := assets.New(filepath.Join(t.TempDir(), "assets"))
	require.NoError(t, err)

	s, err := New(Options{
		Project: models.NewProject(),
		Assets:  store,
		Policy:  subtree.Policy{NestThreshold: 0.2},
		Save:    func(*models.Project) error { return nil },
	})
	require.NoError(t, err)

	// The unset paste position fell back to the default.
	n, err := s.CreateNote(models.KindEmoji, [2]float64{0, 0})
	require.NoError(t, err)
	clip, err := s.CopyNote(n.ID)
	require.NoError(t, err)
	pasted, ours, err := s.PasteClip(clip, nil)
	require.NoError(t, err)
	require.True(t, ours)
	assert.Equal(t, subtree.DefaultPolicy().PastePos, pasted.Pos)

	// The configured threshold survived: a 25% overlap nests at 0.2 but
	// not at the stock 0.35.
	target, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)
	require.NoError(t, s.MutateNote(target.ID, func(n *models.Note) {
		n.Size = [2]float64{200, 200}
	}))
	dragged, err := s.CreateNote(models.KindText, [2]float64{0, 0})
	require.NoError(t, err)
	require.NoError(t, s.MutateNote(dragged.ID, func(n *models.Note) {
		n.Size = [2]float64{100, 100}
		n.Pos = [2]float64{0, 175}
	}))
	moved, err := s.NestNote(dragged.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, moved)
}

func TestCreateNoteWritesThrough(t *testing.T) {
	f := newFixture(t)

	n, err := f.svc.CreateNote(models.KindIdea, [2]float64{10, 10})
	require.NoError(t, err)
	assert.Equal(t, 1, f.saves, "every mutation saves immediately")
	assert.Equal(t, "saved", f.svc.Status())

	b, err := f.svc.CurrentBoard()
	require.NoError(t, err)
	assert.True(t, b.Contains(n.ID))
}

func TestCreateNoteOnUnknownBoard(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateNoteOn("missing", models.KindText, [2]float64{0, 0})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Zero(t, f.saves, "failed operations do not save")
}

func TestSaveFailureDoesNotRollBack(t *testing.T) {
	f := newFixture(t)
	f.fail = true

	n, err := f.svc.CreateNote(models.KindText, [2]float64{0, 0})
	require.NoError(t, err, "the mutation itself succeeds")
	assert.Contains(t, f.svc.Status(), "save failed")

	b, err := f.svc.CurrentBoard()
	require.NoError(t, err)
	assert.True(t, b.Contains(n.ID), "the in-memory model stays authoritative")
}

// TestCopyPasteSubtree walks the end-to-end example: idea on the root,
// child board with a text note, copy the idea, paste it twice.
func TestCopyPasteSubtree(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	i1, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)

	b1ID, err := s.EnterNote(i1.ID)
	require.NoError(t, err)
	assert.Equal(t, b1ID, s.History().Current())

	t1, err := s.CreateNote(models.KindText, [2]float64{5, 5})
	require.NoError(t, err)
	require.NoError(t, s.MutateNote(t1.ID, func(n *models.Note) {
		n.Payload = models.TextPayload{Body: "hello", FontPt: 12}
	}))

	// Back to the root to copy the whole subtree.
	_, moved := s.Back()
	require.True(t, moved)

	clip, err := s.CopyNote(i1.ID)
	require.NoError(t, err)

	pos := [2]float64{50, 50}
	i2, ours, err := s.PasteClip(clip, &pos)
	require.NoError(t, err)
	require.True(t, ours)

	assert.NotEqual(t, i1.ID, i2.ID)
	assert.Equal(t, pos, i2.Pos)
	require.True(t, i2.HasChildBoard())
	assert.NotEqual(t, i1.ChildBoardID, i2.ChildBoardID)

	b2 := s.Project().Boards[i2.ChildBoardID]
	require.Len(t, b2.Notes(), 1)
	pasted := b2.Notes()[0]
	assert.NotEqual(t, t1.ID, pasted.ID)
	assert.Equal(t, models.TextPayload{Body: "hello", FontPt: 12}, pasted.Payload)

	// Foreign clipboard content is a silent no-op.
	_, ours, err = s.PasteClip("grocery list", nil)
	require.NoError(t, err)
	assert.False(t, ours)
}

func TestCutKeepsClipAfterDelete(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	n, err := s.CreateNote(models.KindEmoji, [2]float64{0, 0})
	require.NoError(t, err)

	clip, err := s.CutNote(n.ID, false)
	require.NoError(t, err)
	require.NotEmpty(t, clip)

	b, err := s.CurrentBoard()
	require.NoError(t, err)
	assert.False(t, b.Contains(n.ID))

	pasted, ours, err := s.PasteClip(clip, nil)
	require.NoError(t, err)
	require.True(t, ours)
	assert.Equal(t, models.KindEmoji, pasted.Kind)
}

func TestDeleteCascadeScrubsHistory(t *testing.T) {
	f := newFixture(t)
	s := f.svc
	rootID := s.Project().RootBoardID

	idea, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)
	childID, err := s.EnterNote(idea.ID)
	require.NoError(t, err)

	// Session is inside the doomed subtree; the delete acts on the root
	// board, the way a hierarchy view would.
	require.NoError(t, s.DeleteNoteOn(rootID, idea.ID, true))
	assert.Equal(t, rootID, s.History().Current(), "session relocates to the root")
	assert.NotContains(t, s.History().Recent(), childID)

	_, moved := s.Back()
	assert.False(t, moved, "no stale entries survive")
}

func TestDeleteFromRootWhileInside(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	idea, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)
	_, err = s.EnterNote(idea.ID)
	require.NoError(t, err)
	_, moved := s.Back()
	require.True(t, moved)

	// Without cascade approval nothing happens.
	err = s.DeleteNote(idea.ID, false)
	assert.True(t, IsCascadeConfirm(err))
	b, _ := s.CurrentBoard()
	assert.True(t, b.Contains(idea.ID))

	require.NoError(t, s.DeleteNote(idea.ID, true))
	assert.Len(t, s.Project().Boards, 1)

	// Forward would lead into the deleted board; it gets skipped.
	_, moved = s.Forward()
	assert.False(t, moved)
}

func TestEnterIsLazyAndSavesOnce(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	idea, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)
	require.Empty(t, idea.ChildBoardID)
	saves := f.saves

	childID, err := s.EnterNote(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, idea.ChildBoardID, childID)
	assert.Equal(t, saves+1, f.saves, "board creation persists")

	_, moved := s.Back()
	require.True(t, moved)
	again, err := s.EnterNote(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, childID, again)
	assert.Equal(t, saves+1, f.saves, "re-entering allocates nothing")
}

func TestEnterRejectsNonIdea(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	n, err := s.CreateNote(models.KindText, [2]float64{0, 0})
	require.NoError(t, err)
	_, err = s.EnterNote(n.ID)
	assert.Error(t, err)
}

func TestNestNote(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	target, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)
	dragged, err := s.CreateNote(models.KindText, [2]float64{10, 10})
	require.NoError(t, err)

	moved, err := s.NestNote(dragged.ID, target.ID)
	require.NoError(t, err)
	require.True(t, moved, "fully overlapping notes nest")

	child := s.Project().Boards[target.ChildBoardID]
	require.NotNil(t, child)
	assert.True(t, child.Contains(dragged.ID))
}

func TestDropFiles(t *testing.T) {
	f := newFixture(t)
	s := f.svc
	dir := t.TempDir()

	img := filepath.Join(dir, "pic.png")
	require.NoError(t, os.WriteFile(img, []byte("png"), 0644))
	wav := filepath.Join(dir, "sound.wav")
	require.NoError(t, os.WriteFile(wav, []byte("wav"), 0644))
	doc := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("text"), 0644))

	created, err := s.DropFiles([]string{img, wav, doc}, nil)
	require.NoError(t, err)
	require.Len(t, created, 2, "unsupported files are skipped")

	assert.Equal(t, models.KindImage, created[0].Kind)
	ip := created[0].Payload.(models.ImagePayload)
	assert.NotEmpty(t, s.AssetStore().Resolve(ip.Asset))

	assert.Equal(t, models.KindAudio, created[1].Kind)
	ap := created[1].Payload.(models.AudioPayload)
	assert.NotEmpty(t, s.AssetStore().Resolve(ap.Asset))
	assert.Equal(t, models.DefaultVolume, ap.Volume)
}

func TestDropMissingFileStillCreatesNote(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	created, err := s.DropFiles([]string{filepath.Join(t.TempDir(), "gone.png")}, nil)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Empty(t, created[0].Payload.(models.ImagePayload).Asset)
}

func TestGoToBoardScrubsStaleIds(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	err := s.GoToBoard("deadbeef")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NotContains(t, s.History().Recent(), "deadbeef")
}

func TestSessionRoundTrip(t *testing.T) {
	f := newFixture(t)
	s := f.svc
	path := filepath.Join(t.TempDir(), "session.json")

	idea, err := s.CreateNote(models.KindIdea, [2]float64{0, 0})
	require.NoError(t, err)
	childID, err := s.EnterNote(idea.ID)
	require.NoError(t, err)

	require.NoError(t, SaveSession(path, s.History()))

	restored := LoadSession(path, s.Project(), 12)
	assert.Equal(t, childID, restored.Current())
	id, ok := restored.Back()
	assert.True(t, ok)
	assert.Equal(t, s.Project().RootBoardID, id)
}

func TestLoadSessionFallsBackToRoot(t *testing.T) {
	f := newFixture(t)
	p := f.svc.Project()

	// Missing file.
	h := LoadSession(filepath.Join(t.TempDir(), "none.json"), p, 12)
	assert.Equal(t, p.RootBoardID, h.Current())

	// Corrupt file.
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))
	h = LoadSession(path, p, 12)
	assert.Equal(t, p.RootBoardID, h.Current())

	// Session pointing at a board that no longer exists.
	require.NoError(t, os.WriteFile(path, []byte(`{"current_board":"gone"}`), 0644))
	h = LoadSession(path, p, 12)
	assert.Equal(t, p.RootBoardID, h.Current())
}

func TestDoctor(t *testing.T) {
	f := newFixture(t)
	s := f.svc

	n, err := s.CreateNote(models.KindImage, [2]float64{0, 0})
	require.NoError(t, err)
	require.NoError(t, s.MutateNote(n.ID, func(n *models.Note) {
		n.Payload = models.ImagePayload{Asset: "vanished.png"}
	}))
	b, err := s.CurrentBoard()
	require.NoError(t, err)
	b.ItemsOrder = append(b.ItemsOrder, "dangling")

	rep := s.Doctor(false)
	assert.Equal(t, 1, rep.NoteCount)
	assert.Equal(t, 1, rep.PrunedOrderEntries)
	assert.Equal(t, []string{"vanished.png"}, rep.MissingAssets)
	assert.Empty(t, rep.UnreachableBoards)
}
