package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestBoardInsertRemove(t *testing.T) {
	b := NewBoard("test")
	n1 := NewNote(KindIdea, [2]float64{0, 0})
	n2 := NewNote(KindText, [2]float64{10, 10})

	b.Insert(n1)
	b.Insert(n2)
	require.Len(t, b.ItemsOrder, 2)
	assert.Equal(t, []string{n1.ID, n2.ID}, b.ItemsOrder)

	removed := b.Remove(n1.ID)
	require.NotNil(t, removed)
	assert.Equal(t, n1.ID, removed.ID)
	assert.Equal(t, []string{n2.ID}, b.ItemsOrder)
	assert.False(t, b.Contains(n1.ID))

	assert.Nil(t, b.Remove("missing"))
}

func TestBoardNotesPrunesDanglingOrderEntries(t *testing.T) {
	b := NewBoard("test")
	n := NewNote(KindText, [2]float64{0, 0})
	b.Insert(n)
	// Simulate a partial failure leaving a dangling id in the order list.
	b.ItemsOrder = append(b.ItemsOrder, "deadbeef")

	notes := b.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, []string{n.ID}, b.ItemsOrder)
}

func TestNewProject(t *testing.T) {
	p := NewProject()
	require.Len(t, p.Boards, 1)
	root := p.Root()
	require.NotNil(t, root)
	assert.Equal(t, p.RootBoardID, root.ID)
	assert.Equal(t, Version, p.Version)
	assert.Empty(t, root.Items)
}

func TestEnsureChildBoardLazy(t *testing.T) {
	p := NewProject()
	idea := NewNote(KindIdea, [2]float64{0, 0})
	idea.Payload = IdeaPayload{Title: "Plan"}
	p.Root().Insert(idea)

	// Never created eagerly.
	assert.Empty(t, idea.ChildBoardID)

	child, err := p.EnsureChildBoard(idea)
	require.NoError(t, err)
	assert.Equal(t, idea.ChildBoardID, child.ID)
	assert.Equal(t, "Plan", child.Title)
	assert.Len(t, p.Boards, 2)

	// Second call returns the same board.
	again, err := p.EnsureChildBoard(idea)
	require.NoError(t, err)
	assert.Same(t, child, again)
	assert.Len(t, p.Boards, 2)
}

func TestEnsureChildBoardRejectsNonIdea(t *testing.T) {
	p := NewProject()
	n := NewNote(KindText, [2]float64{0, 0})
	p.Root().Insert(n)

	_, err := p.EnsureChildBoard(n)
	assert.Error(t, err)
}

func TestFindNote(t *testing.T) {
	p := NewProject()
	n := NewNote(KindEmoji, [2]float64{5, 5})
	p.Root().Insert(n)

	_, got, err := p.FindNote(p.RootBoardID, n.ID)
	require.NoError(t, err)
	assert.Same(t, n, got)

	_, _, err = p.FindNote(p.RootBoardID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = p.FindNote("missing", n.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPayloadRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
	}{
		{"idea", IdeaPayload{Title: "t", Subtitle: "s"}},
		{"text", TextPayload{Body: "hello", FontPt: 14}},
		{"audio", AudioPayload{Asset: "a.mp3", Volume: 40}},
		{"image", ImagePayload{Asset: "i.png"}},
		{"emoji", EmojiPayload{Glyph: "🔥", GlyphPt: 30}},
		{"arrow", ArrowPayload{From: [2]float64{1, 2}, To: [2]float64{3, 4}, StrokeWidth: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.payload.Record()
			back := rec.Payload(tt.payload.Kind())
			assert.Equal(t, tt.payload, back)
		})
	}
}

func TestClamping(t *testing.T) {
	assert.Equal(t, MinFontPt, ClampFontPt(1))
	assert.Equal(t, DefaultFontPt, ClampFontPt(0))
	assert.Equal(t, MaxFontPt, ClampFontPt(500))
	assert.Equal(t, 12, ClampFontPt(12))

	assert.Equal(t, 0, ClampVolume(-5))
	assert.Equal(t, 100, ClampVolume(400))

	// Decoding clamps too.
	rec := TextPayload{Body: "x", FontPt: 14}.Record()
	rec.FontPt = 999
	assert.Equal(t, TextPayload{Body: "x", FontPt: MaxFontPt}, rec.Payload(KindText))
}

func TestDefaultSizes(t *testing.T) {
	assert.Equal(t, [2]float64{260, 140}, DefaultSize(KindIdea))
	assert.Equal(t, [2]float64{280, 160}, DefaultSize(KindText))
	assert.Equal(t, [2]float64{320, 220}, DefaultSize(KindImage))
	assert.Equal(t, [2]float64{280, 120}, DefaultSize(KindAudio))
}

func TestChildBoardOnlyForIdeas(t *testing.T) {
	n := NewNote(KindText, [2]float64{0, 0})
	n.ChildBoardID = "bogus"
	assert.False(t, n.HasChildBoard())

	idea := NewNote(KindIdea, [2]float64{0, 0})
	assert.False(t, idea.HasChildBoard())
	idea.ChildBoardID = "some-board"
	assert.True(t, idea.HasChildBoard())
}
