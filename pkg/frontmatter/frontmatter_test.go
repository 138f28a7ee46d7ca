package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParse(t *testing.T) {
	h := &Header{
		BoardID:  "abc123",
		Title:    "Plan: Q3",
		Path:     []string{"Raíz", "Plan: Q3"},
		Notes:    7,
		Boards:   2,
		Exported: "2026-08-27 10:00:00",
	}

	doc := BuildContent(h, "# Plan\n\nhello\n")
	assert.True(t, len(doc) > 0)

	got, body, err := Parse(doc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, h, got)
	assert.Equal(t, "# Plan\n\nhello\n", body)
}

func TestParseDropsSeparatorBlankLine(t *testing.T) {
	h := &Header{
		BoardID:  "abc123",
		Title:    "Plan",
		Path:     []string{"Raíz"},
		Exported: "2026-08-27 10:00:00",
	}

	_, body, err := Parse(BuildContent(h, "# Plan\n"))
	require.NoError(t, err)
	assert.Equal(t, "# Plan\n", body, "the blank separator line is framing, not body")
}

func TestParseWithoutHeader(t *testing.T) {
	h, body, err := Parse("just a plain document")
	require.NoError(t, err)
	assert.Nil(t, h)
	assert.Equal(t, "just a plain document", body)
}

func TestParseBrokenHeader(t *testing.T) {
	_, _, err := Parse("---\n{not yaml\n---\nbody")
	assert.Error(t, err)
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)
	s := FormatTimestamp(now)
	got, err := ParseTimestamp(s)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}
