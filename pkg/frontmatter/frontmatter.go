// Package frontmatter renders and parses the YAML metadata block at the
// top of exported board documents.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)`)

// Header is the metadata block of one exported board document.
type Header struct {
	BoardID  string   `yaml:"board_id"`
	Title    string   `yaml:"title"`
	Path     []string `yaml:"path,flow"`
	Notes    int      `yaml:"notes"`
	Boards   int      `yaml:"boards"`
	Exported string   `yaml:"exported"`
}

// Parse extracts the header from content and returns it along with the
// body. Content without a header comes back untouched with a nil header.
func Parse(content string) (*Header, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		return nil, content, nil
	}

	var h Header
	if err := yaml.Unmarshal([]byte(matches[1]), &h); err != nil {
		return nil, content, fmt.Errorf("parse frontmatter: %w", err)
	}
	if h.Path == nil {
		h.Path = []string{}
	}
	// BuildContent separates header and body with one blank line; it
	// belongs to the framing, not the body.
	return &h, strings.TrimPrefix(matches[2], "\n"), nil
}

// Build renders the header as a YAML block with a stable field order.
func Build(h *Header) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("board_id: %s\n", h.BoardID))
	sb.WriteString(fmt.Sprintf("title: %s\n", quoteIfNeeded(h.Title)))
	sb.WriteString(fmt.Sprintf("path: %s\n", formatFlowList(h.Path)))
	sb.WriteString(fmt.Sprintf("notes: %d\n", h.Notes))
	sb.WriteString(fmt.Sprintf("boards: %d\n", h.Boards))
	sb.WriteString(fmt.Sprintf("exported: %s\n", h.Exported))
	sb.WriteString("---")

	return sb.String()
}

// BuildContent combines the header and a markdown body into a document.
func BuildContent(h *Header, body string) string {
	if !strings.HasPrefix(body, "\n") {
		return Build(h) + "\n\n" + body
	}
	return Build(h) + "\n" + body
}

// FormatTimestamp renders a time in the header's timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ParseTimestamp reads a header timestamp back.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04:05", s)
}

func formatFlowList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quoteIfNeeded(item)
	}
	return fmt.Sprintf("[%s]", strings.Join(quoted, ", "))
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, ",:[]{}\"'#") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
