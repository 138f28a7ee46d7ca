package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/golker16/pizarra/pkg/frontmatter"
	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/service"
)

type exportNote struct {
	ID    string       `yaml:"id"`
	Kind  string       `yaml:"kind"`
	Label string       `yaml:"label,omitempty"`
	Board *exportBoard `yaml:"board,omitempty"`
}

type exportBoard struct {
	ID    string       `yaml:"id"`
	Title string       `yaml:"title"`
	Notes []exportNote `yaml:"notes"`
}

func NewExportCmd(svc **service.Service) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board hierarchy as a YAML outline or markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			p := s.Project()
			switch format {
			case "yaml":
				out := exportBoardTree(p, p.Root())
				data, err := yaml.Marshal(out)
				if err != nil {
					return fmt.Errorf("marshal outline: %w", err)
				}
				fmt.Print(string(data))
				return nil
			case "md":
				fmt.Print(exportMarkdown(s, p))
				return nil
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or md)")
	return cmd
}

var kindCaser = cases.Title(language.Spanish)

func exportBoardTree(p *models.Project, b *models.Board) *exportBoard {
	out := &exportBoard{ID: b.ID, Title: b.Title, Notes: []exportNote{}}
	for _, n := range b.Notes() {
		en := exportNote{
			ID:    n.ID,
			Kind:  kindCaser.String(string(n.Kind)),
			Label: noteLabel(n),
		}
		if n.HasChildBoard() {
			if child, ok := p.Boards[n.ChildBoardID]; ok {
				en.Board = exportBoardTree(p, child)
			}
		}
		out.Notes = append(out.Notes, en)
	}
	return out
}

// exportMarkdown renders the whole hierarchy as a single document with a
// frontmatter header on top.
func exportMarkdown(s *service.Service, p *models.Project) string {
	root := p.Root()

	notes := 0
	for _, b := range p.Boards {
		notes += len(b.Notes())
	}
	h := &frontmatter.Header{
		BoardID:  root.ID,
		Title:    root.Title,
		Path:     s.BoardPath(root.ID),
		Notes:    notes,
		Boards:   len(p.Boards),
		Exported: frontmatter.FormatTimestamp(time.Now()),
	}

	var sb strings.Builder
	writeMarkdownBoard(&sb, p, root, 1)
	return frontmatter.BuildContent(h, sb.String())
}

func writeMarkdownBoard(sb *strings.Builder, p *models.Project, b *models.Board, depth int) {
	if depth > 6 {
		depth = 6
	}
	fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", depth), b.Title)

	for _, n := range b.Notes() {
		switch pl := n.Payload.(type) {
		case models.IdeaPayload:
			fmt.Fprintf(sb, "- **%s**", pl.Title)
			if pl.Subtitle != "" {
				fmt.Fprintf(sb, " · %s", pl.Subtitle)
			}
			sb.WriteString("\n")
		case models.TextPayload:
			fmt.Fprintf(sb, "- %s\n", strings.ReplaceAll(pl.Body, "\n", " "))
		case models.ImagePayload:
			fmt.Fprintf(sb, "- ![imagen](%s)\n", pl.Asset)
		case models.AudioPayload:
			fmt.Fprintf(sb, "- audio: %s\n", pl.Asset)
		case models.EmojiPayload:
			fmt.Fprintf(sb, "- %s\n", pl.Glyph)
		case models.ArrowPayload:
			fmt.Fprintf(sb, "- flecha (%.0f,%.0f) -> (%.0f,%.0f)\n", pl.From[0], pl.From[1], pl.To[0], pl.To[1])
		}
	}
	sb.WriteString("\n")

	for _, n := range b.Notes() {
		if !n.HasChildBoard() {
			continue
		}
		if child, ok := p.Boards[n.ChildBoardID]; ok {
			writeMarkdownBoard(sb, p, child, depth+1)
		}
	}
}
