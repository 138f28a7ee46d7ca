package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/service"
)

func NewEditCmd(svc **service.Service) *cobra.Command {
	var (
		title    string
		subtitle string
		body     string
		fontPt   int
		volume   int
		glyph    string
		glyphPt  int
		from     string
		to       string
		strokePt int
	)

	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Edit a note's content",
		Long: `Edit the payload of a note on the current board. Only flags relevant
to the note's kind apply; sizes are clamped into their legal ranges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			b, err := s.CurrentBoard()
			if err != nil {
				return err
			}
			n, err := resolveNote(b, args[0])
			if err != nil {
				return err
			}

			var fromPos, toPos *[2]float64
			if cmd.Flags().Changed("from") {
				v, perr := parsePos(from)
				if perr != nil {
					return perr
				}
				fromPos = &v
			}
			if cmd.Flags().Changed("to") {
				v, perr := parsePos(to)
				if perr != nil {
					return perr
				}
				toPos = &v
			}

			err = s.MutateNote(n.ID, func(n *models.Note) {
				switch p := n.Payload.(type) {
				case models.IdeaPayload:
					if cmd.Flags().Changed("title") {
						p.Title = title
					}
					if cmd.Flags().Changed("subtitle") {
						p.Subtitle = subtitle
					}
					n.Payload = p
				case models.TextPayload:
					if cmd.Flags().Changed("body") {
						p.Body = body
					}
					if cmd.Flags().Changed("font-pt") {
						p.FontPt = models.ClampFontPt(fontPt)
					}
					n.Payload = p
				case models.AudioPayload:
					if cmd.Flags().Changed("volume") {
						p.Volume = models.ClampVolume(volume)
					}
					n.Payload = p
				case models.EmojiPayload:
					if cmd.Flags().Changed("glyph") {
						p.Glyph = glyph
					}
					if cmd.Flags().Changed("glyph-pt") && glyphPt > 0 {
						p.GlyphPt = glyphPt
					}
					n.Payload = p
				case models.ArrowPayload:
					if fromPos != nil {
						p.From = *fromPos
					}
					if toPos != nil {
						p.To = *toPos
					}
					if cmd.Flags().Changed("stroke-pt") && strokePt > 0 {
						p.StrokeWidth = strokePt
					}
					n.Payload = p
				}
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s %s  %s (%s)\n", n.Kind, shortID(n.ID), noteLabel(n), s.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "idea title")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "idea subtitle")
	cmd.Flags().StringVar(&body, "body", "", "text body")
	cmd.Flags().IntVar(&fontPt, "font-pt", 0, "text font size in points")
	cmd.Flags().IntVar(&volume, "volume", 0, "audio volume 0-100")
	cmd.Flags().StringVar(&glyph, "glyph", "", "emoji glyph")
	cmd.Flags().IntVar(&glyphPt, "glyph-pt", 0, "emoji point size")
	cmd.Flags().StringVar(&from, "from", "", "arrow start as x,y")
	cmd.Flags().StringVar(&to, "to", "", "arrow end as x,y")
	cmd.Flags().IntVar(&strokePt, "stroke-pt", 0, "arrow stroke width")

	return cmd
}
