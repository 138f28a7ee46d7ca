package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/service"
)

func NewNewCmd(svc **service.Service) *cobra.Command {
	var (
		at       string
		title    string
		subtitle string
		body     string
		glyph    string
	)

	cmd := &cobra.Command{
		Use:   "new <idea|text|image|audio|emoji|arrow>",
		Short: "Create a note on the current board",
		Long: `Create a note of the given kind on the current board.

Examples:
  pizarra new idea --title "Research" --at 100,50
  pizarra new text --body "hello"
  pizarra new emoji --glyph 🚀`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			kind := models.Kind(args[0])
			if args[0] == "text" {
				kind = models.KindText
			}
			if !kind.Valid() {
				return fmt.Errorf("unknown note kind %q", args[0])
			}

			pos := [2]float64{0, 0}
			if at != "" {
				var err error
				if pos, err = parsePos(at); err != nil {
					return err
				}
			}

			n, err := s.CreateNote(kind, pos)
			if err != nil {
				return err
			}

			// Apply payload flags on top of the kind defaults.
			switch p := n.Payload.(type) {
			case models.IdeaPayload:
				if cmd.Flags().Changed("title") {
					p.Title = title
				}
				if cmd.Flags().Changed("subtitle") {
					p.Subtitle = subtitle
				}
				err = s.MutateNote(n.ID, func(n *models.Note) { n.Payload = p })
			case models.TextPayload:
				if cmd.Flags().Changed("body") {
					p.Body = body
				}
				err = s.MutateNote(n.ID, func(n *models.Note) { n.Payload = p })
			case models.EmojiPayload:
				if cmd.Flags().Changed("glyph") {
					p.Glyph = glyph
				}
				err = s.MutateNote(n.ID, func(n *models.Note) { n.Payload = p })
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s %s  %s\n", n.Kind, shortID(n.ID), noteLabel(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "position as x,y")
	cmd.Flags().StringVar(&title, "title", "", "idea title")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "idea subtitle")
	cmd.Flags().StringVar(&body, "body", "", "text body")
	cmd.Flags().StringVar(&glyph, "glyph", "", "emoji glyph")

	return cmd
}
