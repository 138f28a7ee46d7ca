package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewNestCmd(svc **service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "nest <note-id> <idea-id>",
		Short: "Move a note into an idea's child board",
		Long: `Nest a note inside an idea note on the current board, the way a drag
release over the idea would. Without --force the notes' rectangles must
actually overlap past the configured threshold; --force moves the dragged
note onto the target first so the drop always lands.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			b, err := s.CurrentBoard()
			if err != nil {
				return err
			}
			dragged, err := resolveNote(b, args[0])
			if err != nil {
				return err
			}
			target, err := resolveNote(b, args[1])
			if err != nil {
				return err
			}

			if force {
				if err := s.MoveNote(dragged.ID, target.Pos); err != nil {
					return err
				}
			}

			moved, err := s.NestNote(dragged.ID, target.ID)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Println("not nested: target is not an idea or the overlap is too small")
				return nil
			}
			fmt.Printf("nested %s into %s (%s)\n", shortID(dragged.ID), shortID(target.ID), s.Status())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "move the note over the target before nesting")

	return cmd
}
