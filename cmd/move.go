package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/service"
)

func NewMoveCmd(svc **service.Service) *cobra.Command {
	var (
		to   string
		size string
		z    int
	)

	cmd := &cobra.Command{
		Use:   "move <note-id>",
		Short: "Move, resize or restack a note",
		Args:  cobra.ExactArgs(1),
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

			if to != "" {
				pos, err := parsePos(to)
				if err != nil {
					return err
				}
				if err := s.MoveNote(n.ID, pos); err != nil {
					return err
				}
			}
			if size != "" {
				dims, err := parseSize(size)
				if err != nil {
					return err
				}
				if err := s.ResizeNote(n.ID, dims); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("z") {
				if err := s.MutateNote(n.ID, func(n *models.Note) { n.Z = z }); err != nil {
					return err
				}
			}

			fmt.Printf("%s %s at %g,%g %gx%g z=%d (%s)\n",
				n.Kind, shortID(n.ID), n.Pos[0], n.Pos[1], n.Size[0], n.Size[1], n.Z, s.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "new position as x,y")
	cmd.Flags().StringVar(&size, "size", "", "new size as WxH")
	cmd.Flags().IntVar(&z, "z", 0, "new z-order")

	return cmd
}
