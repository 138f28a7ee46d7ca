package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewDeleteCmd(svc **service.Service) *cobra.Command {
	var cascade bool

	cmd := &cobra.Command{
		Use:     "delete <note-id>",
		Short:   "Delete a note from the current board",
		Aliases: []string{"rm"},
		Long: `Delete a note. An idea note that owns a child board takes its whole
subtree with it; that requires explicit approval with --cascade so the
data loss can never happen silently.`,
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
			if err := s.DeleteNote(n.ID, cascade); err != nil {
				if service.IsCascadeConfirm(err) {
					return fmt.Errorf("note %s owns a sub-board; re-run with --cascade to delete its whole subtree", shortID(n.ID))
				}
				return err
			}
			fmt.Printf("deleted %s %s (%s)\n", n.Kind, shortID(n.ID), s.Status())
			return nil
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "also delete the note's descendant boards and notes")

	return cmd
}
