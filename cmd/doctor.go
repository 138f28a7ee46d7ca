package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewDoctorCmd(svc **service.Service) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check project health",
		Long: `Inspect the project for recoverable inconsistencies: dangling entries
in board order lists, attachments whose files are gone from disk, and
boards unreachable from the root. With --fix the pruned state is saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			rep := s.Doctor(fix)
			fmt.Printf("boards: %d  notes: %d\n", rep.BoardCount, rep.NoteCount)
			if rep.PrunedOrderEntries > 0 {
				action := "found"
				if fix {
					action = "pruned"
				}
				fmt.Printf("%s %d dangling order entries\n", action, rep.PrunedOrderEntries)
			}
			for _, ref := range rep.MissingAssets {
				fmt.Printf("missing asset file: %s\n", ref)
			}
			for _, id := range rep.UnreachableBoards {
				fmt.Printf("board unreachable from root: %s\n", shortID(id))
			}
			if rep.PrunedOrderEntries == 0 && len(rep.MissingAssets) == 0 && len(rep.UnreachableBoards) == 0 {
				fmt.Println("project is healthy")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "save the pruned state")

	return cmd
}
