package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/service"
)

func NewTreeCmd(svc **service.Service) *cobra.Command {
	var fromCurrent bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the board hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			boardID := s.Project().RootBoardID
			if fromCurrent {
				boardID = s.History().Current()
			}
			b, err := s.Project().Board(boardID)
			if err != nil {
				return err
			}
			printBoardTree(os.Stdout, s.Project(), b, 0)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromCurrent, "current", false, "start from the current board instead of the root")

	return cmd
}

func printBoardTree(w io.Writer, p *models.Project, b *models.Board, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s  (%s)\n", indent, b.Title, shortID(b.ID))
	for _, n := range b.Notes() {
		fmt.Fprintf(w, "%s  - %s %s  %s\n", indent, n.Kind, shortID(n.ID), noteLabel(n))
		if n.HasChildBoard() {
			if child, ok := p.Boards[n.ChildBoardID]; ok {
				printBoardTree(w, p, child, depth+2)
			}
		}
	}
}
