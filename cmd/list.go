package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewListCmd(svc **service.Service) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List notes on the current board",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			b, err := s.CurrentBoard()
			if err != nil {
				return fmt.Errorf("current board: %w", err)
			}

			if listJSON {
				type row struct {
					ID    string     `json:"id"`
					Kind  string     `json:"kind"`
					Pos   [2]float64 `json:"pos"`
					Size  [2]float64 `json:"size"`
					Z     int        `json:"z"`
					Label string     `json:"label"`
					Child string     `json:"child_board_id,omitempty"`
				}
				rows := []row{}
				for _, n := range b.Notes() {
					rows = append(rows, row{
						ID:    n.ID,
						Kind:  string(n.Kind),
						Pos:   n.Pos,
						Size:  n.Size,
						Z:     n.Z,
						Label: noteLabel(n),
						Child: n.ChildBoardID,
					})
				}
				data, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("%s  (%s)\n", strings.Join(s.BoardPath(b.ID), " > "), shortID(b.ID))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tPOS\tSIZE\tLABEL")
			for _, n := range b.Notes() {
				label := noteLabel(n)
				if n.HasChildBoard() {
					label += fmt.Sprintf("  [board %s]", shortID(n.ChildBoardID))
				}
				fmt.Fprintf(w, "%s\t%s\t%g,%g\t%gx%g\t%s\n",
					shortID(n.ID), n.Kind, n.Pos[0], n.Pos[1], n.Size[0], n.Size[1], label)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	return cmd
}
