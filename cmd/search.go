package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewSearchCmd(svc **service.Service) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over note text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			results, err := s.Search(strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("no matches")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BOARD\tNOTE\tKIND\tTEXT")
			for _, r := range results {
				text := r.Title
				if text == "" {
					text = r.Content
				}
				text = strings.ReplaceAll(text, "\n", " ")
				if len(text) > 60 {
					text = text[:60] + "…"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.BoardTitle, shortID(r.NoteID), r.Kind, text)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of results")

	return cmd
}
