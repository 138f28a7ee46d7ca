package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewDropCmd(svc **service.Service) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "drop <file>...",
		Short: "Import image or audio files as notes",
		Long: `Copy image (.png .jpg .jpeg .gif .webp) or audio (.mp3 .wav) files
into the asset store and place one note per file on the current board.
Files of other types are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			var pos *[2]float64
			if at != "" {
				p, err := parsePos(at)
				if err != nil {
					return err
				}
				pos = &p
			}

			created, err := s.DropFiles(args, pos)
			if err != nil {
				return err
			}
			for _, n := range created {
				fmt.Printf("%s %s  %s\n", n.Kind, shortID(n.ID), noteLabel(n))
			}
			if len(created) == 0 {
				fmt.Println("no supported files")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "position as x,y")

	return cmd
}
