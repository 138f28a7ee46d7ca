package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewReindexCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the search index from the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			if err := s.Reindex(); err != nil {
				return err
			}
			fmt.Println("index rebuilt")
			return nil
		},
	}
}
