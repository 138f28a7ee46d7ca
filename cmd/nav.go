package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewEnterCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "enter <note-id>",
		Short: "Enter an idea note's child board",
		Long: `Enter the child board of an idea note on the current board. The child
board is created on first enter, never eagerly.`,
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
			boardID, err := s.EnterNote(n.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s  (%s)\n", strings.Join(s.BoardPath(boardID), " > "), shortID(boardID))
			return nil
		},
	}
}

func NewBackCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Go back to the previous board",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			id, moved := s.Back()
			if !moved {
				fmt.Println("already at the oldest board")
				return nil
			}
			fmt.Printf("%s  (%s)\n", strings.Join(s.BoardPath(id), " > "), shortID(id))
			return nil
		},
	}
}

func NewForwardCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "forward",
		Short: "Go forward again",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			id, moved := s.Forward()
			if !moved {
				fmt.Println("already at the newest board")
				return nil
			}
			fmt.Printf("%s  (%s)\n", strings.Join(s.BoardPath(id), " > "), shortID(id))
			return nil
		},
	}
}

func NewGoCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "go <board-id|root>",
		Short: "Jump to a board by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			target := args[0]
			if target == "root" {
				target = s.Project().RootBoardID
			} else {
				b, err := resolveBoard(s.Project(), target)
				if err != nil {
					return err
				}
				target = b.ID
			}
			if err := s.GoToBoard(target); err != nil {
				return err
			}
			fmt.Printf("%s  (%s)\n", strings.Join(s.BoardPath(target), " > "), shortID(target))
			return nil
		},
	}
}

func NewRecentCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently visited boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			for _, r := range s.Recent() {
				fmt.Printf("%s  %s\n", shortID(r.ID), r.Title)
			}
			return nil
		},
	}
}
