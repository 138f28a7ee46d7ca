package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/cmd"
	"github.com/golker16/pizarra/cmd/config"
	"github.com/golker16/pizarra/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := &cobra.Command{
		Use:   "pizarra",
		Short: "A nested whiteboard of boards and notes",
		Long: `pizarra keeps freeform notes (ideas, text, media, emoji, arrows) on
boards. An idea note can own a child board, nested arbitrarily deep, with
copy/cut/paste of whole subtrees and browser-style navigation history.
Every mutation is saved through to the project file.`,
		SilenceUsage: true,
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		config.InitConfig()
		log := config.NewLogger()

		var err error
		svc, err = config.InitService(log)
		if err != nil {
			return fmt.Errorf("initialize service: %w", err)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(c *cobra.Command, args []string) {
		if svc != nil {
			_ = svc.Close()
		}
	}

	rootCmd.AddCommand(cmd.NewNewCmd(&svc))
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewTreeCmd(&svc))
	rootCmd.AddCommand(cmd.NewEnterCmd(&svc))
	rootCmd.AddCommand(cmd.NewBackCmd(&svc))
	rootCmd.AddCommand(cmd.NewForwardCmd(&svc))
	rootCmd.AddCommand(cmd.NewGoCmd(&svc))
	rootCmd.AddCommand(cmd.NewRecentCmd(&svc))
	rootCmd.AddCommand(cmd.NewDeleteCmd(&svc))
	rootCmd.AddCommand(cmd.NewCopyCmd(&svc))
	rootCmd.AddCommand(cmd.NewCutCmd(&svc))
	rootCmd.AddCommand(cmd.NewPasteCmd(&svc))
	rootCmd.AddCommand(cmd.NewNestCmd(&svc))
	rootCmd.AddCommand(cmd.NewMoveCmd(&svc))
	rootCmd.AddCommand(cmd.NewEditCmd(&svc))
	rootCmd.AddCommand(cmd.NewDropCmd(&svc))
	rootCmd.AddCommand(cmd.NewSearchCmd(&svc))
	rootCmd.AddCommand(cmd.NewReindexCmd(&svc))
	rootCmd.AddCommand(cmd.NewExportCmd(&svc))
	rootCmd.AddCommand(cmd.NewDoctorCmd(&svc))
	rootCmd.AddCommand(cmd.NewWatchCmd(&svc))
	rootCmd.AddCommand(cmd.NewProjectCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
