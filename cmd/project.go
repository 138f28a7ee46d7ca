package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/cmd/config"
	"github.com/golker16/pizarra/pkg/projects"
)

// NewProjectCmd manages the registry of named whiteboard files. These
// subcommands touch the registry only, never the loaded project.
func NewProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage named whiteboard projects",
	}
	cmd.AddCommand(
		newProjectListCmd(),
		newProjectNewCmd(),
		newProjectUseCmd(),
		newProjectRmCmd(),
	)
	return cmd
}

func openRegistry() (*projects.Registry, error) {
	reg, err := projects.NewRegistry(config.DataDir())
	if err != nil {
		return nil, fmt.Errorf("open project registry: %w", err)
	}
	return reg, nil
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			entries, err := reg.List()
			if err != nil {
				return err
			}
			cur, err := reg.Current()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  (default)\t%s\n", filepath.Join(config.DataDir(), "last.json"))
			for _, e := range entries {
				mark := " "
				if cur != nil && cur.Name == e.Name {
					mark = "*"
				}
				fmt.Fprintf(w, "%s %s\t%s\n", mark, e.Name, e.Path)
			}
			return w.Flush()
		},
	}
}

func newProjectNewCmd() *cobra.Command {
	var use bool
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Register a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			e, err := reg.Add(args[0])
			if err != nil {
				return err
			}
			if use {
				if _, err := reg.Use(e.Name); err != nil {
					return err
				}
			}
			fmt.Printf("%s  %s\n", e.Name, e.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&use, "use", false, "switch to the new project immediately")
	return cmd
}

func newProjectUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name|default>",
		Short: "Switch the active project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			if args[0] == "default" {
				if err := reg.ClearCurrent(); err != nil {
					return err
				}
				fmt.Println("now using the default project")
				return nil
			}
			e, err := reg.Use(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("now using %s  %s\n", e.Name, e.Path)
			return nil
		},
	}
}

func newProjectRmCmd() *cobra.Command {
	var purge bool
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Unregister a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			if err := reg.Remove(args[0], purge); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "also delete the project file")
	return cmd
}
