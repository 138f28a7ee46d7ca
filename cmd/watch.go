package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/cmd/config"
	"github.com/golker16/pizarra/pkg/persist"
	"github.com/golker16/pizarra/pkg/service"
)

func NewWatchCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reprint the board tree whenever the project file changes",
		Long: `Watch the project file and reprint the hierarchy after every save,
for keeping a terminal view alongside another session. Saves land via an
atomic rename, so the watcher listens for create and write events on the
parent directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			projectPath := config.ProjectPath()
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory, not the file: the rename replacing the
			// file would otherwise drop the watch.
			if err := watcher.Add(config.DataDir()); err != nil {
				return fmt.Errorf("watch %s: %w", config.DataDir(), err)
			}

			printBoardTree(os.Stdout, s.Project(), s.Project().Root(), 0)

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Name != projectPath {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					p, err := persist.Load(projectPath)
					if err != nil {
						fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
						continue
					}
					fmt.Println("---")
					printBoardTree(os.Stdout, p, p.Root(), 0)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
				}
			}
		},
	}
}
