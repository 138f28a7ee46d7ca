package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golker16/pizarra/pkg/service"
)

func NewCopyCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <note-id>",
		Short: "Copy a note (and its whole subtree) to the clipboard",
		Args:  cobra.ExactArgs(1),
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
			clip, err := s.CopyNote(n.ID)
			if err != nil {
				return err
			}
			if err := writeClip(clip); err != nil {
				return fmt.Errorf("write clipboard: %w", err)
			}
			fmt.Printf("copied %s %s\n", n.Kind, shortID(n.ID))
			return nil
		},
	}
}

func NewCutCmd(svc **service.Service) *cobra.Command {
	var cascade bool

	cmd := &cobra.Command{
		Use:   "cut <note-id>",
		Short: "Cut a note to the clipboard",
		Long: `Copy a note's subtree to the clipboard, then delete it. Like delete,
cutting an idea that owns a child board requires --cascade; the clip
survives the deletion.`,
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
			clip, err := s.CutNote(n.ID, cascade)
			if err != nil {
				if service.IsCascadeConfirm(err) {
					return fmt.Errorf("note %s owns a sub-board; re-run with --cascade to cut its whole subtree", shortID(n.ID))
				}
				return err
			}
			if err := writeClip(clip); err != nil {
				return fmt.Errorf("write clipboard: %w", err)
			}
			fmt.Printf("cut %s %s (%s)\n", n.Kind, shortID(n.ID), s.Status())
			return nil
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "also cut the note's descendant boards and notes")

	return cmd
}

func NewPasteCmd(svc **service.Service) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Paste the clipboard onto the current board",
		Long: `Paste a previously copied subtree. Every paste is a deep, independent
copy: fresh ids throughout and re-stored asset files, so pasting the same
clip twice yields two disjoint subtrees. Clipboard content that is not a
pizarra clip is ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			text, err := readClip()
			if err != nil {
				return err
			}

			var pos *[2]float64
			if at != "" {
				p, err := parsePos(at)
				if err != nil {
					return err
				}
				pos = &p
			}

			n, ours, err := s.PasteClip(text, pos)
			if err != nil {
				return err
			}
			if !ours {
				fmt.Println("clipboard does not hold a pizarra clip")
				return nil
			}
			fmt.Printf("pasted %s %s (%s)\n", n.Kind, shortID(n.ID), s.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "position as x,y (default is the configured paste offset)")

	return cmd
}
