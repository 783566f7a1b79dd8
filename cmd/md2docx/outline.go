package main

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/md2docx/internal/outline"
)

func newOutlineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "outline <file>",
		Short: "Print the heading outline of a .md or .docx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := outline.ReadFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("outline read", "file", args[0], "headings", len(o.Headings()))
			return outline.Fprint(cmd.OutOrStdout(), o)
		},
	}
}
