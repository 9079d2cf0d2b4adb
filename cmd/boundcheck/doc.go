// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package main

import (
	"os"
	"time"

	"github.com/korrel8r/boundcheck/internal/pkg/must"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	docCmd := &cobra.Command{
		Use:    "doc",
		Short:  "Generate documentation",
		Hidden: true,
	}
	rootCmd.AddCommand(docCmd)

	manCmd := &cobra.Command{
		Use:   "man DIR",
		Short: "Generate man pages in directory DIR",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			must.Must(os.MkdirAll(args[0], 0o755))
			now := time.Now()
			header := &doc.GenManHeader{
				Title:   "BOUNDCHECK",
				Section: "1",
				Source:  "boundcheck " + rootCmd.Version,
				Date:    &now,
			}
			must.Must(doc.GenManTree(rootCmd, header, args[0]))
		},
	}

	markdownCmd := &cobra.Command{
		Use:   "markdown DIR",
		Short: "Generate markdown documentation in directory DIR",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			must.Must(os.MkdirAll(args[0], 0o755))
			rootCmd.DisableAutoGenTag = true
			must.Must(doc.GenMarkdownTree(rootCmd, args[0]))
		},
	}
	docCmd.AddCommand(manCmd, markdownCmd)
}
