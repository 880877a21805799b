package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "loomdemo",
		Short: "Demo terminal panels driven by the loomterm compositor",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a loomdemo YAML config file")

	root.AddCommand(newRenderCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newBenchCommand())
	return root
}

// Execute runs the CLI, exiting non-zero on error.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
