package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomterm/compositor/internal/compositor"
	"github.com/loomterm/compositor/internal/geom"
)

func newRenderCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo panel layout once and print it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Height = height
			}

			t := themeByName(cfg.Theme)
			root := buildDemoTree(t)

			size := geom.Size{Width: cfg.Width, Height: cfg.Height}
			c := compositor.New()
			c.Reflow(root, size)

			update, _, err := c.RenderUpdate(context.Background(), true, nil)
			if err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			if err := update.WriteTo(cmd.OutOrStdout(), size); err != nil {
				return fmt.Errorf("writing render: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "terminal width to render at")
	cmd.Flags().IntVar(&height, "height", 24, "terminal height to render at")
	return cmd
}
