package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/loomterm/compositor/internal/compositor"
	"github.com/loomterm/compositor/internal/geom"
)

func newBenchCommand() *cobra.Command {
	var iterations int
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Reflow the demo panels once, then render them repeatedly, reporting timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("--iterations must be positive, got %d", iterations)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			metrics := compositor.NewMetrics(registry)

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
				server := &http.Server{Addr: metricsAddr, Handler: mux}
				go server.ListenAndServe()
				defer server.Shutdown(context.Background())
				fmt.Fprintf(cmd.OutOrStdout(), "serving metrics on %s/metrics\n", metricsAddr)
			}

			t := themeByName(cfg.Theme)
			root := buildDemoTree(t)
			size := geom.Size{Width: cfg.Width, Height: cfg.Height}

			c := compositor.New().WithMetrics(metrics)
			c.Reflow(root, size)

			var written int64
			start := time.Now()
			for i := 0; i < iterations; i++ {
				footer := root.children[len(root.children)-1]
				if footer.Progress != nil {
					footer.Progress.Current = (footer.Progress.Current + 1) % (footer.Progress.Total + 1)
					c.UpdateWidgets(footer)
				}
				update, changed, err := c.RenderUpdate(context.Background(), i == 0, nil)
				if err != nil {
					return fmt.Errorf("render iteration %d: %w", i, err)
				}
				if !changed {
					continue
				}
				counter := &byteCounter{}
				if err := update.WriteTo(counter, size); err != nil {
					return fmt.Errorf("writing render iteration %d: %w", i, err)
				}
				written += counter.n
			}
			elapsed := time.Since(start)

			avg := elapsed / time.Duration(iterations)
			fmt.Fprintf(cmd.OutOrStdout(), "%d iterations in %s (%s avg, %d bytes written)\n",
				iterations, elapsed, avg, written)
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 1000, "number of render iterations to run")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while benching")
	return cmd
}

// byteCounter discards everything written to it while tallying the byte
// count, so bench can exercise Update.WriteTo's real encoding path without
// spamming the terminal on every iteration.
type byteCounter struct{ n int64 }

func (c *byteCounter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
