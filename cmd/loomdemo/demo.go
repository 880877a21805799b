package main

// buildDemoTree assembles the sample panel layout every subcommand renders:
// a header panel, two status panels (workers and storage), and a footer
// panel with a progress bar. All four are stacked vertically, since
// panel.Arrange only stacks children top to bottom; there is no
// side-by-side placement.
func buildDemoTree(t theme) *panel {
	header := newPanel(t, "loomterm compositor", "live terminal panel demo")
	header.Status = "ok"

	workers := newPanel(t, "workers", "3 of 4 workers are processing jobs from the queue.")
	workers.Status = "warning"

	storage := newPanel(t, "storage", "object store replication is healthy across both regions.")
	storage.Status = "ok"

	footer := newPanel(t, "sync", "catching up on replication backlog")
	footer.Progress = &progress{Current: 67, Total: 100}

	return newPanel(t, "", "").withChildren(header, workers, storage, footer)
}
