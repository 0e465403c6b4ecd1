package pipeline

import "github.com/poiesic/sbasearch/core"

// RunMonitor provides hooks to observe the stages of a run.
// Implement this interface to track progress while a run executes.
type RunMonitor interface {
	FiltersBuilt(filters *core.Filters, activeCount int)
	SearchCompleted(totalResults int)
	EnrichmentProgress(done, total int)
	RunCompleted(summary *core.RunSummary)
}

// noopMonitor is a no-op implementation of RunMonitor
type noopMonitor struct{}

var _ RunMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) FiltersBuilt(_ *core.Filters, _ int) {}
func (n *noopMonitor) SearchCompleted(_ int)               {}
func (n *noopMonitor) EnrichmentProgress(_, _ int)         {}
func (n *noopMonitor) RunCompleted(_ *core.RunSummary)     {}
