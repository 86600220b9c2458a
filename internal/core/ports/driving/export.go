package driving

import (
	"context"
	"time"
)

// Exporter runs the export pipeline: enumerate sections, normalise
// their pages, write corpus files, and upsert the semantic index.
type Exporter interface {
	// Export runs one full pass over all sections. Any unrecovered
	// error from the remote service or the index aborts the run;
	// artifacts of already-processed sections are left intact.
	Export(ctx context.Context) (*ExportSummary, error)
}

// ExportSummary reports the outcome of a completed run.
type ExportSummary struct {
	// RunID uniquely identifies this run in diagnostics.
	RunID string

	// SectionsProcessed counts sections persisted to both destinations.
	SectionsProcessed int

	// SectionsSkipped counts sections whose document was empty.
	SectionsSkipped int

	// Pauses counts rate-limit pacing pauses taken.
	Pauses int

	// Duration is the total wall-clock time of the run.
	Duration time.Duration
}
