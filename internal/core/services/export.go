// Package services contains the core pipeline logic: the export
// orchestrator and the semantic indexer.
package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driving"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/logger"
)

// Ensure ExportOrchestrator implements the interface.
var _ driving.Exporter = (*ExportOrchestrator)(nil)

// Default pacing values. After every DefaultPauseAfter persisted
// sections the run sleeps for DefaultPauseFor, unconditionally, to stay
// under Graph's rate limits.
const (
	DefaultPauseAfter = 600
	DefaultPauseFor   = 300 * time.Second
)

// ExportOptions configures an export run.
type ExportOptions struct {
	// PauseAfter is the number of processed sections between pacing
	// pauses (default 600). Zero means default; negative disables
	// pacing.
	PauseAfter int

	// PauseFor is the pacing pause duration (default 300s).
	PauseFor time.Duration

	// Out receives operator-facing diagnostics: one line per saved
	// section, per skipped empty section, and a final summary.
	// Defaults to os.Stdout.
	Out io.Writer

	// sleep is replaced in tests to observe pacing without waiting.
	sleep func(context.Context, time.Duration)
}

// ExportOrchestrator drives the pipeline: it enumerates sections,
// builds each section's normalised document, writes the corpus file,
// and upserts the semantic index. Processing is strictly sequential:
// at most one remote request is in flight at any point in the run.
type ExportOrchestrator struct {
	reader     driven.NotebookReader
	normaliser driven.Normaliser
	corpus     driven.CorpusWriter
	index      driven.SemanticIndex

	pauseAfter int
	pauseFor   time.Duration
	out        io.Writer
	sleep      func(context.Context, time.Duration)
}

// NewExportOrchestrator creates an export orchestrator.
func NewExportOrchestrator(
	reader driven.NotebookReader,
	normaliser driven.Normaliser,
	corpus driven.CorpusWriter,
	index driven.SemanticIndex,
	opts ExportOptions,
) *ExportOrchestrator {
	if opts.PauseAfter == 0 {
		opts.PauseAfter = DefaultPauseAfter
	}
	if opts.PauseFor == 0 {
		opts.PauseFor = DefaultPauseFor
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.sleep == nil {
		opts.sleep = sleepContext
	}

	return &ExportOrchestrator{
		reader:     reader,
		normaliser: normaliser,
		corpus:     corpus,
		index:      index,
		pauseAfter: opts.PauseAfter,
		pauseFor:   opts.PauseFor,
		out:        opts.Out,
		sleep:      opts.sleep,
	}
}

// Export runs one full pass over all sections. Any error from the
// remote service, the normaliser, the corpus writer, or the index
// aborts the run at the point of occurrence; artifacts of sections
// already processed are left intact, and re-running is safe because
// both destinations overwrite by section ID.
func (o *ExportOrchestrator) Export(ctx context.Context) (*driving.ExportSummary, error) {
	start := time.Now()
	summary := &driving.ExportSummary{RunID: uuid.New().String()}

	logger.Info("starting export run %s", summary.RunID)

	sections := o.reader.Sections(ctx)
	for sections.Next() {
		section := sections.Section()

		doc, err := o.buildDocument(ctx, section)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", section.ID, err)
		}

		if doc.Empty() {
			fmt.Fprintf(o.out, "Skipping empty section %s (%s)\n", section.Name(), section.ID)
			summary.SectionsSkipped++
			continue
		}

		path, err := o.corpus.Write(section.FileStem(), doc.Text)
		if err != nil {
			return nil, fmt.Errorf("section %s: write corpus file: %w", section.ID, err)
		}

		metadata := map[string]string{
			"section_id":   section.ID,
			"section_name": section.Name(),
			"file_path":    path,
		}
		if err := o.index.Upsert(ctx, section.ID, doc.Text, metadata); err != nil {
			return nil, fmt.Errorf("section %s: %w", section.ID, err)
		}

		summary.SectionsProcessed++
		fmt.Fprintf(o.out, "Saved section %q to %s\n", section.Name(), path)

		// Unconditional time-based pacing, not adaptive backoff: the
		// pause fires on the counter alone, whether or not the remote
		// service signalled throttling.
		if o.pauseAfter > 0 && summary.SectionsProcessed%o.pauseAfter == 0 {
			fmt.Fprintf(o.out, "Processed %d sections. Pausing for %s to respect rate limits.\n",
				summary.SectionsProcessed, o.pauseFor)
			summary.Pauses++
			o.sleep(ctx, o.pauseFor)
		}
	}
	if err := sections.Err(); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	fmt.Fprintf(o.out, "Finished processing %d sections.\n", summary.SectionsProcessed)
	summary.Duration = time.Since(start)

	logger.Info("export run %s finished: %d processed, %d skipped, %d pauses, %s",
		summary.RunID, summary.SectionsProcessed, summary.SectionsSkipped, summary.Pauses, summary.Duration)

	return summary, nil
}

// buildDocument fetches and normalises every page of a section and
// concatenates the results in fetch order. Pages that normalise to
// empty text contribute nothing, so a section of blank pages yields an
// empty document.
func (o *ExportOrchestrator) buildDocument(ctx context.Context, section domain.Section) (domain.SectionDocument, error) {
	doc := domain.SectionDocument{SectionID: section.ID, SectionName: section.Name()}

	var parts []string
	pages := o.reader.Pages(ctx, section.ID)
	for pages.Next() {
		page := pages.Page()

		markup, err := o.reader.PageContent(ctx, page.ID)
		if err != nil {
			return doc, fmt.Errorf("page %s: fetch content: %w", page.ID, err)
		}

		text, err := o.normaliser.Normalise(ctx, markup)
		if err != nil {
			return doc, fmt.Errorf("page %s: normalise: %w", page.ID, err)
		}
		if text == "" {
			logger.Debug("page %s normalised to empty text", page.ID)
			continue
		}

		parts = append(parts, "# "+page.Heading()+"\n"+text)
	}
	if err := pages.Err(); err != nil {
		return doc, fmt.Errorf("list pages: %w", err)
	}

	doc.Text = strings.TrimSpace(strings.Join(parts, "\n\n"))
	return doc, nil
}

// sleepContext pauses for d, returning early if ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
