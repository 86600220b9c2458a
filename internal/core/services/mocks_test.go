package services

import (
	"context"
	"strings"
	"sync"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
)

// fakeReader serves canned sections, pages, and page content.
type fakeReader struct {
	sections    []domain.Section
	sectionsErr error

	pages    map[string][]domain.Page
	pagesErr map[string]error

	content      map[string]string
	contentErr   map[string]error
	contentCalls int
}

func (r *fakeReader) Sections(_ context.Context) driven.SectionIterator {
	return &fakeSectionIterator{items: r.sections, err: r.sectionsErr}
}

func (r *fakeReader) Pages(_ context.Context, sectionID string) driven.PageIterator {
	var err error
	if r.pagesErr != nil {
		err = r.pagesErr[sectionID]
	}
	return &fakePageIterator{items: r.pages[sectionID], err: err}
}

func (r *fakeReader) PageContent(_ context.Context, pageID string) (string, error) {
	r.contentCalls++
	if err, ok := r.contentErr[pageID]; ok {
		return "", err
	}
	return r.content[pageID], nil
}

// fakeSectionIterator yields its items, then reports err (if any)
// after exhaustion, mimicking a listing that fails mid-pagination.
type fakeSectionIterator struct {
	items []domain.Section
	pos   int
	err   error
}

func (it *fakeSectionIterator) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

func (it *fakeSectionIterator) Section() domain.Section { return it.items[it.pos-1] }
func (it *fakeSectionIterator) Err() error              { return it.err }

type fakePageIterator struct {
	items []domain.Page
	pos   int
	err   error
}

func (it *fakePageIterator) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

func (it *fakePageIterator) Page() domain.Page { return it.items[it.pos-1] }
func (it *fakePageIterator) Err() error        { return it.err }

// fakeNormaliser trims whitespace, so whitespace-only markup
// normalises to empty text.
type fakeNormaliser struct{}

func (fakeNormaliser) Normalise(_ context.Context, markup string) (string, error) {
	return strings.TrimSpace(markup), nil
}

// fakeCorpus records writes in memory.
type fakeCorpus struct {
	files map[string]string
	err   error
}

func newFakeCorpus() *fakeCorpus {
	return &fakeCorpus{files: make(map[string]string)}
}

func (c *fakeCorpus) Write(stem, content string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	path := "/out/" + stem + ".txt"
	c.files[path] = content
	return path, nil
}

// fakeIndex records upserts keyed by id.
type fakeIndex struct {
	mu      sync.Mutex
	entries map[string]indexEntry
	upserts int
	err     error
}

type indexEntry struct {
	text     string
	metadata map[string]string
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{entries: make(map[string]indexEntry)}
}

func (x *fakeIndex) Upsert(_ context.Context, id, text string, metadata map[string]string) error {
	if x.err != nil {
		return x.err
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	x.upserts++
	x.entries[id] = indexEntry{text: text, metadata: metadata}
	return nil
}
