package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
)

// pagePayload is the subset of the Graph page resource this pipeline
// reads. The title may be absent; domain.Page substitutes a
// placeholder.
type pagePayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Pages enumerates all pages belonging to a section.
func (c *Client) Pages(ctx context.Context, sectionID string) driven.PageIterator {
	url := c.baseURL + "/me/onenote/sections/" + sectionID + "/pages"
	return &pageIterator{pager: newPager(ctx, c, url)}
}

type pageIterator struct {
	pager *pager
	cur   domain.Page
	err   error
}

func (it *pageIterator) Next() bool {
	if it.err != nil {
		return false
	}

	raw, ok := it.pager.nextItem()
	if !ok {
		return false
	}

	var payload pagePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		it.err = fmt.Errorf("decode page: %w", err)
		return false
	}
	if payload.ID == "" {
		it.err = fmt.Errorf("%w: page %s", ErrMissingID, string(raw))
		return false
	}

	it.cur = domain.Page{ID: payload.ID, Title: payload.Title}
	return true
}

func (it *pageIterator) Page() domain.Page {
	return it.cur
}

func (it *pageIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.pager.err
}
