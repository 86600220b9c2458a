package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
)

// sectionPayload is the subset of the Graph section resource this
// pipeline reads. Only the id is required.
type sectionPayload struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Sections enumerates all sections available to the current user.
func (c *Client) Sections(ctx context.Context) driven.SectionIterator {
	return &sectionIterator{pager: newPager(ctx, c, c.baseURL+"/me/onenote/sections")}
}

type sectionIterator struct {
	pager *pager
	cur   domain.Section
	err   error
}

func (it *sectionIterator) Next() bool {
	if it.err != nil {
		return false
	}

	raw, ok := it.pager.nextItem()
	if !ok {
		return false
	}

	var payload sectionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		it.err = fmt.Errorf("decode section: %w", err)
		return false
	}
	if payload.ID == "" {
		it.err = fmt.Errorf("%w: section %s", ErrMissingID, string(raw))
		return false
	}

	it.cur = domain.Section{ID: payload.ID, DisplayName: payload.DisplayName}
	return true
}

func (it *sectionIterator) Section() domain.Section {
	return it.cur
}

func (it *sectionIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.pager.err
}
