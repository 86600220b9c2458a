package graph

import (
	"context"
	"encoding/json"
	"fmt"
)

// listResponse is one page of a Graph listing. The service encodes all
// continuation state into the next link; follow-up requests carry no
// query parameters of their own.
type listResponse struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"@odata.nextLink"`
}

// pager walks a chain of listing responses one item at a time,
// fetching the next response page on demand. It is forward-only and
// single-pass; the cursor is never exposed to callers.
type pager struct {
	ctx    context.Context
	client *Client
	next   string
	items  []json.RawMessage
	err    error
}

func newPager(ctx context.Context, client *Client, url string) *pager {
	return &pager{ctx: ctx, client: client, next: url}
}

// nextItem returns the next raw listing item, following next links
// until one is found or the chain ends. Response pages may be empty
// while still carrying a next link.
func (p *pager) nextItem() (json.RawMessage, bool) {
	for len(p.items) == 0 {
		if p.err != nil || p.next == "" {
			return nil, false
		}

		body, err := p.client.get(p.ctx, p.next)
		if err != nil {
			p.err = err
			return nil, false
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			p.err = fmt.Errorf("decode listing page: %w", err)
			return nil, false
		}

		p.items = page.Value
		p.next = page.NextLink
	}

	item := p.items[0]
	p.items = p.items[1:]
	return item, true
}
