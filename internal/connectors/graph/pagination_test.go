package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
)

// listingServer serves a canned chain of listing responses keyed by
// path. Responses reference the next page via @odata.nextLink.
func listingServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		// Substitute the server's own address into next links.
		fmt.Fprint(w, strings.ReplaceAll(body, "%s", srv.URL))
	}))
	return srv
}

func TestSections_FollowsNextLinksInOrder(t *testing.T) {
	responses := map[string]string{
		"/me/onenote/sections": `{
			"value": [
				{"id": "s-1", "displayName": "Recipes"},
				{"id": "s-2", "displayName": "Travel"}
			],
			"@odata.nextLink": "%s/page2"
		}`,
		"/page2": `{
			"value": [],
			"@odata.nextLink": "%s/page3"
		}`,
		"/page3": `{
			"value": [{"id": "s-3"}]
		}`,
	}
	srv := listingServer(t, responses)
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	var sections []domain.Section
	it := c.Sections(context.Background())
	for it.Next() {
		sections = append(sections, it.Section())
	}
	require.NoError(t, it.Err())

	require.Len(t, sections, 3)
	assert.Equal(t, domain.Section{ID: "s-1", DisplayName: "Recipes"}, sections[0])
	assert.Equal(t, domain.Section{ID: "s-2", DisplayName: "Travel"}, sections[1])
	assert.Equal(t, domain.Section{ID: "s-3"}, sections[2])
}

func TestSections_EmptyListing(t *testing.T) {
	srv := listingServer(t, map[string]string{
		"/me/onenote/sections": `{"value": []}`,
	})
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	it := c.Sections(context.Background())
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestSections_MissingIDFailsFast(t *testing.T) {
	srv := listingServer(t, map[string]string{
		"/me/onenote/sections": `{"value": [{"displayName": "No ID"}]}`,
	})
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	it := c.Sections(context.Background())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrMissingID)
}

func TestSections_RequestFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "boom")
	}))
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	it := c.Sections(context.Background())
	assert.False(t, it.Next())

	var apiErr *APIError
	require.ErrorAs(t, it.Err(), &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)
}

func TestPages_ScopedToSection(t *testing.T) {
	srv := listingServer(t, map[string]string{
		"/me/onenote/sections/s-1/pages": `{
			"value": [
				{"id": "p-1", "title": "Week plan"},
				{"id": "p-2"}
			]
		}`,
	})
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	var pages []domain.Page
	it := c.Pages(context.Background(), "s-1")
	for it.Next() {
		pages = append(pages, it.Page())
	}
	require.NoError(t, it.Err())

	require.Len(t, pages, 2)
	assert.Equal(t, domain.Page{ID: "p-1", Title: "Week plan"}, pages[0])
	assert.Equal(t, domain.Page{ID: "p-2"}, pages[1])
	assert.Equal(t, "Untitled page", pages[1].Heading())
}

func TestSections_NotRestartable(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		fmt.Fprint(w, `{"value": [{"id": "s-1"}]}`)
	}))
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	it := c.Sections(context.Background())
	for it.Next() {
	}
	require.NoError(t, it.Err())

	// A fresh enumeration issues fresh requests.
	it2 := c.Sections(context.Background())
	for it2.Next() {
	}
	require.NoError(t, it2.Err())
	assert.Equal(t, 2, requests)
}
