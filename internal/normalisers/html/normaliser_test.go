package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
)

func TestNormalise_BlockSeparation(t *testing.T) {
	n := New()
	ctx := context.Background()

	markup := `<html><body><p>First paragraph</p><p>Second paragraph</p><div>A div</div></body></html>`

	text, err := n.Normalise(ctx, markup)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond paragraph\nA div", text)
}

func TestNormalise_StripsScriptAndStyle(t *testing.T) {
	n := New()
	ctx := context.Background()

	markup := `<html><head><style>body { color: red; }</style></head>
<body><p>Visible</p><script>alert("hidden");</script><noscript>also hidden</noscript></body></html>`

	text, err := n.Normalise(ctx, markup)
	require.NoError(t, err)
	assert.Contains(t, text, "Visible")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "also hidden")
}

func TestNormalise_SkipsHead(t *testing.T) {
	n := New()
	ctx := context.Background()

	markup := `<html><head><title>Grocery List</title><meta name="created" content="2024-01-01"/></head>
<body><p>milk</p></body></html>`

	text, err := n.Normalise(ctx, markup)
	require.NoError(t, err)
	assert.Equal(t, "milk", text)
}

func TestNormalise_TrimsAndDropsEmptyLines(t *testing.T) {
	n := New()
	ctx := context.Background()

	markup := "<p>   padded   </p><p>   </p><p>next</p>"

	text, err := n.Normalise(ctx, markup)
	require.NoError(t, err)
	assert.Equal(t, "padded\nnext", text)
}

func TestNormalise_Deterministic(t *testing.T) {
	n := New()
	ctx := context.Background()

	markup := `<html><body><h1>Title</h1><ul><li>one</li><li>two</li></ul><p>tail &amp; end</p></body></html>`

	first, err := n.Normalise(ctx, markup)
	require.NoError(t, err)
	second, err := n.Normalise(ctx, markup)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalise_DecodesEntities(t *testing.T) {
	n := New()
	ctx := context.Background()

	text, err := n.Normalise(ctx, "<p>Tom &amp; Jerry</p>")
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry", text)
}

func TestNormalise_MalformedMarkupDoesNotError(t *testing.T) {
	n := New()
	ctx := context.Background()

	tests := []struct {
		name   string
		markup string
	}{
		{name: "unclosed tags", markup: "<div><p>dangling"},
		{name: "stray closing tags", markup: "</p>orphan</div>"},
		{name: "not html at all", markup: "just plain text"},
		{name: "empty", markup: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalise(ctx, tt.markup)
			assert.NoError(t, err)
		})
	}
}

func TestNormalise_InvalidUTF8(t *testing.T) {
	n := New()
	ctx := context.Background()

	_, err := n.Normalise(ctx, string([]byte{0xff, 0xfe, 0xfd}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUndecodableContent)
}

func TestNormalise_WhitespaceOnlyBody(t *testing.T) {
	n := New()
	ctx := context.Background()

	text, err := n.Normalise(ctx, "<html><body>   \n\t  </body></html>")
	require.NoError(t, err)
	assert.Empty(t, text)
}
