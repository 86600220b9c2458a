// Package html converts OneNote page markup into clean plain text.
package html

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser extracts visible text from HTML documents.
// The html5 parser is error-recovering, so malformed markup degrades to
// best-effort extraction instead of failing; only input that is not
// valid UTF-8 is a hard error.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// skippedTags are removed entirely; their content must not appear in
// the output.
var skippedTags = map[string]struct{}{
	"head":     {},
	"script":   {},
	"style":    {},
	"noscript": {},
}

// blockTags get their own line in the output.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "hr": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"li": {}, "tr": {}, "table": {}, "ul": {}, "ol": {},
	"blockquote": {}, "pre": {}, "section": {}, "article": {},
	"header": {}, "footer": {},
}

// Normalise converts markup into line-oriented plain text: each block
// element becomes its own line, lines are trimmed, empty lines are
// dropped, and survivors are joined with a single newline.
func (n *Normaliser) Normalise(_ context.Context, markup string) (string, error) {
	if !utf8.ValidString(markup) {
		return "", domain.ErrUndecodableContent
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}

	var b strings.Builder
	for _, node := range doc.Nodes {
		collectText(node, &b)
	}

	lines := strings.Split(b.String(), "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n"), nil
}

// collectText walks the node tree appending text content, with a
// newline around every block-level element.
func collectText(node *html.Node, b *strings.Builder) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		return
	}

	block := false
	if node.Type == html.ElementNode {
		if _, skip := skippedTags[node.Data]; skip {
			return
		}
		_, block = blockTags[node.Data]
	}

	if block {
		b.WriteByte('\n')
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
	if block {
		b.WriteByte('\n')
	}
}
