package domain

// Section is a top-level grouping of pages in the user's notebook.
// Sections are read-only from this tool's perspective: they are
// enumerated once per run and never written back.
type Section struct {
	// ID is the opaque, stable identifier assigned by Microsoft Graph.
	ID string

	// DisplayName is the human-readable name. It is mutable on the
	// remote side and not guaranteed to be unique or present.
	DisplayName string
}

// Name returns the display name, or a placeholder derived from the ID
// when the remote service did not provide one.
func (s Section) Name() string {
	if s.DisplayName == "" {
		return "Section-" + s.ID
	}
	return s.DisplayName
}

// FileStem returns the corpus filename stem for this section.
// The ID suffix keeps stems unique even when display names collide.
func (s Section) FileStem() string {
	return Slugify(s.Name()) + "-" + s.ID
}

// Page is a single document within a section. Its HTML content is
// fetched separately, one request per page, and discarded after
// normalisation.
type Page struct {
	// ID is the opaque identifier assigned by Microsoft Graph,
	// unique within the owning section.
	ID string

	// Title is the human-readable title, possibly empty.
	Title string
}

// Heading returns the page title, or a placeholder when absent.
func (p Page) Heading() string {
	if p.Title == "" {
		return "Untitled page"
	}
	return p.Title
}

// SectionDocument is the plain-text derivative of a section: the
// normalised text of all its pages, each prefixed by its title as a
// heading, joined by a blank line and trimmed.
type SectionDocument struct {
	// SectionID is the owning section's stable identifier. It is also
	// the upsert key in the semantic index.
	SectionID string

	// SectionName is the owning section's display name (or placeholder).
	SectionName string

	// Text is the concatenated normalised content. Empty only when
	// every constituent page normalised to empty text.
	Text string
}

// Empty reports whether the document has no content. Empty documents
// are never persisted.
func (d SectionDocument) Empty() bool {
	return d.Text == ""
}
