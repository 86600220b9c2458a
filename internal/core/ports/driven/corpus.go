package driven

// CorpusWriter persists section text under a deterministic filename
// inside the output directory, replacing any existing file with the
// same stem.
type CorpusWriter interface {
	// Write stores content as UTF-8 under the given filename stem,
	// creating intermediate directories as needed. It returns the
	// resolved file path.
	Write(stem, content string) (string, error)
}
