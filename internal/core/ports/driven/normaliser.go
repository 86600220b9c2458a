package driven

import "context"

// Normaliser converts raw page markup into clean, line-oriented plain
// text. Normalisation is deterministic: the same input always yields
// byte-identical output. Malformed markup degrades to best-effort text
// extraction; only non-decodable input is an error.
type Normaliser interface {
	Normalise(ctx context.Context, markup string) (string, error)
}
