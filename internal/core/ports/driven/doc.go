// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the Graph notebook reader, the HTML
// normaliser, the corpus writer, and the embedding-backed index.
package driven
