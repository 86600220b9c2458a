// Package domain contains the core entities of the export pipeline:
// sections, pages, and the plain-text section documents derived from
// them. It has no dependencies on other packages.
package domain
