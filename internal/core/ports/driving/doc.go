// Package driving provides interfaces for primary (inbound) adapters.
// The CLI drives the export pipeline through these ports.
package driving
