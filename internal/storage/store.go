// Package storage provides abstractions for structured trip sources.
package storage

import (
	"github.com/mmynk/tripreport/internal/parser"
)

// Source supplies drivers and trips from a backing store instead of a
// command log. This abstraction allows swapping storage backends without
// changing the processing pipeline.
type Source interface {
	// Parser returns a parser over the stored records that admits them
	// according to opts.
	Parser(opts parser.Options) parser.Parser

	// Close releases any resources held by the source.
	Close() error
}
