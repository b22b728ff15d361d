// Package key provides CLI helpers to display the symbol legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/plannow/pkg/glyph"
	"tableflip.dev/plannow/pkg/printers"
)

// Key prints the symbols used when listing entries.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	pp := printers.New(k.Out, false)
	pp.NewLine()
	pp.Legend(glyph.DefaultGlyphs())
	return nil
}
