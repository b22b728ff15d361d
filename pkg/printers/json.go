package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Output returns w, or the color-aware stdout when w is nil.
func Output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Output(w), string(b))
	return err
}
