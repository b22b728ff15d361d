// Package toggle provides the runner that flips a task between open and done.
package toggle

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/printers"
)

// Toggle flips the completion of one task.
type Toggle struct {
	ID   string
	JSON bool
	Out  io.Writer

	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}
	e, err := n.Service.Toggle(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, e)
	}

	day, err := n.Service.Day(ctx, e.Date)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, true)
	pp.NewLine()
	pp.Title(e.Date.String())
	pp.Day(day...)
	return nil
}
