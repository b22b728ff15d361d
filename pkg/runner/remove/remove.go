// Package remove provides the runner behind `plannow delete`.
package remove

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/printers"
)

// Remove deletes one entry, either by ID or by its position within Day.
type Remove struct {
	ID       string
	Day      entry.Day
	Position int
	JSON     bool
	Out      io.Writer

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}

	var (
		removed *entry.Entry
		err     error
	)
	if n.ID != "" {
		removed, err = n.Service.DeleteByID(ctx, n.ID)
	} else {
		day := n.Day
		if day.IsZero() {
			day = entry.Today()
		}
		removed, err = n.Service.Delete(ctx, day, n.Position)
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, removed)
	}
	_, _ = color.New(color.Faint).Fprintf(printers.Output(n.Out), "deleted %s %q from %s\n", removed.Type, removed.Title, removed.Date)
	return nil
}
