package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/printers"
)

// Edit changes the title, text or image of an entry. The entry is addressed
// by ID, or by Index into the full collection when ID is empty.
type Edit struct {
	ID    string
	Index int
	Patch entry.Patch
	JSON  bool
	Out   io.Writer

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.Patch.Empty() {
		return errors.New("nothing to edit, set --title, --text or --image")
	}

	var (
		e   *entry.Entry
		err error
	)
	if n.ID != "" {
		e, err = n.Service.Edit(ctx, n.ID, n.Patch)
	} else {
		e, err = n.Service.EditAt(ctx, n.Index, n.Patch)
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, e)
	}
	pp := printers.New(n.Out, false)
	pp.Entry(e)
	return nil
}
