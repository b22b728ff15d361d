package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/printers"
)

// Add stores a new entry and prints the day it landed on.
type Add struct {
	Request app.AddRequest
	ShowID  bool
	JSON    bool
	Out     io.Writer

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	e, err := n.Service.Add(ctx, n.Request)
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
	pp := printers.New(n.Out, n.ShowID)
	pp.TitleWithCount(e.Date.String(), len(day))
	pp.Day(day...)
	return nil
}
