package report

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/printers"
	"tableflip.dev/plannow/pkg/timeutil"
)

// Report summarizes the last Window of days, e.g. "1w" or "3d".
type Report struct {
	Window string
	// Until is the last day included, defaults to today.
	Until entry.Day
	JSON  bool
	Out   io.Writer

	Service *app.Service
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	days, label, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	until := n.Until
	if until.IsZero() {
		until = entry.Today()
	}
	end, err := until.Time()
	if err != nil {
		return err
	}
	since := entry.DayOf(end.AddDate(0, 0, -(days - 1)))

	result, err := n.Service.Report(ctx, since, until)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, result)
	}
	printers.New(n.Out, false).Report(result, label)
	return nil
}
