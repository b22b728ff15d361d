// Package calendar prints a month view marking the days that have entries.
package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/printers"
)

type Calendar struct {
	// Month is any time within the month to print.
	Month  time.Time
	Months int
	// Selected is underlined, defaults to today.
	Selected entry.Day
	Out      io.Writer

	Service *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print calendar, no service")
	}
	dates, err := n.Service.Dates(ctx)
	if err != nil {
		return err
	}
	month := n.Month
	if month.IsZero() {
		month = time.Now()
	}
	selected := n.Selected
	if selected.IsZero() {
		selected = entry.Today()
	}
	months := n.Months
	if months < 1 {
		months = 1
	}

	pp := printers.New(n.Out, false)
	pp.NewLine()
	for i := 0; i < months; i++ {
		pp.Calendar(month, selected, dates...)
		month = printers.NextMonth(month)
	}
	return nil
}
