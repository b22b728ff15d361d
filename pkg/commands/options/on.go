package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
	now      func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28", --on=yesterday. Defaults to today.`)
}

func (o *OnOptions) clock() time.Time {
	if o.now != nil {
		return o.now()
	}
	return time.Now()
}

// GetDay resolves the flag to a calendar day. An empty flag is the zero
// day, which callers treat as today.
func (o *OnOptions) GetDay() (entry.Day, error) {
	now := o.clock()
	switch o.OnString {
	case "":
		return "", nil
	case "today":
		return entry.DayOf(now), nil
	case "yesterday":
		return entry.DayOf(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return entry.DayOf(now.AddDate(0, 0, 1)), nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		return entry.DayOf(t), nil
	}
	t, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		// Fall through to the strict parser for its error.
		return entry.ParseDay(o.OnString)
	}
	// Let the year be the same.
	return entry.DayOf(time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)), nil
}
