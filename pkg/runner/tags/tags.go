package tags

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/index"
	"tableflip.dev/plannow/pkg/printers"
)

// Tags prints hashtag usage, for the whole journal or for one day.
type Tags struct {
	Day  entry.Day
	JSON bool
	Out  io.Writer

	Service *app.Service
}

func (n *Tags) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tags, no service")
	}

	var (
		counts index.Counts
		title  = "Hashtags"
	)
	if n.Day.IsZero() {
		var err error
		if counts, err = n.Service.TagCounts(ctx); err != nil {
			return err
		}
	} else {
		day, err := n.Service.Day(ctx, n.Day)
		if err != nil {
			return err
		}
		counts = index.HashtagCounts(day)
		title = "Hashtags on " + n.Day.String()
	}

	if n.JSON {
		return printers.JSON(n.Out, counts)
	}
	pp := printers.New(n.Out, false)
	pp.Title(title)
	pp.Tags(counts)
	return nil
}
