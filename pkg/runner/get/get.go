package get

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/index"
	"tableflip.dev/plannow/pkg/journal"
	"tableflip.dev/plannow/pkg/printers"
	"tableflip.dev/plannow/pkg/store"
)

// Get lists entries of a day, of a hashtag, or all of them.
type Get struct {
	Day    entry.Day
	Tag    string
	All    bool
	Open   bool
	ShowID bool
	JSON   bool
	// Watch keeps printing whenever the collection changes on disk.
	Watch bool
	Out   io.Writer

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	if err := n.print(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	sess, err := n.Service.Session(ctx)
	if err != nil {
		return err
	}
	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	key := journal.CollectionKey(sess.UserID)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventKeyChanged && ev.Key != key {
				continue
			}
			log.Debug("collection changed", "key", ev.Key)
			if err := n.print(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Get) selected(ctx context.Context) (string, []*entry.Entry, error) {
	switch {
	case n.Tag != "":
		tag := app.NormalizeTag(n.Tag)
		entries, err := n.Service.Tag(ctx, tag)
		return tag, entries, err
	case n.All:
		entries, err := n.Service.All(ctx)
		return "All entries", entries, err
	default:
		day := n.Day
		if day.IsZero() {
			day = entry.Today()
		}
		entries, err := n.Service.Day(ctx, day)
		return day.String(), entries, err
	}
}

func (n *Get) print(ctx context.Context) error {
	title, entries, err := n.selected(ctx)
	if err != nil {
		return err
	}
	if n.Open {
		entries = index.Open(entries)
	}
	if n.JSON {
		return printers.JSON(n.Out, entries)
	}

	pp := printers.New(n.Out, n.ShowID)
	pp.NewLine()
	pp.TitleWithCount(title, len(entries))
	// Only a plain day listing numbers entries by their position in the day.
	if n.Tag == "" && !n.All && !n.Open {
		pp.Day(entries...)
		return nil
	}
	pp.List(entries...)
	return nil
}
