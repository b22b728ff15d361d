package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uitable"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/printers"
	"tableflip.dev/plannow/pkg/store"
)

// Info prints where the journal is stored and, when signed in, a short
// summary of it.
type Info struct {
	Config  *store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := printers.Output(n.Out)

	if override := os.Getenv("PLANNOW_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "PLANNOW_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "PLANNOW_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("backend:", n.Config.Backend)
	switch n.Config.Backend {
	case store.KindRedis:
		tbl.AddRow("redis:", n.Config.RedisURL)
	case store.KindS3:
		tbl.AddRow("bucket:", n.Config.S3Bucket)
		tbl.AddRow("prefix:", n.Config.S3Prefix)
		if n.Config.S3Endpoint != "" {
			tbl.AddRow("endpoint:", n.Config.S3Endpoint)
		}
	default:
		tbl.AddRow("path:", n.Config.BasePath())
	}
	tbl.AddRow("session:", n.Config.SessionPath())
	tbl.AddRow("log level:", n.Config.LogLevel)

	if n.Service != nil {
		sess, err := n.Service.Session(ctx)
		if err != nil {
			tbl.AddRow("signed in:", "no")
		} else {
			tbl.AddRow("signed in:", sess.Email)
			entries, err := n.Service.All(ctx)
			if err != nil {
				return err
			}
			dates, _ := n.Service.Dates(ctx)
			counts, _ := n.Service.TagCounts(ctx)
			tbl.AddRow("entries:", len(entries))
			tbl.AddRow("days:", len(dates))
			tbl.AddRow("hashtags:", len(counts))
		}
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
