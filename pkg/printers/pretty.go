package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/glyph"
	"tableflip.dev/plannow/pkg/index"
	"tableflip.dev/plannow/pkg/profile"
)

const defaultWidth = 80

type PrettyPrint struct {
	Out     io.Writer
	ShowID  bool
	Width   int
	NoColor bool
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

// New returns a printer for w. Color is only used when w is a terminal.
func New(w io.Writer, showID bool) *PrettyPrint {
	w = Output(w)
	pp := &PrettyPrint{Out: w, ShowID: showID, Width: defaultWidth, NoColor: true}
	if f, ok := w.(*os.File); ok {
		pp.NoColor = color.NoColor || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	} else if w == color.Output {
		pp.NoColor = color.NoColor
	}
	return pp
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.NoColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.style(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.Out, spacing)
	}
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.Out, spacing)
	}
	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " entry")
	default:
		_, _ = c.Fprintln(pp.Out, " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := pp.style(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.Out, spacing)
	}
	_, _ = f.Fprint(pp.Out, " none\n\n")
}

// Day prints the entries of one day, numbered by their position within the
// day. Those numbers are what `delete --on` takes.
func (pp *PrettyPrint) Day(entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	for i, e := range entries {
		pp.line(fmt.Sprintf("%2d", i), e)
	}
	pp.NewLine()
}

// List prints entries from several days, each prefixed with its date.
func (pp *PrettyPrint) List(entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	for _, e := range entries {
		pp.line(e.Date.String(), e)
	}
	pp.NewLine()
}

func (pp *PrettyPrint) line(prefix string, e *entry.Entry) {
	y := pp.style(color.FgHiYellow, color.Italic, color.Faint)
	f := pp.style(color.Faint)
	tag := pp.style(color.FgCyan)

	if pp.ShowID {
		_, _ = y.Fprint(pp.Out, e.ID)
		_, _ = fmt.Fprint(pp.Out, strings.Repeat(" ", max(len(spacing)-len(e.ID), 1)))
	}
	title := e.Title
	if e.IsTask() && e.Completed && !pp.NoColor {
		title = glyph.Strike(title)
	}
	_, _ = f.Fprintf(pp.Out, "%s ", prefix)
	_, _ = fmt.Fprintf(pp.Out, "%s %s", glyph.For(e), title)
	if e.ImageURI != "" {
		_, _ = f.Fprintf(pp.Out, " %s", glyph.Image)
	}
	if len(e.Hashtags) > 0 {
		_, _ = tag.Fprintf(pp.Out, "  %s", strings.Join(e.Hashtags, " "))
	}
	_, _ = fmt.Fprintln(pp.Out)

	if e.Text != "" {
		pad := len(prefix) + 3
		if pp.ShowID {
			pad += len(spacing)
		}
		body := wordwrap.String(e.Text, max(pp.width()-pad, 20))
		_, _ = f.Fprintln(pp.Out, indent.String(body, uint(pad)))
	}
}

// Entry prints every field of a single entry.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("id"), e.ID)
	tbl.AddRow(bold.Sprint("date"), e.Date)
	tbl.AddRow(bold.Sprint("type"), fmt.Sprintf("%s %s", glyph.For(e), e.Type))
	if e.IsTask() {
		tbl.AddRow(bold.Sprint("completed"), e.Completed)
	}
	tbl.AddRow(bold.Sprint("title"), e.Title)
	if len(e.Hashtags) > 0 {
		tbl.AddRow(bold.Sprint("hashtags"), strings.Join(e.Hashtags, " "))
	}
	if e.ImageURI != "" {
		tbl.AddRow(bold.Sprint("image"), e.ImageURI)
	}
	tbl.AddRow(bold.Sprint("created"), e.CreatedAt)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)

	if e.Text != "" {
		pp.NewLine()
		_, _ = fmt.Fprintln(pp.Out, wordwrap.String(e.Text, pp.width()))
	}
}

// Tags prints hashtag usage counts in first-seen order.
func (pp *PrettyPrint) Tags(counts index.Counts) {
	if len(counts) == 0 {
		pp.none()
		return
	}
	bold := pp.style(color.Bold)
	tag := pp.style(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Hashtag"), bold.Sprint("Entries"))
	for _, tc := range counts {
		tbl.AddRow(tag.Sprint(tc.Tag), tc.Count)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
	pp.NewLine()
}

// Legend prints the glyph key.
func (pp *PrettyPrint) Legend(glyfs []glyph.Glyph) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	for _, g := range glyfs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)
}

func (pp *PrettyPrint) Profile(p *profile.Profile) {
	bold := pp.style(color.Bold)
	f := pp.style(color.Faint, color.Italic)

	orNone := func(v string) string {
		if v == "" {
			return f.Sprint("not set")
		}
		return v
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("user"), p.UserID)
	tbl.AddRow(bold.Sprint("email"), orNone(p.Email))
	tbl.AddRow(bold.Sprint("username"), orNone(p.Username))
	tbl.AddRow(bold.Sprint("picture"), orNone(p.Picture))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)
}

// Report prints a per-day summary.
func (pp *PrettyPrint) Report(r app.ReportResult, label string) {
	pp.Title(fmt.Sprintf("Report · last %s (%s → %s)", label, r.Since, r.Until))
	if r.Total == 0 {
		pp.none()
		return
	}
	f := pp.style(color.Faint)
	for _, section := range r.Sections {
		pp.NewLine()
		_, _ = fmt.Fprint(pp.Out, section.Date)
		if section.Tasks > 0 {
			_, _ = f.Fprintf(pp.Out, "  %d/%d tasks done", section.Completed, section.Tasks)
		}
		_, _ = fmt.Fprintln(pp.Out)
		for i, e := range section.Entries {
			pp.line(fmt.Sprintf("  %2d", i), e)
		}
	}
	pp.NewLine()
	_, _ = f.Fprintf(pp.Out, "%d entries, %d/%d tasks done\n", r.Total, r.Completed, r.Tasks)
}
