package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/plannow/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing then, highlighting the days that
// have entries and underlining selected.
func (pp *PrettyPrint) Calendar(then time.Time, selected entry.Day, marked ...entry.Day) {
	days := DaysIn(then)
	count := make([]int, days)
	for _, d := range marked {
		t, err := d.Time()
		if err != nil || t.Year() != then.Year() || t.Month() != then.Month() {
			continue
		}
		count[t.Day()-1]++
	}
	pp.PrintMonthCount(then, selected, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, selected entry.Day, count []int) {
	d := StartDay(then)

	tf := pp.style(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", max(mid, 0)), m)
	_, _ = pp.style(color.Faint).Fprintln(pp.Out, "Su Mo Tu We Th Fr Sa")

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.Out, "   ")
	}

	l1 := pp.style(color.Faint, color.FgWhite)
	l2 := pp.style(color.Bold, color.FgHiWhite)
	sel := pp.style(color.Bold, color.Underline)

	for i := 0; i < days; i++ {
		day := entry.DayOf(time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, time.UTC))
		switch {
		case day == selected:
			_, _ = sel.Fprintf(pp.Out, "%2d", i+1)
		case i < len(count) && count[i] > 0:
			_, _ = l2.Fprintf(pp.Out, "%2d", i+1)
		default:
			_, _ = l1.Fprintf(pp.Out, "%2d", i+1)
		}
		// Without color there is nothing else to tell marked days apart.
		if pp.NoColor && i < len(count) && count[i] > 0 {
			_, _ = fmt.Fprint(pp.Out, "*")
		} else {
			_, _ = fmt.Fprint(pp.Out, " ")
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.Out, "\n")
		}
	}
	_, _ = fmt.Fprint(pp.Out, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
