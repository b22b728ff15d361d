package app

import (
	"context"

	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/index"
)

// ReportSection groups the entries of one day.
type ReportSection struct {
	Date      entry.Day      `json:"date"`
	Entries   []*entry.Entry `json:"entries"`
	Tasks     int            `json:"tasks"`
	Completed int            `json:"completed"`
	Tags      index.Counts   `json:"tags"`
}

// ReportResult summarizes the journal between two days, inclusive.
type ReportResult struct {
	Since     entry.Day       `json:"since"`
	Until     entry.Day       `json:"until"`
	Sections  []ReportSection `json:"sections"`
	Total     int             `json:"total"`
	Tasks     int             `json:"tasks"`
	Completed int             `json:"completed"`
}

// Report returns the entries dated between since and until grouped by day,
// oldest day first, with task completion counts.
func (s *Service) Report(ctx context.Context, since, until entry.Day) (ReportResult, error) {
	if since > until {
		since, until = until, since
	}
	_, all, err := s.load(ctx)
	if err != nil {
		return ReportResult{}, err
	}

	result := ReportResult{Since: since, Until: until, Sections: []ReportSection{}}
	for _, day := range index.Dates(all) {
		if day < since || day > until {
			continue
		}
		section := ReportSection{Date: day, Entries: index.ByDate(all, day)}
		for _, e := range section.Entries {
			if !e.IsTask() {
				continue
			}
			section.Tasks++
			if e.Completed {
				section.Completed++
			}
		}
		section.Tags = index.HashtagCounts(section.Entries)
		result.Sections = append(result.Sections, section)
		result.Total += len(section.Entries)
		result.Tasks += section.Tasks
		result.Completed += section.Completed
	}
	return result, nil
}
