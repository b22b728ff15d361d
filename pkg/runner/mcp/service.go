// Package mcp provides the Model Context Protocol server integration for plannow.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/entry"
	"tableflip.dev/plannow/pkg/glyph"
	"tableflip.dev/plannow/pkg/index"
)

// Service adapts app.Service to the shapes exposed over MCP.
type Service struct {
	App *app.Service
}

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Date     string
	Title    string
	Text     string
	Type     string
	ImageURI string
}

// EditEntryOptions carries the fields to replace; nil fields are kept.
type EditEntryOptions struct {
	ID       string
	Title    *string
	Text     *string
	ImageURI *string
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Text          string   `json:"text,omitempty"`
	Hashtags      []string `json:"hashtags"`
	Date          string   `json:"date"`
	ImageURI      string   `json:"imageUri,omitempty"`
	Completed     bool     `json:"completed"`
	Created       string   `json:"created"`
	Position      int      `json:"position"`
	BulletSymbol  string   `json:"bulletSymbol"`
	BulletMeaning string   `json:"bulletMeaning"`
}

// DaySummary lists a day's entries with the hashtags used that day.
type DaySummary struct {
	Date     string       `json:"date"`
	Count    int          `json:"count"`
	Entries  []EntryDTO   `json:"entries"`
	Hashtags index.Counts `json:"hashtags"`
}

// NewService builds a service wrapper around the application service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) app() (*app.Service, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	return s.App, nil
}

func parseDay(raw string) (entry.Day, error) {
	if strings.TrimSpace(raw) == "" {
		return entry.Today(), nil
	}
	return entry.ParseDay(raw)
}

// AddEntry creates an entry; the date defaults to today and the type to a
// plain entry.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	day, err := parseDay(opts.Date)
	if err != nil {
		return nil, err
	}
	typ, err := entry.ParseType(opts.Type)
	if err != nil {
		return nil, err
	}
	e, err := a.Add(ctx, app.AddRequest{
		Date:     day,
		Title:    opts.Title,
		Text:     opts.Text,
		Type:     typ,
		ImageURI: opts.ImageURI,
	})
	if err != nil {
		return nil, err
	}
	return s.dto(ctx, e)
}

// ListEntries returns the entries of a day in stored order.
func (s *Service) ListEntries(ctx context.Context, date string) (*DaySummary, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}
	entries, err := a.Day(ctx, day)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for i, e := range entries {
		out = append(out, toDTO(e, i))
	}
	return &DaySummary{
		Date:     day.String(),
		Count:    len(out),
		Entries:  out,
		Hashtags: index.HashtagCounts(entries),
	}, nil
}

// EntryByID returns a single entry.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Entry(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	return s.dto(ctx, e)
}

// EditEntry replaces the given fields of an entry.
func (s *Service) EditEntry(ctx context.Context, opts EditEntryOptions) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	patch := entry.Patch{Title: opts.Title, Text: opts.Text, ImageURI: opts.ImageURI}
	if patch.Empty() {
		return nil, errors.New("nothing to edit: provide title, text or imageUri")
	}
	e, err := a.Edit(ctx, strings.TrimSpace(opts.ID), patch)
	if err != nil {
		return nil, err
	}
	return s.dto(ctx, e)
}

// ToggleTask flips the completion of a task.
func (s *Service) ToggleTask(ctx context.Context, id string) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	e, err := a.Toggle(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	return s.dto(ctx, e)
}

// DeleteEntry removes an entry by id, or by position within date when id is
// empty.
func (s *Service) DeleteEntry(ctx context.Context, id, date string, position int) (*EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	var removed *entry.Entry
	if id = strings.TrimSpace(id); id != "" {
		removed, err = a.DeleteByID(ctx, id)
	} else {
		if strings.TrimSpace(date) == "" {
			return nil, errors.New("either id or date and position are required")
		}
		day, perr := entry.ParseDay(date)
		if perr != nil {
			return nil, perr
		}
		removed, err = a.Delete(ctx, day, position)
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(removed, -1)
	return &dto, nil
}

// Hashtags returns usage counts, for one day when date is set.
func (s *Service) Hashtags(ctx context.Context, date string) (index.Counts, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(date) == "" {
		return a.TagCounts(ctx)
	}
	day, err := entry.ParseDay(date)
	if err != nil {
		return nil, err
	}
	entries, err := a.Day(ctx, day)
	if err != nil {
		return nil, err
	}
	return index.HashtagCounts(entries), nil
}

// EntriesByHashtag lists entries carrying tag, with or without the '#'.
func (s *Service) EntriesByHashtag(ctx context.Context, tag string) ([]EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tag) == "" {
		return nil, errors.New("hashtag is required")
	}
	entries, err := a.Tag(ctx, tag)
	if err != nil {
		return nil, err
	}
	all, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e, position(all, e)))
	}
	return out, nil
}

// SearchEntries does a case-insensitive substring match over titles and
// text, newest day first.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, errors.New("query is required")
	}
	if limit <= 0 {
		limit = 20
	}
	all, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		e := all[i]
		if strings.Contains(strings.ToLower(e.Title), query) || strings.Contains(strings.ToLower(e.Text), query) {
			out = append(out, toDTO(e, position(all, e)))
		}
	}
	return out, nil
}

// Dates lists the days that have entries.
func (s *Service) Dates(ctx context.Context) ([]entry.Day, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	return a.Dates(ctx)
}

func (s *Service) dto(ctx context.Context, e *entry.Entry) (*EntryDTO, error) {
	all, err := s.App.All(ctx)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, position(all, e))
	return &dto, nil
}

// position is e's index among the entries of its day, -1 when absent.
func position(all []*entry.Entry, e *entry.Entry) int {
	for i, d := range index.ByDate(all, e.Date) {
		if d.ID == e.ID {
			return i
		}
	}
	return -1
}

func toDTO(e *entry.Entry, pos int) EntryDTO {
	g := glyph.For(e).Glyph()
	hashtags := e.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return EntryDTO{
		ID:            e.ID,
		Type:          string(e.Type),
		Title:         e.Title,
		Text:          e.Text,
		Hashtags:      hashtags,
		Date:          e.Date.String(),
		ImageURI:      e.ImageURI,
		Completed:     e.Completed,
		Created:       e.CreatedAt.String(),
		Position:      pos,
		BulletSymbol:  g.Symbol,
		BulletMeaning: g.Meaning,
	}
}
