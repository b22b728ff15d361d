// Package glyph holds the symbols used to print entries in a terminal.
package glyph

import (
	"fmt"

	"tableflip.dev/plannow/pkg/entry"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

type Bullet int

const (
	Note Bullet = iota
	Task
	Completed
	Image
	Hashtag
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		Note: {
			Key:     "entry",
			Symbol:  "⁃",
			Meaning: "note",
		},
		Task: {
			Key:     "task",
			Symbol:  "●",
			Meaning: "open task",
		},
		Completed: {
			Key:     "x",
			Symbol:  "✘",
			Meaning: "completed task",
		},
		Image: {
			Key:     "image",
			Symbol:  "◰",
			Meaning: "has an attached image",
		},
		Hashtag: {
			Key:     "#",
			Symbol:  "#",
			Meaning: "hashtag, written inline in the text",
		},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

// For picks the bullet an entry is printed with.
func For(e *entry.Entry) Bullet {
	switch {
	case e == nil || !e.IsTask():
		return Note
	case e.Completed:
		return Completed
	default:
		return Task
	}
}
