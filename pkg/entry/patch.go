package entry

import "strings"

// Patch carries the editable fields of an entry. Nil fields are left
// untouched. Identity fields (id, type, date, user, creation time) are not
// patchable.
type Patch struct {
	Title    *string `json:"title,omitempty"`
	Text     *string `json:"text,omitempty"`
	ImageURI *string `json:"imageUri,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Text == nil && p.ImageURI == nil
}

// Validate checks the patch without applying it.
func (p Patch) Validate() error {
	if p.Title != nil {
		if _, err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into e. Editing the text re-derives the hashtags.
func (e *Entry) Apply(p Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Title != nil {
		e.Title, _ = ValidateTitle(*p.Title)
	}
	if p.Text != nil {
		e.Text = strings.TrimSpace(*p.Text)
		e.Hashtags = ExtractHashtags(e.Text)
	}
	if p.ImageURI != nil {
		e.ImageURI = strings.TrimSpace(*p.ImageURI)
	}
	return nil
}

// String is a convenience for building patches.
func String(s string) *string {
	return &s
}
