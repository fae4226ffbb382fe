// Package tags implements the genre tag editor used by book forms.
package tags

import (
	"regexp"
	"strings"
)

// Mode selects how the editor keeps its hidden form field.
type Mode int

const (
	// ModeAdd rewrites the hidden comma-joined field on every add and remove.
	ModeAdd Mode = iota
	// ModeEdit leaves the hidden field alone; submissions read the tag list.
	ModeEdit
)

var disallowedInput = regexp.MustCompile(`[^A-Za-zА-Яа-яЁё\s]`)

// Editor holds the tags of a multi-value field.
type Editor struct {
	mode   Mode
	tags   []string
	hidden string
}

// NewEditor returns an editor seeded with initial tags (deduplicated).
func NewEditor(mode Mode, initial ...string) *Editor {
	e := &Editor{mode: mode}
	for _, t := range initial {
		e.Add(t)
	}
	return e
}

// Add appends text as a tag. Blank text and case-insensitive duplicates are
// ignored. It reports whether a tag was added.
func (e *Editor) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || e.Has(text) {
		return false
	}
	e.tags = append(e.tags, text)
	e.sync()
	return true
}

// Remove detaches the tag matching text case-insensitively.
func (e *Editor) Remove(text string) bool {
	for i, t := range e.tags {
		if strings.EqualFold(t, strings.TrimSpace(text)) {
			e.tags = append(e.tags[:i], e.tags[i+1:]...)
			e.sync()
			return true
		}
	}
	return false
}

// Has reports whether text is already a tag, ignoring case.
func (e *Editor) Has(text string) bool {
	text = strings.TrimSpace(text)
	for _, t := range e.tags {
		if strings.EqualFold(t, text) {
			return true
		}
	}
	return false
}

// Tags returns a copy of the current tags in insertion order.
func (e *Editor) Tags() []string {
	out := make([]string, len(e.tags))
	copy(out, e.tags)
	return out
}

// Hidden returns the hidden field value. In ModeEdit it is never maintained.
func (e *Editor) Hidden() string {
	return e.hidden
}

// Submitted returns the genres a form submission would carry: the parsed
// hidden field in ModeAdd, the tag list itself in ModeEdit.
func (e *Editor) Submitted() []string {
	if e.mode == ModeEdit {
		return e.Tags()
	}
	return SplitHidden(e.hidden)
}

// Filter drops suggestions that are already present as tags.
func (e *Editor) Filter(suggestions []string) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if !e.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (e *Editor) sync() {
	if e.mode != ModeAdd {
		return
	}
	e.hidden = strings.Join(e.tags, ",")
}

// SanitizeInput removes everything but letters and whitespace from genre input.
func SanitizeInput(text string) string {
	return disallowedInput.ReplaceAllString(text, "")
}

// SplitHidden parses a comma-joined hidden field, dropping blank entries.
func SplitHidden(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
