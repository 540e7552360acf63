// ABOUTME: Note model and the reserved tag vocabulary for synthesized notes.
// ABOUTME: NoteKind classifies notes by their tags without a separate table.
package models

import "time"

// Reserved tags used to mark notes synthesized by the engines. Consumers
// that query notes by tag depend on these exact strings.
const (
	TagRecap        = "recap"
	TagBriefing     = "daily-briefing"
	TagConversation = "conversation"
	TagDailySummary = "daily-summary"
	TagStartDay     = "start-day"
)

// DateTag returns the date marker tag for a YYYY-MM-DD date.
func DateTag(date string) string {
	return "date-" + date
}

// NoteKind discriminates user notes from engine-synthesized ones.
type NoteKind string

const (
	KindUser         NoteKind = "user"
	KindBriefing     NoteKind = "briefing"
	KindRecap        NoteKind = "recap"
	KindConversation NoteKind = "conversation"
)

// Note is a free-form text entry. Tags double as the storage-level type
// marker for briefings, recaps, and remembered conversations.
type Note struct {
	ID        int64
	Text      string
	Tags      []string
	CreatedAt time.Time
}

// NewNote creates a Note with the current timestamp.
func NewNote(text string, tags []string) *Note {
	return &Note{
		Text:      text,
		Tags:      tags,
		CreatedAt: time.Now(),
	}
}

// HasTag reports whether the note carries the given tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Kind classifies the note by its reserved tags. Recap wins over
// conversation so a recap of a chatty day stays a recap.
func (n *Note) Kind() NoteKind {
	switch {
	case n.HasTag(TagRecap):
		return KindRecap
	case n.HasTag(TagBriefing):
		return KindBriefing
	case n.HasTag(TagConversation):
		return KindConversation
	default:
		return KindUser
	}
}
