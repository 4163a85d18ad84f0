// Package export renders a user's wellness data as a plain-text
// document suitable for download. It is a pure formatter: all querying
// happens in the calling service.
package export

import (
	"fmt"
	"strings"
	"time"
)

type Profile struct {
	Name     string
	Email    string
	Bio      string
	Location string
	JoinedAt time.Time
}

type MoodLog struct {
	Date  time.Time
	Emoji string
	Note  string
}

type DiaryEntry struct {
	CreatedAt time.Time
	Title     string
	Content   string
	Mood      string
	WordCount int
}

type Summary struct {
	CreatedAt time.Time
	Period    string
	Text      string
}

// Document is everything that goes into one export.
type Document struct {
	Profile     Profile
	MoodLogs    []MoodLog
	Diary       []DiaryEntry
	Summaries   []Summary
	GeneratedAt time.Time
}

const divider = "----------------------------------------"

// Render produces the export as plain text. Sections with no rows are
// rendered with an explicit "none" line so the document always shows
// what was looked at.
func (d Document) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "MINDWELL DATA EXPORT\nGenerated: %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04 MST"))

	b.WriteString("PROFILE\n" + divider + "\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", d.Profile.Name, d.Profile.Email)
	if d.Profile.Bio != "" {
		fmt.Fprintf(&b, "Bio: %s\n", d.Profile.Bio)
	}
	if d.Profile.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", d.Profile.Location)
	}
	fmt.Fprintf(&b, "Member since: %s\n\n", d.Profile.JoinedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "MOOD LOGS (%d)\n%s\n", len(d.MoodLogs), divider)
	if len(d.MoodLogs) == 0 {
		b.WriteString("No mood logs recorded.\n")
	}
	for _, m := range d.MoodLogs {
		fmt.Fprintf(&b, "%s  %s", m.Date.Format("2006-01-02"), m.Emoji)
		if m.Note != "" {
			fmt.Fprintf(&b, "  %s", m.Note)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "DIARY ENTRIES (%d)\n%s\n", len(d.Diary), divider)
	if len(d.Diary) == 0 {
		b.WriteString("No diary entries recorded.\n")
	}
	for i, e := range d.Diary {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] %s", e.CreatedAt.Format("2006-01-02"), e.Title)
		if e.Mood != "" {
			fmt.Fprintf(&b, " (mood: %s)", e.Mood)
		}
		fmt.Fprintf(&b, "\n%s\n(%d words)\n", e.Content, e.WordCount)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "AI SUMMARIES (%d)\n%s\n", len(d.Summaries), divider)
	if len(d.Summaries) == 0 {
		b.WriteString("No summaries generated.\n")
	}
	for i, s := range d.Summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] period %s\n%s\n", s.CreatedAt.Format("2006-01-02"), s.Period, s.Text)
	}

	return b.String()
}

// Filename derives the attachment name for an export generated at the
// given time.
func Filename(generatedAt time.Time) string {
	return fmt.Sprintf("mindwell-export-%s.txt", generatedAt.Format("2006-01-02"))
}
