package specification

import (
	"time"

	"gorm.io/gorm"
)

// OnDate matches the calendar-day column of a mood log.
// Used as the one-entry-per-day probe.
type OnDate struct {
	Date time.Time
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date.Format("2006-01-02"))
}

// DateOnOrAfter bounds mood logs to a summary window.
type DateOnOrAfter struct {
	Start time.Time
}

func (s DateOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.Start.Format("2006-01-02"))
}

// CreatedOnOrAfter bounds timestamped rows to a summary window.
type CreatedOnOrAfter struct {
	Start time.Time
}

func (s CreatedOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Start)
}

// BySender filters chat messages by who wrote them ("user" or "ai").
type BySender struct {
	Sender string
}

func (s BySender) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender = ?", s.Sender)
}
