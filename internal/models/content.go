// internal/models/content.go
package models

import "time"

// Stat is a flat key/value counter shown on the landing page.
// Populated only by seed data.
type Stat struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Value int    `json:"value" gorm:"not null"`
	Label string `json:"label" gorm:"size:255;not null"`
}

// Article is a presentational content entity (news, guides). Seed-only.
type Article struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Excerpt     string    `json:"excerpt" gorm:"type:text"`
	Type        string    `json:"type" gorm:"size:50;index"`
	ImageURL    string    `json:"imageUrl" gorm:"size:512"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Event is a presentational industry-event entity. Seed-only.
type Event struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"size:255;not null"`
	Location string    `json:"location" gorm:"size:255"`
	URL      string    `json:"url" gorm:"size:512"`
	StartsAt time.Time `json:"startsAt"`
}
