package models

import (
	"time"
)

// DefaultAuthor is used when an article is created without an author name.
const DefaultAuthor = "Anonymous"

type Article struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"not null;size:200"`
	Excerpt    string    `json:"excerpt" gorm:"size:500"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Category   string    `json:"category" gorm:"index:idx_articles_listing,priority:1"`
	Tags       []string  `json:"tags" gorm:"serializer:json"`
	CoverImage string    `json:"cover_image"`
	Published  bool      `json:"published" gorm:"default:false;index:idx_articles_listing,priority:2"`
	Views      int64     `json:"views" gorm:"default:0"`
	Author     string    `json:"author" gorm:"default:'Anonymous'"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_articles_listing,priority:3"`
	UpdatedAt  time.Time `json:"updated_at"`
}
