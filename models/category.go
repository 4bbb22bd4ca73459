package models

import (
	"time"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"not null;size:200;index"`
	Slug        string    `json:"slug" gorm:"not null;index"`
	Description string    `json:"description" gorm:"size:200"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
