package models

import (
	"time"
)

type NavigationType string

const (
	NavigationInternal NavigationType = "internal"
	NavigationExternal NavigationType = "external"
	NavigationCategory NavigationType = "category"
)

type NavigationEntry struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Title     string         `json:"title" gorm:"not null"`
	Path      string         `json:"path" gorm:"not null"`
	Type      NavigationType `json:"type" gorm:"default:'internal'"`
	Order     int            `json:"order" gorm:"column:sort_order;default:0"`
	Enabled   bool           `json:"enabled" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (NavigationEntry) TableName() string {
	return "navigation"
}
