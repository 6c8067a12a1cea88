// Package models contains database model definitions.
package models

import "time"

// ContentSection represents one editable section of the marketing site
// (hero, about, testimonials, ...). Value holds the section payload as an
// opaque JSON document; the server stores and returns it without looking
// inside.
type ContentSection struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"unique;size:100;not null"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}
