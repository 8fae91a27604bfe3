package models

import "time"

// Editor is a game publisher. Its video games are owned records: deleting an
// editor cascades to them at the database level.
type Editor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Country   string `gorm:"type:varchar(255);not null" json:"country"`
	CreatedAt time.Time
	UpdatedAt time.Time

	VideoGames []VideoGame `gorm:"foreignKey:EditorID" json:"videoGames,omitempty"`
}
