package models

import "time"

type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time

	VideoGames []VideoGame `gorm:"many2many:video_game_categories" json:"videoGames,omitempty"`
}
