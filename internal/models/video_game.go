package models

import "time"

// ReleaseDateFormat is the calendar-date layout used on the wire.
const ReleaseDateFormat = "2006-01-02"

type VideoGame struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	ReleaseDate time.Time `gorm:"type:date;not null" json:"releaseDate"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	CoverImage  *string   `gorm:"type:varchar(255)" json:"cover_image,omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EditorID   uint       `gorm:"not null;index" json:"-"`
	Editor     Editor     `gorm:"foreignKey:EditorID;constraint:OnDelete:CASCADE" json:"editor"`
	Categories []Category `gorm:"many2many:video_game_categories" json:"categories"`
}
