package postgres

import (
	"VoxRace/models"
	"time"
)

/*
 * 'Song' is a catalog row. The catalog is read once at startup, so rows are
 * never updated while the server runs.
 */
type Song struct {
	ID            string    `gorm:"primaryKey;size:64;not null"`
	Title         string    `gorm:"size:200;not null"`
	Artist        string    `gorm:"size:200"`
	AudioURL      string    `gorm:"size:500;not null"`
	CorrectAnswer string    `gorm:"size:200;not null"`
	Category      string    `gorm:"size:40;index:idx_songs_category"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (s Song) ToModel() models.Song {
	return models.Song{
		ID:            s.ID,
		Title:         s.Title,
		Artist:        s.Artist,
		AudioURL:      s.AudioURL,
		CorrectAnswer: s.CorrectAnswer,
		Category:      s.Category,
	}
}

func SongFromModel(s models.Song) Song {
	return Song{
		ID:            s.ID,
		Title:         s.Title,
		Artist:        s.Artist,
		AudioURL:      s.AudioURL,
		CorrectAnswer: s.CorrectAnswer,
		Category:      s.Category,
	}
}
