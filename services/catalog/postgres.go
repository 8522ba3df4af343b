package catalog

import (
	"VoxRace/models"
	"VoxRace/models/postgres"
	"fmt"
	"log"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadFromDB reads every song row, ordered by id
func LoadFromDB(db *gorm.DB) ([]models.Song, error) {
	var rows []postgres.Song
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error loading songs: %w", err)
	}
	return lo.Map(rows, func(row postgres.Song, _ int) models.Song {
		return row.ToModel()
	}), nil
}

// SeedDB inserts songs whose id is not present yet. Returns how many were
// inserted.
func SeedDB(db *gorm.DB, songs []models.Song) (int64, error) {
	if len(songs) == 0 {
		return 0, nil
	}
	rows := lo.Map(songs, func(s models.Song, _ int) postgres.Song {
		return postgres.SongFromModel(s)
	})
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("error seeding songs: %w", result.Error)
	}
	log.Printf("[CATALOG-SEED] Inserted %d of %d songs", result.RowsAffected, len(songs))
	return result.RowsAffected, nil
}
