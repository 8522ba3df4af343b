package config

import (
	"VoxRace/models"
	"VoxRace/services/catalog"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// LoadCatalog builds the song catalog from the first source that has songs:
// the songs table, CATALOG_PATH, then the embedded default. db may be nil.
func LoadCatalog(cfg Config, db *gorm.DB) (*catalog.MemoryCatalog, error) {
	songs, source, err := loadSongs(cfg, db)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(songs, cfg.AudioBaseURL)
	if err != nil {
		return nil, fmt.Errorf("error building catalog from %s: %w", source, err)
	}
	log.Printf("[CATALOG] Loaded %d songs from %s (categories: %v)", c.Len(), source, c.Categories())
	return c, nil
}

func loadSongs(cfg Config, db *gorm.DB) ([]models.Song, string, error) {
	if db != nil {
		songs, err := catalog.LoadFromDB(db)
		if err != nil {
			log.Printf("[CATALOG-ERROR] Falling back from Postgres: %v", err)
		} else if len(songs) > 0 {
			return songs, "postgres", nil
		} else if cfg.MigratePostgres {
			defaults, err := catalog.Default()
			if err != nil {
				return nil, "", err
			}
			if _, err := catalog.SeedDB(db, defaults); err != nil {
				log.Printf("[CATALOG-ERROR] Could not seed songs table: %v", err)
			}
			return defaults, "embedded default (seeded to postgres)", nil
		}
	}

	if cfg.CatalogPath != "" {
		songs, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, "", err
		}
		return songs, cfg.CatalogPath, nil
	}

	songs, err := catalog.Default()
	if err != nil {
		return nil, "", err
	}
	return songs, "embedded default", nil
}
