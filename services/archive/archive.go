package archive

import (
	"VoxRace/models"
	"VoxRace/models/postgres"
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

const defaultLimit = 20

// Archive keeps every finished game in Postgres. It is a game.ResultSink.
type Archive struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Archive {
	return &Archive{db: db}
}

func (a *Archive) SaveResult(ctx context.Context, result models.GameResult) error {
	row, err := postgres.GameResultFromModel(result)
	if err != nil {
		return err
	}
	if err := a.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("error archiving result of room %s: %w", result.RoomCode, err)
	}
	log.Printf("[ARCHIVE] Result %s of room %s archived", row.ID, row.RoomCode)
	return nil
}

// Recent returns the latest games, optionally only those of one room
func (a *Archive) Recent(ctx context.Context, roomCode string, limit int) ([]models.GameResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	query := a.db.WithContext(ctx).Order("finished_at DESC").Limit(limit)
	if roomCode != "" {
		query = query.Where("room_code = ?", strings.ToUpper(roomCode))
	}

	var rows []postgres.GameResult
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error listing game results: %w", err)
	}
	results := make([]models.GameResult, 0, len(rows))
	for _, row := range rows {
		result, err := row.ToModel()
		if err != nil {
			log.Printf("[ARCHIVE-ERROR] Skipping result %s: %v", row.ID, err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
