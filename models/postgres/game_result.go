package postgres

import (
	"VoxRace/models"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameResult' archives the final leaderboard of a finished game. It is a
 * write-only history; rooms are never rebuilt from it.
 */
type GameResult struct {
	ID          string         `gorm:"primaryKey;size:50;not null"`
	RoomCode    string         `gorm:"size:16;not null;index:idx_game_results_room"`
	Category    string         `gorm:"size:40"`
	TotalRounds int            `gorm:"default:1"`
	SongsPlayed int            `gorm:"default:0"`
	WinnerName  string         `gorm:"size:50"`
	TopScore    int            `gorm:"default:0"`
	Standings   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	StartedAt   time.Time
	FinishedAt  time.Time `gorm:"index:idx_game_results_finished"`
}

func GameResultFromModel(r models.GameResult) (GameResult, error) {
	standings, err := json.Marshal(r.Standings)
	if err != nil {
		return GameResult{}, fmt.Errorf("error marshaling standings: %v", err)
	}
	row := GameResult{
		ID:          r.ID,
		RoomCode:    r.RoomCode,
		Category:    r.Category,
		TotalRounds: r.TotalRounds,
		SongsPlayed: r.SongsPlayed,
		Standings:   datatypes.JSON(standings),
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}
	if len(r.Standings) > 0 {
		row.WinnerName = r.Standings[0].Name
		row.TopScore = r.Standings[0].Score
	}
	return row, nil
}

func (g GameResult) ToModel() (models.GameResult, error) {
	var standings []models.Standing
	if len(g.Standings) > 0 {
		if err := json.Unmarshal(g.Standings, &standings); err != nil {
			return models.GameResult{}, fmt.Errorf("error unmarshaling standings: %v", err)
		}
	}
	return models.GameResult{
		ID:          g.ID,
		RoomCode:    g.RoomCode,
		Category:    g.Category,
		TotalRounds: g.TotalRounds,
		SongsPlayed: g.SongsPlayed,
		Standings:   standings,
		StartedAt:   g.StartedAt,
		FinishedAt:  g.FinishedAt,
	}, nil
}
