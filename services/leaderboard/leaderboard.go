package leaderboard

import (
	"VoxRace/models"
	"slices"

	"github.com/samber/lo"
)

// Project builds the standings of a room: score descending, ties keep join
// order. Computed from the room on every call, never cached.
func Project(room *models.Room) []models.Standing {
	standings := lo.Map(room.Players, func(p *models.Player, _ int) models.Standing {
		return models.Standing{ID: p.ID, Name: p.Name, Score: room.Scores[p.ID]}
	})
	slices.SortStableFunc(standings, func(a, b models.Standing) int {
		return b.Score - a.Score
	})
	return standings
}

// Leaders returns every player sharing the top score. Nobody leads when
// nobody scored.
func Leaders(standings []models.Standing) []models.Standing {
	if len(standings) == 0 || standings[0].Score == 0 {
		return []models.Standing{}
	}
	top := standings[0].Score
	return lo.Filter(standings, func(s models.Standing, _ int) bool {
		return s.Score == top
	})
}
