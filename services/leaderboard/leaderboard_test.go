package leaderboard

import (
	"VoxRace/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomWith(scores map[string]int, ids ...string) *models.Room {
	room := models.NewRoom("ABC123", models.RoomSettings{TotalRounds: 1, TimePerSong: 15}, time.Now())
	for _, id := range ids {
		room.Players = append(room.Players, &models.Player{ID: id, Name: "name-" + id})
	}
	for id, s := range scores {
		room.Scores[id] = s
	}
	return room
}

func ids(standings []models.Standing) []string {
	out := make([]string, 0, len(standings))
	for _, s := range standings {
		out = append(out, s.ID)
	}
	return out
}

func TestProject(t *testing.T) {
	t.Run("sorts by score descending", func(t *testing.T) {
		room := roomWith(map[string]int{"a": 100, "b": 900, "c": 500}, "a", "b", "c")
		got := Project(room)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
		assert.Equal(t, 900, got[0].Score)
		assert.Equal(t, "name-b", got[0].Name)
	})

	t.Run("ties keep join order across projections", func(t *testing.T) {
		room := roomWith(map[string]int{"a": 300, "b": 500, "c": 300, "d": 300}, "a", "b", "c", "d")
		for i := 0; i < 10; i++ {
			assert.Equal(t, []string{"b", "a", "c", "d"}, ids(Project(room)))
		}
	})

	t.Run("players without a score entry show zero", func(t *testing.T) {
		room := roomWith(nil, "a", "b")
		got := Project(room)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"a", "b"}, ids(got))
		assert.Equal(t, 0, got[1].Score)
	})

	t.Run("reflects the room at call time", func(t *testing.T) {
		room := roomWith(map[string]int{"a": 0, "b": 0}, "a", "b")
		assert.Equal(t, []string{"a", "b"}, ids(Project(room)))
		room.Scores["b"] = 50
		assert.Equal(t, []string{"b", "a"}, ids(Project(room)))
		room.Players = room.Players[:1]
		assert.Equal(t, []string{"a"}, ids(Project(room)))
	})

	t.Run("empty room", func(t *testing.T) {
		assert.Empty(t, Project(roomWith(nil)))
	})
}

func TestLeaders(t *testing.T) {
	room := roomWith(map[string]int{"a": 700, "b": 700, "c": 100}, "a", "b", "c")
	assert.Equal(t, []string{"a", "b"}, ids(Leaders(Project(room))))
	assert.Empty(t, Leaders(nil))

	scoreless := roomWith(map[string]int{}, "a", "b")
	assert.Empty(t, Leaders(Project(scoreless)))
}
