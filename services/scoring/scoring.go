package scoring

import (
	game_constants "VoxRace/constants/game"
	"math"
	"strings"
	"time"
)

// Score returns the points for a correct answer given elapsed since the
// authoritative song start. Negative elapsed (answer before the clip started
// on the client) counts as zero.
func Score(elapsed time.Duration) int {
	seconds := elapsed.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	points := int(math.Floor(float64(game_constants.MAX_SCORE) - seconds*game_constants.DECAY_PER_SECOND))
	if points < game_constants.FLOOR_SCORE {
		return game_constants.FLOOR_SCORE
	}
	return points
}

// NormalizeAnswer lower-cases and trims an answer phrase
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// IsCorrect reports whether the submitted text contains the correct phrase.
// Substring match on purpose: "the pokemon theme song" is a hit for "pokemon".
// It also means "xpokemonx" is a hit; known looseness.
func IsCorrect(submitted, correctAnswer string) bool {
	want := NormalizeAnswer(correctAnswer)
	if want == "" {
		return false
	}
	return strings.Contains(NormalizeAnswer(submitted), want)
}
