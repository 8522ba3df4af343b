package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"instant answer", 0, 1000},
		{"answer before start", -3 * time.Second, 1000},
		{"one second", seconds(1), 950},
		{"two seconds", seconds(2.0), 900},
		{"fraction rounds down", seconds(2.01), 899},
		{"ten seconds", seconds(10), 500},
		{"exactly at floor", seconds(18), 100},
		{"past floor", seconds(19), 100},
		{"way past floor", time.Minute, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.elapsed))
		})
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	assert.Greater(t, Score(seconds(1)), Score(seconds(10)))
	assert.Greater(t, Score(seconds(10)), Score(seconds(19)))

	prev := Score(0)
	for ms := 0; ms <= 30000; ms += 250 {
		cur := Score(time.Duration(ms) * time.Millisecond)
		assert.LessOrEqual(t, cur, prev, "score went up at %dms", ms)
		assert.GreaterOrEqual(t, cur, 100)
		prev = cur
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact", "pokemon", "pokemon", true},
		{"extra words", "the pokemon theme song", "pokemon", true},
		{"case and spaces", "  PoKeMoN  ", "pokemon", true},
		{"correct answer not normalized", "pokemon", " Pokemon ", true},
		{"substring of unrelated text", "xpokemonx", "pokemon", true},
		{"wrong", "digimon", "pokemon", false},
		{"partial", "poke", "pokemon", false},
		{"empty submission", "", "pokemon", false},
		{"empty correct answer never matches", "anything", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(tt.submitted, tt.correct))
		})
	}
}
