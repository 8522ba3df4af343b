package catalog

import (
	game_constants "VoxRace/constants/game"
	"VoxRace/models"
	"VoxRace/services/scoring"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var ErrEmptyCatalog = errors.New("catalog has no songs")

// Catalog is the process-wide, read-only song list
type Catalog interface {
	// Pick draws one song uniformly at random. Draws are independent, so
	// repeats within a game are possible.
	Pick(category string) (models.Song, bool)
	Categories() []string
	Len() int
}

// MemoryCatalog is safe for concurrent reads; it never changes after New
type MemoryCatalog struct {
	songs      []models.Song
	byCategory map[string][]models.Song
	intn       func(n int) int
}

// New validates and normalizes songs. Relative audio urls are resolved
// against audioBaseURL when one is given.
func New(songs []models.Song, audioBaseURL string) (*MemoryCatalog, error) {
	if len(songs) == 0 {
		return nil, ErrEmptyCatalog
	}

	var base *url.URL
	if audioBaseURL != "" {
		parsed, err := url.Parse(audioBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid audio base url %q: %w", audioBaseURL, err)
		}
		base = parsed
	}

	c := &MemoryCatalog{
		byCategory: make(map[string][]models.Song),
		intn:       rand.IntN,
	}
	for i, song := range songs {
		song.CorrectAnswer = scoring.NormalizeAnswer(song.CorrectAnswer)
		song.Category = strings.TrimSpace(song.Category)
		if song.CorrectAnswer == "" {
			return nil, fmt.Errorf("song %d (%s): empty correct answer", i, song.Title)
		}
		if strings.TrimSpace(song.AudioURL) == "" {
			return nil, fmt.Errorf("song %d (%s): empty audio url", i, song.Title)
		}
		if song.ID == "" {
			song.ID = fmt.Sprintf("song-%d", i+1)
		}
		if base != nil {
			resolved, err := resolve(base, song.AudioURL)
			if err != nil {
				return nil, fmt.Errorf("song %d (%s): %w", i, song.Title, err)
			}
			song.AudioURL = resolved
		}
		c.songs = append(c.songs, song)
		key := categoryKey(song.Category)
		c.byCategory[key] = append(c.byCategory[key], song)
	}
	return c, nil
}

func resolve(base *url.URL, audioURL string) (string, error) {
	ref, err := url.Parse(audioURL)
	if err != nil {
		return "", fmt.Errorf("invalid audio url %q: %w", audioURL, err)
	}
	if ref.IsAbs() {
		return audioURL, nil
	}
	return base.ResolveReference(ref).String(), nil
}

func categoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// WithRand swaps the random source, for tests
func (c *MemoryCatalog) WithRand(intn func(n int) int) *MemoryCatalog {
	c.intn = intn
	return c
}

// Pick draws from the category, or from every song for "Mixed", an empty
// category or a category without songs.
func (c *MemoryCatalog) Pick(category string) (models.Song, bool) {
	pool := c.songs
	key := categoryKey(category)
	if key != "" && key != categoryKey(game_constants.DEFAULT_CATEGORY) {
		if songs, ok := c.byCategory[key]; ok && len(songs) > 0 {
			pool = songs
		}
	}
	if len(pool) == 0 {
		return models.Song{}, false
	}
	return pool[c.intn(len(pool))], true
}

// Categories lists the distinct categories present, sorted
func (c *MemoryCatalog) Categories() []string {
	names := lo.Uniq(lo.FilterMap(c.songs, func(s models.Song, _ int) (string, bool) {
		return s.Category, s.Category != ""
	}))
	sort.Strings(names)
	return names
}

func (c *MemoryCatalog) Len() int {
	return len(c.songs)
}

// Songs returns a copy of every song
func (c *MemoryCatalog) Songs() []models.Song {
	out := make([]models.Song, len(c.songs))
	copy(out, c.songs)
	return out
}
