package catalog

import (
	"VoxRace/models"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/songs.json
var defaultSongs []byte

// Default returns the songs shipped with the binary
func Default() ([]models.Song, error) {
	return parse(defaultSongs)
}

// LoadFile reads a JSON array of songs
func LoadFile(path string) ([]models.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) ([]models.Song, error) {
	var songs []models.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("error unmarshaling catalog: %w", err)
	}
	return songs, nil
}
