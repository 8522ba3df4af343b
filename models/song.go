package models

import "time"

// Song is an immutable catalog entry. CorrectAnswer is stored normalized
// (trimmed, lower-case).
type Song struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	AudioURL      string `json:"audioUrl"`
	CorrectAnswer string `json:"correctAnswer"`
	Category      string `json:"category"`
}

// GameResult is the final outcome of one game in a room
type GameResult struct {
	ID          string     `json:"id"`
	RoomCode    string     `json:"roomCode"`
	Category    string     `json:"category"`
	TotalRounds int        `json:"rounds"`
	SongsPlayed int        `json:"songsPlayed"`
	Standings   []Standing `json:"leaderboard"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  time.Time  `json:"finishedAt"`
}
