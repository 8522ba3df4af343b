package broadcast

import "VoxRace/models"

// Client -> server
const (
	EventCreateRoom   = "createRoom"
	EventJoinRoom     = "joinRoom"
	EventLeaveRoom    = "leaveRoom"
	EventStartGame    = "start-game"
	EventSubmitAnswer = "submit-answer"
	EventGetRoom      = "get-room"
)

// Server -> room
const (
	EventRoomUpdated       = "roomUpdated"
	EventPlayerJoined      = "playerJoined"
	EventPlayerLeft        = "player-left"
	EventHostChanged       = "host-changed"
	EventGameStarted       = "game-started"
	EventNewRound          = "new-round"
	EventRoundResult       = "round-result"
	EventRoundEnd          = "round-end"
	EventCountdown         = "countdown"
	EventLeaderboardUpdate = "leaderboard-update"
	EventGameOver          = "game-over"
	EventError             = "error"
)

// Reasons a song ends
const (
	ReasonCorrect = "correct"
	ReasonTimeout = "timeout"
)

type RoomUpdated struct {
	RoomCode string          `json:"roomCode"`
	Players  []models.Player `json:"players"`
}

type PlayerLeft struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NewHostID string `json:"newHostId,omitempty"`
}

type HostChanged struct {
	HostID string `json:"hostId"`
}

type GameStarted struct {
	Rounds        int    `json:"rounds"`
	SongsPerRound int    `json:"songsPerRound"`
	TimePerSong   int    `json:"timePerSong"`
	Category      string `json:"category"`
}

// NewRound starts a song. StartTime is unix milliseconds.
type NewRound struct {
	Round         int    `json:"round"`
	SongNumber    int    `json:"songNumber"`
	SongsPerRound int    `json:"songsPerRound"`
	TotalRounds   int    `json:"totalRounds"`
	AudioURL      string `json:"audioUrl"`
	StartTime     int64  `json:"startTime"`
	Timer         int    `json:"timer"`
}

type RoundResult struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	IsCorrect  bool   `json:"isCorrect"`
	Points     int    `json:"points"`
}

type RoundEnd struct {
	CorrectAnswer string `json:"correctAnswer"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Round         int    `json:"round"`
	SongNumber    int    `json:"songNumber"`
	SongsPerRound int    `json:"songsPerRound"`
	Reason        string `json:"reason"`
}

type Countdown struct {
	SecondsLeft int    `json:"secondsLeft"`
	Phase       string `json:"phase"`
}

type GameOver struct {
	Leaderboard []models.Standing `json:"leaderboard"`
	Winners     []models.Standing `json:"winners"`
}

// Ack is the acknowledgement of createRoom / joinRoom
type Ack struct {
	OK       bool   `json:"ok"`
	RoomCode string `json:"roomCode,omitempty"`
	Message  string `json:"message,omitempty"`
	Code     string `json:"code,omitempty"`
}
