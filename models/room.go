package models

import "time"

// RoomState is the lifecycle phase of a room
type RoomState string

const (
	StateLobby    RoomState = "lobby"
	StatePlaying  RoomState = "playing"
	StateFinished RoomState = "finished"
)

// Timer is a cancellable handle for a scheduled callback. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Player is a connection taking part in a room. The id is the connection id.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
}

// RoomSettings are chosen by the host on creation and never change afterwards
type RoomSettings struct {
	TotalRounds int    `json:"rounds" validate:"min=1,max=20"`
	TimePerSong int    `json:"timePerSong" validate:"min=1,max=60"`
	Category    string `json:"category" validate:"max=40"`
}

// Standing is one row of a leaderboard
type Standing struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

/*
 * 'Room' is the aggregate root of a game session. It is only ever touched from
 * the goroutine that owns it (see services/rooms.Actor), so none of its fields
 * are guarded.
 */
type Room struct {
	Code     string
	Players  []*Player // join order
	HostID   string
	State    RoomState
	Settings RoomSettings
	Scores   map[string]int

	CurrentRound     int
	CurrentSongIndex int
	CurrentSong      *Song
	SongStartTime    time.Time
	AnsweredThisSong map[string]bool
	IsSongActive     bool

	// Timer handles. Nil means nothing is armed.
	SongTimer      Timer
	CountdownTimer Timer
	ReapTimer      Timer

	CreatedAt     time.Time
	GameStartedAt time.Time
	SongsPlayed   int
}

func NewRoom(code string, settings RoomSettings, now time.Time) *Room {
	return &Room{
		Code:             code,
		Players:          []*Player{},
		State:            StateLobby,
		Settings:         settings,
		Scores:           make(map[string]int),
		AnsweredThisSong: make(map[string]bool),
		CreatedAt:        now,
	}
}

// FindPlayer returns the player with the given id and its position in join order
func (r *Room) FindPlayer(id string) (*Player, int) {
	for i, p := range r.Players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// HasName reports whether a player already uses the name (exact, case-sensitive)
func (r *Room) HasName(name string) bool {
	for _, p := range r.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (r *Room) IsEmpty() bool {
	return len(r.Players) == 0
}
