package game

import (
	game_constants "VoxRace/constants/game"
	"VoxRace/models"
	"VoxRace/services/broadcast"
	"VoxRace/services/catalog"
	"VoxRace/services/leaderboard"
	"VoxRace/services/rooms"
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxNicknameLength = 24

const resultSaveTimeout = 5 * time.Second

// ResultSink receives the final standings of every finished game. Sinks run
// off the room goroutine and their failures never reach the room.
type ResultSink interface {
	SaveResult(ctx context.Context, result models.GameResult) error
}

// RoomOptions is the options object sent with createRoom. Zero values take
// the defaults of the create form.
type RoomOptions struct {
	Category    string `json:"category"`
	Rounds      int    `json:"rounds"`
	TimePerSong int    `json:"timePerSong"`
}

func (o RoomOptions) settings() models.RoomSettings {
	settings := models.RoomSettings{
		TotalRounds: o.Rounds,
		TimePerSong: o.TimePerSong,
		Category:    strings.TrimSpace(o.Category),
	}
	if settings.TotalRounds == 0 {
		settings.TotalRounds = game_constants.DEFAULT_ROUNDS
	}
	if settings.TimePerSong == 0 {
		settings.TimePerSong = game_constants.DEFAULT_TIME_PER_SONG
	}
	if settings.Category == "" {
		settings.Category = game_constants.DEFAULT_CATEGORY
	}
	return settings
}

// Snapshot is a read-only copy of a room
type Snapshot struct {
	Code          string              `json:"code"`
	State         models.RoomState    `json:"state"`
	HostID        string              `json:"hostId"`
	Players       []models.Player     `json:"players"`
	Settings      models.RoomSettings `json:"settings"`
	Leaderboard   []models.Standing   `json:"leaderboard"`
	CurrentRound  int                 `json:"currentRound"`
	SongNumber    int                 `json:"songNumber"`
	SongsPerRound int                 `json:"songsPerRound"`
	IsSongActive  bool                `json:"isSongActive"`
	CreatedAt     time.Time           `json:"createdAt"`
}

/*
 * Engine is the room/game state machine. Every room is owned by a
 * rooms.Actor; the engine only touches a room from inside a message running
 * on that actor, timers included.
 */
type Engine struct {
	store    *rooms.Store
	registry *rooms.Registry
	gateway  broadcast.Gateway
	catalog  catalog.Catalog
	clock    Clock
	sinks    []ResultSink
	validate *validator.Validate

	startBuffer time.Duration
	retention   time.Duration
}

type Option func(*Engine)

func WithClock(clock Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithStartBuffer sets how far ahead of now the authoritative song start is
func WithStartBuffer(d time.Duration) Option {
	return func(e *Engine) { e.startBuffer = d }
}

// WithRetention sets how long a finished room is kept around
func WithRetention(d time.Duration) Option {
	return func(e *Engine) { e.retention = d }
}

func WithResultSinks(sinks ...ResultSink) Option {
	return func(e *Engine) { e.sinks = append(e.sinks, sinks...) }
}

func NewEngine(store *rooms.Store, registry *rooms.Registry, gateway broadcast.Gateway, songs catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		registry:    registry,
		gateway:     gateway,
		catalog:     songs,
		clock:       systemClock{},
		validate:    validator.New(),
		startBuffer: game_constants.DEFAULT_SONG_START_BUFFER,
		retention:   game_constants.DEFAULT_FINISHED_ROOM_RETENTION,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Connect registers a new connection and returns its id
func (e *Engine) Connect(connID string) string {
	return e.registry.Connect(connID)
}

// CreateRoom creates a room in the lobby with connID as host. A connection
// already in another room leaves it once the new room exists.
func (e *Engine) CreateRoom(connID, code, nickname string, opts RoomOptions) (string, error) {
	roomCode, err := cleanCode(code)
	if err != nil {
		return "", err
	}
	name, err := cleanNickname(nickname)
	if err != nil {
		return "", err
	}
	settings := opts.settings()
	if err := e.validate.Struct(settings); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	previous, hadRoom := e.registry.Lookup(connID)

	room := models.NewRoom(roomCode, settings, e.clock.Now())
	room.Players = append(room.Players, &models.Player{ID: connID, Name: name, IsHost: true})
	room.HostID = connID
	room.Scores[connID] = 0

	actor, err := e.store.Create(room)
	if err != nil {
		log.Printf("[ROOM-CREATE-ERROR] Room %s: %v", roomCode, err)
		return "", fmt.Errorf("error creating room %s: %w", roomCode, err)
	}

	joined := false
	err = actor.Do(func(r *models.Room) {
		joined = e.bind(actor, r, connID)
		if joined {
			e.broadcastMembership(r)
			e.broadcastLeaderboard(r)
		}
	})
	if err != nil || !joined {
		return "", fmt.Errorf("%w: %s", ErrRoomNotFound, roomCode)
	}
	log.Printf("[ROOM-CREATE] Room %s created by %s (%s), settings %+v", roomCode, name, connID, settings)

	if hadRoom && previous.RoomCode != roomCode {
		e.depart(connID, previous)
	}
	return roomCode, nil
}

// JoinRoom adds connID to an existing room as a non-host player. Joining the
// room the connection is already in succeeds without changes.
func (e *Engine) JoinRoom(connID, code, nickname string) (string, error) {
	roomCode, err := cleanCode(code)
	if err != nil {
		return "", err
	}
	name, err := cleanNickname(nickname)
	if err != nil {
		return "", err
	}
	actor, ok := e.store.Get(roomCode)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRoomNotFound, roomCode)
	}

	previous, hadRoom := e.registry.Lookup(connID)
	if hadRoom && previous.RoomCode == roomCode {
		return roomCode, nil
	}

	var joinErr error
	err = actor.Do(func(r *models.Room) {
		if p, _ := r.FindPlayer(connID); p != nil {
			return
		}
		if r.HasName(name) {
			joinErr = fmt.Errorf("%w: %q in room %s", ErrNameTaken, name, r.Code)
			return
		}
		player := &models.Player{ID: connID, Name: name}
		if r.IsEmpty() {
			// a finished room waiting to be reaped has nobody to inherit from
			player.IsHost = true
			r.HostID = connID
		}
		r.Players = append(r.Players, player)
		r.Scores[connID] = 0
		if !e.bind(actor, r, connID) {
			joinErr = fmt.Errorf("%w: %s", ErrRoomNotFound, r.Code)
			return
		}
		log.Printf("[ROOM-JOIN] %s (%s) joined room %s. Players: %d", name, connID, r.Code, len(r.Players))
		e.gateway.ToRoom(r.Code, broadcast.EventPlayerJoined, *player)
		e.broadcastMembership(r)
		e.broadcastLeaderboard(r)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRoomNotFound, roomCode)
	}
	if joinErr != nil {
		return "", joinErr
	}

	if hadRoom {
		e.depart(connID, previous)
	}
	return roomCode, nil
}

// LeaveRoom takes connID out of its current room. A non-empty code must match
// that room.
func (e *Engine) LeaveRoom(connID, code string) {
	b, ok := e.registry.Lookup(connID)
	if !ok {
		return
	}
	if code != "" && rooms.NormalizeCode(code) != b.RoomCode {
		log.Printf("[ROOM-LEAVE] %s asked to leave %s but is in %s, ignored", connID, code, b.RoomCode)
		return
	}
	e.registry.Dissociate(connID, b.RoomCode)
	e.depart(connID, b)
}

// Disconnect forgets the connection and removes its player. A connection that
// never joined a room is a no-op.
func (e *Engine) Disconnect(connID string) {
	b, ok := e.registry.Disconnect(connID)
	if !ok {
		return
	}
	log.Printf("[DISCONNECT] %s left room %s", connID, b.RoomCode)
	e.depart(connID, b)
}

// StartGame starts (or restarts) the game. Anyone but the host is ignored.
func (e *Engine) StartGame(code, requesterID string) {
	actor, ok := e.store.Get(rooms.NormalizeCode(code))
	if !ok {
		log.Printf("[START-GAME] Room %s not found", code)
		return
	}
	_ = actor.Do(func(r *models.Room) {
		e.startGame(actor, r, requesterID)
	})
}

// SubmitAnswer scores a guess for the current song. Stale submissions are
// dropped silently.
func (e *Engine) SubmitAnswer(code, playerID, text string) {
	actor, ok := e.store.Get(rooms.NormalizeCode(code))
	if !ok {
		log.Printf("[ANSWER] Room %s not found", code)
		return
	}
	_ = actor.Do(func(r *models.Room) {
		e.submitAnswer(actor, r, playerID, text)
	})
}

// Snapshot copies the current state of a room
func (e *Engine) Snapshot(code string) (Snapshot, error) {
	var snap Snapshot
	err := e.inspect(rooms.NormalizeCode(code), func(r *models.Room) {
		players := make([]models.Player, 0, len(r.Players))
		for _, p := range r.Players {
			players = append(players, *p)
		}
		snap = Snapshot{
			Code:          r.Code,
			State:         r.State,
			HostID:        r.HostID,
			Players:       players,
			Settings:      r.Settings,
			Leaderboard:   leaderboard.Project(r),
			CurrentRound:  r.CurrentRound,
			SongNumber:    r.CurrentSongIndex,
			SongsPerRound: game_constants.SONGS_PER_ROUND,
			IsSongActive:  r.IsSongActive,
			CreatedAt:     r.CreatedAt,
		}
	})
	return snap, err
}

// NewCode returns a generated code that no live room uses
func (e *Engine) NewCode() string {
	return e.store.UnusedCode()
}

// ConnectionCount is the number of connections the registry knows about
func (e *Engine) ConnectionCount() int {
	return e.registry.Len()
}

// RoomCount is the number of live rooms
func (e *Engine) RoomCount() int {
	return e.store.Len()
}

func (e *Engine) inspect(code string, fn func(*models.Room)) error {
	actor, ok := e.store.Get(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	if err := actor.Do(fn); err != nil {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return nil
}

func cleanCode(code string) (string, error) {
	normalized := rooms.NormalizeCode(code)
	if !rooms.IsWellFormed(normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRoomCode, code)
	}
	return normalized, nil
}

func cleanNickname(nickname string) (string, error) {
	name := strings.TrimSpace(nickname)
	if name == "" {
		return "", ErrEmptyNickname
	}
	if utf8.RuneCountInString(name) > maxNicknameLength {
		return "", fmt.Errorf("%w: max %d characters", ErrNicknameTooLong, maxNicknameLength)
	}
	return name, nil
}
