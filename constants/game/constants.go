package game_constants

import "time"

// Scoring
const MAX_SCORE = 1000
const DECAY_PER_SECOND = 50
const FLOOR_SCORE = 100

// Sequencing
const SONGS_PER_ROUND = 5
const COUNTDOWN_SECONDS = 3
const COUNTDOWN_TICK = time.Second

// Defaults for the create room form
const DEFAULT_ROUNDS = 1
const DEFAULT_TIME_PER_SONG = 15
const DEFAULT_CATEGORY = "Mixed"
const MAX_ROUNDS = 20
const MAX_TIME_PER_SONG = 60

// Room codes
const ROOM_CODE_LENGTH = 6
const ROOM_CODE_ALPHABET = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NOTE: overridable through config (SONG_START_BUFFER / FINISHED_ROOM_RETENTION)
const DEFAULT_SONG_START_BUFFER = 2 * time.Second
const DEFAULT_FINISHED_ROOM_RETENTION = 60 * time.Second

// Countdown phases
const (
	PHASE_NEXT_SONG  = "next-song"
	PHASE_NEXT_ROUND = "next-round"
	PHASE_GAME_OVER  = "game-over"
)
