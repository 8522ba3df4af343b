package game

import (
	game_constants "VoxRace/constants/game"
	"VoxRace/models"
	"VoxRace/services/broadcast"
	"VoxRace/services/leaderboard"
	"VoxRace/services/rooms"
	"VoxRace/services/scoring"
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (e *Engine) startGame(actor *rooms.Actor, r *models.Room, requesterID string) {
	if requesterID != r.HostID {
		log.Printf("[START-GAME] Room %s: %s is not the host, ignored", r.Code, requesterID)
		return
	}
	if r.State == models.StatePlaying {
		log.Printf("[START-GAME] Room %s is already playing, ignored", r.Code)
		return
	}

	e.cancelTimers(r)
	r.Scores = make(map[string]int, len(r.Players))
	for _, p := range r.Players {
		r.Scores[p.ID] = 0
	}
	r.CurrentRound = 1
	r.CurrentSongIndex = 0
	r.CurrentSong = nil
	r.IsSongActive = false
	r.SongsPlayed = 0
	r.State = models.StatePlaying
	r.GameStartedAt = e.clock.Now()
	log.Printf("[START-GAME] Room %s started: %d rounds, %ds per song, category %s",
		r.Code, r.Settings.TotalRounds, r.Settings.TimePerSong, r.Settings.Category)

	e.gateway.ToRoom(r.Code, broadcast.EventGameStarted, broadcast.GameStarted{
		Rounds:        r.Settings.TotalRounds,
		SongsPerRound: game_constants.SONGS_PER_ROUND,
		TimePerSong:   r.Settings.TimePerSong,
		Category:      r.Settings.Category,
	})
	e.broadcastLeaderboard(r)
	e.startRound(actor, r)
}

func (e *Engine) startRound(actor *rooms.Actor, r *models.Room) {
	r.CurrentSongIndex = 1
	r.AnsweredThisSong = make(map[string]bool)
	log.Printf("[ROUND-START] Room %s: round %d/%d", r.Code, r.CurrentRound, r.Settings.TotalRounds)
	e.startSong(actor, r)
}

func (e *Engine) startSong(actor *rooms.Actor, r *models.Room) {
	if r.IsSongActive {
		log.Printf("[SONG-START] Room %s: a song is still active, ignored", r.Code)
		return
	}
	stopTimer(&r.SongTimer)
	stopTimer(&r.CountdownTimer)

	song, ok := e.catalog.Pick(r.Settings.Category)
	if !ok {
		log.Printf("[SONG-START-ERROR] Room %s: no song available for %q, ending game", r.Code, r.Settings.Category)
		e.endGame(actor, r)
		return
	}
	r.CurrentSong = &song
	r.AnsweredThisSong = make(map[string]bool)
	r.SongStartTime = e.clock.Now().Add(e.startBuffer)

	timeout := time.Duration(r.Settings.TimePerSong) * time.Second
	r.SongTimer = e.after(actor, timeout, songTimer, func(r *models.Room) {
		log.Printf("[SONG-TIMEOUT] Room %s: song %d of round %d timed out", r.Code, r.CurrentSongIndex, r.CurrentRound)
		e.endSong(actor, r, broadcast.ReasonTimeout)
	})
	r.IsSongActive = true
	r.SongsPlayed++
	log.Printf("[SONG-START] Room %s: round %d song %d/%d (%s)",
		r.Code, r.CurrentRound, r.CurrentSongIndex, game_constants.SONGS_PER_ROUND, song.ID)

	e.gateway.ToRoom(r.Code, broadcast.EventNewRound, broadcast.NewRound{
		Round:         r.CurrentRound,
		SongNumber:    r.CurrentSongIndex,
		SongsPerRound: game_constants.SONGS_PER_ROUND,
		TotalRounds:   r.Settings.TotalRounds,
		AudioURL:      song.AudioURL,
		StartTime:     r.SongStartTime.UnixMilli(),
		Timer:         r.Settings.TimePerSong,
	})
}

func (e *Engine) submitAnswer(actor *rooms.Actor, r *models.Room, playerID, text string) {
	if r.State != models.StatePlaying || r.CurrentSong == nil || !r.IsSongActive {
		log.Printf("[ANSWER] Room %s: no song is being played, answer from %s ignored", r.Code, playerID)
		return
	}
	player, _ := r.FindPlayer(playerID)
	if player == nil {
		log.Printf("[ANSWER] Room %s: %s is not a player, ignored", r.Code, playerID)
		return
	}
	if r.AnsweredThisSong[playerID] {
		log.Printf("[ANSWER] Room %s: %s already answered, ignored", r.Code, playerID)
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	r.AnsweredThisSong[playerID] = true

	elapsed := e.clock.Now().Sub(r.SongStartTime)
	correct := scoring.IsCorrect(text, r.CurrentSong.CorrectAnswer)
	points := 0
	if correct {
		points = scoring.Score(elapsed)
		r.Scores[playerID] += points
	}
	log.Printf("[ANSWER] Room %s: %s answered after %v, correct=%t, points=%d", r.Code, player.Name, elapsed, correct, points)

	e.gateway.ToRoom(r.Code, broadcast.EventRoundResult, broadcast.RoundResult{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		IsCorrect:  correct,
		Points:     points,
	})
	e.broadcastLeaderboard(r)

	if correct {
		stopTimer(&r.SongTimer)
		e.endSong(actor, r, broadcast.ReasonCorrect)
	}
}

// endSong reveals the answer and starts the countdown. Only the first call
// for a song has any effect.
func (e *Engine) endSong(actor *rooms.Actor, r *models.Room, reason string) {
	if !r.IsSongActive {
		log.Printf("[SONG-END] Room %s: song already ended, %s ignored", r.Code, reason)
		return
	}
	stopTimer(&r.SongTimer)
	r.IsSongActive = false

	end := broadcast.RoundEnd{
		Round:         r.CurrentRound,
		SongNumber:    r.CurrentSongIndex,
		SongsPerRound: game_constants.SONGS_PER_ROUND,
		Reason:        reason,
	}
	if r.CurrentSong != nil {
		end.CorrectAnswer = r.CurrentSong.CorrectAnswer
		end.Title = r.CurrentSong.Title
		end.Artist = r.CurrentSong.Artist
	}
	log.Printf("[SONG-END] Room %s: round %d song %d ended (%s)", r.Code, r.CurrentRound, r.CurrentSongIndex, reason)
	e.gateway.ToRoom(r.Code, broadcast.EventRoundEnd, end)
	r.CurrentSong = nil
	e.broadcastLeaderboard(r)

	e.countdown(actor, r, game_constants.COUNTDOWN_SECONDS, nextPhase(r))
}

// countdown broadcasts secondsLeft and re-arms itself once per tick until it
// reaches zero, then moves the game on.
func (e *Engine) countdown(actor *rooms.Actor, r *models.Room, secondsLeft int, phase string) {
	stopTimer(&r.CountdownTimer)
	e.gateway.ToRoom(r.Code, broadcast.EventCountdown, broadcast.Countdown{
		SecondsLeft: secondsLeft,
		Phase:       phase,
	})
	r.CountdownTimer = e.after(actor, game_constants.COUNTDOWN_TICK, countdownTimer, func(r *models.Room) {
		if secondsLeft > 1 {
			e.countdown(actor, r, secondsLeft-1, phase)
			return
		}
		e.advance(actor, r)
	})
}

func nextPhase(r *models.Room) string {
	switch {
	case r.CurrentSongIndex < game_constants.SONGS_PER_ROUND:
		return game_constants.PHASE_NEXT_SONG
	case r.CurrentRound < r.Settings.TotalRounds:
		return game_constants.PHASE_NEXT_ROUND
	default:
		return game_constants.PHASE_GAME_OVER
	}
}

func (e *Engine) advance(actor *rooms.Actor, r *models.Room) {
	if r.State != models.StatePlaying {
		return
	}
	switch nextPhase(r) {
	case game_constants.PHASE_NEXT_SONG:
		r.CurrentSongIndex++
		e.startSong(actor, r)
	case game_constants.PHASE_NEXT_ROUND:
		r.CurrentRound++
		e.startRound(actor, r)
	default:
		e.endGame(actor, r)
	}
}

func (e *Engine) endGame(actor *rooms.Actor, r *models.Room) {
	e.cancelTimers(r)
	r.State = models.StateFinished
	r.IsSongActive = false
	r.CurrentSong = nil

	standings := leaderboard.Project(r)
	winners := leaderboard.Leaders(standings)
	log.Printf("[GAME-END] Room %s finished after %d songs. Winners: %d", r.Code, r.SongsPlayed, len(winners))
	e.gateway.ToRoom(r.Code, broadcast.EventGameOver, broadcast.GameOver{
		Leaderboard: standings,
		Winners:     winners,
	})

	e.saveResult(models.GameResult{
		ID:          uuid.NewString(),
		RoomCode:    r.Code,
		Category:    r.Settings.Category,
		TotalRounds: r.Settings.TotalRounds,
		SongsPlayed: r.SongsPlayed,
		Standings:   standings,
		StartedAt:   r.GameStartedAt,
		FinishedAt:  e.clock.Now(),
	})

	r.ReapTimer = e.after(actor, e.retention, reapTimer, func(r *models.Room) {
		if r.State != models.StateFinished {
			return
		}
		e.deleteRoom(actor, r, "retention elapsed")
	})
}

// saveResult hands the result to every sink on its own goroutine
func (e *Engine) saveResult(result models.GameResult) {
	for _, sink := range e.sinks {
		go func(sink ResultSink) {
			ctx, cancel := context.WithTimeout(context.Background(), resultSaveTimeout)
			defer cancel()
			if err := sink.SaveResult(ctx, result); err != nil {
				log.Printf("[GAME-RESULT-ERROR] Room %s: %v", result.RoomCode, err)
			}
		}(sink)
	}
}
