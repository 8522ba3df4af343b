package controllers

import (
	"VoxRace/models"
	"VoxRace/services/broadcast"
	"VoxRace/services/catalog"
	"VoxRace/services/game"
	"VoxRace/services/redis"
	"VoxRace/services/rooms"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.MemoryCatalog {
	t.Helper()
	c, err := catalog.New([]models.Song{
		{ID: "p1", Title: "Levitating", AudioURL: "/audio/p1.mp3", CorrectAnswer: "levitating", Category: "Pop"},
		{ID: "r1", Title: "Thunderstruck", AudioURL: "/audio/r1.mp3", CorrectAnswer: "thunderstruck", Category: "Rock"},
	}, "")
	require.NoError(t, err)
	return c
}

func testEngine(t *testing.T) *game.Engine {
	t.Helper()
	return game.NewEngine(rooms.NewStore(), rooms.NewRegistry(), broadcast.NewRecorder(), testCatalog(t))
}

func serve(router *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type fakeCache struct {
	results map[string]models.GameResult
	err     error
}

func (f *fakeCache) Get(_ context.Context, code string) (*models.GameResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.results[code]
	if !ok {
		return nil, redis.ErrResultNotFound
	}
	return &r, nil
}

func (f *fakeCache) List(_ context.Context, limit int) ([]models.GameResult, error) {
	var out []models.GameResult
	for _, r := range f.results {
		out = append(out, r)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, f.err
}

type fakeArchive struct {
	results   []models.GameResult
	err       error
	lastLimit int
}

func (f *fakeArchive) Recent(_ context.Context, code string, limit int) ([]models.GameResult, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	var out []models.GameResult
	for _, r := range f.results {
		if code == "" || r.RoomCode == code {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)

	w := serve(router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRooms(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := testEngine(t)
	router := gin.New()
	router.GET("/rooms/new-code", NewRoomCode(engine))
	router.GET("/rooms/:code", GetRoom(engine))

	t.Run("new code is unused and well formed", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/rooms/new-code", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Code, 6)
		assert.True(t, rooms.IsWellFormed(body.Code))
	})

	t.Run("snapshot of a live room", func(t *testing.T) {
		engine.Connect("c1")
		code, err := engine.CreateRoom("c1", "party1", "Ann", game.RoomOptions{Category: "Rock", Rounds: 2})
		require.NoError(t, err)

		w := serve(router, http.MethodGet, "/rooms/party1", "")
		require.Equal(t, http.StatusOK, w.Code)
		var snap game.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, code, snap.Code)
		assert.Equal(t, models.StateLobby, snap.State)
		require.Len(t, snap.Players, 1)
		assert.Equal(t, "Ann", snap.Players[0].Name)
		assert.Equal(t, 2, snap.Settings.TotalRounds)
	})

	t.Run("unknown room", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/rooms/NOPE99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(game.ErrEmptyNickname))
	assert.Equal(t, http.StatusNotFound, statusFor(game.ErrRoomNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(game.ErrNameTaken))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

func TestResults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	finished := time.Date(2025, 5, 2, 18, 30, 0, 0, time.UTC)
	cached := models.GameResult{ID: "c1", RoomCode: "ABC234", Standings: []models.Standing{{ID: "p1", Name: "Ann", Score: 900}}, FinishedAt: finished}
	archived := models.GameResult{ID: "a1", RoomCode: "OLD234", Standings: []models.Standing{{ID: "p2", Name: "Bob", Score: 500}}, FinishedAt: finished.Add(-time.Hour)}

	newRouter := func(cache ResultCache, archive ResultArchive) *gin.Engine {
		router := gin.New()
		router.GET("/rooms/:code/results", GetRoomResults(cache, archive))
		router.GET("/games", ListGames(cache, archive))
		return router
	}

	t.Run("cache hit", func(t *testing.T) {
		router := newRouter(&fakeCache{results: map[string]models.GameResult{"ABC234": cached}}, &fakeArchive{})
		w := serve(router, http.MethodGet, "/rooms/abc234/results", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got models.GameResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "c1", got.ID)
	})

	t.Run("falls back to the archive", func(t *testing.T) {
		router := newRouter(&fakeCache{results: map[string]models.GameResult{}}, &fakeArchive{results: []models.GameResult{archived}})
		w := serve(router, http.MethodGet, "/rooms/OLD234/results", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got models.GameResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Bob", got.Standings[0].Name)
	})

	t.Run("broken cache still reaches the archive", func(t *testing.T) {
		router := newRouter(&fakeCache{err: errors.New("redis down")}, &fakeArchive{results: []models.GameResult{archived}})
		w := serve(router, http.MethodGet, "/rooms/OLD234/results", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no stores configured", func(t *testing.T) {
		router := newRouter(nil, nil)
		w := serve(router, http.MethodGet, "/rooms/ABC234/results", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = serve(router, http.MethodGet, "/games", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("archive error", func(t *testing.T) {
		router := newRouter(nil, &fakeArchive{err: errors.New("pg down")})
		w := serve(router, http.MethodGet, "/rooms/ABC234/results", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("games prefer the archive and clamp the limit", func(t *testing.T) {
		archive := &fakeArchive{results: []models.GameResult{archived}}
		router := newRouter(&fakeCache{results: map[string]models.GameResult{"ABC234": cached}}, archive)
		w := serve(router, http.MethodGet, "/games?limit=500", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got []models.GameResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "a1", got[0].ID)
		assert.Equal(t, maxGamesLimit, archive.lastLimit)
	})

	t.Run("games from the cache alone", func(t *testing.T) {
		router := newRouter(&fakeCache{results: map[string]models.GameResult{"ABC234": cached}}, nil)
		w := serve(router, http.MethodGet, "/games", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got []models.GameResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("bad limit", func(t *testing.T) {
		router := newRouter(nil, nil)
		for _, limit := range []string{"0", "-3", "many"} {
			w := serve(router, http.MethodGet, "/games?limit="+limit, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, limit)
		}
	})
}

func TestGetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/catalog/categories", GetCategories(testCatalog(t)))

	w := serve(router, http.MethodGet, "/catalog/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"categories":["Mixed","Pop","Rock"],"songs":2}`, w.Body.String())
}

func TestPreferences(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("voxrace", cookie.NewStore([]byte("test-key"))))
	router.GET("/preferences", GetPreferences)
	router.PUT("/preferences", UpdatePreferences)

	t.Run("empty without a session", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/preferences", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"nickname":"","category":""}`, w.Body.String())
	})

	t.Run("saved preferences come back with the cookie", func(t *testing.T) {
		w := serve(router, http.MethodPut, "/preferences", `{"nickname":"  Ann ","category":"Rock"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"nickname":"Ann","category":"Rock"}`, w.Body.String())
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)

		w = serve(router, http.MethodGet, "/preferences", "", cookies...)
		assert.JSONEq(t, `{"nickname":"Ann","category":"Rock"}`, w.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		w := serve(router, http.MethodPut, "/preferences", `{"nickname":"`+strings.Repeat("x", 25)+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serve(router, http.MethodPut, "/preferences", `not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
