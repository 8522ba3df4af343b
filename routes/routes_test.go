package routes

import (
	"VoxRace/config"
	_ "VoxRace/docs"
	"VoxRace/middleware"
	"VoxRace/models"
	"VoxRace/services/broadcast"
	"VoxRace/services/catalog"
	"VoxRace/services/game"
	"VoxRace/services/rooms"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	env "github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, origins string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	audioDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(audioDir, "clip.mp3"), []byte("ID3"), 0o600))

	cfg, err := config.FromEnvSet(env.EnvSet{"ALLOWED_ORIGINS": origins, "AUDIO_DIR": audioDir})
	require.NoError(t, err)

	songs, err := catalog.New([]models.Song{
		{ID: "a1", Title: "Gurenge", AudioURL: "/audio/clip.mp3", CorrectAnswer: "gurenge", Category: "Anime"},
	}, "")
	require.NoError(t, err)
	engine := game.NewEngine(rooms.NewStore(), rooms.NewRegistry(), broadcast.NewRecorder(), songs)

	r := gin.New()
	middleware.SetUpMiddleware(r, cfg)
	SetupRoutes(r, Dependencies{Engine: engine, Catalog: songs, AudioDir: cfg.AudioDir})
	return r, audioDir
}

func do(r *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes(t *testing.T) {
	r, _ := newRouter(t, "")

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{"ping", http.MethodGet, "/ping", http.StatusOK},
		{"new room code", http.MethodGet, "/rooms/new-code", http.StatusOK},
		{"unknown room", http.MethodGet, "/rooms/ABC234", http.StatusNotFound},
		{"results without stores", http.MethodGet, "/rooms/ABC234/results", http.StatusNotFound},
		{"games without stores", http.MethodGet, "/games", http.StatusOK},
		{"categories", http.MethodGet, "/catalog/categories", http.StatusOK},
		{"preferences", http.MethodGet, "/preferences", http.StatusOK},
		{"audio file", http.MethodGet, "/audio/clip.mp3", http.StatusOK},
		{"missing audio file", http.MethodGet, "/audio/none.mp3", http.StatusNotFound},
		{"swagger docs", http.MethodGet, "/swagger/doc.json", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, "", nil)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestSwaggerDocument(t *testing.T) {
	r, _ := newRouter(t, "")
	w := do(r, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	for path, method := range map[string]string{
		"/ping":                 "get",
		"/rooms/new-code":       "get",
		"/rooms/{code}":         "get",
		"/rooms/{code}/results": "get",
		"/games":                "get",
		"/catalog/categories":   "get",
		"/preferences":          "put",
	} {
		assert.Contains(t, doc.Paths[path], method, path)
	}
}

func TestCORS(t *testing.T) {
	t.Run("any origin by default", func(t *testing.T) {
		r, _ := newRouter(t, "")
		w := do(r, http.MethodGet, "/ping", "", map[string]string{"Origin": "http://localhost:5173"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("explicit origins allow credentials", func(t *testing.T) {
		r, _ := newRouter(t, "http://localhost:5173")
		w := do(r, http.MethodGet, "/ping", "", map[string]string{"Origin": "http://localhost:5173"})
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		w = do(r, http.MethodGet, "/ping", "", map[string]string{"Origin": "http://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
