package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment
type Config struct {
	Port           string `env:"PORT,default=5000"`
	Prod           bool   `env:"PROD,default=false"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	SessionKey     string `env:"SESSION_KEY,default=voxrace-dev-session-key"`
	SocketDebug    bool   `env:"SOCKET_DEBUG,default=false"`

	CatalogPath  string `env:"CATALOG_PATH"`
	AudioDir     string `env:"AUDIO_DIR,default=./audio"`
	AudioBaseURL string `env:"AUDIO_BASE_URL,default=/audio/"`

	RedisURL string `env:"REDIS_URL"`

	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT,default=5432"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDatabase string `env:"POSTGRES_DATABASE"`
	MigratePostgres  bool   `env:"MIGRATE_POSTGRES,default=false"`
	VerbosePostgres  bool   `env:"VERBOSE_POSTGRES,default=false"`

	SongStartBuffer       time.Duration `env:"SONG_START_BUFFER,default=2s"`
	FinishedRoomRetention time.Duration `env:"FINISHED_ROOM_RETENTION,default=60s"`
	ResultsTTL            time.Duration `env:"RESULTS_TTL,default=24h"`
}

// Load reads the optional .env file(s) and then the process environment
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[CONFIG] No .env file loaded: %v", err)
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("error reading environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnvSet builds a Config from an explicit set of variables
func FromEnvSet(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("error reading environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SongStartBuffer < 0 {
		return errors.New("SONG_START_BUFFER must not be negative")
	}
	if c.FinishedRoomRetention <= 0 {
		return errors.New("FINISHED_ROOM_RETENTION must be positive")
	}
	if c.ResultsTTL <= 0 {
		return errors.New("RESULTS_TTL must be positive")
	}
	if c.Prod && c.SessionKey == "voxrace-dev-session-key" {
		return errors.New("SESSION_KEY must be set in production")
	}
	return nil
}

// Origins splits ALLOWED_ORIGINS; empty means any origin
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c Config) PostgresEnabled() bool {
	return c.PostgresHost != ""
}

func (c Config) RedisEnabled() bool {
	return c.RedisURL != ""
}

// PostgresDSN builds the connection string used by lib/pq
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDatabase)
}
