package redis

import (
	"VoxRace/models"
	redis_utils "VoxRace/services/redis/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrResultNotFound is returned when no result is cached for a room
var ErrResultNotFound = errors.New("no result cached for room")

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance. Addr is either a plain
// host:port or a redis:// URL.
func NewRedisClient(Addr string, DB int) (*RedisClient, error) {
	var client *redis.Client
	if strings.Contains(Addr, "://") {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}, nil
}

// SaveGameResult stores the final standings of a room
// Key format: "results:{roomCode}"
func (rc *RedisClient) SaveGameResult(ctx context.Context, result models.GameResult, ttl time.Duration) error {
	key := redis_utils.FormatResultsKey(result.RoomCode)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshaling game result: %w", err)
	}
	if err := rc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("error saving game result for room %s: %w", result.RoomCode, err)
	}
	return nil
}

// GetGameResult retrieves the last result of a room
// Key format: "results:{roomCode}"
func (rc *RedisClient) GetGameResult(ctx context.Context, roomCode string) (*models.GameResult, error) {
	data, err := rc.client.Get(ctx, redis_utils.FormatResultsKey(roomCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting game result for room %s: %w", roomCode, err)
	}

	var result models.GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling game result: %w", err)
	}
	return &result, nil
}

// ListGameResults returns up to limit cached results, most recent first
func (rc *RedisClient) ListGameResults(ctx context.Context, limit int) ([]models.GameResult, error) {
	var keys []string
	iter := rc.client.Scan(ctx, 0, redis_utils.FormatResultsPattern(), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning game results: %w", err)
	}
	if len(keys) == 0 {
		return []models.GameResult{}, nil
	}

	values, err := rc.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting game results: %w", err)
	}
	results := make([]models.GameResult, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// expired between SCAN and MGET
			continue
		}
		var result models.GameResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			log.Printf("[REDIS-ERROR] Skipping malformed game result: %v", err)
			continue
		}
		results = append(results, result)
	}

	slices.SortFunc(results, func(a, b models.GameResult) int {
		return b.FinishedAt.Compare(a.FinishedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DeleteGameResult removes the cached result of a room
func (rc *RedisClient) DeleteGameResult(ctx context.Context, roomCode string) error {
	if err := rc.client.Del(ctx, redis_utils.FormatResultsKey(roomCode)).Err(); err != nil {
		return fmt.Errorf("error deleting game result for room %s: %w", roomCode, err)
	}
	return nil
}

// ResultCache stores finished games in Redis for a bounded time. It is a
// game.ResultSink.
type ResultCache struct {
	rc  *RedisClient
	ttl time.Duration
}

func NewResultCache(rc *RedisClient, ttl time.Duration) *ResultCache {
	return &ResultCache{rc: rc, ttl: ttl}
}

func (c *ResultCache) SaveResult(ctx context.Context, result models.GameResult) error {
	if err := c.rc.SaveGameResult(ctx, result, c.ttl); err != nil {
		return err
	}
	log.Printf("[REDIS] Cached result of room %s for %v", result.RoomCode, c.ttl)
	return nil
}

func (c *ResultCache) Get(ctx context.Context, roomCode string) (*models.GameResult, error) {
	return c.rc.GetGameResult(ctx, roomCode)
}

func (c *ResultCache) List(ctx context.Context, limit int) ([]models.GameResult, error) {
	return c.rc.ListGameResults(ctx, limit)
}
