package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"firstballot/prospects/internal/models"
)

// Config holds Redis connection configuration
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RedisCache wraps a Redis client for caching expensive lookups between
// pipeline runs. All methods are safe to call with a nil receiver, which is
// how the service runs when Redis is unavailable.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func nflPoolKey(season int) string {
	return fmt.Sprintf("prospects:nfl_pool:%d", season)
}

func collegeStatsKey(playerID int) string {
	return fmt.Sprintf("prospects:college_stats:%d", playerID)
}

// GetNFLPool returns the cached pro comparison pool for a season, or nil on
// miss or decode failure.
func (c *RedisCache) GetNFLPool(ctx context.Context, season int) []models.NFLPlayerProfile {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, nflPoolKey(season)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Int("season", season).Msg("Failed to read NFL pool from cache")
		return nil
	}

	var pool []models.NFLPlayerProfile
	if err := json.Unmarshal(data, &pool); err != nil {
		log.Warn().Err(err).Int("season", season).Msg("Failed to decode cached NFL pool")
		return nil
	}

	return pool
}

// SetNFLPool caches the pro comparison pool for a season
func (c *RedisCache) SetNFLPool(ctx context.Context, season int, pool []models.NFLPlayerProfile, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(pool)
	if err != nil {
		log.Warn().Err(err).Int("season", season).Msg("Failed to encode NFL pool for cache")
		return
	}

	if err := c.client.Set(ctx, nflPoolKey(season), data, ttl).Err(); err != nil {
		log.Warn().Err(err).Int("season", season).Msg("Failed to write NFL pool to cache")
	}
}

// GetCollegeSeasons returns cached per-season college stats for a player, or
// nil on miss.
func (c *RedisCache) GetCollegeSeasons(ctx context.Context, playerID int) []models.SeasonStat {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, collegeStatsKey(playerID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Int("player_id", playerID).Msg("Failed to read college stats from cache")
		return nil
	}

	var seasons []models.SeasonStat
	if err := json.Unmarshal(data, &seasons); err != nil {
		log.Warn().Err(err).Int("player_id", playerID).Msg("Failed to decode cached college stats")
		return nil
	}

	return seasons
}

// SetCollegeSeasons caches per-season college stats for a player
func (c *RedisCache) SetCollegeSeasons(ctx context.Context, playerID int, seasons []models.SeasonStat, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(seasons)
	if err != nil {
		log.Warn().Err(err).Int("player_id", playerID).Msg("Failed to encode college stats for cache")
		return
	}

	if err := c.client.Set(ctx, collegeStatsKey(playerID), data, ttl).Err(); err != nil {
		log.Warn().Err(err).Int("player_id", playerID).Msg("Failed to write college stats to cache")
	}
}

// Health checks the Redis connection
func (c *RedisCache) Health(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("redis cache not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}

	return nil
}
