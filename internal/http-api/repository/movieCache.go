package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinehub/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

// MovieCache is a read-through cache for movie lookups. Nil-safe: a nil
// cache (redis unavailable) turns every call into a no-op miss.
type MovieCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMovieCache(addr, password string, ttl time.Duration) (*MovieCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &MovieCache{client: rdb, ttl: ttl}, nil
}

func movieKey(id string) string {
	return "movie:" + id
}

// Get returns the cached movie or nil on a miss.
func (c *MovieCache) Get(ctx context.Context, id string) *models.Movie {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, movieKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var movie models.Movie
	if err := json.Unmarshal(data, &movie); err != nil {
		return nil
	}
	return &movie
}

// Set stores the movie for the configured TTL. Best-effort.
func (c *MovieCache) Set(ctx context.Context, movie *models.Movie) {
	if c == nil || c.client == nil || movie == nil {
		return
	}
	data, err := json.Marshal(movie)
	if err != nil {
		return
	}
	c.client.Set(ctx, movieKey(movie.ID), data, c.ttl)
}

// Invalidate drops the cached entry after any write to the movie.
func (c *MovieCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, movieKey(id))
}
