package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tunedeck/checkout-service/internal/domain"
)

// TrackCache is an explicit cache component for catalog reads: keyed
// lookups with a TTL and delete-on-write invalidation. It is not used
// by the price resolver or for entitlements, which must stay live.
type TrackCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTrackCache(rdb *redis.Client, ttl time.Duration) *TrackCache {
	return &TrackCache{rdb: rdb, ttl: ttl}
}

func MustInitRedis(addr, password string, db int) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("failed to connect to redis: %v", err))
	}
	return rdb
}

func trackKey(id uint64) string {
	return fmt.Sprintf("track:%d", id)
}

const listKey = "tracks:published"

func (c *TrackCache) GetTrack(ctx context.Context, id uint64) (*domain.Track, error) {
	data, err := c.rdb.Get(ctx, trackKey(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var track domain.Track
	if err := json.Unmarshal(data, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (c *TrackCache) SetTrack(ctx context.Context, track *domain.Track) error {
	data, err := json.Marshal(track)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, trackKey(track.ID), data, c.ttl).Err()
}

func (c *TrackCache) GetPublished(ctx context.Context) ([]*domain.Track, error) {
	data, err := c.rdb.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, err
	}
	var tracks []*domain.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *TrackCache) SetPublished(ctx context.Context, tracks []*domain.Track) error {
	data, err := json.Marshal(tracks)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey, data, c.ttl).Err()
}

// Invalidate drops a track and the published listing. Called on any
// catalog write so readers never observe a stale price or status.
func (c *TrackCache) Invalidate(ctx context.Context, id uint64) error {
	return c.rdb.Del(ctx, trackKey(id), listKey).Err()
}
