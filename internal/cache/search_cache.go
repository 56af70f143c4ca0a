package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flight-booking/internal/model"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps route-search results and short-lived seat holds in Redis.
// A hold is advisory: it sheds contention before bookings reach Postgres, the
// conditional seat update there is still the source of truth.
type SearchCache interface {
	GetResults(ctx context.Context, departureAirportID, arrivalAirportID int, day time.Time) ([]model.SearchResult, error)
	SetResults(ctx context.Context, departureAirportID, arrivalAirportID int, day time.Time, results []model.SearchResult) error
	AcquireSeatHold(ctx context.Context, seatID int, ttl time.Duration) (bool, error)
	ReleaseSeatHold(ctx context.Context, seatID int) error
}

type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) SearchCache {
	return &RedisSearchCache{client: client, ttl: ttl}
}

func searchKey(dep, arr int, day time.Time) string {
	return fmt.Sprintf("search:%d:%d:%s", dep, arr, day.Format("2006-01-02"))
}

func seatHoldKey(seatID int) string {
	return fmt.Sprintf("hold:seat:%d", seatID)
}

func (c *RedisSearchCache) GetResults(ctx context.Context, dep, arr int, day time.Time) ([]model.SearchResult, error) {
	data, err := c.client.Get(ctx, searchKey(dep, arr, day)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var results []model.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *RedisSearchCache) SetResults(ctx context.Context, dep, arr int, day time.Time, results []model.SearchResult) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(dep, arr, day), payload, c.ttl).Err()
}

func (c *RedisSearchCache) AcquireSeatHold(ctx context.Context, seatID int, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatHoldKey(seatID), "held", ttl).Result()
}

func (c *RedisSearchCache) ReleaseSeatHold(ctx context.Context, seatID int) error {
	return c.client.Del(ctx, seatHoldKey(seatID)).Err()
}
