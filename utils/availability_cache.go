// File: utils/availability_cache.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slotify/models"
)

func timeslotCacheKey(dayID, teamID, regionID string, duration int) string {
	return fmt.Sprintf("%s%s:%s:%s:%d", TimeslotCachePrefix, dayID, teamID, regionID, duration)
}

// GetCachedTimeslots returns a cached availability response, if any. Cache
// misses and unreachable Redis both report ok=false; availability is always
// recomputable.
func GetCachedTimeslots(ctx context.Context, dayID, teamID, regionID string, duration int) ([]models.TimeslotClient, bool) {
	if CacheClient == nil {
		return nil, false
	}
	data, err := CacheClient.Get(ctx, timeslotCacheKey(dayID, teamID, regionID, duration)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []models.TimeslotClient
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetCachedTimeslots stores an availability response for ttl.
func SetCachedTimeslots(ctx context.Context, dayID, teamID, regionID string, duration int, slots []models.TimeslotClient, ttl time.Duration) {
	if CacheClient == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	key := timeslotCacheKey(dayID, teamID, regionID, duration)
	if err := CacheClient.Set(ctx, key, data, ttl).Err(); err != nil {
		GetLogger().Warn("failed to cache timeslots", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateTimeslotCache drops every cached response for a day. Called on
// event writes so stale slots never outlive the booking that consumed them.
func InvalidateTimeslotCache(ctx context.Context, dayID string) {
	if CacheClient == nil {
		return
	}
	pattern := TimeslotCachePrefix + dayID + ":*"
	iter := CacheClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := CacheClient.Del(ctx, iter.Val()).Err(); err != nil {
			GetLogger().Warn("failed to invalidate timeslot cache",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("timeslot cache scan failed", zap.String("did", dayID), zap.Error(err))
	}
}
