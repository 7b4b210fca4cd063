// File: utils/team_cache.go
package utils

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"slotify/models"
)

// GetCachedTeam returns a cached team document, if any. Unreachable Redis
// reports a miss; the repository is always authoritative.
func GetCachedTeam(ctx context.Context, teamID string) (*models.Team, bool) {
	if CacheClient == nil {
		return nil, false
	}
	data, err := CacheClient.Get(ctx, TeamCachePrefix+teamID).Bytes()
	if err != nil {
		return nil, false
	}
	var team models.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, false
	}
	return &team, true
}

// SetCachedTeam stores a team document for TeamCacheTTL.
func SetCachedTeam(ctx context.Context, team models.Team) {
	if CacheClient == nil {
		return
	}
	data, err := json.Marshal(team)
	if err != nil {
		return
	}
	if err := CacheClient.Set(ctx, TeamCachePrefix+team.ID, data, TeamCacheTTL).Err(); err != nil {
		GetLogger().Warn("failed to cache team", zap.String("team", team.ID), zap.Error(err))
	}
}
