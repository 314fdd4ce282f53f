package services

import (
	"strconv"
	"time"

	"github.com/sonalirv01/moviesdb/internal/database"
)

const tokenCachePrefix = "token:"
const tokenCacheTTL = time.Hour

// CacheTokenUser remembers which user id a bearer token resolves to.
// A nil redis client disables the cache.
func CacheTokenUser(token string, userID int) {
	if database.RedisClient == nil || token == "" {
		return
	}
	database.RedisClient.Set(database.Ctx, tokenCachePrefix+token, userID, tokenCacheTTL)
}

// CachedTokenUser looks up a bearer token in the cache.
func CachedTokenUser(token string) (int, bool) {
	if database.RedisClient == nil || token == "" {
		return 0, false
	}
	val, err := database.RedisClient.Get(database.Ctx, tokenCachePrefix+token).Result()
	if err != nil {
		return 0, false
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// DropCachedToken invalidates a cached token, on logout or when a new
// login replaces the previous session.
func DropCachedToken(token string) {
	if database.RedisClient == nil || token == "" {
		return
	}
	database.RedisClient.Del(database.Ctx, tokenCachePrefix+token)
}
