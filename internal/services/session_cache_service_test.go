package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/sonalirv01/moviesdb/internal/database"
)

func setupTestRedis(t *testing.T) {
	t.Helper()

	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })
}

func TestTokenCache(t *testing.T) {
	setupTestRedis(t)

	_, ok := CachedTokenUser("tok")
	assert.False(t, ok)

	CacheTokenUser("tok", 42)
	userID, ok := CachedTokenUser("tok")
	assert.True(t, ok)
	assert.Equal(t, 42, userID)

	DropCachedToken("tok")
	_, ok = CachedTokenUser("tok")
	assert.False(t, ok)
}

func TestTokenCacheDisabled(t *testing.T) {
	database.RedisClient = nil

	// All operations are no-ops without a redis client
	CacheTokenUser("tok", 42)
	_, ok := CachedTokenUser("tok")
	assert.False(t, ok)
	DropCachedToken("tok")
}

func TestLoginInvalidatesCachedToken(t *testing.T) {
	setupTestDB(t)
	setupTestRedis(t)

	signUp(t, "a@b.com", "p", "A", "B")

	first, err := LoginUser("ab", "p")
	assert.NoError(t, err)

	// Resolving populates the cache
	_, err = FindUserByToken(first.AccessToken)
	assert.NoError(t, err)
	_, ok := CachedTokenUser(first.AccessToken)
	assert.True(t, ok)

	// A second login drops the stale cache entry with the old token
	_, err = LoginUser("ab", "p")
	assert.NoError(t, err)
	_, ok = CachedTokenUser(first.AccessToken)
	assert.False(t, ok)

	_, err = FindUserByToken(first.AccessToken)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
