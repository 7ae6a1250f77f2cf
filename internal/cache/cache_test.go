package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/config"
	"jobradar/pkg/models"
)

func TestKeyDeterministic(t *testing.T) {
	params := models.SearchParams{Query: "golang", Location: "Berlin", Limit: 20}

	assert.Equal(t, Key("adzuna", params), Key("adzuna", params))
}

func TestKeyVariesByProviderAndParams(t *testing.T) {
	params := models.SearchParams{Query: "golang", Limit: 20}

	assert.NotEqual(t, Key("adzuna", params), Key("jooble", params))

	other := params
	other.Query = "python"
	assert.NotEqual(t, Key("adzuna", params), Key("adzuna", other))
}

func TestKeyFormat(t *testing.T) {
	key := Key("remotive", models.SearchParams{Query: "react"})

	assert.True(t, strings.HasPrefix(key, "jobradar:search:remotive:"))
	// 16-byte digest prefix, hex encoded
	assert.Len(t, strings.TrimPrefix(key, "jobradar:search:remotive:"), 32)
}

func TestNewSearchCacheDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	c, err := NewSearchCache(cfg)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNilCacheIsPassThrough(t *testing.T) {
	var c *SearchCache

	jobs, ok := c.Get(context.Background(), "adzuna", models.SearchParams{Query: "go"})
	assert.False(t, ok)
	assert.Nil(t, jobs)

	// Writes and closes on a disabled cache are no-ops
	c.Set(context.Background(), "adzuna", models.SearchParams{Query: "go"}, nil)
	assert.NoError(t, c.Close())
}

func TestNewSearchCacheRejectsBadURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Redis.URL = "not-a-redis-url"

	_, err := NewSearchCache(cfg)
	assert.Error(t, err)
}
