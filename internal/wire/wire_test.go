package wire

import (
	"Connectly/internal/api/config"
	"Connectly/internal/pkg/settings"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsStore(t *testing.T) {
	store, err := NewSettingsStore(config.SettingsConfig{Backend: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &settings.MemoryStore{}, store)

	_, err = NewSettingsStore(config.SettingsConfig{Backend: "redis"}, nil)
	assert.Error(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: "localhost:0"})
	defer rdb.Close()
	store, err = NewSettingsStore(config.SettingsConfig{Backend: "redis", Key: "connectly:settings"}, rdb)
	require.NoError(t, err)
	assert.IsType(t, &settings.RedisStore{}, store)

	_, err = NewSettingsStore(config.SettingsConfig{Backend: "etcd"}, nil)
	assert.Error(t, err)
}
