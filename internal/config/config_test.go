package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, int64(100), cfg.Economy.StartingBalance)
	assert.Equal(t, "UTC", cfg.Economy.Timezone)
	assert.Equal(t, int64(25), cfg.Daily.BaseReward)
	assert.Equal(t, int64(5), cfg.Daily.StreakBonus)
	assert.Equal(t, int64(50), cfg.Daily.MaxStreakBonus)
	assert.Equal(t, "@every 30s", cfg.Scheduler.Sweep)
	assert.Equal(t, "@every 10m", cfg.Scheduler.Report)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingToken)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
discord:
  token: file-token
  guild_id: "42"
redis:
  addr: redis:6379
  db: 2
admin:
  ids: ["1", "2"]
economy:
  timezone: America/New_York
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("DISCORD_TOKEN", "env-token")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.Token)
	assert.Equal(t, "42", cfg.Discord.GuildID)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"1", "2"}, cfg.AdminIDs())
	require.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("discord: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestAdminIDsSplitsCommaList(t *testing.T) {
	cfg := &Config{Admin: AdminConfig{IDs: []string{"1, 2", "", "3"}}}
	assert.Equal(t, []string{"1", "2", "3"}, cfg.AdminIDs())
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Economy.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)

	cfg.Discord.Token = "t"
	assert.Error(t, cfg.Validate())
}

func TestLoggerLevel(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "DEBUG"}}
	assert.Equal(t, zerolog.DebugLevel, cfg.Logger().GetLevel())

	cfg.Log.Level = "nonsense"
	assert.Equal(t, zerolog.InfoLevel, cfg.Logger().GetLevel())
}
