// Package config loads bot configuration from config.yaml, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Discord   DiscordConfig   `mapstructure:"discord"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Economy   EconomyConfig   `mapstructure:"economy"`
	Daily     DailyConfig     `mapstructure:"daily"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`

	// GuildID registers commands for one guild instead of globally
	GuildID string `mapstructure:"guild_id"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type AdminConfig struct {
	IDs []string `mapstructure:"ids"`

	// KeyHash is a bcrypt hash, /admin login is disabled when empty
	KeyHash string `mapstructure:"key_hash"`
}

type EconomyConfig struct {
	StartingBalance int64  `mapstructure:"starting_balance"`
	Timezone        string `mapstructure:"timezone"`
}

type DailyConfig struct {
	BaseReward     int64 `mapstructure:"base_reward"`
	StreakBonus    int64 `mapstructure:"streak_bonus"`
	MaxStreakBonus int64 `mapstructure:"max_streak_bonus"`
}

// SchedulerConfig holds cron specs for background jobs
type SchedulerConfig struct {
	Sweep  string `mapstructure:"sweep"`
	Report string `mapstructure:"report"`
}

// ErrMissingToken is returned by Validate when no discord token is configured
var ErrMissingToken = errors.New("discord.token is required")

// Load reads configuration from file and environment variables.
// It looks for config.yaml in configPath, the working directory and ./config.
func Load(configPath string) (*Config, error) {
	// a missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// e.g. DISCORD_TOKEN, REDIS_ADDR, ADMIN_IDS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("admin.ids", []string{})
	v.SetDefault("admin.key_hash", "")

	v.SetDefault("economy.starting_balance", 100)
	v.SetDefault("economy.timezone", "UTC")

	v.SetDefault("daily.base_reward", 25)
	v.SetDefault("daily.streak_bonus", 5)
	v.SetDefault("daily.max_streak_bonus", 50)

	v.SetDefault("scheduler.sweep", "@every 30s")
	v.SetDefault("scheduler.report", "@every 10m")
}

// Validate checks the settings needed to run the bot
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return ErrMissingToken
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the economy time zone
func (c *Config) Location() (*time.Location, error) {
	if c.Economy.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Economy.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid economy.timezone %q: %w", c.Economy.Timezone, err)
	}
	return loc, nil
}

// AdminIDs returns the configured admin IDs, tolerating a comma separated env value
func (c *Config) AdminIDs() []string {
	ids := []string{}
	for _, raw := range c.Admin.IDs {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Logger builds the process logger from the log settings
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if c.Log.Pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
