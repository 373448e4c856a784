package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Console  ConsoleConfig
	Upstream UpstreamConfig
	DB       DBConfig
	Redis    RedisConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Port string
	Env  string
	// Mode is "standalone" (embedded record store mounted at /upstream/v1)
	// or "proxy" (forward to an external store at Upstream.BaseURL).
	Mode string
}

type ConsoleConfig struct {
	PageSize    int
	SelectLimit int
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

const (
	ModeStandalone = "standalone"
	ModeProxy      = "proxy"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_MODE", ModeStandalone)
	viper.SetDefault("CONSOLE_PAGE_SIZE", 20)
	viper.SetDefault("CONSOLE_SELECT_LIMIT", 100)
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("CACHE_TTL", "30s")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	upstreamTimeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		upstreamTimeout = 10 * time.Second
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
			Mode: viper.GetString("APP_MODE"),
		},
		Console: ConsoleConfig{
			PageSize:    viper.GetInt("CONSOLE_PAGE_SIZE"),
			SelectLimit: viper.GetInt("CONSOLE_SELECT_LIMIT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: upstreamTimeout,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
	}

	return config, nil
}
