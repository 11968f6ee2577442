package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Environment in which Redis must be reachable and logs are JSON
const PROD_ENV = "prod"

// Redis keys
const CATALOG_VENUE_KEY_FORMAT_V1 = "catalog_venue_v1:%s"
const CATALOG_REFRESHED_AT_KEY_V1 = "catalog_refreshed_at_v1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const NATURE_SITES_RESOURCE = "wisata_alam.json"
const EDUCATION_SITES_RESOURCE = "wisata_pendidikan.json"
const CULINARY_RESOURCE = "kuliner.json"
const CAFES_RESOURCE = "tempat_nongkrong.json"

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CatalogConfig struct {
	BaseURL         string
	UseMock         bool
	FixturesDir     string
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	HTTPTimeout     time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads the optional .env file and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Catalog: CatalogConfig{
			BaseURL:         v.GetString("CATALOG_BASE_URL"),
			UseMock:         v.GetBool("CATALOG_USE_MOCK"),
			FixturesDir:     v.GetString("CATALOG_FIXTURES_DIR"),
			CacheTTL:        time.Duration(v.GetInt("CATALOG_CACHE_TTL")) * time.Second,
			RefreshInterval: time.Duration(v.GetInt("CATALOG_REFRESH_INTERVAL")) * time.Minute,
			HTTPTimeout:     time.Duration(v.GetInt("CATALOG_HTTP_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects durations that would stall or panic the catalog jobs.
func (c *Config) validate() error {
	durations := []struct {
		key   string
		value time.Duration
	}{
		{"CATALOG_CACHE_TTL", c.Catalog.CacheTTL},
		{"CATALOG_REFRESH_INTERVAL", c.Catalog.RefreshInterval},
		{"CATALOG_HTTP_TIMEOUT", c.Catalog.HTTPTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("invalid config: %s must be positive, got %v", d.key, d.value)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "dev")
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATALOG_BASE_URL", "http://localhost:3000")
	v.SetDefault("CATALOG_USE_MOCK", false)
	v.SetDefault("CATALOG_FIXTURES_DIR", filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX))
	v.SetDefault("CATALOG_CACHE_TTL", 1800)
	v.SetDefault("CATALOG_REFRESH_INTERVAL", 30)
	v.SetDefault("CATALOG_HTTP_TIMEOUT", 10)
	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
