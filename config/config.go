package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server reads from the environment. Secrets
// have no defaults: Load fails instead of starting with an empty key.
type Config struct {
	Env  string
	Port string
	SSL  bool

	MongoURI string
	MongoDB  string

	RedisHost string
	RedisPass string
	RedisDB   int

	AccessSecret  []byte
	AccessExpire  time.Duration
	RefreshSecret []byte
	RefreshExpire time.Duration

	UploadDir string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Env:  envDefault("ENV", "DEVELOPMENT"),
		Port: envDefault("PORT", "8080"),
		SSL:  os.Getenv("SSL") == "TRUE",

		MongoURI: envDefault("DB_URI", "mongodb://localhost:27017"),
		MongoDB:  envDefault("DB_NAME", "jobhunt"),

		// Empty means no redis: the login rate limiter falls back to an
		// in-process store.
		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPass: os.Getenv("REDIS_PASS"),

		AccessSecret:  []byte(os.Getenv("JWT_ACCESS_SECRET")),
		RefreshSecret: []byte(os.Getenv("JWT_REFRESH_SECRET")),

		UploadDir: envDefault("UPLOAD_DIR", "./uploads"),
	}

	if len(cfg.AccessSecret) == 0 {
		return cfg, errors.New("JWT_ACCESS_SECRET is not set")
	}
	if len(cfg.RefreshSecret) == 0 {
		return cfg, errors.New("JWT_REFRESH_SECRET is not set")
	}

	var err error
	if cfg.RedisDB, err = envIntDefault("REDIS_DB", 0); err != nil {
		return cfg, err
	}
	if cfg.AccessExpire, err = envDurationDefault("JWT_ACCESS_EXPIRE", 15*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.RefreshExpire, err = envDurationDefault("JWT_REFRESH_EXPIRE", 72*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.LoginRateLimit, err = envIntDefault("LOGIN_RATE_LIMIT", 10); err != nil {
		return cfg, err
	}
	if cfg.LoginRateWindow, err = envDurationDefault("LOGIN_RATE_WINDOW", time.Minute); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func envDurationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
