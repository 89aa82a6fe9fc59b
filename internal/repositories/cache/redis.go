package cache

import (
	"fmt"
	"time"

	"officedesk/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds all Redis connection configuration
type RedisConfig struct {
	Host            string
	Port            string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// NewRedisConfig creates a RedisConfig with values from environment or defaults
func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:            config.GetEnv("REDIS_HOST", "localhost"),
		Port:            config.GetEnv("REDIS_PORT", "6379"),
		Password:        config.GetEnv("REDIS_PASSWORD", ""),
		DB:              config.GetIntEnv("REDIS_DB", 0),
		PoolSize:        config.GetIntEnv("REDIS_POOL_SIZE", 10),
		MinIdleConns:    config.GetIntEnv("REDIS_MIN_IDLE_CONNS", 5),
		ConnMaxLifetime: config.GetDurationEnv("REDIS_MAX_CONN_AGE", 30*time.Minute),
		ConnMaxIdleTime: config.GetDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		DialTimeout:     config.GetDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:     config.GetDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout:    config.GetDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
	}
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		DialTimeout:     cfg.DialTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
	})
}
