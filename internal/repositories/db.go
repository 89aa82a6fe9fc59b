// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"officedesk/internal/config"
	"officedesk/internal/models"
	"officedesk/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// migrated lists every table the application owns.
var migrated = []interface{}{
	&models.User{},
	&models.Attendance{},
	&models.PaymentLink{},
	&models.GatewayCheckout{},
}

// InitDB connects to Postgres, configures the pool and applies migrations.
func InitDB() error {
	if err := initPostgres(); err != nil {
		return err
	}
	if err := DB.AutoMigrate(migrated...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.Println("✅ PostgreSQL connected & migrations applied successfully!")
	return nil
}

func dsn() string {
	return "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "officedesk") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")
}

func initPostgres() error {
	// Configure GORM logger to ignore "record not found" errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	DB = db
	return nil
}

// InitRedis connects to Redis and verifies the connection.
func InitRedis(ctx context.Context) (*cache.CacheService, error) {
	client := cache.NewRedisClient(cache.NewRedisConfig())
	svc := cache.NewCacheService(client, config.GetDurationEnv("CACHE_TTL", 24*time.Hour))

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := svc.HealthCheck(ctx); err != nil {
		_ = svc.Close()
		return nil, err
	}
	log.Println("✅ Redis connected")
	return svc, nil
}

// CloseDB releases the connection pool.
func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ResetDatabase drops and recreates every application table.
func ResetDatabase() error {
	if err := DB.Migrator().DropTable(migrated...); err != nil {
		return err
	}
	return DB.AutoMigrate(migrated...)
}
