package config

import (
	"os"
	"time"

	"fleetsecure-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// JWTSecret and TokenTTL are populated by Load; the defaults keep tests and
// local runs working without a .env file.
var (
	JWTSecret = []byte("fleetsecure_super_secret_2026")
	TokenTTL  = 24 * time.Hour
)

type Config struct {
	ServiceName string
	Port        int
	GinMode     string
	DBPath      string
	JWTSecret   string
	TokenTTL    time.Duration
}

// Load reads .env (if present) and the environment, with defaults.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		ServiceName: cast.ToString(getOrReturnDefault("SERVICE_NAME", "fleetsecure-api")),
		Port:        cast.ToInt(getOrReturnDefault("PORT", 8080)),
		GinMode:     cast.ToString(getOrReturnDefault("GIN_MODE", "debug")),
		DBPath:      cast.ToString(getOrReturnDefault("DB_PATH", "fleetsecure.db")),
		JWTSecret:   cast.ToString(getOrReturnDefault("JWT_SECRET", string(JWTSecret))),
		TokenTTL:    time.Duration(cast.ToInt(getOrReturnDefault("TOKEN_TTL_HOURS", 24))) * time.Hour,
	}

	JWTSecret = []byte(cfg.JWTSecret)
	TokenTTL = cfg.TokenTTL
	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// OpenDB connects to the sqlite database and migrates all models.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Account{}, &models.Truck{}); err != nil {
		return nil, err
	}
	return db, nil
}
