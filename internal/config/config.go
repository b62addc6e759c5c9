package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	SQLite   SQLiteConfig
	Store    StoreConfig
	Session  SessionConfig
	Dataset  DatasetConfig
	Map      MapConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SQLiteConfig struct {
	Path string
}

// StoreConfig - где хранится состояние visited/bookmarked
type StoreConfig struct {
	Driver    string
	Namespace string
	TTL       time.Duration
}

type SessionConfig struct {
	CookieName  string
	IdleTimeout time.Duration
}

type DatasetConfig struct {
	Path string
}

// MapConfig - параметры карты, которые отдаются клиенту
type MapConfig struct {
	Style         string
	APIKey        string
	CenterLat     float64
	CenterLon     float64
	Zoom          float64
	FocusZoom     float64
	MaxDistanceKm float64
}

type LogConfig struct {
	Level string
}

// Поддерживаемые драйверы хранилища состояния
const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "porchfest")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SQLITE_PATH", "porchfest.db")

	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("STORE_NAMESPACE", "porchfest-data")
	v.SetDefault("STORE_TTL", 0)

	v.SetDefault("SESSION_COOKIE", "porchfest_session")
	v.SetDefault("SESSION_IDLE_TIMEOUT", 1800)

	v.SetDefault("DATASET_PATH", "data/output.geojson")

	v.SetDefault("MAP_STYLE", "bright")
	v.SetDefault("MAP_CENTER_LAT", 42.392251196294296)
	v.SetDefault("MAP_CENTER_LON", -71.10766319928621)
	v.SetDefault("MAP_ZOOM", 13)
	v.SetDefault("MAP_FOCUS_ZOOM", 16)
	v.SetDefault("MAP_MAX_DISTANCE_KM", 10)

	v.SetDefault("LOG_LEVEL", "info")
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путем к файлу конфигурации.
// Отсутствие файла не ошибка: используются окружение и значения по умолчанию.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			Namespace: v.GetString("STORE_NAMESPACE"),
			TTL:       time.Duration(v.GetInt("STORE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			CookieName:  v.GetString("SESSION_COOKIE"),
			IdleTimeout: time.Duration(v.GetInt("SESSION_IDLE_TIMEOUT")) * time.Second,
		},
		Dataset: DatasetConfig{
			Path: v.GetString("DATASET_PATH"),
		},
		Map: MapConfig{
			Style:         v.GetString("MAP_STYLE"),
			APIKey:        v.GetString("MAP_API_KEY"),
			CenterLat:     v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:     v.GetFloat64("MAP_CENTER_LON"),
			Zoom:          v.GetFloat64("MAP_ZOOM"),
			FocusZoom:     v.GetFloat64("MAP_FOCUS_ZOOM"),
			MaxDistanceKm: v.GetFloat64("MAP_MAX_DISTANCE_KM"),
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

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis, StoreDriverPostgres, StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.Namespace == "" {
		return fmt.Errorf("STORE_NAMESPACE must not be empty")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
