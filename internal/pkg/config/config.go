package config

import (
	"fmt"
	"time"

	"canteen-coupon/internal/pkg/password"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Canteen   CanteenConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"8h"`
}

// Single back-office account; the hash is a bcrypt digest.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	MinHashCost  int    `envconfig:"ADMIN_PASSWORD_MIN_COST" default:"10"`
}

type CanteenConfig struct {
	TimeZone        string `envconfig:"CANTEEN_TIMEZONE" default:"Asia/Kolkata"`
	BreakfastCutoff string `envconfig:"CUTOFF_BREAKFAST" default:"08:30"`
	LunchCutoff     string `envconfig:"CUTOFF_LUNCH" default:"12:30"`
	DinnerCutoff    string `envconfig:"CUTOFF_DINNER" default:"19:30"`
	SearchPageSize  int32  `envconfig:"COUPON_SEARCH_PAGE_SIZE" default:"200"`
}

type RateLimitConfig struct {
	OrdersPerSecond float64 `envconfig:"ORDER_RATE_LIMIT_RPS" default:"2"`
	Burst           int     `envconfig:"ORDER_RATE_LIMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c CanteenConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CANTEEN_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Cutoffs returns the configured "HH:MM" cutoff per meal type name.
func (c CanteenConfig) Cutoffs() map[string]string {
	return map[string]string{
		"Breakfast": c.BreakfastCutoff,
		"Lunch":     c.LunchCutoff,
		"Dinner":    c.DinnerCutoff,
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

const (
	TestAdminUsername = "admin"
	TestAdminPassword = "password123"

	testAdminHashCost = 4
)

func testAdminHash() string {
	h, err := password.Hash(TestAdminPassword, testAdminHashCost)
	if err != nil {
		panic(fmt.Sprintf("hash test admin password: %v", err))
	}
	return h
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: "8h",
		},
		Admin: AdminConfig{
			Username:     TestAdminUsername,
			PasswordHash: testAdminHash(),
			MinHashCost:  testAdminHashCost,
		},
		Canteen: CanteenConfig{
			TimeZone:        "Asia/Kolkata",
			BreakfastCutoff: "08:30",
			LunchCutoff:     "12:30",
			DinnerCutoff:    "19:30",
			SearchPageSize:  200,
		},
		RateLimit: RateLimitConfig{
			OrdersPerSecond: 1000,
			Burst:           1000,
		},
	}
}
