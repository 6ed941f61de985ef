package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Config struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	Store      StoreConfig
	DB         DBConfig
	Kafka      KafkaConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
	Worker     WorkerConfig

	SeedDemo       bool `env:"SEED_DEMO" envDefault:"false"`
	ConnectRetries int  `env:"CONNECT_RETRIES" envDefault:"5"`
}

type StoreConfig struct {
	Driver      string `env:"STORE_DRIVER" envDefault:"memory"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"attendance.db"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"employee-register:"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"employee_register"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// KafkaConfig is optional; an empty Broker disables event publishing.
type KafkaConfig struct {
	Broker  string `env:"KAFKA_BROKER"`
	GroupID string `env:"KAFKA_GROUP_ID" envDefault:"employee-register-attendance"`
}

type AttendanceConfig struct {
	// A mark without explicit status after this clock time counts as late.
	LateAfter string `env:"LATE_AFTER" envDefault:"09:15"`
}

// LateAfterClock parses LATE_AFTER (HH:MM, 24h).
func (a AttendanceConfig) LateAfterClock() (hour, minute int, err error) {
	return parseClock("LATE_AFTER", a.LateAfter)
}

type PayrollConfig struct {
	MaleDailyRate   int `env:"PAYROLL_MALE_DAILY_RATE" envDefault:"450"`
	FemaleDailyRate int `env:"PAYROLL_FEMALE_DAILY_RATE" envDefault:"400"`
	ContractorFee   int `env:"PAYROLL_CONTRACTOR_FEE" envDefault:"50"`
}

type WorkerConfig struct {
	AutoAbsentAt string        `env:"AUTO_ABSENT_AT" envDefault:"18:00"`
	Tick         time.Duration `env:"WORKER_TICK" envDefault:"1m"`
}

// Load parses the process environment. Call godotenv.Load before it when a
// .env file should be honoured.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVER %q is not supported", c.Store.Driver)
	}
	if _, _, err := c.Worker.AutoAbsentClock(); err != nil {
		return err
	}
	if _, _, err := c.Attendance.LateAfterClock(); err != nil {
		return err
	}
	if c.Worker.Tick <= 0 {
		return fmt.Errorf("WORKER_TICK must be positive")
	}
	if c.Payroll.MaleDailyRate < 0 || c.Payroll.FemaleDailyRate < 0 || c.Payroll.ContractorFee < 0 {
		return fmt.Errorf("payroll rates must not be negative")
	}
	if c.ConnectRetries < 1 {
		return fmt.Errorf("CONNECT_RETRIES must be at least 1")
	}
	return nil
}

// AutoAbsentClock parses AUTO_ABSENT_AT (HH:MM, 24h).
func (w WorkerConfig) AutoAbsentClock() (hour, minute int, err error) {
	return parseClock("AUTO_ABSENT_AT", w.AutoAbsentAt)
}

func parseClock(name, v string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, 0, fmt.Errorf("%s %q must be HH:MM: %w", name, v, err)
	}
	return t.Hour(), t.Minute(), nil
}
