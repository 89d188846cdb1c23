// Package config assembles runtime settings from defaults, an optional TOML
// file named by CONFIG_FILE, and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	OverdraftAllow  = "allow"
	OverdraftReject = "reject"

	NotificationOutbox = "outbox"
	NotificationDirect = "direct"
)

type Config struct {
	App       AppConfig       `toml:"app"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Kafka     KafkaConfig     `toml:"kafka"`
	JWT       JWTConfig       `toml:"jwt"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Leave     LeaveConfig     `toml:"leave"`
	Log       LogConfig       `toml:"log"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
}

type AppConfig struct {
	Env  string `toml:"env"`
	Port string `toml:"port"`
}

type DatabaseConfig struct {
	Host         string `toml:"host"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Name         string `toml:"name"`
	Port         string `toml:"port"`
	SSLMode      string `toml:"sslmode"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

type RedisConfig struct {
	Addr      string        `toml:"addr"`
	HRPoolTTL time.Duration `toml:"-"`
	// TOML has no duration type; "1h", "15m" and so on.
	StrHRPoolTTL string `toml:"hr_pool_ttl"`
}

type KafkaConfig struct {
	Broker            string        `toml:"broker"`
	NotificationGroup string        `toml:"notification_group"`
	PollInterval      time.Duration `toml:"-"`
	StrPollInterval   string        `toml:"poll_interval"`
}

type JWTConfig struct {
	Secret         string        `toml:"secret"`
	AccessTokenTTL time.Duration `toml:"-"`
	StrAccessTTL   string        `toml:"access_token_ttl"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type LeaveConfig struct {
	BaseAllocation   int    `toml:"base_allocation"`
	HRDepartment     string `toml:"hr_department"`
	OverdraftPolicy  string `toml:"overdraft_policy"`
	NotificationMode string `toml:"notification_mode"`
}

// BootstrapConfig names the HR account seeded at startup when it does not
// exist yet. Leaving HRUsername empty disables seeding.
type BootstrapConfig struct {
	HRUsername string `toml:"hr_username"`
	HRPassword string `toml:"hr_password"`
	HREmail    string `toml:"hr_email"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{Env: "development", Port: "3000"},
		Database: DatabaseConfig{
			Host:         "localhost",
			User:         "postgres",
			Name:         "leaveflow",
			Port:         "5432",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 10,
		},
		Redis: RedisConfig{Addr: "localhost:6379", StrHRPoolTTL: "1h"},
		Kafka: KafkaConfig{
			NotificationGroup: "go-leaveflow-notifier",
			StrPollInterval:   "3s",
		},
		JWT:  JWTConfig{StrAccessTTL: "8h"},
		SMTP: SMTPConfig{Port: 587, From: "no-reply@leaveflow.local"},
		Leave: LeaveConfig{
			BaseAllocation:   30,
			HRDepartment:     "Human Resource & Administration",
			OverdraftPolicy:  OverdraftAllow,
			NotificationMode: NotificationOutbox,
		},
		Log: LogConfig{Level: "info", MaxSizeMB: 50, MaxBackups: 5, MaxAgeDays: 28},
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setString(&cfg.App.Port, "PORT")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.StrHRPoolTTL, "REDIS_HR_POOL_TTL")

	setString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	setString(&cfg.Kafka.NotificationGroup, "KAFKA_NOTIFICATION_GROUP")
	setString(&cfg.Kafka.StrPollInterval, "OUTBOX_POLL_INTERVAL")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.JWT.StrAccessTTL, "JWT_ACCESS_TTL")

	setString(&cfg.SMTP.Host, "SMTP_HOST")
	setInt(&cfg.SMTP.Port, "SMTP_PORT")
	setString(&cfg.SMTP.User, "SMTP_USER")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.SMTP.From, "MAIL_FROM")

	setInt(&cfg.Leave.BaseAllocation, "LEAVE_BASE_ALLOCATION")
	setString(&cfg.Leave.HRDepartment, "HR_DEPARTMENT")
	setString(&cfg.Leave.OverdraftPolicy, "LEAVE_OVERDRAFT_POLICY")
	setString(&cfg.Leave.NotificationMode, "NOTIFICATION_MODE")

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.File, "LOG_FILE")

	setString(&cfg.Bootstrap.HRUsername, "BOOTSTRAP_HR_USERNAME")
	setString(&cfg.Bootstrap.HRPassword, "BOOTSTRAP_HR_PASSWORD")
	setString(&cfg.Bootstrap.HREmail, "BOOTSTRAP_HR_EMAIL")
}

func (c *Config) finalize() error {
	var err error

	if c.Redis.HRPoolTTL, err = time.ParseDuration(c.Redis.StrHRPoolTTL); err != nil {
		return fmt.Errorf("invalid hr_pool_ttl: %w", err)
	}
	if c.Kafka.PollInterval, err = time.ParseDuration(c.Kafka.StrPollInterval); err != nil {
		return fmt.Errorf("invalid poll_interval: %w", err)
	}
	if c.JWT.AccessTokenTTL, err = time.ParseDuration(c.JWT.StrAccessTTL); err != nil {
		return fmt.Errorf("invalid access_token_ttl: %w", err)
	}

	c.Leave.OverdraftPolicy = strings.ToLower(c.Leave.OverdraftPolicy)
	switch c.Leave.OverdraftPolicy {
	case OverdraftAllow, OverdraftReject:
	default:
		return fmt.Errorf("invalid overdraft policy %q", c.Leave.OverdraftPolicy)
	}

	c.Leave.NotificationMode = strings.ToLower(c.Leave.NotificationMode)
	switch c.Leave.NotificationMode {
	case NotificationOutbox, NotificationDirect:
	default:
		return fmt.Errorf("invalid notification mode %q", c.Leave.NotificationMode)
	}

	if c.Leave.BaseAllocation <= 0 {
		return fmt.Errorf("base allocation must be positive, got %d", c.Leave.BaseAllocation)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if (c.Bootstrap.HRUsername == "") != (c.Bootstrap.HRPassword == "") {
		return fmt.Errorf("BOOTSTRAP_HR_USERNAME and BOOTSTRAP_HR_PASSWORD must be set together")
	}
	if c.Bootstrap.HRPassword != "" && len(c.Bootstrap.HRPassword) < 8 {
		return fmt.Errorf("bootstrap hr password must be at least 8 characters")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
