package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Calendar      CalendarConfig      `toml:"calendar"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig параметры календаря
type CalendarConfig struct {
	// Timezone часовой пояс бизнеса (IANA), в нем интерпретируются даты и рабочие часы
	Timezone            string `toml:"timezone"`
	DefaultSlotDuration int    `toml:"default_slot_duration"`
	DefaultWorkStart    string `toml:"default_work_start"`
	DefaultWorkEnd      string `toml:"default_work_end"`
	ScheduleRangeDays   int    `toml:"schedule_range_days"`
	AllowPastBookings   bool   `toml:"allow_past_bookings"`
}

// Location возвращает часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// NotificationsConfig параметры уведомлений клиентов
type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	From    string `toml:"from"`
	// WebhookURL адрес доставки уведомлений, пусто - только запись в лог
	WebhookURL string `toml:"webhook_url"`
	Timeout    int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла.
// Перед чтением подгружается .env (если есть), переменные окружения
// имеют приоритет над значениями из файла.
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "staff_scheduler",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "staff_scheduler",
		},
		Calendar: CalendarConfig{
			Timezone:            "UTC",
			DefaultSlotDuration: 60,
			DefaultWorkStart:    "09:00",
			DefaultWorkEnd:      "17:00",
			ScheduleRangeDays:   7,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			From:    "no-reply@staff-scheduler.local",
			Timeout: 5,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server.shutdown_timeout must be positive")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		problems = append(problems, "database.port must be in 1..65535")
	}
	if _, err := c.Calendar.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("calendar.timezone %q: %v", c.Calendar.Timezone, err))
	}
	if c.Calendar.DefaultSlotDuration <= 0 {
		problems = append(problems, "calendar.default_slot_duration must be positive")
	}
	if c.Notifications.WebhookURL != "" && c.Notifications.Timeout <= 0 {
		problems = append(problems, "notifications.timeout must be positive")
	}
	if c.Calendar.ScheduleRangeDays <= 0 {
		problems = append(problems, "calendar.schedule_range_days must be positive")
	}

	start, startErr := types.NewTimeStringFromString(c.Calendar.DefaultWorkStart)
	end, endErr := types.NewTimeStringFromString(c.Calendar.DefaultWorkEnd)
	switch {
	case startErr != nil || endErr != nil:
		problems = append(problems, "calendar.default_work_start/default_work_end must be HH:MM")
	case !start.IsBefore(end):
		problems = append(problems, "calendar.default_work_start must be before default_work_end")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// applyEnv переопределяет значения из переменных окружения
func applyEnv(c *Config) error {
	var invalid []string

	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, key)
			return
		}
		*dst = n
	}

	setInt("HTTP_PORT", &c.Server.HTTPPort)
	setString("DB_HOST", &c.Database.Host)
	setInt("DB_PORT", &c.Database.Port)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("DB_SSLMODE", &c.Database.SSLMode)
	setString("LOG_LEVEL", &c.Logs.Level)
	setString("CALENDAR_TIMEZONE", &c.Calendar.Timezone)
	setString("NOTIFICATIONS_WEBHOOK_URL", &c.Notifications.WebhookURL)

	if len(invalid) > 0 {
		return fmt.Errorf("%w: invalid environment values: %s", ErrInvalidConfig, strings.Join(invalid, ", "))
	}
	return nil
}
