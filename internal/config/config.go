package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Booking       BookingConfig       `toml:"booking"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	AdminToken      string `toml:"admin_token"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры вместимости и окна работы
type BookingConfig struct {
	RoomCapacity               int    `toml:"room_capacity"`
	OpeningTime                string `toml:"opening_time"` // "HH:MM"
	ClosingTime                string `toml:"closing_time"` // "HH:MM"
	SlotGranularityMinutes     int    `toml:"slot_granularity_minutes"`
	SightseeingDurationMinutes int    `toml:"sightseeing_duration_minutes"`
	WorkshopDurationMinutes    int    `toml:"workshop_duration_minutes"`
}

// Policy собирает domain.BookingPolicy из конфигурации,
// подставляя дефолты для незаполненных полей
func (b BookingConfig) Policy() (domain.BookingPolicy, error) {
	policy := domain.DefaultBookingPolicy()

	if b.RoomCapacity > 0 {
		policy.RoomCapacity = b.RoomCapacity
	}
	if b.SlotGranularityMinutes > 0 {
		policy.SlotGranularityMinutes = b.SlotGranularityMinutes
	}
	if b.OpeningTime != "" {
		open, err := types.NewTimeStringFromString(b.OpeningTime)
		if err != nil {
			return policy, fmt.Errorf("config: invalid opening_time %q: %w", b.OpeningTime, err)
		}
		policy.OpeningTime = open
	}
	if b.ClosingTime != "" {
		closing, err := types.NewTimeStringFromString(b.ClosingTime)
		if err != nil {
			return policy, fmt.Errorf("config: invalid closing_time %q: %w", b.ClosingTime, err)
		}
		policy.ClosingTime = closing
	}
	if !policy.OpeningTime.IsBefore(policy.ClosingTime) {
		return policy, fmt.Errorf("config: opening_time %s must be before closing_time %s",
			policy.OpeningTime, policy.ClosingTime)
	}
	if b.SightseeingDurationMinutes > 0 {
		policy.Durations[domain.TypeSightseeing] = b.SightseeingDurationMinutes
	}
	if b.WorkshopDurationMinutes > 0 {
		policy.Durations[domain.TypeWorkshop] = b.WorkshopDurationMinutes
	}

	return policy, nil
}

// NotificationsConfig настройки внешних каналов уведомлений
type NotificationsConfig struct {
	Enabled bool `toml:"enabled"`

	MailerURL     string `toml:"mailer_url"`
	MailerTimeout int    `toml:"mailer_timeout"` // секунды
	MailFrom      string `toml:"mail_from"`

	TelegramAPIURL  string `toml:"telegram_api_url"`
	TelegramToken   string `toml:"telegram_token"`
	TelegramChatID  int64  `toml:"telegram_chat_id"`
	TelegramTimeout int    `toml:"telegram_timeout"` // секунды

	DispatchTimeout int `toml:"dispatch_timeout"` // секунды, на всю отправку
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "gh-visit-service"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/service.log"
	}

	return &cfg, nil
}
