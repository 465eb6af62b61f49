package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig          `toml:"server"`
	Database     DatabaseConfig        `toml:"database"`
	Logs         LogsConfig            `toml:"logs"`
	Metrics      MetricsConfig         `toml:"metrics"`
	Bokun        BokunConfig           `toml:"bokun"`
	Availability AvailabilityConfig    `toml:"availability"`
	Tours        map[string]TourConfig `toml:"tours"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int     `toml:"http_port"`
	ReadTimeout     int     `toml:"read_timeout"`     // секунды
	WriteTimeout    int     `toml:"write_timeout"`    // секунды
	IdleTimeout     int     `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int     `toml:"shutdown_timeout"` // секунды
	AdminUserIDs    []int64 `toml:"admin_user_ids"`   // пользователи бэк-офиса
}

// DatabaseConfig настройки подключения к Postgres
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

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BokunConfig настройки клиента внешнего источника броней
type BokunConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AvailabilityConfig настройки движка доступности
type AvailabilityConfig struct {
	CacheTTLSeconds int `toml:"cache_ttl_seconds"` // свежесть записи preload-кэша
	ScanHorizonDays int `toml:"scan_horizon_days"` // горизонт поиска ближайшей даты
	PreloadMaxDays  int `toml:"preload_max_days"`  // максимальный диапазон одного preload
}

// TourConfig конфигурация конкретного тура ([tours.<type>])
type TourConfig struct {
	MaxParticipants                        int      `toml:"max_participants"`
	TimeSlots                              []string `toml:"time_slots"`
	CancellationCutoffHours                int      `toml:"cancellation_cutoff_hours"`
	CancellationCutoffHoursWithParticipant int      `toml:"cancellation_cutoff_hours_with_participant"`
	NextDayCutoffTime                      string   `toml:"next_day_cutoff_time"` // "HH:MM", пусто = не используется
}

// Значения по умолчанию
const (
	defaultHTTPPort        = 8080
	defaultReadTimeout     = 10
	defaultWriteTimeout    = 10
	defaultIdleTimeout     = 60
	defaultShutdownTimeout = 15

	defaultCacheTTLSeconds = 300 // 5 минут
	defaultScanHorizonDays = 180 // ~6 месяцев
	defaultPreloadMaxDays  = 62  // два календарных месяца

	defaultBokunTimeout = 10
)

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = defaultIdleTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "tour-availability"
	}
	if c.Bokun.Timeout == 0 {
		c.Bokun.Timeout = defaultBokunTimeout
	}
	if c.Availability.CacheTTLSeconds == 0 {
		c.Availability.CacheTTLSeconds = defaultCacheTTLSeconds
	}
	if c.Availability.ScanHorizonDays == 0 {
		c.Availability.ScanHorizonDays = defaultScanHorizonDays
	}
	if c.Availability.PreloadMaxDays == 0 {
		c.Availability.PreloadMaxDays = defaultPreloadMaxDays
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Bokun.URL == "" {
		return fmt.Errorf("config: bokun.url is required")
	}
	if len(c.Tours) == 0 {
		return fmt.Errorf("config: at least one [tours.<type>] section is required")
	}
	for name, tour := range c.Tours {
		if tour.MaxParticipants <= 0 {
			return fmt.Errorf("config: tours.%s.max_participants must be positive", name)
		}
		if len(tour.TimeSlots) == 0 {
			return fmt.Errorf("config: tours.%s.time_slots must not be empty", name)
		}
		if tour.CancellationCutoffHours < 0 || tour.CancellationCutoffHoursWithParticipant < 0 {
			return fmt.Errorf("config: tours.%s cutoff hours must not be negative", name)
		}
	}
	return nil
}
