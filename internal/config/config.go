package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultServerAddr     = ":8080"
	DefaultFilePath       = "links.json"
	DefaultDatabaseDriver = DriverPgx
	DefaultLogLevel       = "info"
)

// Драйверы database/sql для PostgreSQL
const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

// Виды хранилища в порядке приоритета
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageFile     = "file"
	StorageMemory   = "memory"
)

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddr     string `json:"server_address" env:"SERVER_ADDRESS"`
	DatabaseDSN    string `json:"database_dsn" env:"DATABASE_DSN"`
	DatabaseDriver string `json:"database_driver" env:"DATABASE_DRIVER"`
	SQLitePath     string `json:"sqlite_path" env:"SQLITE_PATH"`
	FilePath       string `json:"file_storage_path" env:"FILE_STORAGE_PATH"`
	AuditFile      string `json:"audit_file" env:"AUDIT_FILE"`
	AuditURL       string `json:"audit_url" env:"AUDIT_URL"`
	PprofAddr      string `json:"pprof_address" env:"PPROF_ADDRESS"`
	LogLevel       string `json:"log_level" env:"LOG_LEVEL"`
}

// NewConfig собирает конфигурацию из файла, окружения и флагов и проверяет её.
// Ошибка возвращается до старта сервера.
func NewConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	c := &Config{
		ServerAddr:     DefaultServerAddr,
		FilePath:       DefaultFilePath,
		DatabaseDriver: DefaultDatabaseDriver,
		LogLevel:       DefaultLogLevel,
	}

	if err := c.loadFromFile(getConfigPath(args)); err != nil {
		return nil, err
	}
	if err := c.getArgsFromEnv(); err != nil {
		return nil, err
	}
	if err := c.getArgsFromCli(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func getConfigPath(args []string) string {
	for i, arg := range args {
		if (arg == "-c" || arg == "-config") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("CONFIG")
}

func (c *Config) loadFromFile(filename string) error {
	if filename == "" {
		return nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("неверный формат файла конфигурации %s: %w", filename, err)
	}
	return nil
}

func (c *Config) getArgsFromEnv() error {
	// .env необязателен
	_ = godotenv.Load()

	if err := env.Parse(c); err != nil {
		return fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}
	return nil
}

func (c *Config) getArgsFromCli(args []string) error {
	fs := flag.NewFlagSet("unreputable", flag.ContinueOnError)
	fs.StringVar(&c.ServerAddr, "a", c.ServerAddr, "server host")
	fs.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "database DSN")
	fs.StringVar(&c.DatabaseDriver, "driver", c.DatabaseDriver, "database driver: pgx or postgres")
	fs.StringVar(&c.SQLitePath, "l", c.SQLitePath, "sqlite file path or libsql URL")
	fs.StringVar(&c.FilePath, "f", c.FilePath, "file storage path")
	fs.StringVar(&c.AuditFile, "audit-file", c.AuditFile, "audit file path")
	fs.StringVar(&c.AuditURL, "audit-url", c.AuditURL, "audit server URL")
	fs.StringVar(&c.PprofAddr, "pprof", c.PprofAddr, "pprof server address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.String("c", "", "config file path")
	fs.String("config", "", "config file path")
	return fs.Parse(args)
}

// Validate проверяет конфигурацию целиком и возвращает все найденные проблемы
func (c Config) Validate() error {
	var errs []error

	if _, _, err := net.SplitHostPort(c.ServerAddr); err != nil {
		errs = append(errs, fmt.Errorf("неверный адрес сервера %q: %w", c.ServerAddr, err))
	}

	if c.DatabaseDSN != "" {
		if c.DatabaseDriver != DriverPgx && c.DatabaseDriver != DriverPq {
			errs = append(errs, fmt.Errorf("неизвестный драйвер БД %q: ожидается %s или %s", c.DatabaseDriver, DriverPgx, DriverPq))
		}
		if _, err := pgx.ParseConfig(c.DatabaseDSN); err != nil {
			errs = append(errs, fmt.Errorf("неверная строка подключения к БД: %w", err))
		}
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("неверный уровень логирования %q: %w", c.LogLevel, err))
	}

	if c.AuditURL != "" {
		u, err := url.ParseRequestURI(c.AuditURL)
		if err != nil || !strings.HasPrefix(u.Scheme, "http") {
			errs = append(errs, fmt.Errorf("неверный адрес сервера аудита %q", c.AuditURL))
		}
	}

	return errors.Join(errs...)
}

// StorageKind возвращает вид хранилища: БД, SQLite, файл или память
func (c Config) StorageKind() string {
	switch {
	case c.DatabaseDSN != "":
		return StoragePostgres
	case c.SQLitePath != "":
		return StorageSQLite
	case c.FilePath != "":
		return StorageFile
	default:
		return StorageMemory
	}
}

func (c Config) GetAddress() string {
	return c.ServerAddr
}

func (c Config) GetFilePath() string {
	return c.FilePath
}

func (c Config) GetAuditFile() string {
	return c.AuditFile
}

func (c Config) GetAuditURL() string {
	return c.AuditURL
}
