package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Popolzen/unreputable/internal/config"
	migration "github.com/Popolzen/unreputable/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// DBConfig содержит конфигурацию для подключения к БД
type DBConfig struct {
	DBurl  string
	Driver string
}

// DataBase представляет подключение к базе данных
type DataBase struct {
	*sql.DB
	config *DBConfig
}

// NewDBConfig создает новую конфигурацию БД
func NewDBConfig(c config.Config) DBConfig {
	driver := c.DatabaseDriver
	if driver == "" {
		driver = config.DefaultDatabaseDriver
	}
	return DBConfig{
		DBurl:  c.DatabaseDSN,
		Driver: driver,
	}
}

// NewDataBase открывает пул подключений и проверяет доступность БД
func NewDataBase(ctx context.Context, cfg DBConfig) (*DataBase, error) {
	db, err := sql.Open(cfg.Driver, cfg.DBurl)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть подключение: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("БД недоступна: %w", err)
	}
	return &DataBase{
		DB:     db,
		config: &cfg,
	}, nil
}

// Migrate накатывает миграции из каталога migrations
func (d *DataBase) Migrate() error {
	return migration.MigrateUp(d.DB)
}

// Driver возвращает имя драйвера database/sql
func (d *DataBase) Driver() string {
	return d.config.Driver
}
