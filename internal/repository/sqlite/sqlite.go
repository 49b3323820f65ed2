// Package sqlite хранит ссылки в SQLite: локальный файл через modernc.org/sqlite
// или удалённая база libSQL (libsql://, wss://).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Popolzen/unreputable/internal/model"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS links (
  mask       TEXT    NOT NULL PRIMARY KEY,
  actual     TEXT    NOT NULL,
  hits       INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type LinkRepository struct {
	db *sql.DB
}

// Open открывает базу, выбирая драйвер по адресу, и создаёт таблицу
func Open(ctx context.Context, dsn string) (*LinkRepository, error) {
	driver := driverName(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// один писатель на файл
		db.SetMaxOpenConns(1)
		_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;")
		_, _ = db.ExecContext(ctx, "PRAGMA journal_mode = WAL;")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("база %s недоступна: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать таблицу links: %w", err)
	}

	return &LinkRepository{db: db}, nil
}

func driverName(dsn string) string {
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") || strings.HasPrefix(dsn, "https://") {
		return "libsql"
	}
	return "sqlite"
}

func (r *LinkRepository) Get(ctx context.Context, mask string) (model.Link, error) {
	var link model.Link
	const q = `SELECT mask, actual, hits FROM links WHERE mask = ? LIMIT 1;`

	err := r.db.QueryRowContext(ctx, q, mask).Scan(&link.Mask, &link.Actual, &link.Hits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Link{}, model.ErrLinkNotFound
		}
		return model.Link{}, fmt.Errorf("ошибка при получении ссылки: %w", err)
	}
	return link, nil
}

// Store вставляет запись. Занятая маска даёт ноль затронутых строк.
func (r *LinkRepository) Store(ctx context.Context, link model.Link) error {
	const q = `INSERT INTO links (mask, actual, hits) VALUES (?, ?, ?) ON CONFLICT(mask) DO NOTHING;`

	res, err := r.db.ExecContext(ctx, q, link.Mask, link.Actual, link.Hits)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении ссылки: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при сохранении ссылки: %w", err)
	}
	if n == 0 {
		return model.ErrMaskExists
	}
	return nil
}

func (r *LinkRepository) IncrementHits(ctx context.Context, mask string) error {
	const q = `UPDATE links SET hits = hits + 1 WHERE mask = ?;`

	res, err := r.db.ExecContext(ctx, q, mask)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении счётчика: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при обновлении счётчика: %w", err)
	}
	if n == 0 {
		return model.ErrLinkNotFound
	}
	return nil
}

func (r *LinkRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *LinkRepository) Close() error {
	return r.db.Close()
}
