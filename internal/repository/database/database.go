package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Popolzen/unreputable/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// LinkRepository хранит ссылки в PostgreSQL. Работает и с pgx, и с lib/pq.
type LinkRepository struct {
	DB *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{
		DB: db,
	}
}

// Get получает запись по маске
func (r *LinkRepository) Get(ctx context.Context, mask string) (model.Link, error) {
	var link model.Link
	query := `SELECT mask, actual, hits FROM links WHERE mask = $1`

	err := r.DB.QueryRowContext(ctx, query, mask).Scan(&link.Mask, &link.Actual, &link.Hits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Link{}, model.ErrLinkNotFound
		}
		return model.Link{}, fmt.Errorf("ошибка при получении ссылки: %w", err)
	}

	return link, nil
}

// Store сохраняет новую запись. Уникальность маски обеспечивает первичный ключ.
func (r *LinkRepository) Store(ctx context.Context, link model.Link) error {
	query := `INSERT INTO links (mask, actual, hits) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(ctx, query, link.Mask, link.Actual, link.Hits)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrMaskExists
		}
		return fmt.Errorf("ошибка при сохранении ссылки: %w", err)
	}

	return nil
}

// IncrementHits увеличивает счётчик одним UPDATE, без чтения
func (r *LinkRepository) IncrementHits(ctx context.Context, mask string) error {
	query := `UPDATE links SET hits = hits + 1 WHERE mask = $1`

	res, err := r.DB.ExecContext(ctx, query, mask)
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
	return r.DB.PingContext(ctx)
}

func (r *LinkRepository) Close() error {
	return r.DB.Close()
}

// isUniqueViolation распознаёт нарушение уникальности от обоих драйверов
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
