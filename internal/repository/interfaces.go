package repository

import (
	"context"

	"github.com/Popolzen/unreputable/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// LinkRepository хранилище таблицы links.
//
// Get возвращает model.ErrLinkNotFound, если маски нет.
// Store возвращает model.ErrMaskExists, если маска уже занята.
// IncrementHits атомарно увеличивает счётчик на единицу.
type LinkRepository interface {
	Get(ctx context.Context, mask string) (model.Link, error)
	Store(ctx context.Context, link model.Link) error
	IncrementHits(ctx context.Context, mask string) error
	Ping(ctx context.Context) error
	Close() error
}
