package memory

import (
	"context"
	"sync"

	"github.com/Popolzen/unreputable/internal/model"
)

type LinkRepository struct {
	mu    sync.RWMutex
	links map[string]model.Link
}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{
		links: map[string]model.Link{},
	}
}

func (r *LinkRepository) Get(_ context.Context, mask string) (model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if link, exists := r.links[mask]; exists {
		return link, nil
	}
	return model.Link{}, model.ErrLinkNotFound
}

func (r *LinkRepository) Store(_ context.Context, link model.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.links[link.Mask]; exists {
		return model.ErrMaskExists
	}
	r.links[link.Mask] = link
	return nil
}

func (r *LinkRepository) IncrementHits(_ context.Context, mask string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, exists := r.links[mask]
	if !exists {
		return model.ErrLinkNotFound
	}
	link.Hits++
	r.links[mask] = link
	return nil
}

func (r *LinkRepository) Ping(_ context.Context) error {
	return nil
}

func (r *LinkRepository) Close() error {
	return nil
}
