package linkstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Popolzen/unreputable/internal/model"
	"github.com/Popolzen/unreputable/internal/repository"
	"github.com/Popolzen/unreputable/internal/validator"
	"go.uber.org/zap"
)

// LinkStore создаёт маски и разрешает их в реальные ссылки
type LinkStore struct {
	repo repository.LinkRepository
	log  *zap.SugaredLogger
}

func NewLinkStore(repo repository.LinkRepository, log *zap.SugaredLogger) *LinkStore {
	return &LinkStore{repo: repo, log: log}
}

// IsMaskAvailable проверяет, что маска валидна и ещё не занята
func (s *LinkStore) IsMaskAvailable(ctx context.Context, mask string) (bool, error) {
	mask, err := validator.RequireValidMask(mask)
	if err != nil {
		return false, err
	}

	_, err = s.repo.Get(ctx, mask)
	switch {
	case errors.Is(err, model.ErrLinkNotFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// CreateMaskedLink сохраняет маску для ссылки со счётчиком 0
func (s *LinkStore) CreateMaskedLink(ctx context.Context, mask, actual string) error {
	mask, err := validator.RequireValidMask(mask)
	if err != nil {
		return err
	}
	if err := validator.RequireValidLink(actual); err != nil {
		return err
	}

	available, err := s.IsMaskAvailable(ctx, mask)
	if err != nil {
		return err
	}
	if !available {
		return model.NewConflict("Unreputable URL already taken!")
	}

	// проверка выше не атомарна, гонку ловит уникальность в хранилище
	err = s.repo.Store(ctx, model.Link{Mask: mask, Actual: strings.TrimSpace(actual)})
	if errors.Is(err, model.ErrMaskExists) {
		return model.NewConflict("Unreputable URL already taken!")
	}
	return err
}

// ResolveMask возвращает реальную ссылку и увеличивает счётчик переходов.
// Ошибка счётчика только логируется.
func (s *LinkStore) ResolveMask(ctx context.Context, mask string) (string, bool, error) {
	link, found, err := s.GetMaskInfo(ctx, mask)
	if err != nil || !found {
		return "", found, err
	}

	if err := s.repo.IncrementHits(ctx, link.Mask); err != nil {
		s.log.Errorw("не удалось увеличить счётчик переходов", "mask", link.Mask, "error", err)
	}

	return link.Actual, true, nil
}

// GetMaskInfo возвращает запись целиком
func (s *LinkStore) GetMaskInfo(ctx context.Context, mask string) (model.Link, bool, error) {
	mask = strings.ToLower(strings.TrimSpace(mask))

	link, err := s.repo.Get(ctx, mask)
	if errors.Is(err, model.ErrLinkNotFound) {
		return model.Link{}, false, nil
	}
	if err != nil {
		return model.Link{}, false, err
	}
	return link, true, nil
}

// Ping проверяет доступность хранилища
func (s *LinkStore) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("хранилище недоступно: %w", err)
	}
	return nil
}
