package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Popolzen/unreputable/internal/audit"
	"github.com/Popolzen/unreputable/internal/repository"
	"go.uber.org/zap"
)

type App struct {
	server    *http.Server
	repo      repository.LinkRepository
	publisher *audit.Publisher
	log       *zap.SugaredLogger
}

// Close закрывает все ресурсы
func (a *App) Close() error {
	a.log.Info("Закрываем audit publisher...")
	if err := a.publisher.Close(); err != nil {
		a.log.Errorw("Ошибка закрытия publisher", "error", err)
	}

	a.log.Info("Закрываем репозиторий...")
	if err := a.repo.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия репозитория: %w", err)
	}

	return nil
}

// Shutdown выполняет graceful shutdown с таймаутом
func (a *App) Shutdown(ctx context.Context) error {
	a.log.Info("Останавливаем HTTP сервер...")
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}
	return a.Close()
}
