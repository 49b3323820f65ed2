package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os/signal"
	"syscall"
	"time"

	"github.com/Popolzen/unreputable/internal/audit"
	"github.com/Popolzen/unreputable/internal/config"
	"github.com/Popolzen/unreputable/internal/config/db"
	"github.com/Popolzen/unreputable/internal/handler"
	"github.com/Popolzen/unreputable/internal/logger"
	"github.com/Popolzen/unreputable/internal/repository"
	"github.com/Popolzen/unreputable/internal/repository/database"
	"github.com/Popolzen/unreputable/internal/repository/filestorage"
	"github.com/Popolzen/unreputable/internal/repository/memory"
	"github.com/Popolzen/unreputable/internal/repository/sqlite"
	"github.com/Popolzen/unreputable/internal/service/linkstore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("неверная конфигурация: %w", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("не удалось инициализировать логгер: %w", err)
	}
	defer logger.Close()
	sugar := logger.Log()

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// pprof сервер на отдельном порту
	if cfg.PprofAddr != "" {
		go func() {
			sugar.Infof("pprof сервер запущен на http://%s/debug/pprof/", cfg.PprofAddr)
			if err := http.ListenAndServe(cfg.PprofAddr, nil); err != nil {
				sugar.Warnw("Ошибка pprof сервера", "error", err)
			}
		}()
	}

	repo, err := initRepository(ctx, cfg, sugar)
	if err != nil {
		return err
	}

	publisher := initAudit(cfg, sugar)
	store := linkstore.NewLinkStore(repo, sugar)

	app := &App{
		server: &http.Server{
			Addr:              cfg.GetAddress(),
			Handler:           handler.NewRouter(store, publisher, sugar),
			ReadHeaderTimeout: 5 * time.Second,
		},
		repo:      repo,
		publisher: publisher,
		log:       sugar,
	}

	serveErr := make(chan error, 1)
	go func() {
		sugar.Infof("Сервис запущен на http://%s", cfg.GetAddress())
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return serveFailure(app, err)
	case <-ctx.Done():
		sugar.Info("Получен сигнал остановки, завершаем работу...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		return err
	}

	sugar.Info("Сервис остановлен gracefully")
	return nil
}

// serveFailure закрывает ресурсы после падения сервера и возвращает обе ошибки
func serveFailure(app *App, err error) error {
	return errors.Join(fmt.Errorf("не удалось запустить сервер: %w", err), app.Close())
}

func printBuildInfo() {
	version := "N/A"
	date := "N/A"
	commit := "N/A"

	if buildVersion != "" {
		version = buildVersion
	}
	if buildDate != "" {
		date = buildDate
	}
	if buildCommit != "" {
		commit = buildCommit
	}

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}

// initRepository выбирает репозиторий в зависимости от конфигурации
func initRepository(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) (repository.LinkRepository, error) {
	switch cfg.StorageKind() {
	case config.StoragePostgres:
		dbInstance, err := db.NewDataBase(ctx, db.NewDBConfig(*cfg))
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
		}
		if err := dbInstance.Migrate(); err != nil {
			dbInstance.Close()
			return nil, fmt.Errorf("ошибка выполнения миграций: %w", err)
		}
		sugar.Infow("Используется БД репозиторий", "driver", dbInstance.Driver())
		return database.NewLinkRepository(dbInstance.DB), nil
	case config.StorageSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к SQLite: %w", err)
		}
		sugar.Info("Используется SQLite репозиторий")
		return repo, nil
	case config.StorageFile:
		repo, err := filestorage.NewLinkRepository(cfg.GetFilePath())
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки файла %s: %w", cfg.GetFilePath(), err)
		}
		sugar.Infow("Используется файл", "path", cfg.GetFilePath())
		return repo, nil
	default:
		sugar.Info("Используется память")
		return memory.NewLinkRepository(), nil
	}
}

// initAudit подписывает наблюдателей аудита из конфигурации
func initAudit(cfg *config.Config, sugar *zap.SugaredLogger) *audit.Publisher {
	publisher := audit.NewPublisher()

	if cfg.GetAuditFile() != "" {
		fileObs, err := audit.NewFileObserver(cfg.GetAuditFile(), sugar)
		if err != nil {
			sugar.Warnw("Не удалось создать file observer", "error", err)
		} else {
			publisher.Subscribe(fileObs)
			sugar.Infof("Аудит в файл: %s", cfg.GetAuditFile())
		}
	}

	if cfg.GetAuditURL() != "" {
		publisher.Subscribe(audit.NewHTTPObserver(cfg.GetAuditURL(), sugar))
		sugar.Infof("Аудит на сервер: %s", cfg.GetAuditURL())
	}

	return publisher
}
