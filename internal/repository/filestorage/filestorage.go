package filestorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Popolzen/unreputable/internal/model"
	"github.com/google/uuid"
)

// LinkRepository держит записи в памяти и переписывает файл после каждого изменения
type LinkRepository struct {
	mu    sync.RWMutex
	links map[string]model.LinkRecord
	path  string
}

// NewLinkRepository загружает записи из файла. Отсутствующий или пустой файл даёт пустое хранилище.
func NewLinkRepository(path string) (*LinkRepository, error) {
	repo := &LinkRepository{
		links: map[string]model.LinkRecord{},
		path:  path,
	}

	if err := repo.loadLinks(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *LinkRepository) Get(_ context.Context, mask string) (model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.links[mask]
	if !exists {
		return model.Link{}, model.ErrLinkNotFound
	}
	return model.Link{Mask: record.Mask, Actual: record.Actual, Hits: record.Hits}, nil
}

func (r *LinkRepository) Store(_ context.Context, link model.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.links[link.Mask]; exists {
		return model.ErrMaskExists
	}
	r.links[link.Mask] = model.LinkRecord{
		UUID:   uuid.New().String(),
		Mask:   link.Mask,
		Actual: link.Actual,
		Hits:   link.Hits,
	}

	if err := r.saveLinks(); err != nil {
		delete(r.links, link.Mask)
		return err
	}
	return nil
}

func (r *LinkRepository) IncrementHits(_ context.Context, mask string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.links[mask]
	if !exists {
		return model.ErrLinkNotFound
	}
	record.Hits++
	r.links[mask] = record

	if err := r.saveLinks(); err != nil {
		record.Hits--
		r.links[mask] = record
		return err
	}
	return nil
}

func (r *LinkRepository) Ping(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// файла может ещё не быть до первой записи, тогда проверяем каталог
	_, err := os.Stat(r.path)
	if errors.Is(err, os.ErrNotExist) {
		_, err = os.Stat(filepath.Dir(r.path))
	}
	if err != nil {
		return fmt.Errorf("файл хранилища недоступен: %w", err)
	}
	return nil
}

func (r *LinkRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLinks()
}

// loadLinks загружает данные из файла в память
func (r *LinkRepository) loadLinks() error {
	file, err := os.OpenFile(r.path, os.O_RDONLY, 0644)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var records []model.LinkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("ошибка десериализации JSON: %w", err)
	}
	for _, record := range records {
		r.links[record.Mask] = record
	}
	return nil
}

// saveLinks переписывает файл целиком. Вызывается под блокировкой.
func (r *LinkRepository) saveLinks() error {
	records := make([]model.LinkRecord, 0, len(r.links))
	for _, record := range r.links {
		records = append(records, record)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("ошибка сериализации JSON: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}
	return nil
}
