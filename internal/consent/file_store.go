package consent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loadmatrix/driverd/internal/models"
)

// FileStore хранит согласия в JSON-файлах, по одному файлу на пользователя.
// Аналог localStorage браузерного клиента для десктопного агента.
type FileStore struct {
	dir string
}

// NewFileStore создает файловое хранилище согласий в каталоге dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("consent: could not create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("consent_%s.json", userID))
}

// Get читает запись пользователя; отсутствие файла не считается ошибкой
func (s *FileStore) Get(ctx context.Context, userID string) (*models.ConsentRecord, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("consent: could not read record: %w", err)
	}

	var record models.ConsentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// Битый файл равносилен отсутствию записи, шлюз пройдет полную пробу
		return nil, nil
	}
	return &record, nil
}

// Set записывает запись атомарно, через временный файл и rename
func (s *FileStore) Set(ctx context.Context, record *models.ConsentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("consent: could not marshal record: %w", err)
	}

	tmp := s.path(record.UserID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("consent: could not write record: %w", err)
	}
	if err := os.Rename(tmp, s.path(record.UserID)); err != nil {
		return fmt.Errorf("consent: could not commit record: %w", err)
	}
	return nil
}

// Delete удаляет запись пользователя; отсутствие файла не считается ошибкой
func (s *FileStore) Delete(ctx context.Context, userID string) error {
	if err := os.Remove(s.path(userID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("consent: could not delete record: %w", err)
	}
	return nil
}
