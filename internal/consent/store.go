package consent

import (
	"context"

	"github.com/loadmatrix/driverd/internal/models"
)

// Store определяет контракт кеша согласий на геолокацию.
// Реализация может использовать любое локальное персистентное
// хранилище: файл, Redis и т.п. Свежесть записи - политика шлюза,
// хранилище записи по возрасту не инвалидирует.
type Store interface {
	// Get возвращает запись пользователя или (nil, nil), если записи нет
	Get(ctx context.Context, userID string) (*models.ConsentRecord, error)
	Set(ctx context.Context, record *models.ConsentRecord) error
	Delete(ctx context.Context, userID string) error
}
