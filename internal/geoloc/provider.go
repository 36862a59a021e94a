package geoloc

import (
	"context"
	"time"

	"github.com/loadmatrix/driverd/internal/models"
)

// ProbeOptions - параметры одиночного запроса позиции устройства
type ProbeOptions struct {
	// HighAccuracy запрашивает точную позицию (GPS вместо грубых источников)
	HighAccuracy bool
	// Timeout ограничивает время ожидания свежего измерения
	Timeout time.Duration
	// MaxFixAge - максимально допустимый возраст закешированного измерения.
	// Ноль означает, что закешированные измерения не принимаются.
	MaxFixAge time.Duration
}

// Provider определяет контракт одиночного запроса позиции устройства.
// Реализация возвращает либо координаты, либо типизированную ошибку
// из таксономии ProbeError.
type Provider interface {
	Current(ctx context.Context, opts ProbeOptions) (*models.LocationSample, error)
}
