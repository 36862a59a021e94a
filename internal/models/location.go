package models

import (
	"time"
)

// LocationSample представляет одно измерение позиции устройства.
// CapturedAt хранится в миллисекундах эпохи, как отдает мост устройства.
type LocationSample struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CapturedAt int64   `json:"captured_at"`
}

// CapturedTime возвращает момент измерения как time.Time
func (s *LocationSample) CapturedTime() time.Time {
	return time.UnixMilli(s.CapturedAt)
}
