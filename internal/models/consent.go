package models

import (
	"time"
)

// ConsentStatus - результат последнего запроса разрешения на геолокацию
type ConsentStatus string

const (
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
)

// ConsentRecord представляет закешированное согласие пользователя на геолокацию.
// Запись принадлежит только клиенту и на backend не отправляется.
type ConsentRecord struct {
	UserID    string        `json:"user_id"`
	Status    ConsentStatus `json:"status"`
	GrantedAt time.Time     `json:"granted_at"`
}

// Age возвращает возраст записи относительно переданного момента
func (r *ConsentRecord) Age(now time.Time) time.Duration {
	return now.Sub(r.GrantedAt)
}
