package v1

import (
	"github.com/google/uuid"
)

// MountSessionRequest DTO для монтирования панели водителя
// @Description DTO для монтирования панели водителя
type MountSessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// NoticeResponse DTO уведомления для UI-оболочки
// @Description DTO уведомления для UI-оболочки
type NoticeResponse struct {
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// LocationResponse DTO последнего измерения позиции
// @Description DTO последнего измерения позиции
type LocationResponse struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CapturedAt int64   `json:"captured_at"`
}

// SessionStatusResponse DTO состояния смонтированной сессии
// @Description DTO состояния смонтированной сессии
type SessionStatusResponse struct {
	SessionID uuid.UUID         `json:"session_id"`
	UserID    string            `json:"user_id"`
	State     string            `json:"state"`
	Modal     *NoticeResponse   `json:"modal,omitempty"`
	Toasts    []NoticeResponse  `json:"toasts,omitempty"`
	Location  *LocationResponse `json:"location,omitempty"`
}

// GateStateResponse DTO состояния шлюза после повтора пробы
// @Description DTO состояния шлюза после повтора пробы
type GateStateResponse struct {
	State string `json:"state"`
}

// UpdateOrderStatusRequest DTO смены статуса заказа
// @Description DTO смены статуса заказа
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted picked delivering delivered cancelled"`
}

// UpdateProfileRequest DTO обновления профиля водителя
// @Description DTO обновления профиля водителя
type UpdateProfileRequest struct {
	Name          string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,min=5,max=32"`
	LicenseNumber string `json:"license_number,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// SupportMessageRequest DTO сообщения в чат поддержки
// @Description DTO сообщения в чат поддержки
type SupportMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}
