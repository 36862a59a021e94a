package geoloc

import (
	"errors"
	"fmt"
)

// ProbeErrorCode - категория отказа запроса позиции
type ProbeErrorCode string

const (
	// CodePermissionDenied - пользователь или система отозвали разрешение
	CodePermissionDenied ProbeErrorCode = "permission_denied"
	// CodePositionUnavailable - позиция временно недоступна
	CodePositionUnavailable ProbeErrorCode = "position_unavailable"
	// CodeTimeout - измерение не успело прийти за отведенное время
	CodeTimeout ProbeErrorCode = "timeout"
)

// ErrCapabilityAbsent - на устройстве вообще нет геолокации.
// Фатальная ошибка: повтор пробы не поможет.
var ErrCapabilityAbsent = errors.New("geoloc: capability absent on this device")

// ProbeError - типизированная ошибка запроса позиции
type ProbeError struct {
	Code ProbeErrorCode
	Err  error
}

func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geoloc: probe failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("geoloc: probe failed (%s)", e.Code)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// NewProbeError создает ProbeError с заданным кодом
func NewProbeError(code ProbeErrorCode, err error) *ProbeError {
	return &ProbeError{Code: code, Err: err}
}

// CodeOf возвращает код ошибки пробы или пустую строку, если ошибка не из таксономии
func CodeOf(err error) ProbeErrorCode {
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsPermissionDenied сообщает, вызван ли отказ потерей разрешения
func IsPermissionDenied(err error) bool {
	return CodeOf(err) == CodePermissionDenied
}
