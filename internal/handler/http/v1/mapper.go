package v1

import (
	"github.com/loadmatrix/driverd/internal/models"
	"github.com/loadmatrix/driverd/internal/session"
)

// NoticeToResponse преобразует уведомление в DTO для ответа
func NoticeToResponse(notice *models.Notice) *NoticeResponse {
	if notice == nil {
		return nil
	}
	return &NoticeResponse{
		Kind:      string(notice.Kind),
		Code:      notice.Code,
		Message:   notice.Message,
		Retryable: notice.Retryable,
	}
}

// NoticesToResponses преобразует слайс уведомлений в слайс DTO
func NoticesToResponses(notices []models.Notice) []NoticeResponse {
	if len(notices) == 0 {
		return nil
	}
	responses := make([]NoticeResponse, len(notices))
	for i := range notices {
		responses[i] = *NoticeToResponse(&notices[i])
	}
	return responses
}

// LocationToResponse преобразует измерение позиции в DTO для ответа
func LocationToResponse(sample *models.LocationSample) *LocationResponse {
	if sample == nil {
		return nil
	}
	return &LocationResponse{
		Lat:        sample.Lat,
		Lng:        sample.Lng,
		CapturedAt: sample.CapturedAt,
	}
}

// StatusToResponse преобразует снимок сессии в DTO для ответа
func StatusToResponse(status session.Status) SessionStatusResponse {
	return SessionStatusResponse{
		SessionID: status.SessionID,
		UserID:    status.UserID,
		State:     string(status.State),
		Modal:     NoticeToResponse(status.Modal),
		Toasts:    NoticesToResponses(status.Toasts),
		Location:  LocationToResponse(status.Location),
	}
}
