package models

// NoticeKind - тип уведомления для UI-оболочки
type NoticeKind string

const (
	// NoticeModal - блокирующее окно, закрывается только успешной пробой
	NoticeModal NoticeKind = "modal"
	// NoticeToast - неблокирующее уведомление
	NoticeToast NoticeKind = "toast"
)

// Коды уведомлений, на которые UI мапит свои тексты
const (
	NoticeCapabilityAbsent    = "capability_absent"
	NoticePermissionDenied    = "permission_denied"
	NoticePositionUnavailable = "position_unavailable"
	NoticeTimeout             = "timeout"
	NoticeLocationOn          = "location_on"
	NoticeSessionResumed      = "session_resumed"
)

// Notice - уведомление, которое UI-оболочка забирает через статус сессии
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
	// Retryable показывает, имеет ли смысл кнопка повтора в модальном окне
	Retryable bool `json:"retryable"`
}
