package models

// GateState - состояние шлюза допуска водителя к работе.
// Данные панели водителя отдаются только в состоянии open.
type GateState string

const (
	GateChecking           GateState = "checking"
	GateBlockedNeedConsent GateState = "blocked_needs_consent"
	GateOpen               GateState = "open"
)
