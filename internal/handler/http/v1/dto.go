package v1

import (
	"time"
)

// FixRequest DTO позиции, полученной устройством
// @Description DTO позиции, полученной устройством
type FixRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Accuracy  float64    `json:"accuracy,omitempty" validate:"gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// SensorErrorRequest DTO сбоя датчика
// @Description DTO сбоя датчика
type SensorErrorRequest struct {
	Kind string `json:"kind" validate:"required,oneof=UNSUPPORTED PERMISSION_DENIED TIMEOUT SIGNAL_LOST"`
}

// BroadcastRequest DTO ручного отчета
// @Description DTO ручного отчета
type BroadcastRequest struct {
	Type string `json:"type" validate:"required,oneof=arrived on_road location"`
}

// CreateAutomationRequest DTO для создания правила геозоны
// @Description DTO для создания правила геозоны
type CreateAutomationRequest struct {
	Name              string   `json:"name" validate:"max=64"`
	Latitude          *float64 `json:"lat" validate:"required,latitude"`
	Longitude         *float64 `json:"lng" validate:"required,longitude"`
	RadiusMeters      float64  `json:"radius" validate:"gte=0"`
	TriggerMemberIDs  []string `json:"triggerMemberIds"`
	ReceiverMemberIDs []string `json:"receiverMemberIds"`
	Message           string   `json:"message" validate:"max=140"`
}

// ToggleAutomationMemberRequest DTO переключения участника в селекторе правила
// @Description DTO переключения участника в селекторе правила
type ToggleAutomationMemberRequest struct {
	Target   string `json:"target" validate:"required,oneof=trigger receiver"`
	MemberID string `json:"memberId" validate:"required"`
}

// JoinFamilyRequest DTO для входа в семью по коду
// @Description DTO для входа в семью по коду
type JoinFamilyRequest struct {
	Code string `json:"code" validate:"required,min=4,max=32"`
}

// FamilyCodeResponse DTO с кодом созданной семьи
// @Description DTO с кодом созданной семьи
type FamilyCodeResponse struct {
	FamilyID string `json:"familyId"`
}

// UpdateProfileRequest DTO для изменения профиля локального участника
// @Description DTO для изменения профиля локального участника
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required_without=Icon,max=32"`
	Icon string `json:"icon" validate:"max=32"`
}

// TrackingStatusResponse DTO состояния отслеживания позиции
// @Description DTO состояния отслеживания позиции
type TrackingStatusResponse struct {
	Active    bool   `json:"active"`
	Ready     bool   `json:"ready"`
	LastError string `json:"last_error,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ActiveMembers int `json:"active_members"`
}
