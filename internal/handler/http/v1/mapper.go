package v1

import (
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/position"
)

// DTOToFix преобразует DTO позиции в фикс датчика.
// Вызывается только после валидации, поэтому координаты заданы.
func DTOToFix(dto FixRequest) position.Fix {
	fix := position.Fix{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		Accuracy:  dto.Accuracy,
	}
	if dto.Timestamp != nil {
		fix.Timestamp = *dto.Timestamp
	}
	return fix
}

// DTOToRuleModel преобразует DTO создания правила в доменную модель.
// Центр задан после валидации, нулевые координаты допустимы.
func DTOToRuleModel(dto CreateAutomationRequest) models.GeofenceRule {
	return models.GeofenceRule{
		Name:              dto.Name,
		Latitude:          *dto.Latitude,
		Longitude:         *dto.Longitude,
		RadiusMeters:      dto.RadiusMeters,
		TriggerMemberIDs:  models.NewSelector(dto.TriggerMemberIDs...),
		ReceiverMemberIDs: models.NewSelector(dto.ReceiverMemberIDs...),
		Message:           dto.Message,
	}
}

// ModelToTrackingStatusResponse преобразует состояние трекера в DTO
func ModelToTrackingStatusResponse(status position.Status) TrackingStatusResponse {
	return TrackingStatusResponse{
		Active:    status.Active,
		Ready:     status.Ready,
		LastError: string(status.LastError),
	}
}
