package bus

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shenikar/igloo_sync/internal/models"
)

// MessageType - дискриминатор сообщения в канале синхронизации
type MessageType string

const (
	LocationUpdate    MessageType = "LOCATION_UPDATE"
	StatusUpdate      MessageType = "STATUS_UPDATE"
	MemberJoined      MessageType = "MEMBER_JOINED"
	MemberUpdated     MessageType = "MEMBER_UPDATED"
	AutomationsUpdate MessageType = "AUTOMATIONS_UPDATE"
)

var (
	ErrUnknownMessage   = errors.New("unknown message type")
	ErrMalformedMessage = errors.New("malformed message")
)

// Message - одно сообщение канала синхронизации (tagged union).
// Заполнены только поля, относящиеся к Type.
type Message struct {
	Type   MessageType
	Origin string

	MemberID  string
	Latitude  float64
	Longitude float64

	Report      *models.ActivityReport
	Member      *models.Member
	Automations []models.GeofenceRule
}

// NewLocationUpdate создает LOCATION_UPDATE
func NewLocationUpdate(memberID string, lat, lng float64) Message {
	return Message{Type: LocationUpdate, MemberID: memberID, Latitude: lat, Longitude: lng}
}

// NewStatusUpdate создает STATUS_UPDATE
func NewStatusUpdate(report models.ActivityReport) Message {
	return Message{Type: StatusUpdate, Report: &report}
}

// NewMemberJoined создает MEMBER_JOINED
func NewMemberJoined(member models.Member) Message {
	return Message{Type: MemberJoined, Member: &member}
}

// NewMemberUpdated создает MEMBER_UPDATED
func NewMemberUpdated(member models.Member) Message {
	return Message{Type: MemberUpdated, Member: &member}
}

// NewAutomationsUpdate создает AUTOMATIONS_UPDATE
func NewAutomationsUpdate(rules []models.GeofenceRule) Message {
	if rules == nil {
		rules = []models.GeofenceRule{}
	}
	return Message{Type: AutomationsUpdate, Automations: rules}
}

type envelope struct {
	Type   MessageType `json:"type"`
	Origin string      `json:"origin,omitempty"`
}

type locationPayload struct {
	envelope
	MemberID string  `json:"memberId"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type statusPayload struct {
	envelope
	Report *models.ActivityReport `json:"report"`
}

type memberPayload struct {
	envelope
	Member *models.Member `json:"member"`
}

type automationsPayload struct {
	envelope
	Automations []models.GeofenceRule `json:"automations"`
}

// Encode сериализует сообщение в JSON формата канала
func Encode(m Message) ([]byte, error) {
	env := envelope{Type: m.Type, Origin: m.Origin}

	var payload any
	switch m.Type {
	case LocationUpdate:
		payload = locationPayload{envelope: env, MemberID: m.MemberID, Lat: m.Latitude, Lng: m.Longitude}
	case StatusUpdate:
		payload = statusPayload{envelope: env, Report: m.Report}
	case MemberJoined, MemberUpdated:
		payload = memberPayload{envelope: env, Member: m.Member}
	case AutomationsUpdate:
		payload = automationsPayload{envelope: env, Automations: m.Automations}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, m.Type)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s message: %w", m.Type, err)
	}
	return data, nil
}

// Decode разбирает и проверяет сообщение канала
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	m := Message{Type: env.Type, Origin: env.Origin}
	switch env.Type {
	case LocationUpdate:
		var p locationPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		if p.MemberID == "" {
			return Message{}, fmt.Errorf("%w: LOCATION_UPDATE without memberId", ErrMalformedMessage)
		}
		m.MemberID, m.Latitude, m.Longitude = p.MemberID, p.Lat, p.Lng
	case StatusUpdate:
		var p statusPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		if p.Report == nil || p.Report.ID == "" {
			return Message{}, fmt.Errorf("%w: STATUS_UPDATE without report", ErrMalformedMessage)
		}
		m.Report = p.Report
	case MemberJoined, MemberUpdated:
		var p memberPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		if p.Member == nil || p.Member.ID == "" {
			return Message{}, fmt.Errorf("%w: %s without member", ErrMalformedMessage, env.Type)
		}
		m.Member = p.Member
	case AutomationsUpdate:
		var p automationsPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		if p.Automations == nil {
			return Message{}, fmt.Errorf("%w: AUTOMATIONS_UPDATE without automations", ErrMalformedMessage)
		}
		m.Automations = p.Automations
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownMessage, env.Type)
	}
	return m, nil
}
