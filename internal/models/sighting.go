package models

import "time"

// SightingSource - откуда пришла позиция
type SightingSource string

const (
	SightingSelf SightingSource = "self"
	SightingPeer SightingSource = "peer"
)

// Sighting - запись о принятой позиции участника
type Sighting struct {
	ID        int64          `json:"id"`
	MemberID  string         `json:"member_id"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Source    SightingSource `json:"source"`
	SeenAt    time.Time      `json:"seen_at"`
}
