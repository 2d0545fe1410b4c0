package models

// SelfID - идентификатор локального участника внутри одного инстанса
const SelfID = "me"

// MemberStatus - статус присутствия участника
type MemberStatus string

const (
	StatusHome    MemberStatus = "home"
	StatusMoving  MemberStatus = "moving"
	StatusAway    MemberStatus = "away"
	StatusOffline MemberStatus = "offline"
)

// Member представляет участника семьи и его последнюю известную позицию.
// Координаты (0,0) означают "позиция неизвестна".
type Member struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Latitude    float64      `json:"lat"`
	Longitude   float64      `json:"lng"`
	LastSeen    string       `json:"lastSeen"`
	Status      MemberStatus `json:"status"`
	AvatarColor string       `json:"avatarColor"`
	AvatarIcon  string       `json:"avatarIcon"`
}

// HasPosition сообщает, известна ли позиция участника
func (m Member) HasPosition() bool {
	return m.Latitude != 0 || m.Longitude != 0
}
