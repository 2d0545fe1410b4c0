package models

// GroupState - сохраняемое состояние семьи
type GroupState struct {
	FamilyID    string         `json:"familyId"`
	FamilyName  string         `json:"familyName"`
	Members     []Member       `json:"members"`
	Automations []GeofenceRule `json:"automations"`
}
