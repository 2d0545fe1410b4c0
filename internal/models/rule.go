package models

// GeofenceRule - круговая зона ("пузырь"), при входе в которую рассылается отчет
type GeofenceRule struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Latitude          float64  `json:"lat"`
	Longitude         float64  `json:"lng"`
	RadiusMeters      float64  `json:"radius"`
	TriggerMemberIDs  Selector `json:"triggerMemberIds"`
	ReceiverMemberIDs Selector `json:"receiverMemberIds"`
	Message           string   `json:"message"`
	Enabled           bool     `json:"enabled"`
}

// SelectorTarget - какой из селекторов правила изменяется
type SelectorTarget string

const (
	TargetTrigger  SelectorTarget = "trigger"
	TargetReceiver SelectorTarget = "receiver"
)
