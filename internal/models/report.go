package models

// ReportKind - тип отчета в ленте активности
type ReportKind string

const (
	ReportArrived    ReportKind = "arrived"
	ReportOnRoad     ReportKind = "on_road"
	ReportLocation   ReportKind = "location"
	ReportAutomation ReportKind = "automation"
)

// Valid проверяет, что тип отчета известен
func (k ReportKind) Valid() bool {
	switch k {
	case ReportArrived, ReportOnRoad, ReportLocation, ReportAutomation:
		return true
	}
	return false
}

// ActivityReport - неизменяемый отчет, разосланный участнику семьи
type ActivityReport struct {
	ID              string     `json:"id"`
	SenderID        string     `json:"senderId"`
	SenderName      string     `json:"senderName"`
	Type            ReportKind `json:"type"`
	Timestamp       string     `json:"timestamp"`
	MapLink         string     `json:"mapLink,omitempty"`
	TargetMemberIDs []string   `json:"targetMemberIds,omitempty"`
	Message         string     `json:"message,omitempty"`
}
