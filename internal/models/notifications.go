package models

import "time"

// Notification severities
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notification is a discrete UI event emitted by the core, e.g. "item added"
// or a stock warning. The sink is fire-and-forget.
type Notification struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Read     bool      `json:"read"`
	Time     time.Time `json:"time"`
}

// TitleFor maps a severity to the title shown in the notification bell.
func TitleFor(severity string) string {
	switch severity {
	case SeveritySuccess:
		return "Sucesso"
	case SeverityWarning:
		return "Atenção"
	case SeverityError:
		return "Erro"
	default:
		return "Informação"
	}
}
