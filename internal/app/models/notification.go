package models

import "time"

type Notification struct {
	Type       string            `json:"type"`
	Recipient  string            `json:"recipient"`
	Subject    string            `json:"subject"`
	Payload    map[string]string `json:"payload"`
	OccurredAt time.Time         `json:"occurredAt"`
}
