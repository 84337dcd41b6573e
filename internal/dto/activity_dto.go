package dto

import "time"

// RecordActivityMessage is the payload published to the activity topic and
// consumed by the study activity worker.
type RecordActivityMessage struct {
	Username   string                 `json:"username"`
	EventType  string                 `json:"event_type"`
	Subject    string                 `json:"subject,omitempty"`
	Chapter    string                 `json:"chapter,omitempty"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// ActivityHistoryRequest narrows and pages the study activity log. Zero
// values mean no filter and the default page.
type ActivityHistoryRequest struct {
	Subject   string
	EventType string
	Limit     int
	Offset    int
}

type StudyEventDTO struct {
	EventType  string                 `json:"event_type"`
	Subject    string                 `json:"subject,omitempty"`
	Chapter    string                 `json:"chapter,omitempty"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type ActivityHistoryResponse struct {
	Username string          `json:"username"`
	Total    int64           `json:"total"`
	Events   []StudyEventDTO `json:"events"`
}
