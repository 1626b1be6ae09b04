package amqp

import (
	"encoding/json"
	"time"
)

// SummaryRefreshMessage asks the worker to recompute a household's summary.
// It carries only the household ID; the worker reads the current records from
// the database so stale messages never overwrite newer data.
type SummaryRefreshMessage struct {
	HouseholdID int64     `json:"household_id"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewSummaryRefreshMessage(householdID int64, reason string) *SummaryRefreshMessage {
	return &SummaryRefreshMessage{
		HouseholdID: householdID,
		Reason:      reason,
		Timestamp:   time.Now(),
	}
}

func (m *SummaryRefreshMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SummaryRefreshMessageFromJSON(data []byte) (*SummaryRefreshMessage, error) {
	var msg SummaryRefreshMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
