package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types published to the bus.
type EventType string

const (
	EventActionRecorded   EventType = "arena.action.recorded"
	EventQuestCompleted   EventType = "arena.quest.completed"
	EventCategoryUnlocked EventType = "arena.category.unlocked"
	EventProgressReset    EventType = "arena.progress.reset"
)

// EventDraft is a domain event ready for publication. The account id doubles
// as the partition key so per-account ordering is preserved.
type EventDraft struct {
	EventID    uuid.UUID       `json:"eventId"`
	AccountID  string          `json:"accountId"`
	EventType  EventType       `json:"eventType"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewActionRecordedEvent creates the standard event for an appended action.
func NewActionRecordedEvent(accountID string, record ActionRecord) EventDraft {
	payload, _ := json.Marshal(record)
	return EventDraft{
		EventID:    uuid.New(),
		AccountID:  accountID,
		EventType:  EventActionRecorded,
		Payload:    payload,
		OccurredAt: record.OccurredAt,
	}
}

// NewQuestCompletedEvent creates a quest completion event.
func NewQuestCompletedEvent(accountID string, quest QuestDefinition, occurredAt time.Time) EventDraft {
	payload, _ := json.Marshal(map[string]interface{}{
		"questId":  quest.ID,
		"name":     quest.Name,
		"category": quest.Category,
		"points":   quest.Reward.Points,
		"badge":    quest.Reward.Badge,
	})
	return EventDraft{
		EventID:    uuid.New(),
		AccountID:  accountID,
		EventType:  EventQuestCompleted,
		Payload:    payload,
		OccurredAt: occurredAt,
	}
}

// NewProgressResetEvent creates an event for a full progress wipe.
func NewProgressResetEvent(accountID string, occurredAt time.Time) EventDraft {
	return EventDraft{
		EventID:    uuid.New(),
		AccountID:  accountID,
		EventType:  EventProgressReset,
		Payload:    json.RawMessage(`{}`),
		OccurredAt: occurredAt,
	}
}

// NewCategoryUnlockedEvent creates a category unlock event.
func NewCategoryUnlockedEvent(accountID string, category Category, occurredAt time.Time) EventDraft {
	payload, _ := json.Marshal(map[string]string{"category": string(category)})
	return EventDraft{
		EventID:    uuid.New(),
		AccountID:  accountID,
		EventType:  EventCategoryUnlocked,
		Payload:    payload,
		OccurredAt: occurredAt,
	}
}
