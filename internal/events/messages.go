package events

import (
	"encoding/json"
	"time"
)

// Entity kinds carried in change messages.
const (
	EntityExpense  = "expense"
	EntityDebt     = "debt"
	EntityCategory = "category"
)

// Actions carried in change messages.
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
	ActionSettled = "settled"
	ActionReset   = "reset"
)

// ChangeMessage is a lightweight notification that a collection changed.
// Consumers fetch whatever detail they need elsewhere; only the identity of
// the change travels on the wire.
type ChangeMessage struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(entity, action, id string) *ChangeMessage {
	return &ChangeMessage{
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
