package events

import (
	"strings"
	"testing"
	"time"
)

func TestChangeMessageRoundTrip(t *testing.T) {
	msg := NewChangeMessage(EntityExpense, ActionCreated, "e1")

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back, err := ChangeMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Entity != EntityExpense || back.Action != ActionCreated || back.ID != "e1" {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if back.Timestamp.IsZero() || time.Since(back.Timestamp) > time.Minute {
		t.Errorf("bad timestamp: %s", back.Timestamp)
	}
}

func TestChangeMessageOmitsEmptyID(t *testing.T) {
	msg := NewChangeMessage(EntityCategory, ActionReset, "")
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"id"`) {
		t.Errorf("empty id should be omitted: %s", data)
	}
}

func TestChangeMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ChangeMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
