package amqp

import "testing"

func TestSummaryRefreshMessageJSON(t *testing.T) {
	msg := NewSummaryRefreshMessage(42, "record_updated")
	if msg.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := SummaryRefreshMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.HouseholdID != 42 || got.Reason != "record_updated" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestSummaryRefreshMessageFromJSONInvalid(t *testing.T) {
	if _, err := SummaryRefreshMessageFromJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
