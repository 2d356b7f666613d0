package pkg

import (
	"testing"
	"time"
)

func TestParseULID(t *testing.T) {
	id := GenerateULIDObject()

	parsed, err := ParseULID(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != id {
		t.Fatalf("expected %s, got %s", id, parsed)
	}

	if _, err := ParseULID(""); err == nil {
		t.Fatalf("expected error for empty string")
	}
	if _, err := ParseULID("not-a-ulid"); err == nil {
		t.Fatalf("expected error for malformed ULID")
	}
}

func TestSetTimestampsPrecision(t *testing.T) {
	now := SetTimestamps()
	if now.Location() != time.UTC {
		t.Fatalf("expected UTC, got %s", now.Location())
	}
	if now.Nanosecond()%1000 != 0 {
		t.Fatalf("expected microsecond precision, got %d ns", now.Nanosecond())
	}
}
