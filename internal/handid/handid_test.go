package handid

import (
	"testing"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New()
		if err := Validate(id); err != nil {
			t.Fatalf("generated invalid id %q: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate("short"); err == nil {
		t.Error("expected length error")
	}
	if err := Validate("0123456789abcdefghjkmnpqrs"); err != nil {
		t.Errorf("expected valid id, got %v", err)
	}
	if err := Validate("0123456789abcdefghjkmnpqrU"); err == nil {
		t.Error("expected error for invalid character")
	}
	if err := Validate("0123456789abcdefghjkmnpqrl"); err == nil {
		t.Error("expected error for excluded alphabet letter")
	}
}

func TestIDsSortInCreationOrder(t *testing.T) {
	t.Parallel()

	// UUIDv7 is millisecond-prefixed; consecutive ids never sort backwards
	prev := New()
	for i := 0; i < 20; i++ {
		next := New()
		if next < prev {
			t.Fatalf("id %q sorts before earlier id %q", next, prev)
		}
		prev = next
	}
}
