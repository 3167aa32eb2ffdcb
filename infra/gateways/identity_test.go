package gateways

import (
	"regexp"
	"testing"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestUUIDGeneratorFormat(t *testing.T) {
	g := NewUUIDGenerator()
	for i := 0; i < 100; i++ {
		id, err := g.NewId()
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !uuidV4.MatchString(id) {
			t.Fatalf("Expected a lowercase v4 uuid, got %q", id)
		}
	}
}

func TestUUIDGeneratorUnique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id, err := g.NewId()
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("Duplicate id %s after %d draws", id, i)
		}
		seen[id] = struct{}{}
	}
}
