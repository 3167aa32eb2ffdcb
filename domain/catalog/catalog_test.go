package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultSeed(t *testing.T) {
	c := Default()
	expected := map[string]string{"item1": "10.99", "item2": "5.49", "item3": "20"}
	if c.Len() != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), c.Len())
	}
	for name, price := range expected {
		got, ok := c.Price(name)
		if !ok {
			t.Fatalf("Expected %s in catalog", name)
		}
		if !got.Equal(decimal.RequireFromString(price)) {
			t.Errorf("Expected %s to cost %s, got %s", name, price, got)
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Errorf("Expected the default catalog to be a single shared instance")
	}
}

func TestNewRejectsNegativePrice(t *testing.T) {
	_, err := New(map[string]decimal.Decimal{"broken": decimal.NewFromInt(-1)})
	if !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("Expected ErrNegativePrice, got %v", err)
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New(map[string]decimal.Decimal{"": decimal.Zero})
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Expected ErrEmptyName, got %v", err)
	}
}

func TestNewCopiesInput(t *testing.T) {
	prices := map[string]decimal.Decimal{"a": decimal.NewFromInt(1)}
	c, err := New(prices)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	prices["b"] = decimal.NewFromInt(2)
	if c.Contains("b") {
		t.Errorf("Expected catalog to be unaffected by later changes to its input")
	}
}

func TestNamesSorted(t *testing.T) {
	c := MustNew(map[string]decimal.Decimal{
		"zeta":  decimal.Zero,
		"alpha": decimal.Zero,
		"mid":   decimal.Zero,
	})
	names := c.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, names)
		}
	}
}
