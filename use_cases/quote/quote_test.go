package quote

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/giovaniif/shopping-cart/domain/cart"
	"github.com/giovaniif/shopping-cart/infra/repositories"
	"github.com/giovaniif/shopping-cart/use_cases/shopping"
)

type mockIdGenerator struct{}

func (m *mockIdGenerator) NewId() (string, error) { return "cart-42", nil }

type mockMetrics struct {
	totals int
}

func (m *mockMetrics) ObserveOperation(string, error, func(error) bool) {}
func (m *mockMetrics) ObserveTotal(float64) { m.totals++ }

func newQuote(metrics *mockMetrics) *Quote {
	s := shopping.NewShopping(
		repositories.NewCatalogRepositoryMemory(nil),
		&mockIdGenerator{},
		metrics,
		zap.NewNop(),
		noop.NewTracerProvider().Tracer("test"),
	)
	return NewQuote(s)
}

func TestQuote_Success(t *testing.T) {
	metrics := &mockMetrics{}
	uc := newQuote(metrics)

	out, err := uc.Quote(context.Background(), Input{
		CustomerId: "ABC12345XY-A",
		Lines:      []Line{{Name: "item1", Quantity: 2}, {Name: "item2", Quantity: 5}, {Name: "item1", Quantity: 1}},
		Remove:     []string{"item2"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.CartId != "cart-42" || out.CustomerId != "ABC12345XY-A" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(out.Items) != 1 || out.Items["item1"] != 1 {
		t.Fatalf("expected only item1x1, got %v", out.Items)
	}
	if out.Total != 10.99 {
		t.Fatalf("expected total 10.99, got %v", out.Total)
	}
	if metrics.totals != 1 {
		t.Fatalf("expected one total observed, got %d", metrics.totals)
	}
}

func TestQuote_EmptyCart(t *testing.T) {
	out, err := newQuote(&mockMetrics{}).Quote(context.Background(), Input{CustomerId: "ABC12345XY-Q"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if out.Total != 0 || len(out.Items) != 0 {
		t.Fatalf("expected empty quote, got %+v", out)
	}
}

func TestQuote_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{"invalid customer", Input{CustomerId: "INVALID"}, cart.ErrInvalidCustomerId},
		{"unknown item", Input{CustomerId: "ABC12345XY-A", Lines: []Line{{Name: "nonexistent", Quantity: 1}}}, cart.ErrItemNotInCatalog},
		{"bad quantity", Input{CustomerId: "ABC12345XY-A", Lines: []Line{{Name: "item1", Quantity: 0}}}, cart.ErrQuantityOutOfRange},
		{"remove absent", Input{CustomerId: "ABC12345XY-A", Remove: []string{"item3"}}, cart.ErrItemNotInCart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &mockMetrics{}
			_, err := newQuote(metrics).Quote(context.Background(), tt.input)
			if err != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if metrics.totals != 0 {
				t.Fatalf("expected no total on failure, got %d", metrics.totals)
			}
		})
	}
}
