package quote

import (
	"context"

	"github.com/giovaniif/shopping-cart/use_cases/shopping"
)

type Quote struct {
	shopping *shopping.Shopping
}

func NewQuote(shopping *shopping.Shopping) *Quote {
	return &Quote{
		shopping: shopping,
	}
}

// Quote opens a cart, applies every line and removal in order and prices the result.
// The first failing step aborts the quote.
func (q *Quote) Quote(ctx context.Context, input Input) (Output, error) {
	c, err := q.shopping.Open(ctx, input.CustomerId)
	if err != nil {
		return Output{}, err
	}
	for _, line := range input.Lines {
		if err := q.shopping.AddItem(ctx, c, line.Name, line.Quantity); err != nil {
			return Output{}, err
		}
	}
	for _, name := range input.Remove {
		if err := q.shopping.RemoveItem(ctx, c, name); err != nil {
			return Output{}, err
		}
	}
	return Output{
		CartId:     c.Id(),
		CustomerId: c.CustomerId(),
		Items:      c.Items(),
		Total:      q.shopping.Total(ctx, c),
	}, nil
}

type Line struct {
	Name     string
	Quantity int
}

type Input struct {
	CustomerId string
	Lines      []Line
	Remove     []string
}

type Output struct {
	CartId     string
	CustomerId string
	Items      map[string]int
	Total      float64
}
