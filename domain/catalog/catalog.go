package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("catalog item name is empty")
	ErrNegativePrice = errors.New("catalog price is negative")
)

// Catalog is a read-only price list. It is safe to share between carts.
type Catalog struct {
	prices map[string]decimal.Decimal
}

var defaultCatalog = MustNew(map[string]decimal.Decimal{
	"item1": decimal.RequireFromString("10.99"),
	"item2": decimal.RequireFromString("5.49"),
	"item3": decimal.RequireFromString("20.00"),
})

// Default returns the fixed seed catalog.
func Default() *Catalog {
	return defaultCatalog
}

func New(prices map[string]decimal.Decimal) (*Catalog, error) {
	copied := make(map[string]decimal.Decimal, len(prices))
	for name, price := range prices {
		if name == "" {
			return nil, ErrEmptyName
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: %s costs %s", ErrNegativePrice, name, price)
		}
		copied[name] = price
	}
	return &Catalog{prices: copied}, nil
}

func MustNew(prices map[string]decimal.Decimal) *Catalog {
	c, err := New(prices)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Price(name string) (decimal.Decimal, bool) {
	price, ok := c.prices[name]
	return price, ok
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.prices[name]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.prices)
}

// Names returns the item names in lexical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.prices))
	for name := range c.prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
