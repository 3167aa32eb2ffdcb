package cart

import (
	"fmt"
	"maps"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/giovaniif/shopping-cart/domain/catalog"
)

const (
	MinQuantity = 1
	MaxQuantity = 100
)

var validate = validator.New()

var quantityRule = fmt.Sprintf("min=%d,max=%d", MinQuantity, MaxQuantity)

type Cart struct {
	id         string
	customerId string
	catalog    *catalog.Catalog

	mu    sync.RWMutex
	items map[string]int
}

// New validates customerId and returns an empty cart priced against c.
// A nil catalog falls back to catalog.Default().
func New(customerId string, c *catalog.Catalog, ids IdGenerator) (*Cart, error) {
	if !ValidCustomerId(customerId) {
		return nil, ErrInvalidCustomerId
	}
	if c == nil {
		c = catalog.Default()
	}
	id, err := ids.NewId()
	if err != nil {
		return nil, fmt.Errorf("generate cart id: %w", err)
	}
	return &Cart{
		id:         id,
		customerId: customerId,
		catalog:    c,
		items:      make(map[string]int),
	}, nil
}

func (c *Cart) Id() string {
	return c.id
}

func (c *Cart) CustomerId() string {
	return c.customerId
}

func (c *Cart) Catalog() *catalog.Catalog {
	return c.catalog
}

// Items returns a copy of the item to quantity mapping.
func (c *Cart) Items() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.items)
}

func (c *Cart) Quantity(name string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	quantity, ok := c.items[name]
	return quantity, ok
}

func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// AddItem sets the quantity for name, replacing any previous quantity.
func (c *Cart) AddItem(name string, quantity int) error {
	if !c.catalog.Contains(name) {
		return ErrItemNotInCatalog
	}
	if err := validate.Var(quantity, quantityRule); err != nil {
		return ErrQuantityOutOfRange
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[name] = quantity
	return nil
}

func (c *Cart) RemoveItem(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[name]; !ok {
		return ErrItemNotInCart
	}
	delete(c.items, name)
	return nil
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
}

// Subtotal is the exact sum of price * quantity over the current items.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := decimal.Zero
	for name, quantity := range c.items {
		price, _ := c.catalog.Price(name)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return total
}

func (c *Cart) TotalCost() float64 {
	return c.Subtotal().InexactFloat64()
}
