package selftest

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/giovaniif/shopping-cart/domain/cart"
	"github.com/giovaniif/shopping-cart/use_cases/shopping"
)

const (
	CustomerId = "ABC12345XY-A"
	tolerance  = 1e-4
)

var ErrNoError = errors.New("operation succeeded but an error was expected")

// Check is one assertion of the demonstration. A nil Err means it passed.
type Check struct {
	Name string
	Err  error
}

func (c Check) Passed() bool {
	return c.Err == nil
}

type Report struct {
	Calculated float64
	Expected   float64
	Checks     []Check
}

func (r Report) Passed() bool {
	return len(r.Failures()) == 0
}

func (r Report) Failures() []Check {
	var failures []Check
	for _, check := range r.Checks {
		if !check.Passed() {
			failures = append(failures, check)
		}
	}
	return failures
}

type SelfTest struct {
	shopping *shopping.Shopping
}

func NewSelfTest(shopping *shopping.Shopping) *SelfTest {
	return &SelfTest{
		shopping: shopping,
	}
}

// Run drives the fixed demonstration against the default catalog. Every
// assertion is recorded in the report; an error is returned only when a step
// that must succeed does not, which ends the run early.
func (s *SelfTest) Run(ctx context.Context) (Report, error) {
	var report Report

	c, err := s.shopping.Open(ctx, CustomerId)
	if err != nil {
		return report, err
	}
	if err := s.shopping.AddItem(ctx, c, "item1", 2); err != nil {
		return report, err
	}
	if err := s.shopping.AddItem(ctx, c, "item2", 5); err != nil {
		return report, err
	}

	report.Calculated = s.shopping.Total(ctx, c)
	report.Expected = 2*10.99 + 5*5.49
	report.Checks = append(report.Checks, Check{Name: "total cost", Err: within(report.Calculated, report.Expected)})

	if err := s.shopping.RemoveItem(ctx, c, "item1"); err != nil {
		return report, err
	}
	var remaining error
	if n := c.Len(); n != 1 {
		remaining = fmt.Errorf("expected 1 item after removal, got %d", n)
	}
	report.Checks = append(report.Checks, Check{Name: "remove item", Err: remaining})

	_, err = s.shopping.Open(ctx, "INVALID")
	report.Checks = append(report.Checks, Check{Name: "invalid customer id", Err: expectFailure(err, cart.ErrInvalidCustomerId)})

	err = s.shopping.AddItem(ctx, c, "nonexistent", 1)
	report.Checks = append(report.Checks, Check{Name: "unknown item", Err: expectFailure(err, cart.ErrItemNotInCatalog)})

	err = s.shopping.AddItem(ctx, c, "item1", 0)
	report.Checks = append(report.Checks, Check{Name: "invalid quantity", Err: expectFailure(err, cart.ErrQuantityOutOfRange)})

	return report, nil
}

func within(got, want float64) error {
	if math.Abs(got-want) >= tolerance {
		return fmt.Errorf("expected total %v, got %v", want, got)
	}
	return nil
}

func expectFailure(err error, want *cart.InvalidArgumentError) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrNoError, want.Message)
	}
	if err.Error() != want.Message {
		return fmt.Errorf("expected %q, got %q", want.Message, err.Error())
	}
	return nil
}
