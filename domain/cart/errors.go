package cart

import "errors"

// ErrInvalidArgument matches every validation failure raised by a Cart.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidCustomerId  = &InvalidArgumentError{Message: "Invalid customer ID format."}
	ErrItemNotInCatalog   = &InvalidArgumentError{Message: "Item not found in catalog."}
	ErrQuantityOutOfRange = &InvalidArgumentError{Message: "Quantity must be between 1 and 100."}
	ErrItemNotInCart      = &InvalidArgumentError{Message: "Item not found in the cart."}
)

type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
