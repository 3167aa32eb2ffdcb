package cart

import "regexp"

// Three uppercase letters, five digits, two uppercase letters, a hyphen, then A or Q.
var customerIdPattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{5}[A-Z]{2}-[AQ]$`)

func ValidCustomerId(customerId string) bool {
	return customerIdPattern.MatchString(customerId)
}
