package services

import (
	"errors"
	"math"
)

// totalTolerance is one unit of currency, allowing for rounding drift in the
// client's arithmetic.
const totalTolerance = 1.0

var ErrTotalMismatch = errors.New("total amount mismatch")

// ReconcileTotal verifies that the client-submitted total matches
// subtotal - discount + shippingCost within the tolerance. It guards the
// internal arithmetic consistency of the submitted numbers only; line prices
// are not re-checked against the catalog here.
func ReconcileTotal(subtotal, discount, shippingCost, total float64) error {
	expected := subtotal - discount + shippingCost
	if math.Abs(total-expected) > totalTolerance {
		return ErrTotalMismatch
	}
	return nil
}
