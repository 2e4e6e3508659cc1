// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing amounts typed into the expense
// form and rendering them for display.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmountExponent bounds the decimal exponent of a parsed amount.
const maxAmountExponent = 28

// ParseAmount converts the text of the amount field into a decimal.
//
// Surrounding whitespace is ignored and a single decimal comma is accepted in
// place of a dot. Sign and exponent are allowed; the exponent must stay
// within ±maxAmountExponent. The sign of the amount is not checked.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("-3")     -> -3, nil
//	ParseAmount("1e2")    -> 100, nil
//	ParseAmount("abc")    -> 0, ErrInvalidAmount
//	ParseAmount("1e400")  -> 0, ErrInvalidAmount (exponent outside ±maxAmountExponent)
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	// sums and formatting rescale to the smallest exponent, so it must stay small
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with two decimals and a currency symbol,
// e.g. "$12.00". Negative amounts render as "-$3.50".
func FormatAmount(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return fmt.Sprintf("-%s%s", symbol, d.Abs().StringFixed(2))
	}
	return fmt.Sprintf("%s%s", symbol, d.StringFixed(2))
}
