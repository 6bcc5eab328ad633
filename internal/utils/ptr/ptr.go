// Package ptr provides small helpers for building pointers to literals,
// used by sources reporting optional fields.
package ptr

import (
	"time"

	"github.com/shopspring/decimal"
)

func ToString(v string) *string { return &v }

func ToBool(v bool) *bool { return &v }

func ToInt(v int) *int { return &v }

func ToTime(v time.Time) *time.Time { return &v }

// ToDecimal converts a float literal to a decimal pointer via
// decimal.NewFromFloat. Intended for price constants.
func ToDecimal(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}
