package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CommissionPlaces is the precision every stored commission is rounded to.
const CommissionPlaces = 2

// Bounds on a parsed commission. Values past them are invalid, which
// keeps Round from rescaling huge exponents like 1e20000000.
const (
	MaxCommissionIntegerDigits  = 30
	MaxCommissionFractionDigits = 30
)

// Commission is the commission value of an agent request body.
//
// Clients send it either as a JSON number or as a numeric string. The
// value is kept as decoded so that "missing" and "invalid" can be told
// apart after binding: null, false, 0 and "" count as missing, anything
// else that does not parse as a number is invalid.
type Commission struct {
	truthy bool
	valid  bool
	value  decimal.Decimal
}

func (c *Commission) UnmarshalJSON(data []byte) error {
	*c = Commission{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.truthy = s != ""
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			c.set(d)
		}

	case 't':
		c.truthy = true

	case 'f':
		c.truthy = false

	case '{', '[':
		c.truthy = true

	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return err
		}
		c.truthy = !d.IsZero()
		c.set(d)
	}

	return nil
}

// set keeps d when it is within the commission bounds.
func (c *Commission) set(d decimal.Decimal) {
	if !commissionInBounds(d) {
		return
	}
	c.valid = true
	c.value = d
}

// commissionInBounds reads only the coefficient length and the exponent,
// so it stays cheap whatever the exponent is.
func commissionInBounds(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if -exp > MaxCommissionFractionDigits {
		return false
	}

	return int64(d.NumDigits())+exp <= MaxCommissionIntegerDigits
}

// Truthy reports whether the field counts as supplied.
func (c Commission) Truthy() bool {
	return c.truthy
}

// Valid reports whether the value parsed as a number within bounds.
func (c Commission) Valid() bool {
	return c.valid
}

// Rounded is the value rounded half away from zero to CommissionPlaces.
func (c Commission) Rounded() decimal.Decimal {
	return c.value.Round(CommissionPlaces)
}
