package tape

import (
	"strings"

	"lukechampine.com/uint128"
)

const (
	// UintPrecision is precision of decimal places for Uint.
	UintPrecision = 1_000_000_000_000
	// UintComma is the amount of zeros in UintPrecision.
	UintComma = 12
)

// uintMaxValue is the max possible value of the Uint.
var uintMaxValue = Uint{uint128.Max}

// Uint is an unsigned fixed-point decimal with UintComma implied decimal
// places, stored in 128 bits. Prices and volumes on a tape are carried as
// Uint so arithmetic on them never loses precision to binary floats.
type Uint struct {
	v uint128.Uint128
}

func NewZeroUint() Uint {
	return Uint{}
}

func NewMaxUint() Uint {
	return Uint{uint128.Max}
}

func NewUint(u uint64) Uint {
	return Uint{v: uint128.From64(u)}
}

func NewUintFromUint128(u uint128.Uint128) Uint {
	return Uint{v: u}
}

func NewUintFromStr(v string) (Uint, error) {
	if v == "" {
		return NewZeroUint(), nil
	}

	u, err := uint128.FromString(v)
	if err != nil {
		return Uint{}, err
	}

	return Uint{
		v: u,
	}, nil
}

// NewUintFromFloatString parses a decimal number like "123.456" into its
// fixed-point form. Decimal places beyond UintComma are truncated.
func NewUintFromFloatString(number string) (Uint, error) {
	integer, decimal, _ := strings.Cut(number, ".")

	// number is integer, shift it whole
	if decimal == "" {
		return NewUintFromStr(integer + strings.Repeat("0", UintComma))
	}

	result := NewZeroUint()

	// add integer part of number
	if integer != "0" {
		u, err := NewUintFromStr(integer + strings.Repeat("0", UintComma))
		if err != nil {
			return Uint{}, err
		}
		result = result.Add(u)
	}

	// truncate or pad the decimal part to exactly UintComma digits
	if len(decimal) > UintComma {
		decimal = decimal[:UintComma]
	}
	if len(decimal) < UintComma {
		decimal += strings.Repeat("0", UintComma-len(decimal))
	}

	// add decimal part of number
	u, err := NewUintFromStr(strings.TrimLeft(decimal, "0"))
	if err != nil {
		return Uint{}, err
	}

	return result.Add(u), nil
}

func (u Uint) ToUint128() uint128.Uint128 {
	return u.v
}

// ToFloatString formats the fixed-point value as a decimal number with
// trailing zeros removed, the inverse of NewUintFromFloatString.
func (u Uint) ToFloatString() string {
	quo, rem := u.QuoRem(NewUint(UintPrecision))
	if rem.IsZero() {
		return quo.String()
	}

	frac := rem.String()
	if len(frac) < UintComma {
		frac = strings.Repeat("0", UintComma-len(frac)) + frac
	}

	return quo.String() + "." + strings.TrimRight(frac, "0")
}

func (u Uint) Add(v Uint) Uint {
	u.v = u.v.Add(v.v)
	return u
}

func (u Uint) Add64(v uint64) Uint {
	u.v = u.v.Add64(v)
	return u
}

func (u Uint) Sub(v Uint) Uint {
	u.v = u.v.Sub(v.v)
	return u
}

func (u Uint) Mul(v Uint) Uint {
	u.v = u.v.Mul(v.v)
	return u
}

func (u Uint) Mul64(v uint64) Uint {
	u.v = u.v.Mul64(v)
	return u
}

func (u Uint) QuoRem(v Uint) (Uint, Uint) {
	var remainder uint128.Uint128
	u.v, remainder = u.v.QuoRem(v.v)
	return u, Uint{v: remainder}
}

func (u Uint) Div64(v uint64) Uint {
	u.v = u.v.Div64(v)
	return u
}

func (u Uint) Cmp(v Uint) int {
	return u.v.Cmp(v.v)
}

func (u Uint) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint) IsMax() bool {
	return u.Equals(uintMaxValue)
}

func (u Uint) Equals(v Uint) bool {
	return u.v.Equals(v.v)
}

func (u Uint) Equals64(v uint64) bool {
	return u.v.Equals64(v)
}

func (u Uint) LessThan(v Uint) bool {
	return u.v.Cmp(v.v) < 0
}

func (u Uint) LessThanOrEqualTo(v Uint) bool {
	return u.v.Cmp(v.v) <= 0
}

func (u Uint) GreaterThan(v Uint) bool {
	return u.v.Cmp(v.v) > 0
}

func (u Uint) GreaterThanOrEqualTo(v Uint) bool {
	return u.v.Cmp(v.v) >= 0
}

func (u Uint) String() string {
	return u.v.String()
}

func Min(a Uint, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func Max(a Uint, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
