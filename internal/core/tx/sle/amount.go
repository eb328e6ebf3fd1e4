package sle

import (
	"fmt"
	"math/big"
)

// Mantissa/exponent range for a normalized issued-currency value, matching
// the ledger's STAmount encoding.
const (
	minMantissa int64 = 1_000_000_000_000_000
	maxMantissa int64 = 9_999_999_999_999_999
	minExponent       = -96
	maxExponent       = 80
	zeroExponent      = -100
)

// Asset names either the native asset or a specific issued currency. It is
// the key AccountHolds is keyed by.
type Asset struct {
	Native   bool
	Currency [20]byte
	Issuer   [20]byte
}

func NativeAsset() Asset { return Asset{Native: true} }

// Amount is either a quantity of the native asset (drops) or an issued
// currency amount (mantissa x 10^exponent, currency, issuer). Exactly one
// of the two representations is meaningful, selected by Native.
type Amount struct {
	Native   bool
	Drops    int64
	Mantissa int64
	Exponent int
	Currency [20]byte
	Issuer   [20]byte
}

func NewNativeAmount(drops int64) Amount {
	return Amount{Native: true, Drops: drops}
}

// NewIssuedAmount builds a normalized issued-currency amount.
func NewIssuedAmount(mantissa int64, exponent int, currency, issuer [20]byte) Amount {
	a := Amount{Mantissa: mantissa, Exponent: exponent, Currency: currency, Issuer: issuer}
	a.normalize()
	return a
}

func (a Amount) AssetOf() Asset {
	return Asset{Native: a.Native, Currency: a.Currency, Issuer: a.Issuer}
}

func (a Amount) SameAsset(other Amount) bool {
	if a.Native != other.Native {
		return false
	}
	if a.Native {
		return true
	}
	return a.Currency == other.Currency && a.Issuer == other.Issuer
}

func (a *Amount) normalize() {
	if a.Native {
		return
	}
	if a.Mantissa == 0 {
		a.Mantissa = 0
		a.Exponent = zeroExponent
		return
	}
	negative := a.Mantissa < 0
	if negative {
		a.Mantissa = -a.Mantissa
	}
	for a.Mantissa < minMantissa && a.Exponent > minExponent {
		a.Mantissa *= 10
		a.Exponent--
	}
	for a.Mantissa > maxMantissa {
		a.Mantissa /= 10
		a.Exponent++
	}
	if a.Exponent < minExponent || a.Mantissa < minMantissa {
		a.Mantissa = 0
		a.Exponent = zeroExponent
	}
	if negative && a.Mantissa != 0 {
		a.Mantissa = -a.Mantissa
	}
}

func (a Amount) IsZero() bool {
	if a.Native {
		return a.Drops == 0
	}
	return a.Mantissa == 0
}

func (a Amount) IsNegative() bool {
	if a.Native {
		return a.Drops < 0
	}
	return a.Mantissa < 0
}

func (a Amount) Negate() Amount {
	if a.Native {
		return NewNativeAmount(-a.Drops)
	}
	return NewIssuedAmount(-a.Mantissa, a.Exponent, a.Currency, a.Issuer)
}

// Cmp compares two amounts of the same asset, returning -1, 0 or 1. It
// panics if the assets differ; callers must check SameAsset first.
func (a Amount) Cmp(other Amount) int {
	if !a.SameAsset(other) {
		panic("sle: Cmp on amounts of different assets")
	}
	if a.Native {
		switch {
		case a.Drops < other.Drops:
			return -1
		case a.Drops > other.Drops:
			return 1
		default:
			return 0
		}
	}
	af, bf := a.approxFloat(), other.approxFloat()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func (a Amount) approxFloat() float64 {
	if a.Mantissa == 0 {
		return 0
	}
	m := float64(a.Mantissa)
	e := a.Exponent
	for e > 0 {
		m *= 10
		e--
	}
	for e < 0 {
		m /= 10
		e++
	}
	return m
}

// Sub subtracts other from a. Both must share the same asset.
func (a Amount) Sub(other Amount) Amount {
	if a.Native {
		return NewNativeAmount(a.Drops - other.Drops)
	}
	return a.addScaled(other.Negate())
}

// Add adds other to a. Both must share the same asset.
func (a Amount) Add(other Amount) Amount {
	if a.Native {
		return NewNativeAmount(a.Drops + other.Drops)
	}
	return a.addScaled(other)
}

func (a Amount) addScaled(other Amount) Amount {
	exp := a.Exponent
	if other.Exponent < exp {
		exp = other.Exponent
	}
	am := scaleMantissa(a.Mantissa, a.Exponent, exp)
	bm := scaleMantissa(other.Mantissa, other.Exponent, exp)
	return NewIssuedAmount(am+bm, exp, a.Currency, a.Issuer)
}

func scaleMantissa(m int64, from, to int) int64 {
	for from > to {
		m *= 10
		from--
	}
	for from < to {
		m /= 10
		from++
	}
	return m
}

// FeeRateNative computes drops*feeBps/divisor, truncated toward zero,
// the rounding used for native-asset royalties.
func FeeRateNative(amt Amount, feeBps uint32, divisor int64) Amount {
	return NewNativeAmount((amt.Drops * int64(feeBps)) / divisor)
}

// FeeRateIssued computes an issued amount scaled by feeBps/divisor,
// truncated toward zero on the decimal value. The payment subsystem's
// own rounding for issued currencies is an external concern; this
// mirrors the native truncation rule for consistency (see design notes).
func FeeRateIssued(amt Amount, feeBps uint32, divisor int64) Amount {
	scaled := new(big.Int).Mul(big.NewInt(amt.Mantissa), big.NewInt(int64(feeBps)))
	scaled.Quo(scaled, big.NewInt(divisor))
	return NewIssuedAmount(scaled.Int64(), amt.Exponent, amt.Currency, amt.Issuer)
}

func (a Amount) String() string {
	if a.Native {
		return fmt.Sprintf("%d", a.Drops)
	}
	return fmt.Sprintf("%de%d", a.Mantissa, a.Exponent)
}
