// Package XRPAmount models the ledger's native asset: whole drops of value
// with no fractional component.
package XRPAmount

import "fmt"

// XRPAmount is an amount of the native asset, denominated in drops.
type XRPAmount int64

// DropsPerXRP is retained for callers that want to render a human decimal.
const DropsPerXRP XRPAmount = 1_000_000

func NewXRPAmount(drops int64) XRPAmount {
	return XRPAmount(drops)
}

func FromDecimalXRP(xrp float64) XRPAmount {
	return XRPAmount(xrp * float64(DropsPerXRP))
}

func (x XRPAmount) Drops() int64 {
	return int64(x)
}

func (x XRPAmount) DecimalXRP() float64 {
	return float64(x) / float64(DropsPerXRP)
}

func (x XRPAmount) Add(other XRPAmount) XRPAmount {
	return x + other
}

func (x XRPAmount) Sub(other XRPAmount) XRPAmount {
	return x - other
}

func (x XRPAmount) Mul(n int64) XRPAmount {
	return XRPAmount(int64(x) * n)
}

func (x XRPAmount) IsZero() bool {
	return x == 0
}

func (x XRPAmount) IsNegative() bool {
	return x < 0
}

// FeeRate multiplies x by feeBps/divisor and truncates toward zero, the
// rounding the ledger uses for native-asset transfer-fee royalties.
func (x XRPAmount) FeeRate(feeBps uint32, divisor int64) XRPAmount {
	return XRPAmount((int64(x) * int64(feeBps)) / divisor)
}

func (x XRPAmount) String() string {
	return fmt.Sprintf("%d", int64(x))
}
