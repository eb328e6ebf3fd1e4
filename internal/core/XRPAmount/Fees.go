package XRPAmount

// Fees holds the reserve schedule consumed by the NFT subsystem when it
// charges or refunds owner-count reserve.
type Fees struct {
	Base      XRPAmount
	Reserve   XRPAmount
	Increment XRPAmount
}

// AccountReserve returns the total reserve an account with ownerSize owned
// objects must hold.
func (f *Fees) AccountReserve(ownerSize int64) XRPAmount {
	return f.Reserve + f.Increment.Mul(ownerSize)
}
