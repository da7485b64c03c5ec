package tape

// Side is an enumeration of possible trade aggressor sides (buy/sell).
type Side uint8

const (
	// SideBuy represents a trade whose aggressor was the buyer.
	SideBuy Side = iota + 1
	// SideSell represents a trade whose aggressor was the seller.
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}
