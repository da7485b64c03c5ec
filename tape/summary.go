package tape

// Summary aggregates one tape into its headline statistics.
type Summary struct {
	Ticks      int  // amount of recorded ticks
	Low        Uint // lowest traded price
	High       Uint // highest traded price
	Median     Uint // median traded price (nearest rank)
	VWAP       Uint // volume weighted average price
	BuyVolume  Uint // total volume of buy aggressor ticks
	SellVolume Uint // total volume of sell aggressor ticks
	Volume     Uint // total traded volume
	Notional   Uint // total traded notional (price times volume)
}

////////////////////////////////////////////////////////////////

// Level is a single row of a tape profile: one traded price and the amount
// of ticks recorded at it.
type Level struct {
	Price Uint // traded price
	Ticks int  // amount of ticks recorded at the price
}
