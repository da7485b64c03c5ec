package tape

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Tick is a single printed trade: the traded price and volume plus the
// aggressor side, identified by the id the tape assigned when recording it.
// Ids grow by one per recorded tick, so they double as arrival order.
type Tick struct {
	id     uint64
	side   Side
	price  Uint
	volume Uint
}

// ID returns the tape assigned tick id.
func (t *Tick) ID() uint64 {
	return t.id
}

// Side returns the aggressor side of the trade.
func (t *Tick) Side() Side {
	return t.side
}

// Price returns the traded price.
func (t *Tick) Price() Uint {
	return t.price
}

// Volume returns the traded volume.
func (t *Tick) Volume() Uint {
	return t.volume
}

// Notional returns price multiplied by volume, in fixed-point terms.
func (t *Tick) Notional() Uint {
	return t.price.Mul(t.volume).Div64(UintPrecision)
}

// Checksum returns a stable fingerprint of the tick contents, usable to
// compare replays of the same trade stream.
func (t *Tick) Checksum() uint64 {
	var buf [41]byte
	binary.LittleEndian.PutUint64(buf[0:8], t.id)
	buf[8] = byte(t.side)
	t.price.ToUint128().PutBytes(buf[9:25])
	t.volume.ToUint128().PutBytes(buf[25:41])
	return xxh3.Hash(buf[:])
}
