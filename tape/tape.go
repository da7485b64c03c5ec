package tape

import (
	"encoding/binary"
	"math"

	"github.com/tidwall/hashmap"
	"github.com/zeebo/xxh3"

	"github.com/deltaticks/tickindex/types/avl"
	"github.com/deltaticks/tickindex/types/list"
)

// Tape records a stream of trade ticks and indexes every traded price in a
// self-balancing search tree, keeping range and rank statistics cheap no
// matter in which order the prices arrive. Equal prices stay distinct in
// the index, one tree node per tick.
//
// A Tape is single-goroutine, like the tree it wraps. Callers sharing one
// across goroutines must serialize access themselves.
type Tape struct {
	handler   Handler
	allocator *Allocator

	// Ticks stored by tick id
	ticks *hashmap.Map[uint64, *Tick]
	// Ticks chained in arrival order
	chain *list.List[*Tick]
	// Traded prices (multiset, one node per recorded tick)
	prices avl.Tree[Uint]

	lastID   uint64
	checksum uint64

	buyVolume  Uint
	sellVolume Uint
	notional   Uint
}

// NewTape creates a new tape reporting to the given handler.
func NewTape(handler Handler) *Tape {
	return NewTapeWithAllocator(handler, NewAllocator())
}

// NewTapeWithAllocator creates a new tape reporting to the given handler and
// drawing ticks and tree nodes from the given allocator. Several tapes may
// share one allocator.
func NewTapeWithAllocator(handler Handler, allocator *Allocator) *Tape {
	t := &Tape{
		handler:   handler,
		allocator: allocator,
		ticks:     hashmap.New[uint64, *Tick](defaultReservedTickSlots),
		chain:     list.NewListPooled[*Tick](&allocator.chainElements),
	}
	t.prices = avl.NewTreePooled[Uint](func(a, b Uint) int { return a.Cmp(b) }, &allocator.priceNodes)
	return t
}

////////////////////////////////////////////////////////////////

// Record validates and stores one trade tick, indexes its price and fires
// the handler callbacks. The returned tick is owned by the tape until the
// next Reset.
func (t *Tape) Record(side Side, price Uint, volume Uint) (*Tick, error) {
	if side != SideBuy && side != SideSell {
		return nil, ErrInvalidTickSide
	}
	if price.IsZero() {
		return nil, ErrInvalidTickPrice
	}
	if volume.IsZero() {
		return nil, ErrInvalidTickVolume
	}

	// Read the range before the price is indexed.
	newHigh := t.prices.Size() == 0 || price.GreaterThan(t.High())
	newLow := t.prices.Size() == 0 || price.LessThan(t.Low())

	// Create the tick
	t.lastID++
	tick := t.allocator.GetTick()
	tick.id = t.lastID
	tick.side = side
	tick.price = price
	tick.volume = volume

	// Index the tick
	t.ticks.Set(tick.id, tick)
	t.chain.PushBack(tick)
	t.prices.Insert(price)

	// Update running totals
	switch side {
	case SideBuy:
		t.buyVolume = t.buyVolume.Add(volume)
	case SideSell:
		t.sellVolume = t.sellVolume.Add(volume)
	}
	t.notional = t.notional.Add(tick.Notional())
	t.chainChecksum(tick)

	t.handler.OnTick(t, tick)
	if newHigh {
		t.handler.OnNewHigh(t, tick)
	}
	if newLow {
		t.handler.OnNewLow(t, tick)
	}
	return tick, nil
}

// Reset clears the tape and releases all ticks and tree nodes back to the
// allocator. The handler is notified last.
func (t *Tape) Reset() {
	// Walk the arrival chain to release every tick.
	for e := t.chain.Front(); e != nil; e = e.Next() {
		tick := e.Value
		t.ticks.Delete(tick.id)
		t.allocator.PutTick(tick)
	}
	t.chain.Clean()
	t.prices.Clear()
	t.lastID = 0
	t.checksum = 0
	t.buyVolume = NewZeroUint()
	t.sellVolume = NewZeroUint()
	t.notional = NewZeroUint()
	t.handler.OnReset(t)
}

////////////////////////////////////////////////////////////////

// Tick returns the recorded tick with given id, or nil when unknown.
func (t *Tape) Tick(id uint64) *Tick {
	tick, _ := t.ticks.Get(id)
	return tick
}

// Len returns the amount of recorded ticks.
func (t *Tape) Len() int {
	return t.ticks.Len()
}

// Each calls f for every recorded tick in arrival order.
// Returning true from f stops the iteration early.
func (t *Tape) Each(f func(tick *Tick) bool) {
	for it := t.chain.Iterator(); it.Next(); {
		if f(it.Current().Value) {
			return
		}
	}
}

// Low returns the lowest traded price, or the zero Uint for an empty tape.
func (t *Tape) Low() Uint {
	if node := t.prices.MostLeft(); node != nil {
		return node.Key()
	}
	return NewZeroUint()
}

// High returns the highest traded price, or the zero Uint for an empty tape.
func (t *Tape) High() Uint {
	if node := t.prices.MostRight(); node != nil {
		return node.Key()
	}
	return NewZeroUint()
}

// Spread returns the distance between the highest and the lowest traded
// prices.
func (t *Tape) Spread() Uint {
	return t.High().Sub(t.Low())
}

// BuyVolume returns the total recorded buy aggressor volume.
func (t *Tape) BuyVolume() Uint {
	return t.buyVolume
}

// SellVolume returns the total recorded sell aggressor volume.
func (t *Tape) SellVolume() Uint {
	return t.sellVolume
}

// Volume returns the total recorded volume of both sides.
func (t *Tape) Volume() Uint {
	return t.buyVolume.Add(t.sellVolume)
}

// Notional returns the total of price times volume over all recorded ticks.
func (t *Tape) Notional() Uint {
	return t.notional
}

// Checksum returns the running checksum chained over all recorded ticks in
// arrival order. Two tapes fed the same records agree on it.
func (t *Tape) Checksum() uint64 {
	return t.checksum
}

////////////////////////////////////////////////////////////////

// Quantile returns the price at the given fraction of the sorted price
// multiset using the nearest rank method: Quantile(0) is the lowest traded
// price, Quantile(1) the highest.
func (t *Tape) Quantile(q float64) (Uint, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return NewZeroUint(), ErrInvalidQuantile
	}
	size := t.prices.Size()
	if size == 0 {
		return NewZeroUint(), ErrTapeEmpty
	}
	rank := int(math.Ceil(q * float64(size)))
	if rank < 1 {
		rank = 1
	}
	it := t.prices.Iterator()
	for ; rank > 0; rank-- {
		it.Next()
	}
	return it.Current().Key(), nil
}

// Median returns the median traded price (nearest rank).
func (t *Tape) Median() (Uint, error) {
	return t.Quantile(0.5)
}

// VWAP returns the volume weighted average price of the tape.
func (t *Tape) VWAP() (Uint, error) {
	if t.Len() == 0 {
		return NewZeroUint(), ErrTapeEmpty
	}
	// Notional and volume carry the same fixed-point scale, so the
	// numerator has to be scaled back up before dividing.
	vwap, _ := t.notional.Mul64(UintPrecision).QuoRem(t.Volume())
	return vwap, nil
}

// Summary returns the headline statistics of the tape in one call.
func (t *Tape) Summary() (Summary, error) {
	if t.Len() == 0 {
		return Summary{}, ErrTapeEmpty
	}
	median, err := t.Median()
	if err != nil {
		return Summary{}, err
	}
	vwap, err := t.VWAP()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Ticks:      t.Len(),
		Low:        t.Low(),
		High:       t.High(),
		Median:     median,
		VWAP:       vwap,
		BuyVolume:  t.buyVolume,
		SellVolume: t.sellVolume,
		Volume:     t.Volume(),
		Notional:   t.notional,
	}, nil
}

// Profile returns the amount of ticks recorded per traded price, in
// ascending price order.
func (t *Tape) Profile() []Level {
	if t.prices.Size() == 0 {
		return nil
	}
	profile := make([]Level, 0, 16)
	it := t.prices.Iterator()
	for it.Next() {
		price := it.Current().Key()
		if n := len(profile); n > 0 && profile[n-1].Price.Equals(price) {
			profile[n-1].Ticks++
			continue
		}
		profile = append(profile, Level{Price: price, Ticks: 1})
	}
	return profile
}

////////////////////////////////////////////////////////////////

// chainChecksum folds the tick fingerprint into the running tape checksum.
func (t *Tape) chainChecksum(tick *Tick) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], t.checksum)
	binary.LittleEndian.PutUint64(buf[8:16], tick.Checksum())
	t.checksum = xxh3.Hash(buf[:])
}
