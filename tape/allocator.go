package tape

import (
	"sync"

	"github.com/deltaticks/tickindex/types/avl"
	"github.com/deltaticks/tickindex/types/list"
)

// Allocator is an object encapsulating all used objects allocation using sync.Pool internally.
type Allocator struct {

	// Ticks
	ticks sync.Pool

	// Pools used by containers
	priceNodes    sync.Pool // used by avl.Tree[Uint]
	chainElements sync.Pool // used by list.List[*Tick]
}

// NewAllocator creates and returns new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	// Ticks
	a.ticks = sync.Pool{New: func() any {
		return new(Tick)
	}}
	// Pools used by containers
	a.priceNodes = sync.Pool{New: func() any {
		return new(avl.Node[Uint])
	}}
	a.chainElements = sync.Pool{New: func() any {
		return new(list.Element[*Tick])
	}}
	return a
}

////////////////////////////////////////////////////////////////
// Ticks
////////////////////////////////////////////////////////////////

// GetTick allocates Tick instance.
func (a *Allocator) GetTick() *Tick {
	// Get from the pool
	return a.ticks.Get().(*Tick)
}

// PutTick releases Tick instance.
func (a *Allocator) PutTick(tick *Tick) {
	// Clean up the instance before releasing
	*tick = Tick{}
	// Put back to the pool
	a.ticks.Put(tick)
}
