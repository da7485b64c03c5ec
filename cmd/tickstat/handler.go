package main

import (
	"fmt"
	"sync/atomic"

	"github.com/deltaticks/tickindex/tape"
)

var _ tape.Handler = &Recorder{}

// Recorder counts tape callbacks the way a downstream feed would see them.
type Recorder struct {
	ticks    uint64
	newHighs uint64
	newLows  uint64
	resets   uint64
}

func (r *Recorder) OnTick(tp *tape.Tape, tick *tape.Tick) {
	atomic.AddUint64(&r.ticks, 1)
}

func (r *Recorder) OnNewHigh(tp *tape.Tape, tick *tape.Tick) {
	atomic.AddUint64(&r.newHighs, 1)
}

func (r *Recorder) OnNewLow(tp *tape.Tape, tick *tape.Tick) {
	atomic.AddUint64(&r.newLows, 1)
}

func (r *Recorder) OnReset(tp *tape.Tape) {
	atomic.AddUint64(&r.resets, 1)
}

func (r *Recorder) PrintStatistics() {
	fmt.Printf("TAPE HANDLER:\n")
	fmt.Printf("Ticks %23d\n", r.ticks)
	fmt.Printf("New highs %19d\n", r.newHighs)
	fmt.Printf("New lows %20d\n", r.newLows)
	fmt.Printf("Resets %22d\n", r.resets)
}
