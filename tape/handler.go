package tape

//go:generate mockgen -destination=mocks/interfaces.go -package=mocktape . Handler
type Handler interface {

	// Tick handlers
	OnTick(tape *Tape, tick *Tick)

	// Range handlers
	// NOTE: Range handlers are called AFTER OnTick for the same tick.
	// The first recorded tick fires both, since it sets both ends of the range.
	OnNewHigh(tape *Tape, tick *Tick)
	OnNewLow(tape *Tape, tick *Tick)

	// Lifecycle handlers
	OnReset(tape *Tape)
}
