package tape

const (
	// defaultReservedTickSlots specifies initial size of hashmap array storing ticks by tick id.
	defaultReservedTickSlots = 1024
)
