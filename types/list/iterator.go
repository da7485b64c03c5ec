package list

// Iterator iterates the list from front to back. It stays valid when the
// current element is removed from the list mid iteration.
type Iterator[T any] struct {
	list    *List[T]
	prev    *Element[T]
	current *Element[T]
	next    *Element[T]
}

// NewIterator creates iterator for the given list.
// Iterator is not valid until Next() call.
func NewIterator[T any](list *List[T]) Iterator[T] {
	return Iterator[T]{
		list:    list,
		prev:    &list.root,
		current: nil,
		next:    nil,
	}
}

// Iterator returns an iterator over the list.
// Iterator is not valid until Next() call.
func (l *List[T]) Iterator() Iterator[T] {
	return NewIterator(l)
}

// Next advances the iterator to the next element.
// It returns false when the list is exhausted.
func (it *Iterator[T]) Next() bool {
	switch {
	case it.prev == &it.list.root && it.current == nil:
		// Start of the iteration
		it.current = it.list.Front()
	case it.prev == &it.list.root && it.current != it.list.Front():
		// The first element was removed
		it.current = it.list.Front()
	case it.prev != &it.list.root && it.prev.Next() != it.current:
		// The current element was removed
		it.current = it.prev.Next()
	default:
		if it.current == nil {
			// Exhausted, hold the position so extra Next calls stay cheap
			// and iteration resumes if the list grows.
			return false
		}
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		return false
	}
	it.next = it.current.Next()
	return true
}

// Current returns the element the iterator stopped at.
func (it *Iterator[T]) Current() *Element[T] {
	return it.current
}

// Valid reports whether the iterator points at an element.
func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}
