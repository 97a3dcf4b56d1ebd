package storage

import (
	"math/big"
	"slices"
)

// Slot is a single value container, either a stack or a queue.
type Slot struct {
	Queue bool // If set, values are popped in insertion order.

	data []*big.Int
}

// Push a value at the position dictated by the slot discipline.
func (s *Slot) Push(value *big.Int) {
	s.data = append(s.data, value)
}

// PushFront inserts a value ahead of every other value, whatever the discipline.
func (s *Slot) PushFront(value *big.Int) {
	if s.Queue {
		s.data = slices.Insert(s.data, 0, value)
	} else {
		s.data = append(s.data, value)
	}
}

// Pop removes the front-most value.
func (s *Slot) Pop() (value *big.Int, ok bool) {
	value, ok = s.Peek()
	if !ok {
		return
	}

	if s.Queue {
		s.data[0] = nil
		s.data = s.data[1:]
	} else {
		s.data[len(s.data)-1] = nil
		s.data = s.data[:len(s.data)-1]
	}

	return
}

// Peek returns the front-most value without removing it.
func (s *Slot) Peek() (value *big.Int, ok bool) {
	if s.Empty() {
		return
	}

	if s.Queue {
		return s.data[0], true
	}

	return s.data[len(s.data)-1], true
}

func (s *Slot) Len() int {
	return len(s.data)
}

func (s *Slot) Empty() bool {
	return len(s.data) == 0
}

// Values returns a copy of the contents, front-most first.
func (s *Slot) Values() (values []*big.Int) {
	values = slices.Clone(s.data)
	if !s.Queue {
		slices.Reverse(values)
	}
	return
}
