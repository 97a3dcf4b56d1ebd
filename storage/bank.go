// Package storage implements the bank of stacks and the queue that an Aheui
// program computes with.
package storage

import (
	"iter"
	"math/big"

	"github.com/ezrec/aheui/hangul"
)

const (
	SLOT_COUNT = hangul.FINAL_COUNT    // One slot per final consonant pair.
	SLOT_QUEUE = int(hangul.FINAL_IEUNG) // The only first-in-first-out slot.
)

// Bank holds every slot for the lifetime of a program.
type Bank struct {
	Slot [SLOT_COUNT]Slot
}

// NewBank creates an empty bank.
func NewBank() (bank *Bank) {
	bank = &Bank{}
	bank.Slot[SLOT_QUEUE].Queue = true

	return
}

// Pop the front-most value of a slot, or zero if the slot is empty.
func (bank *Bank) Pop(slot int) (value *big.Int) {
	value, ok := bank.Slot[slot].Pop()
	if !ok {
		value = new(big.Int)
	}

	return
}

// Push a value into a slot.
func (bank *Bank) Push(slot int, value *big.Int) {
	bank.Slot[slot].Push(value)
}

// PushFront puts a value back at the front of a slot.
func (bank *Bank) PushFront(slot int, value *big.Int) {
	bank.Slot[slot].PushFront(value)
}

// Depth returns the count of values held in a slot.
func (bank *Bank) Depth(slot int) int {
	return bank.Slot[slot].Len()
}

// Occupied iterates over the slots that hold at least one value.
func (bank *Bank) Occupied() iter.Seq2[int, *Slot] {
	return func(yield func(slot int, s *Slot) bool) {
		for n := range bank.Slot {
			s := &bank.Slot[n]
			if s.Empty() {
				continue
			}
			if !yield(n, s) {
				return
			}
		}
	}
}

// Name returns the syllable that selects a slot, as written with ㅇ and ㅏ.
func Name(slot int) rune {
	return hangul.Compose('ㅇ', 'ㅏ', hangul.Final(slot).Pair())
}
