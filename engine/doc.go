// Package engine decodes an Aheui program onto a toroidal grid and executes
// it one cell at a time.
//
// The leading consonant of each syllable selects an operation, the vowel
// steers the instruction pointer, and the final consonant pair selects a
// storage slot, an I/O mode or a literal. An operation that finds too few
// values in the selected slot is skipped and the pointer reverses.
package engine
