package engine

import (
	"github.com/ezrec/aheui/hangul"
)

// Opcode is the operation selected by a syllable's leading consonant.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_UNDEFINED = Opcode(0)  // undefined
	OP_NOP       = Opcode(1)  // nop
	OP_HALT      = Opcode(2)  // halt
	OP_ADD       = Opcode(3)  // add
	OP_MUL       = Opcode(4)  // mul
	OP_SUB       = Opcode(5)  // sub
	OP_DIV       = Opcode(6)  // div
	OP_MOD       = Opcode(7)  // mod
	OP_PRINT     = Opcode(8)  // print
	OP_READ      = Opcode(9)  // read
	OP_DUP       = Opcode(10) // dup
	OP_SWAP      = Opcode(11) // swap
	OP_SELECT    = Opcode(12) // select
	OP_MOVE      = Opcode(13) // move
	OP_CMP       = Opcode(14) // cmp
	OP_COND      = Opcode(15) // cond
)

// ㅉ and ㅋ are not assigned an operation, and always bounce.
var _opcodes = [hangul.INITIAL_COUNT]Opcode{
	hangul.INITIAL_GIYEOK:      OP_NOP,
	hangul.INITIAL_SSANGGIYEOK: OP_NOP,
	hangul.INITIAL_NIEUN:       OP_DIV,
	hangul.INITIAL_DIGEUT:      OP_ADD,
	hangul.INITIAL_SSANGDIGEUT: OP_MUL,
	hangul.INITIAL_RIEUL:       OP_MOD,
	hangul.INITIAL_MIEUM:       OP_PRINT,
	hangul.INITIAL_BIEUP:       OP_READ,
	hangul.INITIAL_SSANGBIEUP:  OP_DUP,
	hangul.INITIAL_SIOS:        OP_SELECT,
	hangul.INITIAL_SSANGSIOS:   OP_MOVE,
	hangul.INITIAL_IEUNG:       OP_NOP,
	hangul.INITIAL_JIEUJ:       OP_CMP,
	hangul.INITIAL_SSANGJIEUJ:  OP_UNDEFINED,
	hangul.INITIAL_CHIEUCH:     OP_COND,
	hangul.INITIAL_KHIEUKH:     OP_UNDEFINED,
	hangul.INITIAL_THIEUTH:     OP_SUB,
	hangul.INITIAL_PHIEUPH:     OP_SWAP,
	hangul.INITIAL_HIEUH:       OP_HALT,
}

// Values an operation must find in the selected slot.
var _opcode_need = [...]int{
	OP_ADD:   2,
	OP_MUL:   2,
	OP_SUB:   2,
	OP_DIV:   2,
	OP_MOD:   2,
	OP_PRINT: 1,
	OP_DUP:   1,
	OP_SWAP:  2,
	OP_MOVE:  1,
	OP_CMP:   2,
	OP_COND:  1,
}

// OpcodeOf returns the operation of a leading consonant.
func OpcodeOf(initial hangul.Initial) Opcode {
	if !initial.Valid() {
		return OP_NOP
	}
	return _opcodes[initial]
}

// Need returns the depth of the selected slot the operation requires.
func (op Opcode) Need() int {
	if op < 0 || int(op) >= len(_opcode_need) {
		return 0
	}
	return _opcode_need[op]
}

// SteerMode is the way a vowel changes the direction of travel.
type SteerMode int

//go:generate go tool stringer -linecomment -type=SteerMode
const (
	STEER_KEEP    = SteerMode(0) // keep
	STEER_SET     = SteerMode(1) // set
	STEER_MIRROR  = SteerMode(2) // mirror
	STEER_FLIP    = SteerMode(3) // flip
	STEER_REVERSE = SteerMode(4) // reverse
)

// Steer is the direction change selected by a syllable's vowel.
type Steer struct {
	Mode SteerMode
	Dir  Point
}

var _steers = [hangul.MEDIAL_COUNT]Steer{
	hangul.MEDIAL_A:   {STEER_SET, Point{1, 0}},
	hangul.MEDIAL_YA:  {STEER_SET, Point{2, 0}},
	hangul.MEDIAL_EO:  {STEER_SET, Point{-1, 0}},
	hangul.MEDIAL_YEO: {STEER_SET, Point{-2, 0}},
	hangul.MEDIAL_O:   {STEER_SET, Point{0, -1}},
	hangul.MEDIAL_YO:  {STEER_SET, Point{0, -2}},
	hangul.MEDIAL_U:   {STEER_SET, Point{0, 1}},
	hangul.MEDIAL_YU:  {STEER_SET, Point{0, 2}},
	hangul.MEDIAL_EU:  {Mode: STEER_FLIP},
	hangul.MEDIAL_YI:  {Mode: STEER_REVERSE},
	hangul.MEDIAL_I:   {Mode: STEER_MIRROR},
}

// SteerOf returns the direction change of a vowel.
func SteerOf(medial hangul.Medial) Steer {
	if !medial.Valid() {
		return Steer{}
	}
	return _steers[medial]
}

// Apply returns the new direction of travel.
func (st Steer) Apply(dir Point) Point {
	switch st.Mode {
	case STEER_SET:
		return st.Dir
	case STEER_MIRROR:
		if dir.Y == 0 {
			return Point{-dir.X, 0}
		}
	case STEER_FLIP:
		if dir.X == 0 {
			return Point{0, -dir.Y}
		}
	case STEER_REVERSE:
		return dir.Reverse()
	}

	return dir
}
