// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package hangul splits precomposed Hangul syllables into their leading
// consonant, vowel and final consonant pair, and assembles them back.
//
// Every syllable in the range U+AC00..U+D7A3 is laid out as
//
//	SYLLABLE_FIRST + (initial * MEDIAL_COUNT + medial) * FINAL_COUNT + final
//
// Characters outside that range decode to a blank KChar.
package hangul

const (
	SYLLABLE_FIRST = '가' // U+AC00
	SYLLABLE_LAST  = '힣' // U+D7A3

	FILLER = ' ' // Substitute for a missing component or character.
	PAD    = 'ㅇ' // Compatibility jamo used to pad short source lines.
)

// KChar is a decoded syllable.
type KChar struct {
	Initial Initial
	Medial  Medial
	Final   Final
	Rune    rune // Source character, for display.
}

// Blank returns true when the character is not a Hangul syllable.
func (kc KChar) Blank() bool {
	return kc.Initial == INITIAL_NONE
}

func (kc KChar) String() string {
	return string(kc.Rune)
}

// IsSyllable returns true if r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= SYLLABLE_FIRST && r <= SYLLABLE_LAST
}

// Decompose splits r into its components.
func Decompose(r rune) (kc KChar) {
	if !IsSyllable(r) {
		kc = KChar{
			Initial: INITIAL_NONE,
			Medial:  MEDIAL_NONE,
			Final:   FINAL_NONE,
			Rune:    r,
		}
		return
	}

	num := int(r - SYLLABLE_FIRST)

	kc = KChar{
		Initial: Initial(num / FINAL_COUNT / MEDIAL_COUNT),
		Medial:  Medial((num / FINAL_COUNT) % MEDIAL_COUNT),
		Final:   Final(num % FINAL_COUNT),
		Rune:    r,
	}

	return
}

// Syllable assembles a syllable from component indices, or FILLER if any is invalid.
func Syllable(i Initial, m Medial, fn Final) rune {
	if !i.Valid() || !m.Valid() || !fn.Valid() {
		return FILLER
	}

	num := (int(i)*MEDIAL_COUNT+int(m))*FINAL_COUNT + int(fn)

	return SYLLABLE_FIRST + rune(num)
}

// Compose assembles a syllable from compatibility jamo, or FILLER if any
// component is not part of the alphabet.
func Compose(initial rune, medial rune, final [2]rune) rune {
	i, ok := InitialOf(initial)
	if !ok {
		return FILLER
	}

	m, ok := MedialOf(medial)
	if !ok {
		return FILLER
	}

	fn, ok := FinalOf(final)
	if !ok {
		return FILLER
	}

	return Syllable(i, m, fn)
}
