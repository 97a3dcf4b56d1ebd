// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hangul

// Initial is the leading consonant (choseong) of a syllable.
type Initial int

const (
	INITIAL_NONE        = Initial(-1) // blank
	INITIAL_GIYEOK      = Initial(0)  // ㄱ
	INITIAL_SSANGGIYEOK = Initial(1)  // ㄲ
	INITIAL_NIEUN       = Initial(2)  // ㄴ
	INITIAL_DIGEUT      = Initial(3)  // ㄷ
	INITIAL_SSANGDIGEUT = Initial(4)  // ㄸ
	INITIAL_RIEUL       = Initial(5)  // ㄹ
	INITIAL_MIEUM       = Initial(6)  // ㅁ
	INITIAL_BIEUP       = Initial(7)  // ㅂ
	INITIAL_SSANGBIEUP  = Initial(8)  // ㅃ
	INITIAL_SIOS        = Initial(9)  // ㅅ
	INITIAL_SSANGSIOS   = Initial(10) // ㅆ
	INITIAL_IEUNG       = Initial(11) // ㅇ
	INITIAL_JIEUJ       = Initial(12) // ㅈ
	INITIAL_SSANGJIEUJ  = Initial(13) // ㅉ
	INITIAL_CHIEUCH     = Initial(14) // ㅊ
	INITIAL_KHIEUKH     = Initial(15) // ㅋ
	INITIAL_THIEUTH     = Initial(16) // ㅌ
	INITIAL_PHIEUPH     = Initial(17) // ㅍ
	INITIAL_HIEUH       = Initial(18) // ㅎ
)

// Medial is the vowel (jungseong) of a syllable.
type Medial int

const (
	MEDIAL_NONE = Medial(-1) // blank
	MEDIAL_A    = Medial(0)  // ㅏ
	MEDIAL_AE   = Medial(1)  // ㅐ
	MEDIAL_YA   = Medial(2)  // ㅑ
	MEDIAL_YAE  = Medial(3)  // ㅒ
	MEDIAL_EO   = Medial(4)  // ㅓ
	MEDIAL_E    = Medial(5)  // ㅔ
	MEDIAL_YEO  = Medial(6)  // ㅕ
	MEDIAL_YE   = Medial(7)  // ㅖ
	MEDIAL_O    = Medial(8)  // ㅗ
	MEDIAL_WA   = Medial(9)  // ㅘ
	MEDIAL_WAE  = Medial(10) // ㅙ
	MEDIAL_OE   = Medial(11) // ㅚ
	MEDIAL_YO   = Medial(12) // ㅛ
	MEDIAL_U    = Medial(13) // ㅜ
	MEDIAL_WEO  = Medial(14) // ㅝ
	MEDIAL_WE   = Medial(15) // ㅞ
	MEDIAL_WI   = Medial(16) // ㅟ
	MEDIAL_YU   = Medial(17) // ㅠ
	MEDIAL_EU   = Medial(18) // ㅡ
	MEDIAL_YI   = Medial(19) // ㅢ
	MEDIAL_I    = Medial(20) // ㅣ
)

// Final is the trailing consonant pair (jongseong) of a syllable.
type Final int

const (
	FINAL_NONE          = Final(-1) // blank
	FINAL_EMPTY         = Final(0)  // (none)
	FINAL_GIYEOK        = Final(1)  // ㄱ
	FINAL_SSANGGIYEOK   = Final(2)  // ㄲ
	FINAL_GIYEOK_SIOS   = Final(3)  // ㄳ
	FINAL_NIEUN         = Final(4)  // ㄴ
	FINAL_NIEUN_JIEUJ   = Final(5)  // ㄵ
	FINAL_NIEUN_HIEUH   = Final(6)  // ㄶ
	FINAL_DIGEUT        = Final(7)  // ㄷ
	FINAL_RIEUL         = Final(8)  // ㄹ
	FINAL_RIEUL_GIYEOK  = Final(9)  // ㄺ
	FINAL_RIEUL_MIEUM   = Final(10) // ㄻ
	FINAL_RIEUL_BIEUP   = Final(11) // ㄼ
	FINAL_RIEUL_SIOS    = Final(12) // ㄽ
	FINAL_RIEUL_THIEUTH = Final(13) // ㄾ
	FINAL_RIEUL_PHIEUPH = Final(14) // ㄿ
	FINAL_RIEUL_HIEUH   = Final(15) // ㅀ
	FINAL_MIEUM         = Final(16) // ㅁ
	FINAL_BIEUP         = Final(17) // ㅂ
	FINAL_BIEUP_SIOS    = Final(18) // ㅄ
	FINAL_SIOS          = Final(19) // ㅅ
	FINAL_SSANGSIOS     = Final(20) // ㅆ
	FINAL_IEUNG         = Final(21) // ㅇ
	FINAL_JIEUJ         = Final(22) // ㅈ
	FINAL_CHIEUCH       = Final(23) // ㅊ
	FINAL_KHIEUKH       = Final(24) // ㅋ
	FINAL_THIEUTH       = Final(25) // ㅌ
	FINAL_PHIEUPH       = Final(26) // ㅍ
	FINAL_HIEUH         = Final(27) // ㅎ
)

const (
	INITIAL_COUNT = 19
	MEDIAL_COUNT  = 21
	FINAL_COUNT   = 28
)

var _initials = [INITIAL_COUNT]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ',
	'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ',
	'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ',
	'ㅎ',
}

var _medials = [MEDIAL_COUNT]rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ',
	'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ',
	'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ',
	'ㅡ', 'ㅢ', 'ㅣ',
}

// Finals are stored as consonant pairs; a single consonant has a blank second member.
var _finals = [FINAL_COUNT][2]rune{
	{' ', ' '}, {'ㄱ', ' '}, {'ㄱ', 'ㄱ'}, {'ㄱ', 'ㅅ'},
	{'ㄴ', ' '}, {'ㄴ', 'ㅈ'}, {'ㄴ', 'ㅎ'}, {'ㄷ', ' '},
	{'ㄹ', ' '}, {'ㄹ', 'ㄱ'}, {'ㄹ', 'ㅁ'}, {'ㄹ', 'ㅂ'},
	{'ㄹ', 'ㅅ'}, {'ㄹ', 'ㅌ'}, {'ㄹ', 'ㅍ'}, {'ㄹ', 'ㅎ'},
	{'ㅁ', ' '}, {'ㅂ', ' '}, {'ㅂ', 'ㅅ'}, {'ㅅ', ' '},
	{'ㅅ', 'ㅅ'}, {'ㅇ', ' '}, {'ㅈ', ' '}, {'ㅊ', ' '},
	{'ㅋ', ' '}, {'ㅌ', ' '}, {'ㅍ', ' '}, {'ㅎ', ' '},
}

// Number of pen strokes in each final, used as the pushed literal.
var _strokes = [FINAL_COUNT]int64{
	0, 2, 4, 4,
	2, 5, 5, 3,
	5, 7, 9, 9,
	7, 9, 9, 8,
	4, 4, 6, 2,
	4, 0, 3, 4,
	3, 4, 4, 0,
}

// Valid returns true for one of the 19 leading consonants.
func (i Initial) Valid() bool {
	return i >= 0 && int(i) < INITIAL_COUNT
}

// Rune returns the compatibility jamo for the consonant, or a space when blank.
func (i Initial) Rune() rune {
	if !i.Valid() {
		return FILLER
	}
	return _initials[i]
}

func (i Initial) String() string {
	return string(i.Rune())
}

// Valid returns true for one of the 21 vowels.
func (m Medial) Valid() bool {
	return m >= 0 && int(m) < MEDIAL_COUNT
}

// Rune returns the compatibility jamo for the vowel, or a space when blank.
func (m Medial) Rune() rune {
	if !m.Valid() {
		return FILLER
	}
	return _medials[m]
}

func (m Medial) String() string {
	return string(m.Rune())
}

// Valid returns true for one of the 28 finals, including FINAL_EMPTY.
func (fn Final) Valid() bool {
	return fn >= 0 && int(fn) < FINAL_COUNT
}

// Pair returns the consonant pair of the final. Blank and empty finals are a pair of spaces.
func (fn Final) Pair() [2]rune {
	if !fn.Valid() {
		return [2]rune{FILLER, FILLER}
	}
	return _finals[fn]
}

// Strokes returns the literal value a push instruction uses for this final.
func (fn Final) Strokes() int64 {
	if !fn.Valid() {
		return 0
	}
	return _strokes[fn]
}

func (fn Final) String() string {
	pair := fn.Pair()
	switch {
	case pair[0] == FILLER:
		return ""
	case pair[1] == FILLER:
		return string(pair[0:1])
	default:
		return string(pair[:])
	}
}

// InitialOf looks up a leading consonant by its compatibility jamo.
func InitialOf(r rune) (i Initial, ok bool) {
	for n, jamo := range _initials {
		if jamo == r {
			return Initial(n), true
		}
	}
	return INITIAL_NONE, false
}

// MedialOf looks up a vowel by its compatibility jamo.
func MedialOf(r rune) (m Medial, ok bool) {
	for n, jamo := range _medials {
		if jamo == r {
			return Medial(n), true
		}
	}
	return MEDIAL_NONE, false
}

// FinalOf looks up a final by its consonant pair.
func FinalOf(pair [2]rune) (fn Final, ok bool) {
	for n, jamo := range _finals {
		if jamo == pair {
			return Final(n), true
		}
	}
	return FINAL_NONE, false
}
