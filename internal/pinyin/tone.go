package pinyin

import "unicode/utf8"

// Tone identifies the tone encoded by a trailing digit.
type Tone int

const (
	// ToneNone means the syllable has no tone digit.
	ToneNone Tone = iota
	Tone1
	Tone2
	Tone3
	Tone4
	// ToneNeutral is written as 0 or 5 and carries no mark.
	ToneNeutral
)

// ParseTone maps a tone digit to its Tone.
func ParseTone(r rune) Tone {
	switch r {
	case '0', '5':
		return ToneNeutral
	case '1':
		return Tone1
	case '2':
		return Tone2
	case '3':
		return Tone3
	case '4':
		return Tone4
	default:
		return ToneNone
	}
}

func (t Tone) String() string {
	switch t {
	case Tone1:
		return "first"
	case Tone2:
		return "second"
	case Tone3:
		return "third"
	case Tone4:
		return "fourth"
	case ToneNeutral:
		return "neutral"
	default:
		return "none"
	}
}

// marked reports whether t is drawn as a diacritic.
func (t Tone) marked() bool {
	return t >= Tone1 && t <= Tone4
}

// Marked vowels indexed by tone-1: macron, acute, caron, grave.
var (
	markTierAE = map[rune][4]rune{
		'a': {'ā', 'á', 'ǎ', 'à'},
		'e': {'ē', 'é', 'ě', 'è'},
		'A': {'Ā', 'Á', 'Ǎ', 'À'},
		'E': {'Ē', 'É', 'Ě', 'È'},
	}
	markTierO = map[rune][4]rune{
		'o': {'ō', 'ó', 'ǒ', 'ò'},
		'O': {'Ō', 'Ó', 'Ǒ', 'Ò'},
	}
	markTierIU = map[rune][4]rune{
		'i': {'ī', 'í', 'ǐ', 'ì'},
		'u': {'ū', 'ú', 'ǔ', 'ù'},
		'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
		'I': {'Ī', 'Í', 'Ǐ', 'Ì'},
		'U': {'Ū', 'Ú', 'Ǔ', 'Ù'},
		'Ü': {'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
	}
)

// Render converts one syllable with DefaultInventory.
func Render(syllable string) string {
	return DefaultInventory().Render(syllable)
}

// Render rewrites a syllable ending in a tone digit into its tone-marked form.
// Neutral tones lose the digit and gain no mark. Strings that are not known
// syllables, or that carry no tone digit, are returned unchanged.
func (inv Inventory) Render(syllable string) string {
	if !inv.Contains(syllable) {
		return syllable
	}
	last, size := utf8.DecodeLastRuneInString(syllable)
	tone := ParseTone(last)
	if tone == ToneNone {
		return syllable
	}
	return MarkVowel(syllable[:len(syllable)-size], tone)
}

// MarkVowel places the mark for t on the vowel of bare that carries the tone:
// the first a or e, else the first o, else the last of i, u and ü. Case is
// kept. If bare has no such vowel, or t is not a marked tone, bare is
// returned as is.
func MarkVowel(bare string, t Tone) string {
	if !t.marked() {
		return bare
	}
	runes := []rune(bare)

	idx := firstIn(runes, markTierAE)
	tier := markTierAE
	if idx < 0 {
		idx, tier = firstIn(runes, markTierO), markTierO
	}
	if idx < 0 {
		idx, tier = lastIn(runes, markTierIU), markTierIU
	}
	if idx < 0 {
		return bare
	}

	runes[idx] = tier[runes[idx]][t-Tone1]
	return string(runes)
}

func firstIn(runes []rune, tier map[rune][4]rune) int {
	for i, r := range runes {
		if _, ok := tier[r]; ok {
			return i
		}
	}
	return -1
}

func lastIn(runes []rune, tier map[rune][4]rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if _, ok := tier[runes[i]]; ok {
			return i
		}
	}
	return -1
}
