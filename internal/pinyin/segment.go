package pinyin

import "unicode/utf8"

// Segment splits word into syllables with DefaultInventory.
func Segment(word string) []string {
	return DefaultInventory().Segment(word)
}

// Segment splits a single word into known syllables, left to right, always
// taking the longest prefix that is a syllable. When no prefix of the
// remaining text is a syllable, the remainder is returned as one piece.
// Joining the result reproduces word exactly.
//
// Prefixes are only cut at rune boundaries, so syllables containing ü are
// matched like any other.
func (inv Inventory) Segment(word string) []string {
	if word == "" {
		return nil
	}

	pieces := make([]string, 0, 2)
	for word != "" {
		n := inv.longestPrefix(word)
		if n == 0 {
			pieces = append(pieces, word)
			break
		}
		pieces = append(pieces, word[:n])
		word = word[n:]
	}
	return pieces
}

// longestPrefix returns the byte length of the longest syllable prefix of
// word, or 0 if there is none.
func (inv Inventory) longestPrefix(word string) int {
	if inv.Contains(word) {
		return len(word)
	}
	for end := len(word) - 1; end > 0; end-- {
		if !utf8.RuneStart(word[end]) {
			continue
		}
		if inv.Contains(word[:end]) {
			return end
		}
	}
	return 0
}
