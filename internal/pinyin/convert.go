package pinyin

import "strings"

// NumbersToMarks rewrites every numbered-tone syllable in text with its tone
// mark, using DefaultInventory. Text that is not a recognised syllable is
// copied through untouched, and a second pass over the result changes nothing
// unless the input had a tone digit directly after another one: "ma55"
// becomes "ma5", which a second pass turns into "ma".
func NumbersToMarks(text string) string {
	return DefaultInventory().NumbersToMarks(text)
}

// NumbersToMarks is the Inventory-bound form of the package function.
func (inv Inventory) NumbersToMarks(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, piece := range inv.Tokens(text) {
		if inv.Contains(piece) {
			b.WriteString(inv.Render(piece))
			continue
		}
		b.WriteString(piece)
	}
	return b.String()
}

// Tokens splits text into words and each word into syllables, returning
// the flattened pieces in order.
func (inv Inventory) Tokens(text string) []string {
	words := Split(text)
	pieces := make([]string, 0, len(words))
	for _, word := range words {
		pieces = append(pieces, inv.Segment(word)...)
	}
	return pieces
}
