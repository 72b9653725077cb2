package pinyin

import "github.com/rivo/uniseg"

// Split breaks text into words along Unicode (UAX #29) word boundaries.
// Runs of letters and digits form one word; whitespace and punctuation are
// returned as separate pieces. Joining the result reproduces text exactly.
func Split(text string) []string {
	var words []string
	state := -1
	for text != "" {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		words = append(words, word)
	}
	return words
}
