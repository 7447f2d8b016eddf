package language

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Tokenize splits text into surface-form word tokens along Unicode word
// boundaries. Segments without a letter or digit (spaces, punctuation) are
// dropped; kept tokens preserve their original case and diacritics.
func Tokenize(text string) []string {
	var tokens []string
	state := -1
	var word string
	for text != "" {
		word, text, state = uniseg.FirstWordInString(text, state)
		if isWord(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
