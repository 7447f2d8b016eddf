package detect

import (
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// minTextRunes is the shortest text worth detecting; shorter inputs rarely
// carry enough trigram signal.
const minTextRunes = 8

// defaultMinConfidence is used when no threshold is configured.
const defaultMinConfidence = 0.25

// Detector guesses the language of untagged text using trigram analysis.
type Detector struct {
	minConfidence float64
}

// NewDetector creates a Detector. minConfidence <= 0 selects the default
// threshold.
func NewDetector(minConfidence float64) *Detector {
	if minConfidence <= 0 {
		minConfidence = defaultMinConfidence
	}
	return &Detector{minConfidence: minConfidence}
}

// Detect returns the ISO 639-1 code of the most likely language. The second
// return is false when the text is too short or the guess too weak to trust.
func (d *Detector) Detect(text string) (string, bool) {
	if utf8.RuneCountInString(text) < minTextRunes {
		return "", false
	}
	info := whatlanggo.Detect(text)
	if info.Confidence < d.minConfidence {
		return "", false
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return "", false
	}
	return normalizeISO(code), true
}

// normalizeISO folds codes the detector reports differently from the
// provider registry. Norwegian Bokmål and Nynorsk both map to "no".
func normalizeISO(code string) string {
	switch code {
	case "nb", "nn":
		return "no"
	}
	return code
}
