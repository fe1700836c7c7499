// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// detectSampleLimit bounds the text handed to the detector; a prefix is
// plenty for a whole-article language call.
const detectSampleLimit = 2000

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// sampleText truncates to the detection limit without splitting a
// multi-byte rune.
func sampleText(text string) string {
	if len(text) <= detectSampleLimit {
		return text
	}
	cut := detectSampleLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// DetectLanguage returns the detected language name of the text (e.g.
// "English"), or "" when the text is empty or detection is
// inconclusive. The detector is built once; model loading is not free.
func DetectLanguage(text string) string {
	if text == "" {
		return ""
	}
	text = sampleText(text)

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Portuguese,
				lingua.Italian,
			).
			Build()
	})

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.String()
}
