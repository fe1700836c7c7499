// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

// Lexicon holds the word lists behind the heuristic bias scoring. The
// defaults are deliberately small, maintained lists; scoring quality
// tracks list quality, nothing more.
type Lexicon struct {
	// Loaded are single words carrying strong editorial connotation,
	// matched case-insensitively as whole words.
	Loaded []string

	// Hedges are uncertainty phrases, matched case-insensitively as
	// substrings since most span multiple words.
	Hedges []string

	// FirstPerson are pronouns matched by token equality.
	FirstPerson []string

	// Positive and Negative drive the sentiment polarity count.
	Positive []string
	Negative []string
}

// DefaultLexicon returns the built-in word lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Loaded: []string{
			"obviously", "clearly", "undoubtedly", "certainly", "definitely",
			"notorious", "infamous", "brilliant", "terrible", "amazing",
			"incredible", "outrageous", "shocking", "stunning", "remarkable",
		},
		Hedges: []string{
			"some say", "many believe", "it is said", "allegedly", "reportedly",
			"supposedly", "arguably", "possibly", "perhaps", "maybe",
			"some people", "critics argue", "supporters claim",
		},
		FirstPerson: []string{"i", "me", "my", "mine", "we", "us", "our", "ours"},
		Positive: []string{
			"good", "great", "excellent", "positive", "successful", "beneficial",
			"important", "significant", "valuable", "notable", "remarkable",
			"innovative", "leading", "prominent", "influential",
		},
		Negative: []string{
			"bad", "poor", "negative", "failed", "harmful", "detrimental",
			"insignificant", "minor", "controversial", "criticized", "disputed",
			"questionable", "problematic", "flawed", "inferior",
		},
	}
}
