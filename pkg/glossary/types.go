// Package glossary defines the domain types of the HebrewWeek glossary:
// bilingual translations, per-participant mistake tallies, canonical word
// mappings, and the pending suggestions awaiting moderation.
package glossary

// Translation is an accepted English/Hebrew term pair.
// ID is assigned by the store; 0 means not yet persisted.
type Translation struct {
	ID      int64  `json:"id"`
	English string `json:"english"`
	Hebrew  string `json:"hebrew"`
}

// TranslationSuggestion is a proposed translation awaiting review.
// Suggestor identifies the submitter; empty when unknown.
type TranslationSuggestion struct {
	ID        int64  `json:"id"`
	English   string `json:"english"`
	Hebrew    string `json:"hebrew"`
	Suggestor string `json:"suggestor,omitempty"`
}

// MistakeReport is a single raw occurrence of a participant's mistake.
type MistakeReport struct {
	Name    string `json:"name"`
	Mistake string `json:"mistake"`
}

// CountedMistake is one mistake text with its occurrence tally.
type CountedMistake struct {
	Mistake string `json:"mistake"`
	Count   int64  `json:"count"`
}

// PersonMistake pairs a participant with one counted mistake.
type PersonMistake struct {
	Name           string         `json:"name"`
	CountedMistake CountedMistake `json:"counted_mistake"`
}

// PersonMistakes is the full tally for one participant. Mistake text is
// unique within CountedMistakes.
type PersonMistakes struct {
	Name            string           `json:"name"`
	CountedMistakes []CountedMistake `json:"counted_mistakes"`
}

// MistakeSuggestion is a reported mistake awaiting review.
// Reporter identifies the submitter; empty when unknown.
type MistakeSuggestion struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Mistake  string `json:"mistake"`
	Context  string `json:"context"`
	Reporter string `json:"reporter,omitempty"`
}

// CanonicalSuggestion is a proposed word-to-headword mapping awaiting review.
// Suggestor identifies the submitter; empty when unknown.
type CanonicalSuggestion struct {
	ID        int64  `json:"id"`
	Word      string `json:"word"`
	Canonical string `json:"canonical"`
	Suggestor string `json:"suggestor,omitempty"`
}

// CanonicalMapping resolves a surface word to its canonical headword.
type CanonicalMapping struct {
	Word      string `json:"word"`
	Canonical string `json:"canonical"`
}
