package glossary

import "github.com/Magal-W/HebrewWeek/pkg/hebrew"

// FilterTranslations keeps the pairs whose English or Hebrew field contains
// term after normalization. An empty term returns the input unchanged, so a
// cleared search box shows the full dictionary again.
func FilterTranslations(pairs []Translation, term string) []Translation {
	if term == "" {
		return pairs
	}
	var out []Translation
	for _, p := range pairs {
		if hebrew.ContainsNormalized(p.English, term) || hebrew.ContainsNormalized(p.Hebrew, term) {
			out = append(out, p)
		}
	}
	return out
}
