package glossary

import "testing"

var testPairs = []Translation{
	{ID: 1, English: "keyboard", Hebrew: "מקלדת"},
	{ID: 2, English: "week", Hebrew: "שבוע"},
	{ID: 3, English: "peace", Hebrew: "שָׁלוֹם"},
}

func TestFilterTranslations_EmptyTermReturnsAll(t *testing.T) {
	got := FilterTranslations(testPairs, "")
	if len(got) != len(testPairs) {
		t.Fatalf("empty term: got %d pairs, want %d", len(got), len(testPairs))
	}
}

func TestFilterTranslations_ExactEnglish(t *testing.T) {
	got := FilterTranslations(testPairs, "keyboard")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %v, want the keyboard pair", got)
	}
}

func TestFilterTranslations_NiqqudInsensitive(t *testing.T) {
	// Dotted search term must match the undotted stored form.
	got := FilterTranslations(testPairs, "שָׁבוּעַ")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("got %v, want the week pair", got)
	}

	// Undotted search term must match the dotted stored form.
	got = FilterTranslations(testPairs, "שלום")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %v, want the peace pair", got)
	}
}

func TestFilterTranslations_CaseInsensitive(t *testing.T) {
	got := FilterTranslations(testPairs, "KeyBoard")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %v, want the keyboard pair", got)
	}
}

func TestFilterTranslations_NoMatch(t *testing.T) {
	got := FilterTranslations(testPairs, "מחשב")
	if len(got) != 0 {
		t.Fatalf("got %v, want no pairs", got)
	}
}
