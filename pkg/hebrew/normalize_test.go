package hebrew

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Keyboard", "keyboard"},
		{"KEYBOARD", "keyboard"},
		{"שָׁלוֹם", "שלום"},
		{"שָׁבוּעַ", "שבוע"},
		{"בְּרֵאשִׁית", "בראשית"},
		{"בית־ספר", "בית-ספר"},
		{"שלום", "שלום"},
		{"", ""},
		{"no-change", "no-change"},
	}
	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"שָׁלוֹם", "Keyboard", "בית־ספר", "", "מִלָּה"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestNormalizeCollapsesVariants(t *testing.T) {
	if Normalize("שָׁלוֹם") != Normalize("שלום") {
		t.Error("dotted and undotted forms should normalize equal")
	}
}

func TestContainsNormalized(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             bool
	}{
		{"שבוע טוב", "שָׁבוּעַ", true},
		{"שָׁבוּעַ", "שבוע", true},
		{"Keyboard shortcuts", "keyboard", true},
		{"anything", "", true},
		{"", "", true},
		{"שלום", "מקלדת", false},
		{"", "word", false},
	}
	for _, tt := range tests {
		got := ContainsNormalized(tt.haystack, tt.needle)
		if got != tt.want {
			t.Errorf("ContainsNormalized(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}
