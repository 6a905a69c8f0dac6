package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"ErrorType", "errortype"},
		{"error_type", "errortype"},
		{"error-type", "errortype"},
		{"errorType", "errortype"},
		{"ERROR_TYPE", "errortype"},

		// CamelCase variations
		{"IntoItems", "intoitems"},
		{"TryIntoRows", "tryintorows"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},

		// With underscores
		{"items_from", "itemsfrom"},
		{"SELF_IMPL", "selfimpl"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"ID", "id"},
		{"id", "id"},

		// Mixed separators
		{"items_from-Types", "itemsfromtypes"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentSingular(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"types", "type"},
		{"Collections", "collection"},
		{"tuples", "tuple"},
		{"entries", "entry"},
		{"IntoItems", "intoitem"},

		// Should not strip if too little would remain
		{"s", "s"},
		{"is", "is"},
		{"as", "as"},

		// No suffix to strip
		{"vec", "vec"},
		{"error_type", "errortype"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdentSingular(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdentSingular(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"IntoItems", []string{"Into", "Items"}},
		{"errorType", []string{"error", "Type"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"items_from", []string{"items", "from"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AB", []string{"AB"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"URLParser", []string{"URL", "Parser"}},
		{"parseURL", []string{"parse", "URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"TryIntoItems", []string{"try", "into", "items"}},
		{"errorType", []string{"error", "type"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"self_impl", []string{"self", "impl"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
