package match

import (
	"slices"
	"testing"
)

func TestSplitPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"Foo", []string{"Foo"}},
		{"foo", []string{"foo"}},
		{"FooBar", []string{"Foo", "Bar"}},
		{"FooBarBaz", []string{"Foo", "Bar", "Baz"}},
		{"BarName", []string{"Bar", "Name"}},
		{"ÆblerPærer", []string{"Æbler", "Pærer"}},
		{"ØlÆble", []string{"Øl", "Æble"}},
		{"customerName", []string{"customer", "Name"}},
		{"ID", []string{"I", "D"}},
		{"OrderID", []string{"Order", "I", "D"}},
		{"Foo_Bar", []string{"Foo_", "Bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SplitPascalCase(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("SplitPascalCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitPascalCase_TwoWordRoundTrip(t *testing.T) {
	words := []string{"Foo", "Bar", "Name", "Customer", "Æbler", "Pærer", "X"}

	for _, w1 := range words {
		for _, w2 := range words {
			got := SplitPascalCase(w1 + w2)
			if !slices.Equal(got, []string{w1, w2}) {
				t.Errorf("SplitPascalCase(%q) = %q, want [%q %q]", w1+w2, got, w1, w2)
			}
		}
	}
}

func TestSplitOnFirstWord(t *testing.T) {
	tests := []struct {
		input     string
		first     string
		remaining string
	}{
		{"FooBarBaz", "Foo", "BarBaz"},
		{"Foo", "Foo", ""},
		{"", "", ""},
		{"ÆblerPærer", "Æbler", "Pærer"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			first, remaining := SplitOnFirstWord(tt.input)
			if first != tt.first || remaining != tt.remaining {
				t.Errorf("SplitOnFirstWord(%q) = (%q, %q), want (%q, %q)",
					tt.input, first, remaining, tt.first, tt.remaining)
			}
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"LastName", "lastname"},
		{"last_name", "lastname"},
		{"last-name", "lastname"},
		{"lastName", "lastname"},
		{"Customer.Name", "customername"},
		{"Æbler", "æbler"},
		{"", ""},
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

func BenchmarkSplitPascalCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SplitPascalCase("ShippingAddressPostalCode")
	}
}
