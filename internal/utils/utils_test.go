package utils

import (
	"slices"
	"testing"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  `{"or_groups": []}`,
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "[]",
			limit:  10,
			expect: "[]",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  `{"count": 2}`,
			limit:  5,
			expect: `{"cou...`,
		},
		{
			name:   "counts runes",
			input:  "  Bahasa Melayu ✓ ",
			limit:  15,
			expect: "Bahasa Melayu ✓",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestTruncateListForLog(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c", "d"}

	if got := TruncateListForLog(items, 2); !slices.Equal(got, []string{"a", "b", "+2 more"}) {
		t.Fatalf("unexpected truncated list: %v", got)
	}
	if got := TruncateListForLog(items, 4); !slices.Equal(got, items) {
		t.Fatalf("expected the list unchanged, got %v", got)
	}
	if got := TruncateListForLog(items, 0); !slices.Equal(got, items) {
		t.Fatalf("expected no limit, got %v", got)
	}
}
