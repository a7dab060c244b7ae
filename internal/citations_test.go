package internal

import "testing"

func TestStripCitations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single annotation",
			input: "Top pick: X【4:0†source】 is great.",
			want:  "Top pick: X is great.",
		},
		{
			name:  "trailing annotation",
			input: "Here are 3 roles.【2:1†source】",
			want:  "Here are 3 roles.",
		},
		{
			name:  "multiple annotations",
			input: "A【1:0†source】 and B【1:1†source】 and C.",
			want:  "A and B and C.",
		},
		{
			name:  "no annotations",
			input: "Plain reply without markup.",
			want:  "Plain reply without markup.",
		},
		{
			name:  "regular brackets untouched",
			input: "See [docs] and (notes).",
			want:  "See [docs] and (notes).",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripCitations(tt.input)
			if got != tt.want {
				t.Errorf("StripCitations(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// stripping must be idempotent
			if again := StripCitations(got); again != got {
				t.Errorf("StripCitations() not idempotent: %q -> %q", got, again)
			}
		})
	}
}
