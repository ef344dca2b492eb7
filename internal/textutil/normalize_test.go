package textutil

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "accents digits and extension stripped",
			filename: "Sentença 249023 final.pdf",
			want:     "sentenca final",
		},
		{
			name:     "punctuation and underscores collapse",
			filename: "Parecer__jurídico--(cópia).pdf",
			want:     "parecer juridico copia",
		},
		{
			name:     "digit runs become single spaces",
			filename: "doc12_999_v2.pdf",
			want:     "doc v",
		},
		{
			name:     "only punctuation yields empty",
			filename: "___---___.pdf",
			want:     "",
		},
		{
			name:     "only digits yields empty",
			filename: "249023.pdf",
			want:     "",
		},
		{
			name:     "already plain",
			filename: "parecer final.pdf",
			want:     "parecer final",
		},
		{
			name:     "empty input",
			filename: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.filename)
			if got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestNormalizeTextDeterministic(t *testing.T) {
	const filename = "Ação Ordinária nº 555123 (réplica).pdf"
	first := NormalizeText(filename)
	for i := 0; i < 5; i++ {
		if got := NormalizeText(filename); got != first {
			t.Fatalf("NormalizeText not deterministic: %q then %q", first, got)
		}
	}
}
