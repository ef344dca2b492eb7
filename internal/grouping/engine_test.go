package grouping

import (
	"reflect"
	"testing"

	"mesclador/internal/similarity"
)

func TestGroupFilesByNumericToken(t *testing.T) {
	files := []string{"A_100.pdf", "B_100.pdf", "C_999.pdf"}

	groups := GroupFiles(files, 0.7)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	want := []string{"A_100.pdf", "B_100.pdf"}
	if !reflect.DeepEqual(groups[0].Files, want) {
		t.Errorf("group = %v, want %v", groups[0].Files, want)
	}
	if groups[0].Anchor() != "A_100.pdf" {
		t.Errorf("anchor = %q, want A_100.pdf", groups[0].Anchor())
	}
}

func TestGroupFilesNoSingletons(t *testing.T) {
	files := []string{"contrato_111222.pdf", "parecer_333444.pdf", "sentenca_555666.pdf"}

	groups := GroupFiles(files, 0.7)

	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0 (all singletons)", len(groups))
	}
}

func TestGroupFilesThresholdBoundaryIncluded(t *testing.T) {
	// Identical normalized text scores exactly 1.0; a threshold of 1.0 must
	// still include the pair (>=, not >).
	files := []string{"parecer final.pdf", "parecer-final.pdf"}

	groups := GroupFiles(files, 1.0)

	if len(groups) != 1 || groups[0].Size() != 2 {
		t.Fatalf("groups = %v, want one group of 2", groups)
	}
}

func TestGroupFilesAnchorOnlyComparison(t *testing.T) {
	// B and C both share a token with anchor A but not with each other; the
	// engine still puts all three in one group because only anchor-vs-candidate
	// comparisons are made.
	files := []string{
		"anexo 111000 333000.pdf",
		"parecer 111000.pdf",
		"sentenca 333000.pdf",
	}
	a := similarity.Score(files[0], files[1])
	b := similarity.Score(files[0], files[2])
	c := similarity.Score(files[1], files[2])
	if a.Numeric != 1 || b.Numeric != 1 {
		t.Fatal("test fixture broken: candidates must share a token with the anchor")
	}
	if c.Final >= 0.7 {
		t.Fatal("test fixture broken: candidates must be dissimilar to each other")
	}

	groups := GroupFiles(files, 0.7)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if !reflect.DeepEqual(groups[0].Files, files) {
		t.Errorf("group = %v, want %v", groups[0].Files, files)
	}
}

func TestGroupFilesDisjoint(t *testing.T) {
	files := []string{
		"A_100.pdf",
		"B_100.pdf",
		"C_200.pdf",
		"D_200.pdf",
	}

	groups := GroupFiles(files, 0.7)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	seen := make(map[string]int)
	for _, g := range groups {
		for _, f := range g.Files {
			seen[f]++
		}
	}
	for f, n := range seen {
		if n != 1 {
			t.Errorf("%q placed %d times, want exactly once", f, n)
		}
	}
}

func TestGroupFilesIdempotent(t *testing.T) {
	files := []string{
		"Sentença 249023 final.pdf",
		"Parecer 249023.pdf",
		"Contrato 770001.pdf",
		"Contrato 770001 assinado.pdf",
		"avulso.pdf",
	}

	first := GroupFiles(files, 0.6)
	second := GroupFiles(files, 0.6)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("grouping not idempotent:\nfirst  = %v\nsecond = %v", first, second)
	}
}

func TestGroupFilesObservedReportsComparisons(t *testing.T) {
	files := []string{"A_100.pdf", "B_100.pdf", "C_999.pdf"}

	type seen struct {
		anchor, candidate string
		accepted          bool
	}
	var calls []seen
	GroupFilesObserved(files, 0.7, func(anchor, candidate string, result similarity.Result, accepted bool) {
		calls = append(calls, seen{anchor, candidate, accepted})
	})

	want := []seen{
		{"A_100.pdf", "B_100.pdf", true},
		{"A_100.pdf", "C_999.pdf", false},
		// C is anchored last with nothing after it, so no further comparisons.
	}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("comparisons = %v, want %v", calls, want)
	}
}

func TestGroupFilesEmptyInput(t *testing.T) {
	if groups := GroupFiles(nil, 0.5); len(groups) != 0 {
		t.Errorf("groups = %v, want none", groups)
	}
}
