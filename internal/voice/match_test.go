package voice

import (
	"testing"

	"github.com/lmasumbuku/backend/internal/menu"
)

func TestMatchLabelExact(t *testing.T) {
	lex := BuildLexicon(testMenu())

	m, ok := MatchLabel("Margherita", lex)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Item.ID != 1 || m.Score != 1 {
		t.Errorf("unexpected match: %+v", m)
	}
}

func TestMatchLabelAlias(t *testing.T) {
	lex := BuildLexicon(testMenu())

	m, ok := MatchLabel("coca cola", lex)
	if !ok {
		t.Fatal("expected alias to match")
	}
	if m.Item.Name != "Coca" {
		t.Errorf("alias resolved to %q, want Coca", m.Item.Name)
	}
}

func TestMatchLabelContainment(t *testing.T) {
	items := []menu.Item{
		{ID: 1, Name: "Pizza Margherita", Price: 10.0},
		{ID: 2, Name: "Tiramisu", Price: 5.0},
	}
	lex := BuildLexicon(items)

	// partial utterance, label contained in a key
	m, ok := MatchLabel("margherita", lex)
	if !ok || m.Item.ID != 1 {
		t.Fatalf("'margherita' should match 'Pizza Margherita', got %+v ok=%v", m, ok)
	}

	// key contained in a longer label
	m, ok = MatchLabel("grande pizza margherita", lex)
	if !ok || m.Item.ID != 1 {
		t.Fatalf("'grande pizza margherita' should match, got %+v ok=%v", m, ok)
	}
}

func TestMatchLabelContainmentTieBreaksByInsertion(t *testing.T) {
	items := []menu.Item{
		{ID: 1, Name: "Menu Enfant", Price: 8.0},
		{ID: 2, Name: "Menu Pizza", Price: 12.0},
	}
	lex := BuildLexicon(items)

	// "menu" is contained in both keys; the first-inserted key wins.
	m, ok := MatchLabel("menu", lex)
	if !ok || m.Item.ID != 1 {
		t.Fatalf("expected first-inserted item, got %+v ok=%v", m, ok)
	}
}

func TestMatchLabelFuzzyTypo(t *testing.T) {
	lex := BuildLexicon(testMenu())

	m, ok := MatchLabel("margerita", lex)
	if !ok {
		t.Fatal("expected typo to fuzzy-match")
	}
	if m.Item.ID != 1 {
		t.Errorf("typo resolved to item %d, want 1", m.Item.ID)
	}
	if m.Score < MatchThreshold {
		t.Errorf("accepted score %f below threshold", m.Score)
	}
}

func TestMatchLabelRejectsUnknown(t *testing.T) {
	lex := BuildLexicon([]menu.Item{
		{ID: 1, Name: "Margherita", Price: 10.0},
		{ID: 2, Name: "Coca", Price: 3.0, Aliases: "coca cola"},
	})

	if m, ok := MatchLabel("pizza inconnue", lex); ok {
		t.Fatalf("unknown dish matched %q (score %f)", m.Item.Name, m.Score)
	}
}

func TestMatchLabelEmptyInputs(t *testing.T) {
	lex := BuildLexicon(testMenu())

	if _, ok := MatchLabel("", lex); ok {
		t.Error("empty label should not match")
	}
	if _, ok := MatchLabel("!!!", lex); ok {
		t.Error("punctuation-only label should not match")
	}
	if _, ok := MatchLabel("margherita", BuildLexicon(nil)); ok {
		t.Error("empty lexicon should not match")
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"margherita", "margherita"},
		{"margherita", "margerita"},
		{"coca", "coca cola"},
		{"pizza", "tiramisu"},
		{"", "pizza"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		if s < 0 || s > 1 {
			t.Errorf("Similarity(%q, %q) = %f out of [0,1]", p[0], p[1], s)
		}
	}

	if Similarity("margherita", "margherita") != 1 {
		t.Error("identical strings should score 1")
	}
	if Similarity("margherita", "margerita") < MatchThreshold {
		t.Error("one-letter typo should score above the acceptance threshold")
	}
	if Similarity("pizza", "tiramisu") >= MatchThreshold {
		t.Error("unrelated words should score below the acceptance threshold")
	}
}
