package voice

import (
	"encoding/json"
	"strings"

	"github.com/lmasumbuku/backend/internal/menu"
)

// Lexicon indexes a menu snapshot by normalized name and alias.
// It is built fresh for each parse call and never mutated afterwards,
// so it is safe to share across goroutines once built.
type Lexicon struct {
	keys  []string // first-insertion order, for deterministic iteration
	items map[string]menu.Item
}

// BuildLexicon indexes every item's display name and each of its aliases.
// Items are processed in menu order. When two entries normalize to the
// same key, the later-inserted item wins the mapping while the key keeps
// its first-insertion position; the tie-break is deliberate so a
// collision behaves the same on every call.
func BuildLexicon(items []menu.Item) *Lexicon {
	lex := &Lexicon{items: make(map[string]menu.Item)}
	for _, it := range items {
		lex.insert(it.Name, it)
		for _, alias := range ParseAliases(it.Aliases) {
			lex.insert(alias, it)
		}
	}
	return lex
}

func (l *Lexicon) insert(name string, it menu.Item) {
	key := Normalize(name)
	if key == "" {
		return
	}
	if _, seen := l.items[key]; !seen {
		l.keys = append(l.keys, key)
	}
	l.items[key] = it
}

// Lookup resolves a normalized key to its menu item.
func (l *Lexicon) Lookup(key string) (menu.Item, bool) {
	it, ok := l.items[key]
	return it, ok
}

// Keys returns every lexicon key in first-insertion order.
func (l *Lexicon) Keys() []string {
	return l.keys
}

// Empty reports whether nothing can be recognized against this lexicon.
func (l *Lexicon) Empty() bool {
	return len(l.keys) == 0
}

// ParseAliases turns whatever alias representation is stored on a menu
// item into a clean list. The column has carried both CSV text and
// JSON-encoded arrays over time, so both are accepted here; the rest of
// the pipeline never sees the storage format.
func ParseAliases(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return cleanAliases(parsed)
		}
	}

	return cleanAliases(strings.Split(s, ","))
}

func cleanAliases(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
