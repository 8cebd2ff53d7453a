package catalog

import "strings"

// KeywordGroup maps a set of trigger substrings onto one display category.
type KeywordGroup struct {
	Category DisplayCategory
	Keywords []string
}

// Classifier assigns product rows to display categories by ordered,
// first-match-wins keyword containment. The group order is load-bearing:
// categories are mutually exclusive only because earlier groups shadow
// later ones, so reordering a table changes classification results.
type Classifier struct {
	groups   []KeywordGroup
	excluded map[string]struct{}
	fallback DisplayCategory
}

// NewClassifier builds a classifier over an ordered keyword table.
// excluded lists raw source categories mapped straight to CategoryOther
// before any keyword matching runs. fallback is returned when neither
// the raw category nor the item name matches any group.
func NewClassifier(groups []KeywordGroup, excluded []string, fallback DisplayCategory) *Classifier {
	ex := make(map[string]struct{}, len(excluded))
	for _, c := range excluded {
		ex[strings.ToLower(c)] = struct{}{}
	}
	return &Classifier{groups: groups, excluded: ex, fallback: fallback}
}

// Classify maps a raw source category plus the item name to a display
// category. The raw category is evaluated first; the name is only
// consulted when the category matched nothing. Empty inputs are fine and
// resolve to the fallback. Never returns an empty category.
func (c *Classifier) Classify(rawCategory, itemName string) DisplayCategory {
	cat := strings.ToLower(strings.TrimSpace(rawCategory))

	// Explicit exclusions win before any keyword fallback can rescue the row.
	if _, ok := c.excluded[cat]; ok {
		return CategoryOther
	}

	if got, ok := c.match(cat); ok {
		return got
	}
	if got, ok := c.match(strings.ToLower(itemName)); ok {
		return got
	}
	return c.fallback
}

func (c *Classifier) match(s string) (DisplayCategory, bool) {
	if s == "" {
		return "", false
	}
	for _, g := range c.groups {
		for _, kw := range g.Keywords {
			if strings.Contains(s, kw) {
				return g.Category, true
			}
		}
	}
	return "", false
}

// Categories returns the display categories of the keyword table in
// order, excluding the sentinel. The fallback is appended if no group
// names it.
func (c *Classifier) Categories() []DisplayCategory {
	out := make([]DisplayCategory, 0, len(c.groups)+1)
	seen := map[DisplayCategory]struct{}{}
	for _, g := range c.groups {
		if _, ok := seen[g.Category]; ok {
			continue
		}
		seen[g.Category] = struct{}{}
		out = append(out, g.Category)
	}
	if _, ok := seen[c.fallback]; !ok {
		out = append(out, c.fallback)
	}
	return out
}
