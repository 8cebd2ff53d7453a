package catalog

import "testing"

func newToolClassifier() *Classifier {
	return NewClassifier(DefaultToolKeywordGroups, DefaultExcludedCategories, CategoryHandTools)
}

func TestClassifyByCategory(t *testing.T) {
	cl := newToolClassifier()

	tests := []struct {
		rawCategory string
		name        string
		want        DisplayCategory
	}{
		{"power-tools", "Drill Driver 18V", CategoryPowerTools},
		{"test-equipment", "Multimeter Pro", CategoryTestEquipment},
		{"hand-tools", "VDE Screwdriver Set", CategoryHandTools},
		{"safety", "Cut-Resistant Gloves", CategorySafetyGear},
		{"accessories", "Tool Bag 20in", CategoryAccessories},
	}
	for _, tt := range tests {
		if got := cl.Classify(tt.rawCategory, tt.name); got != tt.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", tt.rawCategory, tt.name, got, tt.want)
		}
	}
}

func TestClassifyNameFallback(t *testing.T) {
	cl := newToolClassifier()

	// Raw category matches nothing, the item name carries the signal.
	if got := cl.Classify("misc", "Angle Grinder 115mm"); got != CategoryPowerTools {
		t.Errorf("got %q, want %q", got, CategoryPowerTools)
	}
	// Neither matches: default.
	if got := cl.Classify("misc", "Mystery Widget"); got != CategoryHandTools {
		t.Errorf("got %q, want %q", got, CategoryHandTools)
	}
}

func TestClassifyExclusionBeforeFallback(t *testing.T) {
	cl := newToolClassifier()

	// An excluded raw category must win even when the item name would
	// classify fine via keywords.
	if got := cl.Classify("plumbing", "Pipe Cutter Drill Attachment"); got != CategoryOther {
		t.Errorf("got %q, want %q", got, CategoryOther)
	}
	if got := cl.Classify("Appliances", "Kettle"); got != CategoryOther {
		t.Errorf("excluded match should be case-insensitive, got %q", got)
	}
}

func TestClassifyOrderingIsFirstMatchWins(t *testing.T) {
	cl := newToolClassifier()

	// "drill tester" contains both a power-tool and a test-equipment
	// keyword; the power tools group comes first in the table.
	if got := cl.Classify("drill tester", ""); got != CategoryPowerTools {
		t.Errorf("got %q, want %q", got, CategoryPowerTools)
	}
}

func TestClassifyTotality(t *testing.T) {
	cl := newToolClassifier()

	inputs := []string{"", " ", "DRILL", "Ω≈ç√", "a very long unmatched string with no keywords at all", "\x00"}
	valid := map[DisplayCategory]bool{}
	for _, c := range cl.Categories() {
		valid[c] = true
	}
	valid[CategoryOther] = true

	for _, s := range inputs {
		got := cl.Classify(s, s)
		if !valid[got] {
			t.Errorf("Classify(%q, %q) = %q, not in the fixed category set", s, s, got)
		}
	}
}

func TestClassifierCategoriesIncludesFallbackOnce(t *testing.T) {
	cl := newToolClassifier()
	cats := cl.Categories()

	seen := map[DisplayCategory]int{}
	for _, c := range cats {
		seen[c]++
	}
	if seen[CategoryHandTools] != 1 {
		t.Errorf("fallback category appears %d times, want 1", seen[CategoryHandTools])
	}
	if seen[CategoryOther] != 0 {
		t.Error("sentinel category must not be listed")
	}
}

func TestMaterialClassifier(t *testing.T) {
	cl := NewClassifier(DefaultMaterialKeywordGroups, DefaultExcludedCategories, CategoryConsumables)

	tests := []struct {
		rawCategory string
		name        string
		want        DisplayCategory
	}{
		{"cables", "Twin & Earth 2.5mm 100m", CategoryCables},
		{"lighting", "LED Downlight 5W", CategoryLighting},
		{"wiring-accessories", "Double Socket White", CategorySockets},
		{"misc", "PVC Insulation Tape", CategoryConsumables},
	}
	for _, tt := range tests {
		if got := cl.Classify(tt.rawCategory, tt.name); got != tt.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", tt.rawCategory, tt.name, got, tt.want)
		}
	}
}
