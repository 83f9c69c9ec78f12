package taxonomy

import "testing"

func TestPhrasesTableShape(t *testing.T) {
	table := Phrases()
	if len(table) < 150 {
		t.Fatalf("taxonomy has %d phrases, want at least 150", len(table))
	}

	seenCategories := make(map[Category]int)
	for _, p := range table {
		if p.Phrase == "" {
			t.Errorf("empty phrase in table")
		}
		if p.Phrase != toLowerASCII(p.Phrase) {
			t.Errorf("phrase %q not lowercase", p.Phrase)
		}
		seenCategories[p.Category]++
	}

	if len(seenCategories) != 8 {
		t.Errorf("got %d categories, want 8", len(seenCategories))
	}
}

func TestCategorySeverityAssignment(t *testing.T) {
	allowed := map[Category][]Severity{
		CategoryDirectIdeation:   {SeverityCritical},
		CategoryIndirectIdeation: {SeverityModerate, SeverityHigh},
		CategoryPlanning:         {SeverityCritical},
		CategorySelfHarm:         {SeverityHigh},
		CategoryHopelessness:     {SeverityModerate},
		CategoryBehavioral:       {SeverityModerate},
		CategoryThirdParty:       {SeverityHigh},
		CategoryImminent:         {SeverityCritical},
	}

	for _, p := range Phrases() {
		want, ok := allowed[p.Category]
		if !ok {
			t.Errorf("phrase %q has unknown category %q", p.Phrase, p.Category)
			continue
		}
		found := false
		for _, s := range want {
			if p.Severity == s {
				found = true
			}
		}
		if !found {
			t.Errorf("phrase %q: severity %s not allowed for category %q", p.Phrase, p.Severity, p.Category)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityLow < SeverityModerate && SeverityModerate < SeverityHigh && SeverityHigh < SeverityCritical) {
		t.Fatal("severity ordering broken")
	}
	if Max(SeverityModerate, SeverityCritical) != SeverityCritical {
		t.Error("Max should return the higher severity")
	}
	if Max(SeverityHigh, SeverityLow) != SeverityHigh {
		t.Error("Max should return the higher severity")
	}
}

func TestCategoryGroupsPartition(t *testing.T) {
	for cat := range CrisisCategories {
		if ModerateRiskCategories[cat] {
			t.Errorf("category %q in both groups", cat)
		}
	}
}

// toLowerASCII avoids importing strings just to check table hygiene.
func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
