package data

import (
	"regexp"
	"strings"
	"testing"
)

var affixIDPattern = regexp.MustCompile(`^(embedded|prefix|suffix)_[a-z]+_[0-9]+$`)

func TestAffixCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool, len(affixDefs))
	for _, a := range affixDefs {
		if seen[a.ID] {
			t.Errorf("duplicate affix ID %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestAffixCatalog_IDFormat(t *testing.T) {
	for _, a := range affixDefs {
		if !affixIDPattern.MatchString(a.ID) {
			t.Errorf("affix ID %q does not match {type}_{key}_{n}", a.ID)
		}
		if !strings.HasPrefix(a.ID, string(a.Type)+"_") {
			t.Errorf("affix ID %q does not start with its slot type %q", a.ID, a.Type)
		}
	}
}

func TestAffixCatalog_Sanity(t *testing.T) {
	for _, a := range affixDefs {
		if a.Name == "" {
			t.Errorf("affix %q has no name", a.ID)
		}
		if a.MinValue > a.MaxValue {
			t.Errorf("affix %q has MinValue %v > MaxValue %v", a.ID, a.MinValue, a.MaxValue)
		}
		if n := a.PlaceholderCount(); n < 1 || n > 2 {
			t.Errorf("affix %q has %d placeholders, want 1 or 2", a.ID, n)
		}
		if a.MinILevel > 0 && a.MaxILevel > 0 && a.MinILevel >= a.MaxILevel {
			t.Errorf("affix %q has empty item-level window [%d,%d)", a.ID, a.MinILevel, a.MaxILevel)
		}
	}
}

func TestAffixEligibility_ItemLevelWindow(t *testing.T) {
	a := Affix{ID: "prefix_test_1", Type: AffixPrefix, MinILevel: 25, MaxILevel: 65}

	tests := []struct {
		iLvl int
		want bool
	}{
		{24, false},
		{25, true}, // lower bound inclusive
		{40, true},
		{64, true},
		{65, false}, // upper bound exclusive
		{90, false},
	}
	for _, tt := range tests {
		if got := a.EligibleFor(TierEnhanced, BaseWeapon, nil, tt.iLvl); got != tt.want {
			t.Errorf("EligibleFor(iLvl=%d) = %v, want %v", tt.iLvl, got, tt.want)
		}
	}
}

func TestAffixEligibility_ZeroBoundsUnbounded(t *testing.T) {
	a := Affix{ID: "prefix_test_1", Type: AffixPrefix}
	for _, iLvl := range []int{1, 50, 100} {
		if !a.EligibleFor(TierBasic, BaseWeapon, nil, iLvl) {
			t.Errorf("unbounded affix rejected iLvl %d", iLvl)
		}
	}
}

func TestAffixEligibility_TierAndBaseGates(t *testing.T) {
	a := Affix{
		ID:           "suffix_test_1",
		Type:         AffixSuffix,
		AllowedTiers: []Tier{TierAbstract, TierInfused},
		AllowedBases: []BaseCategory{BaseWeapon},
	}

	if a.EligibleFor(TierEnhanced, BaseWeapon, nil, 50) {
		t.Error("tier outside AllowedTiers should be rejected")
	}
	if a.EligibleFor(TierInfused, BaseArmor, nil, 50) {
		t.Error("base outside AllowedBases should be rejected")
	}
	if !a.EligibleFor(TierInfused, BaseWeapon, nil, 50) {
		t.Error("matching tier and base should be accepted")
	}
}

func TestAffixEligibility_MutationGate(t *testing.T) {
	a := Affix{
		ID:               "embedded_test_1",
		Type:             AffixEmbedded,
		AllowedMutations: []Mutation{MutationResonant},
	}

	if a.EligibleFor(TierInfused, BaseArmor, nil, 50) {
		t.Error("mutation-gated affix should reject an unmutated item")
	}
	if a.EligibleFor(TierInfused, BaseArmor, []Mutation{MutationFractured}, 50) {
		t.Error("mutation-gated affix should reject a non-matching mutation")
	}
	if !a.EligibleFor(TierInfused, BaseArmor, []Mutation{MutationFractured, MutationResonant}, 50) {
		t.Error("mutation-gated affix should accept a matching mutation")
	}
}

func TestEligibleAffixes_FiltersByType(t *testing.T) {
	for _, typ := range []AffixType{AffixEmbedded, AffixPrefix, AffixSuffix} {
		pool := EligibleAffixes(typ, TierInfused, BaseWeapon, nil, 50)
		for _, a := range pool {
			if a.Type != typ {
				t.Errorf("EligibleAffixes(%s) returned %q of type %s", typ, a.ID, a.Type)
			}
		}
	}
}

func TestFormatAffixDescription(t *testing.T) {
	if err := LoadAffixes(); err != nil {
		t.Fatalf("LoadAffixes: %v", err)
	}

	tests := []struct {
		name   string
		id     string
		tier   int
		values []float64
		want   string
	}{
		{"single value", "embedded_armor_1", 1, []float64{12}, "+12 armor"},
		{"trimmed float", "suffix_life_1", 1, []float64{2.5}, "+2.5 health regeneration"},
		{"range fills both", "prefix_fire_1", 1, []float64{2, 7}, "adds 2 to 7 fire damage"},
		{"tier-adjusted fallback", "embedded_armor_9", 2, []float64{20}, "+20 armor"},
		{"unknown id", "prefix_nonsense_1", 1, []float64{5}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAffixDescription(tt.id, tt.tier, tt.values...)
			if got != tt.want {
				t.Errorf("FormatAffixDescription(%q, %d, %v) = %q, want %q",
					tt.id, tt.tier, tt.values, got, tt.want)
			}
		})
	}
}

func TestGetAffix_AfterLoad(t *testing.T) {
	if err := LoadAffixes(); err != nil {
		t.Fatalf("LoadAffixes: %v", err)
	}
	if a := GetAffix("prefix_life_1"); a == nil || a.Name != "Stout" {
		t.Errorf("GetAffix(prefix_life_1) = %+v, want the Stout definition", a)
	}
	if a := GetAffix("no_such_affix"); a != nil {
		t.Errorf("GetAffix on a miss = %+v, want nil", a)
	}
}
