package loot

import (
	"strings"
	"testing"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/testutil"
)

func newGen(t *testing.T, seed int64) *Generator {
	t.Helper()
	testutil.LoadCatalogs(t)
	return NewGenerator(testutil.NewRand(seed), 0)
}

func TestGenerate_QuotaNeverExceeded(t *testing.T) {
	g := newGen(t, 1)

	for i := 0; i < 400; i++ {
		it := g.Generate(35, nil)
		g.Identify(it)

		quota := data.GetTierSchema(it.Tier()).Quota()
		if n := it.AffixCount(data.AffixEmbedded); n > quota.Embedded {
			t.Fatalf("%s item rolled %d embedded affixes, quota %d", it.Tier(), n, quota.Embedded)
		}
		if n := it.AffixCount(data.AffixPrefix); n > quota.Prefix {
			t.Fatalf("%s item rolled %d prefixes, quota %d", it.Tier(), n, quota.Prefix)
		}
		if n := it.AffixCount(data.AffixSuffix); n > quota.Suffix {
			t.Fatalf("%s item rolled %d suffixes, quota %d", it.Tier(), n, quota.Suffix)
		}
	}
}

func TestGenerate_BasicItemsArriveIdentified(t *testing.T) {
	g := newGen(t, 2)

	sawBasic := false
	for i := 0; i < 200; i++ {
		it := g.Generate(1, nil)
		if it.Tier() != data.TierBasic {
			continue
		}
		sawBasic = true
		if !it.Identified {
			t.Fatal("basic item not identified at creation")
		}
		total := it.AffixCount(data.AffixEmbedded) + it.AffixCount(data.AffixPrefix) + it.AffixCount(data.AffixSuffix)
		if total != 0 {
			t.Fatalf("basic item carries %d affixes", total)
		}
		if strings.HasPrefix(it.Name, "Unidentified") {
			t.Fatalf("identified basic item named %q", it.Name)
		}
	}
	if !sawBasic {
		t.Fatal("no basic items in 200 rolls at area level 1")
	}
}

func TestGenerate_NonBasicUnidentifiedUntilIdentify(t *testing.T) {
	g := newGen(t, 3)

	var it *model.ItemInstance
	for i := 0; i < 500; i++ {
		cand := g.Generate(40, nil)
		if cand.Tier() != data.TierBasic {
			it = cand
			break
		}
	}
	if it == nil {
		t.Fatal("no non-basic item in 500 rolls at area level 40")
	}

	if it.Identified {
		t.Fatal("non-basic item identified at creation")
	}
	if !strings.HasPrefix(it.Name, "Unidentified") {
		t.Fatalf("unidentified item named %q", it.Name)
	}
	if it.Details.Base != nil {
		t.Fatal("base-stat affix rolled before identification")
	}

	g.Identify(it)
	if !it.Identified {
		t.Fatal("Identify did not mark the item identified")
	}
	if it.Details.Base == nil {
		t.Fatal("identified item has no base-stat affix")
	}
	if strings.HasPrefix(it.Name, "Unidentified") {
		t.Fatalf("identified item still named %q", it.Name)
	}
}

func TestIdentify_IsOneWay(t *testing.T) {
	g := newGen(t, 4)

	it := g.Generate(30, nil)
	g.Identify(it)

	name := it.Name
	affixes := it.AffixCount(data.AffixPrefix)
	g.Identify(it)
	if it.Name != name || it.AffixCount(data.AffixPrefix) != affixes {
		t.Error("identifying an identified item re-rolled it")
	}
}

func TestRollTier_LowLevelMostlyBasic(t *testing.T) {
	g := newGen(t, 5)

	counts := make(map[data.Tier]int)
	for i := 0; i < 2000; i++ {
		counts[g.RollTier(1)]++
	}
	if frac := float64(counts[data.TierBasic]) / 2000; frac < 0.5 {
		t.Errorf("basic fraction at source level 1 = %v, want > 0.5", frac)
	}
}

func TestRollTier_HighLevelShiftsUp(t *testing.T) {
	g := newGen(t, 6)

	const n = 4000
	lowRare, highRare := 0, 0
	for i := 0; i < n; i++ {
		if tier := g.RollTier(1); tier >= data.TierAbstract {
			lowRare++
		}
		if tier := g.RollTier(40); tier >= data.TierAbstract {
			highRare++
		}
	}
	if highRare <= lowRare {
		t.Errorf("abstract+ rolls at the cap (%d) not above level 1 (%d)", highRare, lowRare)
	}
}

func TestRollValue_RangeOrdering(t *testing.T) {
	g := newGen(t, 7)

	a := data.GetAffix("prefix_fire_1")
	if a == nil {
		t.Fatal("prefix_fire_1 missing from catalog")
	}
	for i := 0; i < 300; i++ {
		v := g.rollValue(a)
		if v.Kind != data.ValueRange {
			t.Fatalf("two-placeholder affix rolled kind %s", v.Kind)
		}
		if v.Max < v.Min {
			t.Fatalf("rolled range max %v < min %v", v.Max, v.Min)
		}
		if v.Min < a.MinValue || v.Min > a.MaxValue-1 {
			t.Fatalf("range min %v outside [%v, %v]", v.Min, a.MinValue, a.MaxValue-1)
		}
		if v.Max > a.MaxValue {
			t.Fatalf("range max %v above %v", v.Max, a.MaxValue)
		}
	}
}

func TestRollValue_SingleWithinBounds(t *testing.T) {
	g := newGen(t, 8)

	a := data.GetAffix("prefix_life_1")
	if a == nil {
		t.Fatal("prefix_life_1 missing from catalog")
	}
	for i := 0; i < 300; i++ {
		v := g.rollValue(a)
		if v.Kind != data.ValueAdditive {
			t.Fatalf("flat affix rolled kind %s", v.Kind)
		}
		if v.Value < a.MinValue || v.Value > a.MaxValue {
			t.Fatalf("value %v outside [%v, %v]", v.Value, a.MinValue, a.MaxValue)
		}
	}
}

func TestRollValue_MultiplicativeKind(t *testing.T) {
	g := newGen(t, 9)

	a := data.GetAffix("suffix_wrath_2")
	if a == nil {
		t.Fatal("suffix_wrath_2 missing from catalog")
	}
	if v := g.rollValue(a); v.Kind != data.ValueMultiplicative {
		t.Errorf("multiplicative affix rolled kind %s", v.Kind)
	}
}

func TestGenerate_LootTagsSteerBaseType(t *testing.T) {
	g := newGen(t, 10)

	weapons := 0
	const n = 500
	for i := 0; i < n; i++ {
		it := g.Generate(10, []string{"weapon"})
		if data.BaseCategoryOf(it.Type) == data.BaseWeapon {
			weapons++
		}
	}
	// 90% tag-steered; 3 of 9 bases are weapons in the uniform residue.
	if frac := float64(weapons) / n; frac < 0.8 {
		t.Errorf("weapon fraction with weapon tag = %v, want > 0.8", frac)
	}
}

func TestGenerate_ItemLevelInRange(t *testing.T) {
	g := newGen(t, 11)
	for i := 0; i < 300; i++ {
		it := g.Generate(12, nil)
		if it.ILvl < 1 || it.ILvl > 100 {
			t.Fatalf("item level %d out of [1,100]", it.ILvl)
		}
		if it.ILvl < 8 || it.ILvl > 16 {
			t.Fatalf("item level %d implausibly far from area level 12", it.ILvl)
		}
	}
}

func TestGenerate_MutationsOnlyAboveBasic(t *testing.T) {
	g := newGen(t, 12)
	for i := 0; i < 400; i++ {
		it := g.Generate(40, nil)
		if it.Tier() == data.TierBasic && len(it.Mutations()) > 0 {
			t.Fatal("basic item rolled a mutation")
		}
	}
}

func TestDisplayName_Shape(t *testing.T) {
	testutil.LoadCatalogs(t)

	it := &model.ItemInstance{
		Type: "sword",
		Details: &model.ItemDetails{
			Tier: data.TierInfused,
			Embedded: []model.RolledAffix{
				{ID: "embedded_armor_1", Category: data.CategoryDefense, SubCategory: data.SubArmor},
			},
			Prefix: []model.RolledAffix{
				{ID: "prefix_attack_2", Category: data.CategoryAttack, SubCategory: data.SubPhysical},
			},
			Suffix: []model.RolledAffix{
				{ID: "suffix_fortune_1", Category: data.CategoryAttribute, SubCategory: data.SubFortune},
			},
		},
	}

	if got := displayName(it); got != "Physical Armor Infused Sword of Fortune" {
		t.Errorf("displayName = %q", got)
	}
}

func TestDisplayName_FallsBackToCategory(t *testing.T) {
	testutil.LoadCatalogs(t)

	it := &model.ItemInstance{
		Type: "wand",
		Details: &model.ItemDetails{
			Tier: data.TierEnhanced,
			Prefix: []model.RolledAffix{
				{ID: "prefix_life_1", Category: data.CategoryLife, SubCategory: data.SubNone},
			},
		},
	}
	if got := displayName(it); got != "Life Enhanced Wand" {
		t.Errorf("displayName = %q", got)
	}
}

func TestUnidentifiedName(t *testing.T) {
	if got := unidentifiedName(data.TierAbstract, "amulet"); got != "Unidentified Abstract Amulet" {
		t.Errorf("unidentifiedName = %q", got)
	}
}
