// Package loot procedurally rolls item instances: tier, item level,
// mutations and hidden flags at creation, affixes and the base-stat roll at
// identification.
package loot

import (
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/combat"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

// DefaultLevelCap normalizes tier weights; sources at or above it roll with
// fully shifted weights.
const DefaultLevelCap = 40

// Escalating chance to stop rolling further affixes for a slot, evaluated
// before each roll after the first: 0.20 + 0.15·rolled.
const (
	stopChanceBase = 0.20
	stopChanceStep = 0.15
)

// Hidden flag and mutation odds, rolled once at creation.
const (
	cursedChance      = 0.05
	corruptedChance   = 0.03
	voidTouchedChance = 0.01
	mutationChance    = 0.04 // per mutation kind, non-basic tiers only
)

// Generator rolls items. Not safe for concurrent use; the controller owns
// one and serializes access.
type Generator struct {
	rng      *rand.Rand
	levelCap int
}

// NewGenerator returns a Generator drawing from rng. A levelCap of zero
// falls back to DefaultLevelCap.
func NewGenerator(rng *rand.Rand, levelCap int) *Generator {
	if levelCap <= 0 {
		levelCap = DefaultLevelCap
	}
	return &Generator{rng: rng, levelCap: levelCap}
}

// RollTier performs weighted random tier selection. Weights are re-derived
// from the source level on every call, never cached. Floating-point residue
// falls back to the lowest tier.
func (g *Generator) RollTier(sourceLevel int) data.Tier {
	normalized := math.Min(1, float64(sourceLevel)/float64(g.levelCap))

	schemas := data.AllTierSchemas()
	total := 0.0
	for _, s := range schemas {
		total += s.AdjustedWeight(normalized)
	}

	r := g.rng.Float64() * total
	for _, s := range schemas {
		w := s.AdjustedWeight(normalized)
		if r < w {
			return s.Tier()
		}
		r -= w
	}
	return data.TierBasic
}

// Generate rolls a new unidentified item for an area level. Base type comes
// from the loot tags 90% of the time, uniformly otherwise. Basic-tier items
// have no affixes to reveal and are identified immediately.
func (g *Generator) Generate(areaLevel int, lootTags []string) *model.ItemInstance {
	base := g.rollBaseType(lootTags)
	tier := g.RollTier(areaLevel)

	it := &model.ItemInstance{
		Identifier: uuid.New(),
		Type:       base,
		ILvl:       combat.ItemLevel(g.rng, areaLevel),
		Details: &model.ItemDetails{
			Tier:      tier,
			Mutations: g.rollMutations(tier),
		},
		IsCursed:      g.rng.Float64() < cursedChance,
		IsCorrupted:   g.rng.Float64() < corruptedChance,
		IsVoidTouched: g.rng.Float64() < voidTouchedChance,
	}
	it.Name = unidentifiedName(tier, base)

	if tier == data.TierBasic {
		g.Identify(it)
	}
	return it
}

// Identify reveals an item: rolls the per-slot affix lists under the tier
// quota, rolls exactly one scaled base-stat affix, and builds the display
// name. One-way; identifying an identified item is a no-op.
func (g *Generator) Identify(it *model.ItemInstance) {
	if it.Identified {
		return
	}
	if it.Details == nil {
		it.Details = &model.ItemDetails{Tier: data.TierBasic}
	}

	schema := data.GetTierSchema(it.Details.Tier)
	baseCat := data.BaseCategoryOf(it.Type)

	it.Details.Embedded = g.rollAffixList(data.AffixEmbedded, schema.Quota().Embedded, it, baseCat)
	it.Details.Prefix = g.rollAffixList(data.AffixPrefix, schema.Quota().Prefix, it, baseCat)
	it.Details.Suffix = g.rollAffixList(data.AffixSuffix, schema.Quota().Suffix, it, baseCat)
	it.Details.Base = g.rollBaseDetail(it, schema, baseCat)

	it.Name = displayName(it)
	it.Identified = true
}

func (g *Generator) rollBaseType(lootTags []string) data.BaseType {
	pool := data.AllBaseTypes()
	if len(lootTags) > 0 && g.rng.Float64() < 0.9 {
		if tagged := data.BaseTypesByTags(lootTags); len(tagged) > 0 {
			pool = tagged
		}
	}
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) rollMutations(tier data.Tier) []data.Mutation {
	if tier == data.TierBasic {
		return nil
	}
	var out []data.Mutation
	for _, m := range []data.Mutation{data.MutationFractured, data.MutationResonant, data.MutationUnstable} {
		if g.rng.Float64() < mutationChance {
			out = append(out, m)
		}
	}
	return out
}

func (g *Generator) rollAffixList(typ data.AffixType, quota int, it *model.ItemInstance, baseCat data.BaseCategory) []model.RolledAffix {
	var out []model.RolledAffix
	for i := 0; i < quota; i++ {
		if i > 0 {
			stop := stopChanceBase + stopChanceStep*float64(i)
			if g.rng.Float64() < stop {
				break
			}
		}
		pool := data.EligibleAffixes(typ, it.Details.Tier, baseCat, it.Details.Mutations, it.ILvl)
		if len(pool) == 0 {
			break
		}
		a := pool[g.rng.Intn(len(pool))]
		out = append(out, model.RolledAffix{
			ID:          a.ID,
			Category:    a.Category,
			SubCategory: a.SubCategory,
			Value:       g.rollValue(a),
		})
	}
	return out
}

// rollValue draws the affix value. Two description placeholders roll a
// range: min uniform in [minValue, maxValue-1], max uniform in
// [min, maxValue], guaranteeing max >= min and leaning toward narrow ranges
// near the floor.
func (g *Generator) rollValue(a *data.Affix) model.AffixValue {
	if a.PlaceholderCount() == 2 {
		lo := g.uniformInt(a.MinValue, a.MaxValue-1)
		hi := g.uniformInt(lo, a.MaxValue)
		return model.AffixValue{Kind: data.ValueRange, Min: lo, Max: hi}
	}
	v := g.uniformInt(a.MinValue, a.MaxValue)
	if a.IsMultiplicative {
		return model.AffixValue{Kind: data.ValueMultiplicative, Value: v}
	}
	return model.AffixValue{Kind: data.ValueAdditive, Value: v}
}

func (g *Generator) rollBaseDetail(it *model.ItemInstance, schema data.TierSchema, baseCat data.BaseCategory) *model.BaseDetail {
	candidates := data.BaseAffixesFor(baseCat)
	if len(candidates) == 0 {
		return nil
	}
	b := candidates[g.rng.Intn(len(candidates))]
	value := g.uniformInt(b.MinValue, b.MaxValue) * schema.Scaling() * data.BaseLevelScaling(it.ILvl)
	return &model.BaseDetail{
		ID:      b.ID,
		Target:  b.Target,
		Element: b.Element,
		Value:   math.Round(value*100) / 100,
	}
}

// uniformInt rolls a whole number uniformly in [lo, hi].
func (g *Generator) uniformInt(lo, hi float64) float64 {
	l, h := int(lo), int(hi)
	if h <= l {
		return float64(l)
	}
	return float64(l + g.rng.Intn(h-l+1))
}

func unidentifiedName(tier data.Tier, base data.BaseType) string {
	return "Unidentified " + capitalize(tier.String()) + " " + capitalize(string(base))
}

// displayName concatenates the capitalized prefix-category token, the
// embedded-category token, the tier name, the base type, and
// " of " + the suffix-category token — each taken from the first rolled
// affix of its slot. Absent slots contribute no token.
func displayName(it *model.ItemInstance) string {
	var parts []string
	if a := it.FirstAffix(data.AffixPrefix); a != nil {
		parts = append(parts, capitalize(categoryToken(a)))
	}
	if a := it.FirstAffix(data.AffixEmbedded); a != nil {
		parts = append(parts, capitalize(categoryToken(a)))
	}
	parts = append(parts, capitalize(it.Details.Tier.String()), capitalize(string(it.Type)))

	name := strings.Join(parts, " ")
	if a := it.FirstAffix(data.AffixSuffix); a != nil {
		name += " of " + capitalize(categoryToken(a))
	}
	return name
}

func categoryToken(a *model.RolledAffix) string {
	if a.SubCategory != data.SubNone {
		return string(a.SubCategory)
	}
	return string(a.Category)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
