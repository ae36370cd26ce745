// Package stats folds a character's equipment, passives and temporal
// effects into a derived combat snapshot. The five passes are strictly
// ordered: baseline, equipment, passives (additive then multiplicative),
// temporal effects (additive then multiplicative), finalization.
// Multiplicative bonuses must see the fully accumulated additive base, and
// equipment must be committed before any passive or temporal stage runs.
package stats

import (
	"math"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/combat"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

// Baseline constants seeded before any modifier applies.
const (
	baseDamagePerTick = 3.0
	baseHealthRegen   = 1.0
	baseManaRegen     = 1.0
)

// resolver carries the not-yet-finalized accumulators between passes.
type resolver struct {
	char *model.Character
	snap Snapshot

	// Local scalars; converted into the mitigation vector only at
	// finalization.
	localArmor   float64
	localEvasion float64
	critBonus    float64
}

// Resolve computes a fresh combat snapshot for the character.
func Resolve(char *model.Character) Snapshot {
	r := &resolver{char: char}
	r.baseline()
	r.equipmentPass()
	r.passivePass()
	r.temporalPass()
	r.finalize()
	return r.snap
}

func (r *resolver) baseline() {
	s := r.char.Stats
	r.snap = Snapshot{
		Health:      float64(s.Health),
		MaxHealth:   float64(s.MaxHealth),
		Mana:        float64(s.Mana),
		MaxMana:     float64(s.MaxMana),
		HealthRegen: baseHealthRegen,
		ManaRegen:   baseManaRegen,
		BaseDamage:  baseDamagePerTick,
		Attributes: Attributes{
			Fortitude: float64(s.Fortitude),
			Fortune:   float64(s.Fortune),
			Wrath:     float64(s.Wrath),
			Affinity:  float64(s.Affinity),
		},
	}
}

// equipmentPass applies every equipped item in a single pass. Additive and
// multiplicative affixes both apply as encountered, in affix-list order.
func (r *resolver) equipmentPass() {
	for _, it := range r.char.EquippedItems() {
		if !it.Identified || it.Details == nil {
			continue
		}

		r.applyBaseDetail(it)

		// Duplicate-category normalization is per item: the k-th affix
		// of one category contributes at 1/(1+0.5·(k-1)).
		seen := map[data.AffixCategory]int{}
		for _, typ := range []data.AffixType{data.AffixEmbedded, data.AffixPrefix, data.AffixSuffix} {
			for _, a := range it.Affixes(typ) {
				mult := stackedAffixMultiplier(seen[a.Category])
				seen[a.Category]++
				r.routeItemAffix(typ, a, mult)
			}
		}
	}
}

// stackedAffixMultiplier damps repeated same-category affixes on one item:
// full value, then 2/3, 1/2, 2/5… Monotonic and sub-linear in count.
func stackedAffixMultiplier(alreadyApplied int) float64 {
	return 1 / (1 + 0.5*float64(alreadyApplied))
}

func (r *resolver) applyBaseDetail(it *model.ItemInstance) {
	b := it.Details.Base
	if b == nil {
		return
	}
	switch b.Target {
	case data.BaseTargetDamage:
		// Weapon base rolls replace, not augment, the base channel.
		r.snap.BaseDamage = b.Value
	case data.BaseTargetArmor:
		r.localArmor += b.Value
	case data.BaseTargetEvasion:
		r.localEvasion += b.Value
	case data.BaseTargetHealth:
		r.snap.MaxHealth += b.Value
	case data.BaseTargetResistance:
		r.addResistance(b.Element, b.Value)
	}
}

func (r *resolver) routeItemAffix(typ data.AffixType, a model.RolledAffix, mult float64) {
	v := a.Value.Scalar() * mult

	switch a.Category {
	case data.CategoryDefense:
		switch a.SubCategory {
		case data.SubArmor:
			r.localArmor += v
		case data.SubEvasion:
			r.localEvasion += v
		}
	case data.CategoryLife:
		// Prefixes grow the pool, suffixes the regeneration.
		if typ == data.AffixPrefix {
			r.snap.MaxHealth += v
		} else {
			r.snap.HealthRegen += v
		}
	case data.CategoryMana:
		if typ == data.AffixPrefix {
			r.snap.MaxMana += v
		} else {
			r.snap.ManaRegen += v
		}
	case data.CategoryAttribute:
		if a.Value.Kind == data.ValueMultiplicative {
			r.scaleAttribute(a.SubCategory, 1+v/100)
		} else {
			r.addAttribute(a.SubCategory, v)
		}
	case data.CategoryElemental:
		if typ == data.AffixEmbedded {
			r.addResistance(a.SubCategory, v)
		} else {
			r.addElementalDamage(a.SubCategory, v)
		}
	case data.CategoryCritical:
		r.critBonus += v
	case data.CategoryAttack:
		if a.Value.Kind == data.ValueMultiplicative {
			r.snap.PhysicalDamage *= 1 + v/100
		} else {
			r.snap.PhysicalDamage += v
		}
	}
}

// passivePass iterates the character's passives twice: every non-
// multiplicative effect first, multiplicative ones after.
func (r *resolver) passivePass() {
	for _, id := range r.char.Passives {
		p := data.GetPassive(id)
		if p == nil || p.Effect.IsMultiplicative() {
			continue
		}
		r.applyAdditiveEffect(p.Effect)
	}
	for _, id := range r.char.Passives {
		p := data.GetPassive(id)
		if p == nil || !p.Effect.IsMultiplicative() {
			continue
		}
		r.applyMultiplicativeEffect(p.Effect)
	}
}

func (r *resolver) applyAdditiveEffect(e data.Effect) {
	v := effectDelta(e)

	switch e.Category {
	case data.CategoryAttribute:
		r.addAttribute(e.SubCategory, v)
	case data.CategoryLife:
		r.snap.MaxHealth += v
		r.snap.Health += v
	case data.CategoryMana:
		r.snap.MaxMana += v
	case data.CategoryAttack:
		r.snap.PhysicalDamage += v
	case data.CategoryElemental:
		r.addElementalDamage(e.SubCategory, v)
	case data.CategoryDefense:
		switch e.SubCategory {
		case data.SubArmor:
			r.localArmor += v
		case data.SubEvasion:
			r.localEvasion += v
		case data.SubDeflection:
			// Deflection effects are expressed in attempts; convert
			// through the armor curve at the character's level.
			r.localArmor += combat.ArmorForDeflection(v, r.char.Level)
		case data.SubDodge:
			// Dodge effects are expressed in percent; invert the
			// dodge curve into evasion.
			r.localEvasion += combat.EvasionForDodge(v, r.char.Level)
		}
	}
}

func (r *resolver) applyMultiplicativeEffect(e data.Effect) {
	factor := 1 + e.Change/100

	switch e.Category {
	case data.CategoryAttribute:
		r.scaleAttribute(e.SubCategory, factor)
	case data.CategoryLife:
		r.snap.MaxHealth *= factor
	case data.CategoryMana:
		r.snap.MaxMana *= factor
	case data.CategoryAttack:
		r.snap.PhysicalDamage *= factor
	case data.CategoryElemental:
		switch e.SubCategory {
		case data.SubFire:
			r.snap.FireDamage *= factor
		case data.SubCold:
			r.snap.ColdDamage *= factor
		case data.SubLightning:
			r.snap.LightningDamage *= factor
		default:
			r.snap.FireDamage *= factor
			r.snap.ColdDamage *= factor
			r.snap.LightningDamage *= factor
		}
	case data.CategoryDefense:
		switch e.SubCategory {
		case data.SubArmor:
			r.localArmor *= factor
		case data.SubEvasion:
			r.localEvasion *= factor
		}
	}
}

// temporalPass mirrors the passive two-pass structure over temporal
// effects. The additive pass covers wrath, health, physical damage and the
// three-way elemental split; the multiplicative pass carries the named
// class-buff special cases.
func (r *resolver) temporalPass() {
	for _, t := range r.char.TemporalEffects {
		if isNamedClassBuff(t.Name) || t.Effect.IsMultiplicative() {
			continue
		}
		r.applyTemporalAdditive(t.Effect)
	}
	for _, t := range r.char.TemporalEffects {
		if isNamedClassBuff(t.Name) {
			r.applyNamedClassBuff(t)
			continue
		}
		if t.Effect.IsMultiplicative() {
			r.applyMultiplicativeEffect(t.Effect)
		}
	}
}

func (r *resolver) applyTemporalAdditive(e data.Effect) {
	v := effectDelta(e)

	switch e.Category {
	case data.CategoryAttribute:
		if e.SubCategory == data.SubWrath {
			r.snap.Attributes.Wrath += v
		}
	case data.CategoryLife:
		r.snap.Health += v
		r.snap.MaxHealth += v
	case data.CategoryAttack:
		if e.SubCategory == data.SubPhysical {
			r.snap.PhysicalDamage += v
		}
	case data.CategoryElemental:
		if e.SubCategory == data.SubNone {
			// Untyped elemental deltas split evenly across the
			// three channels.
			r.snap.FireDamage += v / 3
			r.snap.ColdDamage += v / 3
			r.snap.LightningDamage += v / 3
		} else {
			r.addElementalDamage(e.SubCategory, v)
		}
	}
}

func isNamedClassBuff(name string) bool {
	switch name {
	case data.EffectElementalOverload, data.EffectStoneStance, data.EffectGaleStance:
		return true
	}
	return false
}

func (r *resolver) applyNamedClassBuff(t *model.TemporalEffect) {
	switch t.Name {
	case data.EffectElementalOverload:
		// Weak channels get a flat +5 floor instead of the
		// multiplicative formula.
		factor := 1 + t.Effect.Change/100
		for _, ch := range []*float64{&r.snap.FireDamage, &r.snap.ColdDamage, &r.snap.LightningDamage} {
			if *ch < 25 {
				*ch += 5
			} else {
				*ch *= factor
			}
		}
	case data.EffectStoneStance:
		r.localArmor += combat.ArmorForDeflection(t.Effect.Change, r.char.Level)
	case data.EffectGaleStance:
		r.localEvasion += combat.EvasionForDodge(t.Effect.Change, r.char.Level)
	}
}

func (r *resolver) finalize() {
	s := &r.snap

	s.Attributes.Fortitude = math.Floor(s.Attributes.Fortitude)
	s.Attributes.Fortune = math.Floor(s.Attributes.Fortune)
	s.Attributes.Wrath = math.Floor(s.Attributes.Wrath)
	s.Attributes.Affinity = math.Floor(s.Attributes.Affinity)

	s.PhysicalDamage += math.Floor(s.Attributes.Wrath / 2)

	s.TotalDamage = s.BaseDamage + s.PhysicalDamage +
		s.FireDamage + s.ColdDamage + s.LightningDamage +
		s.CorruptionDamage + s.VoidDamage

	s.Mitigation.Evasion = combat.DodgeChance(r.localEvasion, r.char.Level)
	s.Mitigation.Armor = r.localArmor
	s.DeflectionAttempts = combat.DeflectionAttempts(r.localArmor, r.char.Level)
	s.CritChance = combat.CriticalChance(r.critBonus)

	s.MaxHealth = math.Floor(s.MaxHealth)
	s.MaxMana = math.Floor(s.MaxMana)
	s.Health = math.Floor(math.Min(s.Health, s.MaxHealth))
	s.Mana = math.Floor(math.Min(s.Mana, s.MaxMana))
	s.HealthRegen = math.Floor(s.HealthRegen)
	s.ManaRegen = math.Floor(s.ManaRegen)
}

func effectDelta(e data.Effect) float64 {
	if e.Kind == data.ValueRange {
		return (e.Change + e.ChangeMax) / 2
	}
	return e.Change
}

func (r *resolver) addAttribute(sub data.SubCategory, v float64) {
	switch sub {
	case data.SubFortitude:
		r.snap.Attributes.Fortitude += v
	case data.SubFortune:
		r.snap.Attributes.Fortune += v
	case data.SubWrath:
		r.snap.Attributes.Wrath += v
	case data.SubAffinity:
		r.snap.Attributes.Affinity += v
	}
}

func (r *resolver) scaleAttribute(sub data.SubCategory, factor float64) {
	switch sub {
	case data.SubFortitude:
		r.snap.Attributes.Fortitude *= factor
	case data.SubFortune:
		r.snap.Attributes.Fortune *= factor
	case data.SubWrath:
		r.snap.Attributes.Wrath *= factor
	case data.SubAffinity:
		r.snap.Attributes.Affinity *= factor
	}
}

func (r *resolver) addResistance(sub data.SubCategory, v float64) {
	switch sub {
	case data.SubFire:
		r.snap.Mitigation.Fire += v
	case data.SubCold:
		r.snap.Mitigation.Cold += v
	case data.SubLightning:
		r.snap.Mitigation.Lightning += v
	case data.SubCorruption:
		r.snap.Mitigation.Corruption += v
	case data.SubVoid:
		r.snap.Mitigation.Void += v
	}
}

func (r *resolver) addElementalDamage(sub data.SubCategory, v float64) {
	switch sub {
	case data.SubFire:
		r.snap.FireDamage += v
	case data.SubCold:
		r.snap.ColdDamage += v
	case data.SubLightning:
		r.snap.LightningDamage += v
	case data.SubCorruption:
		r.snap.CorruptionDamage += v
	case data.SubVoid:
		r.snap.VoidDamage += v
	}
}
