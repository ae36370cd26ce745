package data

// Tier is an item power bracket.
type Tier int

const (
	TierBasic Tier = iota
	TierEnhanced
	TierExceptional
	TierAbstract
	TierInfused
)

// String returns the lowercase tier name used in save data and item names.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierEnhanced:
		return "enhanced"
	case TierExceptional:
		return "exceptional"
	case TierAbstract:
		return "abstract"
	case TierInfused:
		return "infused"
	default:
		return "unknown"
	}
}

// TierFromName resolves a tier by its lowercase name.
// The second return is false for unknown names.
func TierFromName(name string) (Tier, bool) {
	for t := TierBasic; t <= TierInfused; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return TierBasic, false
}

// AffixQuota is the per-slot affix cap a tier allows.
type AffixQuota struct {
	Embedded int
	Prefix   int
	Suffix   int
}

// ForType returns the quota for one affix slot type.
func (q AffixQuota) ForType(typ AffixType) int {
	switch typ {
	case AffixEmbedded:
		return q.Embedded
	case AffixPrefix:
		return q.Prefix
	case AffixSuffix:
		return q.Suffix
	default:
		return 0
	}
}

// TierSchema describes one tier's generation parameters.
// maxMult is the weight multiplier reached at normalized level 1;
// basic instead decays toward the 0.1 floor.
type TierSchema struct {
	tier         Tier
	baseWeight   float64
	maxMult      float64
	quota        AffixQuota
	scaling      float64 // base-stat affix tier scaling
	identifyCost int64
}

var tierSchemas = [5]TierSchema{
	{TierBasic, 65, 0, AffixQuota{0, 0, 0}, 1.0, 0},
	{TierEnhanced, 20, 2, AffixQuota{0, 1, 1}, 1.1, 25},
	{TierExceptional, 11, 3, AffixQuota{1, 1, 1}, 1.2, 75},
	{TierAbstract, 2, 5, AffixQuota{1, 2, 2}, 1.35, 200},
	{TierInfused, 2, 6, AffixQuota{2, 3, 3}, 1.5, 500},
}

// GetTierSchema returns the schema for a tier.
func GetTierSchema(t Tier) TierSchema {
	if t < TierBasic || t > TierInfused {
		return tierSchemas[TierBasic]
	}
	return tierSchemas[t]
}

// AllTierSchemas returns the five tier schemas in ascending tier order.
func AllTierSchemas() []TierSchema {
	out := make([]TierSchema, len(tierSchemas))
	copy(out, tierSchemas[:])
	return out
}

func (s TierSchema) Tier() Tier          { return s.tier }
func (s TierSchema) BaseWeight() float64 { return s.baseWeight }
func (s TierSchema) Quota() AffixQuota   { return s.quota }
func (s TierSchema) Scaling() float64    { return s.scaling }
func (s TierSchema) IdentifyCost() int64 { return s.identifyCost }

// SalvageValue is the gold returned when an item of this tier is salvaged.
func (s TierSchema) SalvageValue() int64 {
	return s.identifyCost / 10
}

// AdjustedWeight returns the selection weight at a normalized source level
// in [0,1]. Basic decays linearly toward a 0.1 multiplier floor; higher
// tiers climb linearly toward their maxMult.
func (s TierSchema) AdjustedWeight(normalized float64) float64 {
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	if s.tier == TierBasic {
		mult := 1 - 0.9*normalized
		if mult < 0.1 {
			mult = 0.1
		}
		return s.baseWeight * mult
	}
	return s.baseWeight * (1 + (s.maxMult-1)*normalized)
}
