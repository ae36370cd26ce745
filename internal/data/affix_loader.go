package data

import (
	"fmt"
	"log/slog"
	"strings"
)

// AffixTable — глобальный registry всех affix definitions.
// map[affixID]*Affix, построен один раз в LoadAffixes.
var AffixTable map[string]*Affix

// LoadAffixes строит AffixTable из Go-литералов (affixDefs).
func LoadAffixes() error {
	AffixTable = make(map[string]*Affix, len(affixDefs))

	for i := range affixDefs {
		AffixTable[affixDefs[i].ID] = &affixDefs[i]
	}

	slog.Info("loaded affix catalog", "count", len(AffixTable))
	return nil
}

// GetAffix returns the affix definition for an ID, or nil when absent.
func GetAffix(id string) *Affix {
	if AffixTable == nil {
		return nil
	}
	return AffixTable[id]
}

// AllAffixes returns every authored affix in catalog order.
func AllAffixes() []Affix {
	out := make([]Affix, len(affixDefs))
	copy(out, affixDefs)
	return out
}

// PlaceholderCount returns how many {value} placeholders the description
// carries. Two placeholders mean the rolled value is a range.
func (a *Affix) PlaceholderCount() int {
	return strings.Count(a.Description, "{value}")
}

// EligibleFor reports whether this affix may roll on an item with the given
// tier, base category, mutations and item level. The item-level window is
// half-open: iLvl >= MinILevel && iLvl < MaxILevel, with zero bounds meaning
// unbounded on that side.
func (a *Affix) EligibleFor(tier Tier, base BaseCategory, mutations []Mutation, iLvl int) bool {
	if a.MinILevel > 0 && iLvl < a.MinILevel {
		return false
	}
	if a.MaxILevel > 0 && iLvl >= a.MaxILevel {
		return false
	}
	if len(a.AllowedTiers) > 0 && !containsTier(a.AllowedTiers, tier) {
		return false
	}
	if len(a.AllowedBases) > 0 && !containsBase(a.AllowedBases, base) {
		return false
	}
	if len(a.AllowedMutations) > 0 && !hasAnyMutation(a.AllowedMutations, mutations) {
		return false
	}
	return true
}

// EligibleAffixes returns all catalog entries of the given slot type that may
// roll under the tier/base/mutation/item-level constraints.
func EligibleAffixes(typ AffixType, tier Tier, base BaseCategory, mutations []Mutation, iLvl int) []*Affix {
	var out []*Affix
	for i := range affixDefs {
		a := &affixDefs[i]
		if a.Type != typ {
			continue
		}
		if a.EligibleFor(tier, base, mutations, iLvl) {
			out = append(out, a)
		}
	}
	return out
}

// FormatAffixDescription renders the description template of the given affix
// ID with a rolled value. A catalog miss first retries with the ID adjusted
// to the given tier ordinal (old saves may reference re-tiered affixes),
// then falls back to a literal "unknown".
func FormatAffixDescription(id string, tier int, values ...float64) string {
	a := GetAffix(id)
	if a == nil {
		a = GetAffix(tierAdjustedID(id, tier))
	}
	if a == nil {
		return "unknown"
	}

	out := a.Description
	for _, v := range values {
		out = strings.Replace(out, "{value}", trimFloat(v), 1)
	}
	return out
}

// tierAdjustedID rebuilds "{type}_{key}_{n}" with the tier ordinal swapped.
func tierAdjustedID(id string, tier int) string {
	idx := strings.LastIndex(id, "_")
	if idx < 0 {
		return id
	}
	return fmt.Sprintf("%s_%d", id[:idx], tier)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func containsTier(list []Tier, t Tier) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

func containsBase(list []BaseCategory, b BaseCategory) bool {
	for _, x := range list {
		if x == b {
			return true
		}
	}
	return false
}

func hasAnyMutation(allowed, have []Mutation) bool {
	for _, a := range allowed {
		for _, h := range have {
			if a == h {
				return true
			}
		}
	}
	return false
}
