package data

// BaseTarget is where a base-stat affix lands during aggregation.
type BaseTarget string

const (
	// BaseTargetDamage overwrites the weapon's base damage per tick.
	BaseTargetDamage BaseTarget = "damage"
	// The rest add to local defenses or pools.
	BaseTargetArmor      BaseTarget = "armor"
	BaseTargetEvasion    BaseTarget = "evasion"
	BaseTargetHealth     BaseTarget = "health"
	BaseTargetResistance BaseTarget = "resistance"
)

// BaseAffix is a fixed base-stat candidate for one base category. Every
// identified item rolls exactly one, scaled by tier and item level.
type BaseAffix struct {
	ID       string
	Name     string
	Target   BaseTarget
	Element  SubCategory // set only for BaseTargetResistance
	MinValue float64
	MaxValue float64
}

var baseAffixDefs = map[BaseCategory][]BaseAffix{
	BaseWeapon: {
		{ID: "base_weapon_edge", Name: "Honed Edge", Target: BaseTargetDamage, MinValue: 4, MaxValue: 7},
		{ID: "base_weapon_mass", Name: "Crushing Mass", Target: BaseTargetDamage, MinValue: 5, MaxValue: 9},
		{ID: "base_weapon_core", Name: "Charged Core", Target: BaseTargetDamage, MinValue: 3, MaxValue: 11},
	},
	BaseArmor: {
		{ID: "base_armor_plate", Name: "Layered Plate", Target: BaseTargetArmor, MinValue: 6, MaxValue: 14},
		{ID: "base_armor_weave", Name: "Shifting Weave", Target: BaseTargetEvasion, MinValue: 8, MaxValue: 18},
		{ID: "base_armor_lining", Name: "Hearty Lining", Target: BaseTargetHealth, MinValue: 8, MaxValue: 20},
		{ID: "base_armor_kiln", Name: "Kiln-Fired Shell", Target: BaseTargetResistance, Element: SubFire, MinValue: 3, MaxValue: 8},
	},
	BaseAccessory: {
		{ID: "base_accessory_band", Name: "Vital Band", Target: BaseTargetHealth, MinValue: 5, MaxValue: 14},
		{ID: "base_accessory_charm", Name: "Windward Charm", Target: BaseTargetEvasion, MinValue: 5, MaxValue: 12},
		{ID: "base_accessory_seal", Name: "Grounding Seal", Target: BaseTargetResistance, Element: SubLightning, MinValue: 3, MaxValue: 8},
	},
}

// BaseAffixesFor returns the fixed base-stat candidates for a base category.
func BaseAffixesFor(category BaseCategory) []BaseAffix {
	return baseAffixDefs[category]
}

// GetBaseAffix returns a base-stat affix by ID, or nil when absent.
func GetBaseAffix(id string) *BaseAffix {
	for _, list := range baseAffixDefs {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
	}
	return nil
}

// BaseLevelScaling returns the item-level scaling factor for base-stat
// affixes: 1.0 up to item level 5, then linear to 6.0 at item level 100.
func BaseLevelScaling(iLvl int) float64 {
	if iLvl <= 5 {
		return 1.0
	}
	if iLvl > 100 {
		iLvl = 100
	}
	return 1.0 + 5.0*float64(iLvl-5)/95.0
}
