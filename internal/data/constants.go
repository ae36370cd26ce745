package data

// AffixType is the slot an affix occupies on an item.
type AffixType string

const (
	AffixEmbedded AffixType = "embedded"
	AffixPrefix   AffixType = "prefix"
	AffixSuffix   AffixType = "suffix"
)

// AffixCategory is the broad modifier family an affix belongs to.
type AffixCategory string

const (
	CategoryAttack    AffixCategory = "attack"
	CategoryDefense   AffixCategory = "defense"
	CategoryLife      AffixCategory = "life"
	CategoryMana      AffixCategory = "mana"
	CategoryAttribute AffixCategory = "attribute"
	CategoryElemental AffixCategory = "elemental"
	CategoryCritical  AffixCategory = "critical"
)

// SubCategory is the closed routing key inside a category.
// Stat aggregation dispatches on this, never on free-text tags.
type SubCategory string

const (
	SubNone       SubCategory = ""
	SubArmor      SubCategory = "armor"
	SubEvasion    SubCategory = "evasion"
	SubDeflection SubCategory = "deflection"
	SubDodge      SubCategory = "dodge"
	SubPhysical   SubCategory = "physical"
	SubFortitude  SubCategory = "fortitude"
	SubFortune    SubCategory = "fortune"
	SubWrath      SubCategory = "wrath"
	SubAffinity   SubCategory = "affinity"
	SubFire       SubCategory = "fire"
	SubCold       SubCategory = "cold"
	SubLightning  SubCategory = "lightning"
	SubCorruption SubCategory = "corruption"
	SubVoid       SubCategory = "void"
)

// ValueKind describes how a rolled or authored value applies to its target.
type ValueKind string

const (
	ValueAdditive       ValueKind = "additive"
	ValueMultiplicative ValueKind = "multiplicative"
	ValueRange          ValueKind = "range"
)

// Mutation is a rare item modifier that widens affix eligibility.
type Mutation string

const (
	MutationFractured Mutation = "fractured"
	MutationResonant  Mutation = "resonant"
	MutationUnstable  Mutation = "unstable"
)

// BaseCategory groups item base types by which base-stat affix list they draw from.
type BaseCategory string

const (
	BaseWeapon    BaseCategory = "weapon"
	BaseArmor     BaseCategory = "armor"
	BaseAccessory BaseCategory = "accessory"
)

// EquipSlot is a named equipment slot on the character.
type EquipSlot string

const (
	SlotWeapon EquipSlot = "weapon"
	SlotHelmet EquipSlot = "helmet"
	SlotChest  EquipSlot = "chest"
	SlotGloves EquipSlot = "gloves"
	SlotBoots  EquipSlot = "boots"
	SlotRing   EquipSlot = "ring"
	SlotAmulet EquipSlot = "amulet"
)

// BaseType is an item base kind ("sword", "helmet", ...).
type BaseType string

// baseDef maps a base type to its slot, category and loot tags.
type baseDef struct {
	base     BaseType
	category BaseCategory
	slot     EquipSlot
	tags     []string
}

var baseDefs = []baseDef{
	{"sword", BaseWeapon, SlotWeapon, []string{"weapon", "melee"}},
	{"axe", BaseWeapon, SlotWeapon, []string{"weapon", "melee"}},
	{"wand", BaseWeapon, SlotWeapon, []string{"weapon", "caster"}},
	{"helmet", BaseArmor, SlotHelmet, []string{"armor"}},
	{"chestplate", BaseArmor, SlotChest, []string{"armor"}},
	{"gauntlets", BaseArmor, SlotGloves, []string{"armor"}},
	{"greaves", BaseArmor, SlotBoots, []string{"armor"}},
	{"ring", BaseAccessory, SlotRing, []string{"accessory"}},
	{"amulet", BaseAccessory, SlotAmulet, []string{"accessory"}},
}

// AllBaseTypes returns every authored base type.
func AllBaseTypes() []BaseType {
	out := make([]BaseType, 0, len(baseDefs))
	for _, d := range baseDefs {
		out = append(out, d.base)
	}
	return out
}

// BaseTypesByTags returns base types matching any of the given loot tags.
func BaseTypesByTags(tags []string) []BaseType {
	if len(tags) == 0 {
		return AllBaseTypes()
	}
	var out []BaseType
	for _, d := range baseDefs {
		for _, want := range tags {
			if hasTag(d.tags, want) {
				out = append(out, d.base)
				break
			}
		}
	}
	return out
}

// BaseCategoryOf returns the base category for a base type, or "" if unknown.
func BaseCategoryOf(base BaseType) BaseCategory {
	for _, d := range baseDefs {
		if d.base == base {
			return d.category
		}
	}
	return ""
}

// SlotFor returns the equipment slot for a base type.
// The second return is false when the base type resolves to no slot.
func SlotFor(base BaseType) (EquipSlot, bool) {
	for _, d := range baseDefs {
		if d.base == base {
			return d.slot, true
		}
	}
	return "", false
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
