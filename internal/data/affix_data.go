package data

// Requirements gates an affix on the wearing character.
type Requirements struct {
	Level     int
	Attribute SubCategory
	Minimum   int
}

// Affix is an authored item-modifier definition. Immutable after load.
// ID format: {type}_{routing key}_{tier}, unique across the catalog
// (enforced by tests).
type Affix struct {
	ID          string
	Name        string
	Type        AffixType
	Category    AffixCategory
	SubCategory SubCategory
	Tier        int
	MinValue    float64
	MaxValue    float64

	// Description contains one or two {value} placeholders.
	// Two placeholders mean the rolled value is a range.
	Description string

	Tags []string

	// Eligibility. Zero MinILevel means unbounded below, zero MaxILevel
	// unbounded above; the live test is iLvl >= min && iLvl < max.
	MinILevel        int
	MaxILevel        int
	AllowedTiers     []Tier
	AllowedBases     []BaseCategory
	AllowedMutations []Mutation
	Requirements     *Requirements

	IsMultiplicative bool
}

var (
	anyTier     = []Tier(nil)
	highTiers   = []Tier{TierAbstract, TierInfused}
	armorBases  = []BaseCategory{BaseArmor}
	weaponBases = []BaseCategory{BaseWeapon}
	jewelBases  = []BaseCategory{BaseAccessory}
	wornBases   = []BaseCategory{BaseArmor, BaseAccessory}
)

var affixDefs = []Affix{
	// Embedded: local defenses.
	{ID: "embedded_armor_1", Name: "Plated", Type: AffixEmbedded, Category: CategoryDefense, SubCategory: SubArmor, Tier: 1,
		MinValue: 5, MaxValue: 15, Description: "+{value} armor", Tags: []string{"defense", "armor"},
		MaxILevel: 35, AllowedTiers: anyTier, AllowedBases: armorBases},
	{ID: "embedded_armor_2", Name: "Bastioned", Type: AffixEmbedded, Category: CategoryDefense, SubCategory: SubArmor, Tier: 2,
		MinValue: 15, MaxValue: 40, Description: "+{value} armor", Tags: []string{"defense", "armor"},
		MinILevel: 25, MaxILevel: 65, AllowedTiers: anyTier, AllowedBases: armorBases},
	{ID: "embedded_armor_3", Name: "Adamant", Type: AffixEmbedded, Category: CategoryDefense, SubCategory: SubArmor, Tier: 3,
		MinValue: 40, MaxValue: 90, Description: "+{value} armor", Tags: []string{"defense", "armor"},
		MinILevel: 55, AllowedTiers: anyTier, AllowedBases: armorBases},
	{ID: "embedded_evasion_1", Name: "Nimble", Type: AffixEmbedded, Category: CategoryDefense, SubCategory: SubEvasion, Tier: 1,
		MinValue: 8, MaxValue: 20, Description: "+{value} evasion", Tags: []string{"defense", "evasion"},
		MaxILevel: 35, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_evasion_2", Name: "Fleet", Type: AffixEmbedded, Category: CategoryDefense, SubCategory: SubEvasion, Tier: 2,
		MinValue: 20, MaxValue: 55, Description: "+{value} evasion", Tags: []string{"defense", "evasion"},
		MinILevel: 25, MaxILevel: 65, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_evasion_3", Name: "Phasing", Type: AffixEmbedded, Category: CategoryDefense, SubCategory: SubEvasion, Tier: 3,
		MinValue: 55, MaxValue: 120, Description: "+{value} evasion", Tags: []string{"defense", "evasion"},
		MinILevel: 55, AllowedTiers: anyTier, AllowedBases: wornBases},

	// Embedded: elemental resistances.
	{ID: "embedded_fire_1", Name: "Smoldering", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubFire, Tier: 1,
		MinValue: 5, MaxValue: 12, Description: "+{value}% fire resistance", Tags: []string{"elemental", "fire"},
		MaxILevel: 50, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_fire_2", Name: "Pyrewarded", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubFire, Tier: 2,
		MinValue: 12, MaxValue: 30, Description: "+{value}% fire resistance", Tags: []string{"elemental", "fire"},
		MinILevel: 40, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_cold_1", Name: "Rimed", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubCold, Tier: 1,
		MinValue: 5, MaxValue: 12, Description: "+{value}% cold resistance", Tags: []string{"elemental", "cold"},
		MaxILevel: 50, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_cold_2", Name: "Glacial", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubCold, Tier: 2,
		MinValue: 12, MaxValue: 30, Description: "+{value}% cold resistance", Tags: []string{"elemental", "cold"},
		MinILevel: 40, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_lightning_1", Name: "Sparked", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubLightning, Tier: 1,
		MinValue: 5, MaxValue: 12, Description: "+{value}% lightning resistance", Tags: []string{"elemental", "lightning"},
		MaxILevel: 50, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_lightning_2", Name: "Stormwarded", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubLightning, Tier: 2,
		MinValue: 12, MaxValue: 30, Description: "+{value}% lightning resistance", Tags: []string{"elemental", "lightning"},
		MinILevel: 40, AllowedTiers: anyTier, AllowedBases: wornBases},
	{ID: "embedded_void_1", Name: "Hollowed", Type: AffixEmbedded, Category: CategoryElemental, SubCategory: SubVoid, Tier: 1,
		MinValue: 4, MaxValue: 10, Description: "+{value}% void resistance", Tags: []string{"elemental", "void"},
		MinILevel: 30, AllowedTiers: highTiers, AllowedBases: wornBases,
		AllowedMutations: []Mutation{MutationResonant}},

	// Prefix: offense and pools.
	{ID: "prefix_attack_1", Name: "Heavy", Type: AffixPrefix, Category: CategoryAttack, SubCategory: SubPhysical, Tier: 1,
		MinValue: 2, MaxValue: 6, Description: "+{value} physical damage", Tags: []string{"attack", "physical"},
		MaxILevel: 35, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_attack_2", Name: "Serrated", Type: AffixPrefix, Category: CategoryAttack, SubCategory: SubPhysical, Tier: 2,
		MinValue: 6, MaxValue: 14, Description: "+{value} physical damage", Tags: []string{"attack", "physical"},
		MinILevel: 25, MaxILevel: 65, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_attack_3", Name: "Merciless", Type: AffixPrefix, Category: CategoryAttack, SubCategory: SubPhysical, Tier: 3,
		MinValue: 14, MaxValue: 30, Description: "+{value} physical damage", Tags: []string{"attack", "physical"},
		MinILevel: 55, AllowedTiers: anyTier, AllowedBases: weaponBases,
		Requirements: &Requirements{Level: 30, Attribute: SubWrath, Minimum: 20}},
	{ID: "prefix_life_1", Name: "Stout", Type: AffixPrefix, Category: CategoryLife, SubCategory: SubNone, Tier: 1,
		MinValue: 10, MaxValue: 25, Description: "+{value} maximum health", Tags: []string{"life"},
		MaxILevel: 40, AllowedTiers: anyTier},
	{ID: "prefix_life_2", Name: "Vigorous", Type: AffixPrefix, Category: CategoryLife, SubCategory: SubNone, Tier: 2,
		MinValue: 25, MaxValue: 60, Description: "+{value} maximum health", Tags: []string{"life"},
		MinILevel: 30, MaxILevel: 70, AllowedTiers: anyTier},
	{ID: "prefix_life_3", Name: "Colossal", Type: AffixPrefix, Category: CategoryLife, SubCategory: SubNone, Tier: 3,
		MinValue: 60, MaxValue: 120, Description: "+{value} maximum health", Tags: []string{"life"},
		MinILevel: 60, AllowedTiers: anyTier},
	{ID: "prefix_mana_1", Name: "Attuned", Type: AffixPrefix, Category: CategoryMana, SubCategory: SubNone, Tier: 1,
		MinValue: 8, MaxValue: 20, Description: "+{value} maximum mana", Tags: []string{"mana"},
		MaxILevel: 40, AllowedTiers: anyTier},
	{ID: "prefix_mana_2", Name: "Channeling", Type: AffixPrefix, Category: CategoryMana, SubCategory: SubNone, Tier: 2,
		MinValue: 20, MaxValue: 45, Description: "+{value} maximum mana", Tags: []string{"mana"},
		MinILevel: 30, MaxILevel: 70, AllowedTiers: anyTier},
	{ID: "prefix_mana_3", Name: "Luminous", Type: AffixPrefix, Category: CategoryMana, SubCategory: SubNone, Tier: 3,
		MinValue: 45, MaxValue: 90, Description: "+{value} maximum mana", Tags: []string{"mana"},
		MinILevel: 60, AllowedTiers: anyTier},

	// Prefix: flat elemental damage, rolled as ranges.
	{ID: "prefix_fire_1", Name: "Burning", Type: AffixPrefix, Category: CategoryElemental, SubCategory: SubFire, Tier: 1,
		MinValue: 1, MaxValue: 8, Description: "adds {value} to {value} fire damage", Tags: []string{"elemental", "fire"},
		MaxILevel: 50, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_fire_2", Name: "Incinerating", Type: AffixPrefix, Category: CategoryElemental, SubCategory: SubFire, Tier: 2,
		MinValue: 6, MaxValue: 20, Description: "adds {value} to {value} fire damage", Tags: []string{"elemental", "fire"},
		MinILevel: 40, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_cold_1", Name: "Chilling", Type: AffixPrefix, Category: CategoryElemental, SubCategory: SubCold, Tier: 1,
		MinValue: 1, MaxValue: 8, Description: "adds {value} to {value} cold damage", Tags: []string{"elemental", "cold"},
		MaxILevel: 50, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_cold_2", Name: "Freezing", Type: AffixPrefix, Category: CategoryElemental, SubCategory: SubCold, Tier: 2,
		MinValue: 6, MaxValue: 20, Description: "adds {value} to {value} cold damage", Tags: []string{"elemental", "cold"},
		MinILevel: 40, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_lightning_1", Name: "Humming", Type: AffixPrefix, Category: CategoryElemental, SubCategory: SubLightning, Tier: 1,
		MinValue: 1, MaxValue: 10, Description: "adds {value} to {value} lightning damage", Tags: []string{"elemental", "lightning"},
		MaxILevel: 50, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_lightning_2", Name: "Arcing", Type: AffixPrefix, Category: CategoryElemental, SubCategory: SubLightning, Tier: 2,
		MinValue: 6, MaxValue: 24, Description: "adds {value} to {value} lightning damage", Tags: []string{"elemental", "lightning"},
		MinILevel: 40, AllowedTiers: anyTier, AllowedBases: weaponBases},

	// Prefix: critical strike.
	{ID: "prefix_critical_1", Name: "Keen", Type: AffixPrefix, Category: CategoryCritical, SubCategory: SubNone, Tier: 1,
		MinValue: 10, MaxValue: 40, Description: "+{value}% increased critical strike chance", Tags: []string{"critical"},
		MaxILevel: 55, AllowedTiers: anyTier, AllowedBases: weaponBases},
	{ID: "prefix_critical_2", Name: "Surgical", Type: AffixPrefix, Category: CategoryCritical, SubCategory: SubNone, Tier: 2,
		MinValue: 40, MaxValue: 100, Description: "+{value}% increased critical strike chance", Tags: []string{"critical"},
		MinILevel: 45, AllowedTiers: anyTier, AllowedBases: weaponBases},

	// Suffix: regeneration.
	{ID: "suffix_life_1", Name: "of Mending", Type: AffixSuffix, Category: CategoryLife, SubCategory: SubNone, Tier: 1,
		MinValue: 1, MaxValue: 3, Description: "+{value} health regeneration", Tags: []string{"life", "regen"},
		MaxILevel: 45, AllowedTiers: anyTier},
	{ID: "suffix_life_2", Name: "of Renewal", Type: AffixSuffix, Category: CategoryLife, SubCategory: SubNone, Tier: 2,
		MinValue: 3, MaxValue: 8, Description: "+{value} health regeneration", Tags: []string{"life", "regen"},
		MinILevel: 35, AllowedTiers: anyTier},
	{ID: "suffix_mana_1", Name: "of Focus", Type: AffixSuffix, Category: CategoryMana, SubCategory: SubNone, Tier: 1,
		MinValue: 1, MaxValue: 3, Description: "+{value} mana regeneration", Tags: []string{"mana", "regen"},
		MaxILevel: 45, AllowedTiers: anyTier},
	{ID: "suffix_mana_2", Name: "of Clarity", Type: AffixSuffix, Category: CategoryMana, SubCategory: SubNone, Tier: 2,
		MinValue: 3, MaxValue: 8, Description: "+{value} mana regeneration", Tags: []string{"mana", "regen"},
		MinILevel: 35, AllowedTiers: anyTier},

	// Suffix: core attributes.
	{ID: "suffix_fortitude_1", Name: "of the Bear", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubFortitude, Tier: 1,
		MinValue: 2, MaxValue: 6, Description: "+{value} fortitude", Tags: []string{"attribute", "fortitude"},
		MaxILevel: 55, AllowedTiers: anyTier},
	{ID: "suffix_fortitude_2", Name: "of the Mountain", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubFortitude, Tier: 2,
		MinValue: 5, MaxValue: 15, Description: "{value}% increased fortitude", Tags: []string{"attribute", "fortitude"},
		MinILevel: 45, AllowedTiers: anyTier, IsMultiplicative: true},
	{ID: "suffix_fortune_1", Name: "of the Magpie", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubFortune, Tier: 1,
		MinValue: 2, MaxValue: 6, Description: "+{value} fortune", Tags: []string{"attribute", "fortune"},
		MaxILevel: 55, AllowedTiers: anyTier},
	{ID: "suffix_fortune_2", Name: "of the Hoard", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubFortune, Tier: 2,
		MinValue: 5, MaxValue: 15, Description: "{value}% increased fortune", Tags: []string{"attribute", "fortune"},
		MinILevel: 45, AllowedTiers: anyTier, IsMultiplicative: true},
	{ID: "suffix_wrath_1", Name: "of the Wolf", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubWrath, Tier: 1,
		MinValue: 2, MaxValue: 6, Description: "+{value} wrath", Tags: []string{"attribute", "wrath"},
		MaxILevel: 55, AllowedTiers: anyTier},
	{ID: "suffix_wrath_2", Name: "of the Tempest", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubWrath, Tier: 2,
		MinValue: 5, MaxValue: 15, Description: "{value}% increased wrath", Tags: []string{"attribute", "wrath"},
		MinILevel: 45, AllowedTiers: anyTier, IsMultiplicative: true},
	{ID: "suffix_affinity_1", Name: "of the Owl", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubAffinity, Tier: 1,
		MinValue: 2, MaxValue: 6, Description: "+{value} affinity", Tags: []string{"attribute", "affinity"},
		MaxILevel: 55, AllowedTiers: anyTier},
	{ID: "suffix_affinity_2", Name: "of the Oracle", Type: AffixSuffix, Category: CategoryAttribute, SubCategory: SubAffinity, Tier: 2,
		MinValue: 5, MaxValue: 15, Description: "{value}% increased affinity", Tags: []string{"attribute", "affinity"},
		MinILevel: 45, AllowedTiers: anyTier, IsMultiplicative: true},

	// Suffix: whole-channel physical scaling, high tiers only.
	{ID: "suffix_attack_1", Name: "of Ruin", Type: AffixSuffix, Category: CategoryAttack, SubCategory: SubPhysical, Tier: 1,
		MinValue: 8, MaxValue: 20, Description: "{value}% increased physical damage", Tags: []string{"attack", "physical"},
		MinILevel: 35, AllowedTiers: highTiers, AllowedBases: weaponBases, IsMultiplicative: true},
	{ID: "suffix_attack_2", Name: "of Annihilation", Type: AffixSuffix, Category: CategoryAttack, SubCategory: SubPhysical, Tier: 2,
		MinValue: 20, MaxValue: 45, Description: "{value}% increased physical damage", Tags: []string{"attack", "physical"},
		MinILevel: 60, AllowedTiers: []Tier{TierInfused}, AllowedBases: weaponBases, IsMultiplicative: true,
		AllowedMutations: []Mutation{MutationUnstable, MutationResonant}},
}
