package stats

// Mitigation is the per-channel avoidance/resistance vector of a snapshot.
// Evasion is a 0-100 dodge percent; Armor is the finalized armor total.
type Mitigation struct {
	Evasion    int
	Armor      float64
	Physical   float64
	Fire       float64
	Cold       float64
	Lightning  float64
	Corruption float64
	Void       float64
}

// Attributes are the four core attributes after aggregation, floored at
// finalization.
type Attributes struct {
	Fortitude float64
	Fortune   float64
	Wrath     float64
	Affinity  float64
}

// Snapshot is a fully derived combat-stat view of one character. It is
// recomputed from scratch on every resolve; nothing in it is cached.
type Snapshot struct {
	Health    float64
	MaxHealth float64
	Mana      float64
	MaxMana   float64

	HealthRegen float64
	ManaRegen   float64

	// Damage-per-tick channels. BaseDamage may be overwritten by a
	// weapon's base-stat affix; TotalDamage sums every channel.
	BaseDamage       float64
	PhysicalDamage   float64
	FireDamage       float64
	ColdDamage       float64
	LightningDamage  float64
	CorruptionDamage float64
	VoidDamage       float64
	TotalDamage      float64

	CritChance         int
	DeflectionAttempts int

	Mitigation Mitigation
	Attributes Attributes
}
