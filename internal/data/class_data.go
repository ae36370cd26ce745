package data

// ClassID identifies a character class.
type ClassID string

const (
	ClassReaver   ClassID = "reaver"
	ClassWarden   ClassID = "warden"
	ClassArcanist ClassID = "arcanist"
)

// Named temporal effects with class-specific aggregation rules.
const (
	// EffectElementalOverload is the Reaver crit buff: each elemental
	// damage channel below 25 gains a flat +5 instead of the
	// multiplicative formula.
	EffectElementalOverload = "Elemental Overload"
	// EffectStoneStance and EffectGaleStance are the Warden stances,
	// converted into armor and evasion bonuses respectively.
	EffectStoneStance = "Stone Stance"
	EffectGaleStance  = "Gale Stance"
)

// BonusDie is an inclusive integer roll range.
type BonusDie struct {
	Min int
	Max int
}

// ClassTemplate carries a class's starting stats and level-up bonus dice.
type ClassTemplate struct {
	ID         ClassID
	Name       string
	BaseHealth int
	BaseMana   int

	// Starting core attributes.
	Fortitude int
	Fortune   int
	Wrath     int
	Affinity  int

	// Level-up bonus dice per attribute; a zero die grants nothing.
	FortitudeDie BonusDie
	FortuneDie   BonusDie
	WrathDie     BonusDie
	AffinityDie  BonusDie
}

var classDefs = map[ClassID]*ClassTemplate{
	ClassReaver: {
		ID: ClassReaver, Name: "Reaver",
		BaseHealth: 60, BaseMana: 20,
		Fortitude: 12, Fortune: 10, Wrath: 16, Affinity: 6,
		FortitudeDie: BonusDie{1, 2},
		WrathDie:     BonusDie{1, 3},
	},
	ClassWarden: {
		ID: ClassWarden, Name: "Warden",
		BaseHealth: 70, BaseMana: 25,
		Fortitude: 16, Fortune: 10, Wrath: 10, Affinity: 10,
		FortitudeDie: BonusDie{1, 3},
		FortuneDie:   BonusDie{0, 1},
		AffinityDie:  BonusDie{0, 1},
	},
	ClassArcanist: {
		ID: ClassArcanist, Name: "Arcanist",
		BaseHealth: 50, BaseMana: 45,
		Fortitude: 8, Fortune: 12, Wrath: 8, Affinity: 18,
		AffinityDie: BonusDie{1, 3},
		FortuneDie:  BonusDie{1, 2},
	},
}

// GetClassTemplate returns the template for a class, or nil if unknown.
func GetClassTemplate(id ClassID) *ClassTemplate {
	return classDefs[id]
}

// AllClasses returns the authored class identifiers.
func AllClasses() []ClassID {
	return []ClassID{ClassReaver, ClassWarden, ClassArcanist}
}
