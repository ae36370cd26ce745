package data

import "github.com/google/uuid"

// Passive is an authored passive-perk definition with a single effect.
type Passive struct {
	Identifier uuid.UUID
	Name       string
	Effect     Effect
	MinLevel   int
	Classes    []ClassID // empty = any class
}

var passiveDefs = []Passive{
	{
		Identifier: uuid.MustParse("11f3a2b4-c5d6-4e7f-8091-a2b3c4d5e6f7"),
		Name:       "Thick Hide",
		Effect:     Effect{Category: CategoryDefense, SubCategory: SubArmor, Kind: ValueAdditive, Change: 12},
		MinLevel:   1,
	},
	{
		Identifier: uuid.MustParse("22a3b4c5-d6e7-4f80-91a2-b3c4d5e6f708"),
		Name:       "Sidestep",
		Effect:     Effect{Category: CategoryDefense, SubCategory: SubEvasion, Kind: ValueAdditive, Change: 15},
		MinLevel:   1,
	},
	{
		Identifier: uuid.MustParse("33b4c5d6-e7f8-4091-a2b3-c4d5e6f70819"),
		Name:       "Iron Rebuke",
		Effect:     Effect{Category: CategoryDefense, SubCategory: SubDeflection, Kind: ValueAdditive, Change: 1},
		MinLevel:   6, Classes: []ClassID{ClassWarden, ClassReaver},
	},
	{
		Identifier: uuid.MustParse("44c5d6e7-f809-41a2-b3c4-d5e6f7081920"),
		Name:       "Wind Reader",
		Effect:     Effect{Category: CategoryDefense, SubCategory: SubDodge, Kind: ValueAdditive, Change: 8},
		MinLevel:   6,
	},
	{
		Identifier: uuid.MustParse("55d6e7f8-091a-42b3-94c5-d6e7f8092031"),
		Name:       "Bear Heart",
		Effect:     Effect{Category: CategoryAttribute, SubCategory: SubFortitude, Kind: ValueAdditive, Change: 5},
		MinLevel:   1,
	},
	{
		Identifier: uuid.MustParse("66e7f809-1a2b-43c4-85d6-e7f809203142"),
		Name:       "Scavenger's Eye",
		Effect:     Effect{Category: CategoryAttribute, SubCategory: SubFortune, Kind: ValueAdditive, Change: 5},
		MinLevel:   1,
	},
	{
		Identifier: uuid.MustParse("77f8091a-2b3c-44d5-96e7-f80920314253"),
		Name:       "Simmering Fury",
		Effect:     Effect{Category: CategoryAttribute, SubCategory: SubWrath, Kind: ValueMultiplicative, Change: 15},
		MinLevel:   10, Classes: []ClassID{ClassReaver},
	},
	{
		Identifier: uuid.MustParse("88091a2b-3c4d-45e6-87f8-092031425364"),
		Name:       "Deep Well",
		Effect:     Effect{Category: CategoryMana, SubCategory: SubNone, Kind: ValueMultiplicative, Change: 20},
		MinLevel:   10, Classes: []ClassID{ClassArcanist},
	},
	{
		Identifier: uuid.MustParse("991a2b3c-4d5e-46f7-8809-203142536475"),
		Name:       "Unbroken",
		Effect:     Effect{Category: CategoryLife, SubCategory: SubNone, Kind: ValueMultiplicative, Change: 10},
		MinLevel:   8,
	},
	{
		Identifier: uuid.MustParse("aa2b3c4d-5e6f-4708-9920-314253647586"),
		Name:       "Stoneblood",
		Effect:     Effect{Category: CategoryLife, SubCategory: SubNone, Kind: ValueAdditive, Change: 20},
		MinLevel:   3,
	},
	{
		Identifier: uuid.MustParse("bb3c4d5e-6f70-4819-a203-142536475869"),
		Name:       "Arc Conduit",
		Effect:     Effect{Category: CategoryElemental, SubCategory: SubLightning, Kind: ValueAdditive, Change: 6},
		MinLevel:   12,
	},
}

// PassiveTable — глобальный registry пассивок. map[identifier]*Passive.
var PassiveTable map[uuid.UUID]*Passive

// LoadPassives строит PassiveTable из Go-литералов (passiveDefs).
func LoadPassives() error {
	PassiveTable = make(map[uuid.UUID]*Passive, len(passiveDefs))
	for i := range passiveDefs {
		PassiveTable[passiveDefs[i].Identifier] = &passiveDefs[i]
	}
	return nil
}

// GetPassive returns a passive by identifier, or nil when absent.
func GetPassive(id uuid.UUID) *Passive {
	if PassiveTable == nil {
		return nil
	}
	return PassiveTable[id]
}

// AllPassives returns every authored passive.
func AllPassives() []Passive {
	out := make([]Passive, len(passiveDefs))
	copy(out, passiveDefs)
	return out
}

// AvailableTo reports whether the passive's level and class gates pass.
func (p *Passive) AvailableTo(level int, class ClassID) bool {
	if level < p.MinLevel {
		return false
	}
	if len(p.Classes) == 0 {
		return true
	}
	for _, c := range p.Classes {
		if c == class {
			return true
		}
	}
	return false
}
