package data

import "github.com/google/uuid"

// TriggerCondition is a player-selectable activation trigger for a skill.
type TriggerCondition string

const (
	TriggerManual      TriggerCondition = "manual"
	TriggerTurnStart   TriggerCondition = "onTurnStart"
	TriggerLowHealth   TriggerCondition = "onLowHealth"
	TriggerCriticalHit TriggerCondition = "onCriticalHit"
)

// Skill is an authored active-skill definition. Character-held copies
// reference these by identifier and carry only per-character toggles.
type Skill struct {
	Identifier uuid.UUID
	Name       string
	Effect     Effect
	Cost       int // mana
	Cooldown   int // turns
	Duration   int // turns the temporal effect persists; 0 = instant
	Triggers   []TriggerCondition
	MinLevel   int
	Classes    []ClassID // empty = any class
}

var skillDefs = []Skill{
	{
		Identifier: uuid.MustParse("7b1f2c3a-9d4e-4f5a-8b6c-0d1e2f3a4b5c"),
		Name:       "Sundering Blow",
		Effect:     Effect{Category: CategoryAttack, SubCategory: SubPhysical, Kind: ValueAdditive, Change: 8},
		Cost:       5, Cooldown: 2, Duration: 2,
		Triggers: []TriggerCondition{TriggerManual, TriggerTurnStart},
		MinLevel: 1,
	},
	{
		Identifier: uuid.MustParse("2e8d9c0b-1a2b-4c3d-9e4f-5a6b7c8d9e0f"),
		Name:       "Blood Rage",
		Effect:     Effect{Category: CategoryAttribute, SubCategory: SubWrath, Kind: ValueAdditive, Change: 6},
		Cost:       8, Cooldown: 4, Duration: 3,
		Triggers: []TriggerCondition{TriggerManual, TriggerLowHealth},
		MinLevel: 4, Classes: []ClassID{ClassReaver},
	},
	{
		Identifier: uuid.MustParse("c4a5b6d7-e8f9-4a0b-8c1d-2e3f4a5b6c7d"),
		Name:       EffectElementalOverload,
		Effect:     Effect{Category: CategoryElemental, SubCategory: SubNone, Kind: ValueMultiplicative, Change: 20},
		Cost:       12, Cooldown: 5, Duration: 3,
		Triggers: []TriggerCondition{TriggerManual, TriggerCriticalHit},
		MinLevel: 9, Classes: []ClassID{ClassReaver},
	},
	{
		Identifier: uuid.MustParse("f0e1d2c3-b4a5-4968-8776-655443322110"),
		Name:       EffectStoneStance,
		Effect:     Effect{Category: CategoryDefense, SubCategory: SubDeflection, Kind: ValueAdditive, Change: 1},
		Cost:       6, Cooldown: 3, Duration: 4,
		Triggers: []TriggerCondition{TriggerManual, TriggerTurnStart},
		MinLevel: 5, Classes: []ClassID{ClassWarden},
	},
	{
		Identifier: uuid.MustParse("91a2b3c4-d5e6-4f70-8192-a3b4c5d6e7f8"),
		Name:       EffectGaleStance,
		Effect:     Effect{Category: CategoryDefense, SubCategory: SubDodge, Kind: ValueAdditive, Change: 10},
		Cost:       6, Cooldown: 3, Duration: 4,
		Triggers: []TriggerCondition{TriggerManual, TriggerLowHealth},
		MinLevel: 5, Classes: []ClassID{ClassWarden},
	},
	{
		Identifier: uuid.MustParse("3c4d5e6f-7a8b-4c9d-80e1-f2a3b4c5d6e7"),
		Name:       "Mana Surge",
		Effect:     Effect{Category: CategoryMana, SubCategory: SubNone, Kind: ValueMultiplicative, Change: 25},
		Cost:       0, Cooldown: 6, Duration: 3,
		Triggers: []TriggerCondition{TriggerManual},
		MinLevel: 7, Classes: []ClassID{ClassArcanist},
	},
	{
		Identifier: uuid.MustParse("5d6e7f80-9a1b-4c2d-83e4-f5a6b7c8d9ea"),
		Name:       "Cinder Bolt",
		Effect:     Effect{Category: CategoryElemental, SubCategory: SubFire, Kind: ValueRange, Change: 4, ChangeMax: 12},
		Cost:       4, Cooldown: 1, Duration: 1,
		Triggers: []TriggerCondition{TriggerManual, TriggerTurnStart},
		MinLevel: 3, Classes: []ClassID{ClassArcanist},
	},
	{
		Identifier: uuid.MustParse("a1b2c3d4-e5f6-4071-8293-04a5b6c7d8e9"),
		Name:       "Second Wind",
		Effect:     Effect{Category: CategoryLife, SubCategory: SubNone, Kind: ValueAdditive, Change: 15},
		Cost:       10, Cooldown: 8, Duration: 1,
		Triggers: []TriggerCondition{TriggerManual, TriggerLowHealth},
		MinLevel: 13,
	},
	{
		Identifier: uuid.MustParse("0b1c2d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e"),
		Name:       "Stormcall",
		Effect:     Effect{Category: CategoryElemental, SubCategory: SubLightning, Kind: ValueRange, Change: 6, ChangeMax: 18},
		Cost:       9, Cooldown: 4, Duration: 2,
		Triggers: []TriggerCondition{TriggerManual, TriggerCriticalHit},
		MinLevel: 17,
	},
}

// SkillTable — глобальный registry скиллов. map[identifier]*Skill.
var SkillTable map[uuid.UUID]*Skill

// LoadSkills строит SkillTable из Go-литералов (skillDefs).
func LoadSkills() error {
	SkillTable = make(map[uuid.UUID]*Skill, len(skillDefs))
	for i := range skillDefs {
		SkillTable[skillDefs[i].Identifier] = &skillDefs[i]
	}
	return nil
}

// GetSkill returns a skill by identifier, or nil when absent.
func GetSkill(id uuid.UUID) *Skill {
	if SkillTable == nil {
		return nil
	}
	return SkillTable[id]
}

// AllSkills returns every authored skill.
func AllSkills() []Skill {
	out := make([]Skill, len(skillDefs))
	copy(out, skillDefs)
	return out
}

// AvailableTo reports whether the skill's level and class gates pass.
func (s *Skill) AvailableTo(level int, class ClassID) bool {
	if level < s.MinLevel {
		return false
	}
	if len(s.Classes) == 0 {
		return true
	}
	for _, c := range s.Classes {
		if c == class {
			return true
		}
	}
	return false
}
