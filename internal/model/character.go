package model

import (
	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
)

// Stats holds the character's pools and four core attributes.
type Stats struct {
	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
	Mana      int `json:"mana"`
	MaxMana   int `json:"maxMana"`

	Fortitude int `json:"fortitude"`
	Fortune   int `json:"fortune"`
	Wrath     int `json:"wrath"`
	Affinity  int `json:"affinity"`
}

// CharacterSkill is a character-held reference into the skill catalog.
// Only the per-character toggles mutate.
type CharacterSkill struct {
	Identifier uuid.UUID             `json:"_identifier"`
	Enabled    bool                  `json:"enabled"`
	Trigger    data.TriggerCondition `json:"trigger"`
}

// PendingRewards counts unredeemed level-up grants awaiting selection.
type PendingRewards struct {
	Skills     int `json:"skills"`
	Passives   int `json:"passives"`
	StatPoints int `json:"statPoints"`
}

// Character is the single mutable combat aggregate. All mutation goes
// through the progression controller; the stat resolver only reads it.
type Character struct {
	Class      data.ClassID `json:"class"`
	Level      int          `json:"level"`
	Experience int          `json:"experience"`
	Stats      Stats        `json:"stats"`

	Equipment map[data.EquipSlot]*ItemInstance `json:"equipment"`
	Gold      int64                            `json:"gold"`
	Loot      []*ItemInstance                  `json:"loot"`

	Passives []uuid.UUID       `json:"passives"`
	Skills   []*CharacterSkill `json:"skills"`

	TemporalEffects []*TemporalEffect `json:"temporalEffects"`
	Cooldowns       []*Cooldown       `json:"cooldowns"`

	PendingRewards PendingRewards `json:"pendingRewards"`
	Refreshes      int            `json:"refreshes"`
}

// NewCharacter creates a level-1 character from its class template.
func NewCharacter(class data.ClassID) *Character {
	tmpl := data.GetClassTemplate(class)
	if tmpl == nil {
		tmpl = data.GetClassTemplate(data.ClassReaver)
	}
	return &Character{
		Class:      tmpl.ID,
		Level:      1,
		Experience: 0,
		Stats: Stats{
			Health:    tmpl.BaseHealth,
			MaxHealth: tmpl.BaseHealth,
			Mana:      tmpl.BaseMana,
			MaxMana:   tmpl.BaseMana,
			Fortitude: tmpl.Fortitude,
			Fortune:   tmpl.Fortune,
			Wrath:     tmpl.Wrath,
			Affinity:  tmpl.Affinity,
		},
		Equipment: make(map[data.EquipSlot]*ItemInstance),
	}
}

// HasSkill reports whether the character owns a skill.
func (c *Character) HasSkill(id uuid.UUID) bool {
	for _, s := range c.Skills {
		if s.Identifier == id {
			return true
		}
	}
	return false
}

// HasPassive reports whether the character owns a passive.
func (c *Character) HasPassive(id uuid.UUID) bool {
	for _, p := range c.Passives {
		if p == id {
			return true
		}
	}
	return false
}

// FindSkill returns the character's held copy of a skill, or nil.
func (c *Character) FindSkill(id uuid.UUID) *CharacterSkill {
	for _, s := range c.Skills {
		if s.Identifier == id {
			return s
		}
	}
	return nil
}

// FindLoot returns the inventory item with the given identifier, or nil.
func (c *Character) FindLoot(id uuid.UUID) *ItemInstance {
	for _, it := range c.Loot {
		if it.Identifier == id {
			return it
		}
	}
	return nil
}

// RemoveLoot drops the inventory item with the given identifier.
// Returns false when no such item exists.
func (c *Character) RemoveLoot(id uuid.UUID) bool {
	for i, it := range c.Loot {
		if it.Identifier == id {
			c.Loot = append(c.Loot[:i], c.Loot[i+1:]...)
			return true
		}
	}
	return false
}

// EquippedItems returns the equipped items in stable slot order.
func (c *Character) EquippedItems() []*ItemInstance {
	slots := []data.EquipSlot{
		data.SlotWeapon, data.SlotHelmet, data.SlotChest,
		data.SlotGloves, data.SlotBoots, data.SlotRing, data.SlotAmulet,
	}
	var out []*ItemInstance
	for _, s := range slots {
		if it := c.Equipment[s]; it != nil {
			out = append(out, it)
		}
	}
	return out
}

// FindCooldown returns the cooldown entry for a skill, or nil.
func (c *Character) FindCooldown(id uuid.UUID) *Cooldown {
	for _, cd := range c.Cooldowns {
		if cd.SkillID == id {
			return cd
		}
	}
	return nil
}
