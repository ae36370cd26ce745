package model

import (
	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
)

// AffixValue is the rolled value of one affix on an item instance.
// Range values carry Min/Max; scalar values carry Value.
type AffixValue struct {
	Kind  data.ValueKind `json:"kind"`
	Value float64        `json:"value,omitempty"`
	Min   float64        `json:"min,omitempty"`
	Max   float64        `json:"max,omitempty"`
}

// Scalar returns the single number an aggregation pass should consume:
// the value itself, or the midpoint for ranges.
func (v AffixValue) Scalar() float64 {
	if v.Kind == data.ValueRange {
		return (v.Min + v.Max) / 2
	}
	return v.Value
}

// RolledAffix is one affix entry on an item: catalog reference plus roll.
type RolledAffix struct {
	ID          string           `json:"id"`
	Category    data.AffixCategory `json:"category"`
	SubCategory data.SubCategory `json:"subCategory,omitempty"`
	Value       AffixValue       `json:"value"`
}

// BaseDetail is the single scaled base-stat affix every identified item has.
type BaseDetail struct {
	ID      string           `json:"id"`
	Target  data.BaseTarget  `json:"target"`
	Element data.SubCategory `json:"element,omitempty"`
	Value   float64          `json:"value"`
}

// ItemDetails holds everything revealed by identification.
type ItemDetails struct {
	Tier      data.Tier       `json:"tier"`
	Mutations []data.Mutation `json:"mutations,omitempty"`
	Base      *BaseDetail     `json:"baseDetails,omitempty"`
	Embedded  []RolledAffix   `json:"embedded,omitempty"`
	Prefix    []RolledAffix   `json:"prefix,omitempty"`
	Suffix    []RolledAffix   `json:"suffix,omitempty"`
}

// ItemInstance is one generated piece of loot.
//
// Hidden flags are rolled at creation and never re-rolled. Identification is
// one-way: affix lists and the base detail are filled exactly once.
type ItemInstance struct {
	Identifier uuid.UUID     `json:"_identifier"`
	Identified bool          `json:"identified"`
	Name       string        `json:"name"`
	Type       data.BaseType `json:"type"`
	ILvl       int           `json:"iLvl"`
	Details    *ItemDetails  `json:"itemDetails,omitempty"`

	IsCursed      bool `json:"isCursed"`
	IsCorrupted   bool `json:"isCorrupted"`
	IsVoidTouched bool `json:"isVoidTouched"`
}

// Tier returns the rolled tier, defaulting to basic when details are absent.
func (it *ItemInstance) Tier() data.Tier {
	if it.Details == nil {
		return data.TierBasic
	}
	return it.Details.Tier
}

// Mutations returns the item's rolled mutations, if any.
func (it *ItemInstance) Mutations() []data.Mutation {
	if it.Details == nil {
		return nil
	}
	return it.Details.Mutations
}

// Affixes returns the rolled affix list for one slot type.
func (it *ItemInstance) Affixes(typ data.AffixType) []RolledAffix {
	if it.Details == nil {
		return nil
	}
	switch typ {
	case data.AffixEmbedded:
		return it.Details.Embedded
	case data.AffixPrefix:
		return it.Details.Prefix
	case data.AffixSuffix:
		return it.Details.Suffix
	default:
		return nil
	}
}

// AffixCount returns how many affixes of one slot type the item carries.
func (it *ItemInstance) AffixCount(typ data.AffixType) int {
	return len(it.Affixes(typ))
}

// FirstAffix returns the first rolled affix of a slot type, or nil.
// The display name is built from these.
func (it *ItemInstance) FirstAffix(typ data.AffixType) *RolledAffix {
	list := it.Affixes(typ)
	if len(list) == 0 {
		return nil
	}
	return &list[0]
}
