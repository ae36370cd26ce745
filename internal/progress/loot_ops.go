package progress

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/stats"
)

// fortuneBaseline: fortune above it boosts drops, below it suppresses them.
const fortuneBaseline = 10

// LootResult reports what an AddLoot call produced.
type LootResult struct {
	Added    int
	Salvaged int
	Gold     int64
}

// fortuneMultiplier maps resolved fortune into [0.5, 2]:
// clamp(1 + sign(Δ)·|Δ|^1.5/100) with Δ = fortune − 10.
func fortuneMultiplier(fortune float64) float64 {
	delta := fortune - fortuneBaseline
	mult := 1 + math.Copysign(math.Pow(math.Abs(delta), 1.5)/100, delta)
	if mult < 0.5 {
		return 0.5
	}
	if mult > 2 {
		return 2
	}
	return mult
}

// AddLoot generates floor(amount × fortuneMult × levelMult) items for an
// area. Basic drops arrive identified; with auto-salvage on, drops at or
// below the configured tier convert straight to gold at a tenth of their
// identification cost.
func (c *Controller) AddLoot(amount, areaLevel int, levelMult float64, autoSalvage bool, lootTags []string) (LootResult, error) {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return LootResult{}, ErrCharacterNotFound
	}

	snap := stats.Resolve(ch)
	count := int(math.Floor(float64(amount) * fortuneMultiplier(snap.Attributes.Fortune) * levelMult))

	threshold := c.salvageThreshold()
	var res LootResult
	for i := 0; i < count; i++ {
		item := c.gen.Generate(areaLevel, lootTags)
		if autoSalvage && item.Tier() <= threshold {
			res.Salvaged++
			res.Gold += data.GetTierSchema(item.Tier()).SalvageValue()
			continue
		}
		ch.Loot = append(ch.Loot, item)
		res.Added++
	}
	ch.Gold += res.Gold
	return res, nil
}

func (c *Controller) salvageThreshold() data.Tier {
	t, ok := data.TierFromName(c.state.AutoSalvage.TierThreshold)
	if !ok {
		return data.TierBasic
	}
	return t
}

// IdentifyItem reveals an unidentified inventory item for its tier's gold
// cost. Insufficient gold is a silent no-op reported as false; no partial
// deduction occurs.
func (c *Controller) IdentifyItem(id uuid.UUID) (bool, error) {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return false, ErrCharacterNotFound
	}
	item := ch.FindLoot(id)
	if item == nil || item.Identified {
		return false, nil
	}

	cost := data.GetTierSchema(item.Tier()).IdentifyCost()
	if ch.Gold < cost {
		return false, nil
	}
	ch.Gold -= cost
	c.gen.Identify(item)
	return true, nil
}

// Equip moves an identified inventory item into its slot, swapping any
// occupant back to the inventory. An item whose base type resolves to no
// slot logs and aborts without mutating state.
func (c *Controller) Equip(id uuid.UUID) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	item := ch.FindLoot(id)
	if item == nil || !item.Identified {
		return ErrNoMatchingSlot
	}

	slot, ok := data.SlotFor(item.Type)
	if !ok {
		slog.Warn("equip aborted: no matching slot", "item", item.Name, "type", item.Type)
		return ErrNoMatchingSlot
	}

	ch.RemoveLoot(id)
	if prev := ch.Equipment[slot]; prev != nil {
		ch.Loot = append(ch.Loot, prev)
	}
	ch.Equipment[slot] = item
	return nil
}

// Unequip returns a slot's item to the inventory.
func (c *Controller) Unequip(slot data.EquipSlot) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	item := ch.Equipment[slot]
	if item == nil {
		return nil
	}
	delete(ch.Equipment, slot)
	ch.Loot = append(ch.Loot, item)
	return nil
}

// SalvageItem converts an inventory item directly to gold.
func (c *Controller) SalvageItem(id uuid.UUID) (int64, error) {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return 0, ErrCharacterNotFound
	}
	item := ch.FindLoot(id)
	if item == nil {
		return 0, nil
	}
	value := data.GetTierSchema(item.Tier()).SalvageValue()
	ch.RemoveLoot(id)
	ch.Gold += value
	return value, nil
}
