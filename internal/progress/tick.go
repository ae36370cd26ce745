package progress

import (
	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/stats"
)

// Tick processes one game turn atomically: cooldowns and temporal effects
// decrement and expire first, then regeneration applies from the freshly
// resolved snapshot. The snapshot's derived maxima only cap the pools;
// base stats mutate through level-ups and stat points alone. Ticks never
// interleave; the external scheduler is the only driver.
func (c *Controller) Tick() error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}

	kept := ch.Cooldowns[:0]
	for _, cd := range ch.Cooldowns {
		cd.Remaining--
		if cd.Remaining > 0 {
			kept = append(kept, cd)
		}
	}
	ch.Cooldowns = kept

	effects := ch.TemporalEffects[:0]
	for _, t := range ch.TemporalEffects {
		t.Remaining--
		if t.Remaining > 0 {
			effects = append(effects, t)
		}
	}
	ch.TemporalEffects = effects

	snap := stats.Resolve(ch)
	ch.Stats.Health = min(ch.Stats.Health+int(snap.HealthRegen), int(snap.MaxHealth))
	ch.Stats.Mana = min(ch.Stats.Mana+int(snap.ManaRegen), int(snap.MaxMana))
	return nil
}

// UseSkill activates an owned, enabled skill: mana is spent, the cooldown
// starts, and a timed skill leaves a temporal effect behind. Returns false
// without mutating anything when the skill is unavailable, cooling down or
// unaffordable.
func (c *Controller) UseSkill(id uuid.UUID) (bool, error) {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return false, ErrCharacterNotFound
	}

	held := ch.FindSkill(id)
	if held == nil || !held.Enabled {
		return false, nil
	}
	skill := data.GetSkill(id)
	if skill == nil {
		return false, nil
	}
	if ch.FindCooldown(id) != nil {
		return false, nil
	}
	if ch.Stats.Mana < skill.Cost {
		return false, nil
	}

	ch.Stats.Mana -= skill.Cost
	if skill.Cooldown > 0 {
		ch.Cooldowns = append(ch.Cooldowns, &model.Cooldown{
			SkillID:   id,
			Remaining: skill.Cooldown,
		})
	}
	if skill.Duration > 0 {
		ch.TemporalEffects = append(ch.TemporalEffects, &model.TemporalEffect{
			Name:      skill.Name,
			Effect:    skill.Effect,
			Remaining: skill.Duration,
		})
	}
	return true, nil
}
