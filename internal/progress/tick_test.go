package progress

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

func skillByName(t *testing.T, name string) *data.Skill {
	t.Helper()
	for _, s := range data.AllSkills() {
		if s.Name == name {
			return data.GetSkill(s.Identifier)
		}
	}
	t.Fatalf("skill %q not in catalog", name)
	return nil
}

func grantSkill(ch *model.Character, id uuid.UUID) {
	ch.Skills = append(ch.Skills, &model.CharacterSkill{
		Identifier: id,
		Enabled:    true,
		Trigger:    data.TriggerManual,
	})
}

func TestTick_DecrementsAndExpires(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	skillID := uuid.New()
	ch.Cooldowns = []*model.Cooldown{{SkillID: skillID, Remaining: 2}}
	ch.TemporalEffects = []*model.TemporalEffect{{
		Name:      "Burn Ward",
		Effect:    data.Effect{Category: data.CategoryElemental, SubCategory: data.SubFire, Kind: data.ValueAdditive, Change: 3},
		Remaining: 1,
	}}

	require.NoError(t, c.Tick())
	require.Len(t, ch.Cooldowns, 1)
	assert.Equal(t, 1, ch.Cooldowns[0].Remaining)
	assert.Empty(t, ch.TemporalEffects, "effect at 1 remaining expires this tick")

	require.NoError(t, c.Tick())
	assert.Empty(t, ch.Cooldowns)
}

func TestTick_RegeneratesPools(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character
	ch.Stats.Health = 50
	ch.Stats.Mana = 10

	require.NoError(t, c.Tick())
	assert.Equal(t, 51, ch.Stats.Health)
	assert.Equal(t, 11, ch.Stats.Mana)
}

func TestTick_RegenCapsAtMax(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character // full pools at init

	require.NoError(t, c.Tick())
	assert.Equal(t, ch.Stats.MaxHealth, ch.Stats.Health)
	assert.Equal(t, ch.Stats.MaxMana, ch.Stats.Mana)
}

func passiveByName(t *testing.T, name string) uuid.UUID {
	t.Helper()
	for _, p := range data.AllPassives() {
		if p.Name == name {
			return p.Identifier
		}
	}
	t.Fatalf("passive %q not in catalog", name)
	return uuid.Nil
}

func TestTick_DerivedBonusesStayOutOfBaseStats(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character
	ch.Passives = append(ch.Passives, passiveByName(t, "Stoneblood")) // life +20

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Tick())
	}

	// The +20 pool bonus lives in the snapshot only; repeated ticks must
	// not fold it back into the base maximum.
	assert.Equal(t, 60, ch.Stats.MaxHealth)
	assert.Equal(t, 65, ch.Stats.Health, "regen runs against the derived cap")
}

func TestTick_RegenCapsAtDerivedMax(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character
	ch.Passives = append(ch.Passives, passiveByName(t, "Stoneblood"))
	ch.Stats.Health = 79

	require.NoError(t, c.Tick())
	assert.Equal(t, 80, ch.Stats.Health)
	require.NoError(t, c.Tick())
	assert.Equal(t, 80, ch.Stats.Health, "pool saturates at the derived max")
	assert.Equal(t, 60, ch.Stats.MaxHealth)
}

func TestUseSkill_HappyPath(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	skill := skillByName(t, "Sundering Blow") // cost 5, cooldown 2, duration 2
	grantSkill(ch, skill.Identifier)
	manaBefore := ch.Stats.Mana

	ok, err := c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, manaBefore-skill.Cost, ch.Stats.Mana)
	cd := ch.FindCooldown(skill.Identifier)
	require.NotNil(t, cd)
	assert.Equal(t, skill.Cooldown, cd.Remaining)
	require.Len(t, ch.TemporalEffects, 1)
	assert.Equal(t, skill.Name, ch.TemporalEffects[0].Name)
	assert.Equal(t, skill.Duration, ch.TemporalEffects[0].Remaining)
}

func TestUseSkill_BlockedByCooldown(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	skill := skillByName(t, "Sundering Blow")
	grantSkill(ch, skill.Identifier)

	ok, err := c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, ch.TemporalEffects, 1, "blocked use must not stack the effect")
}

func TestUseSkill_InsufficientMana(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	skill := skillByName(t, "Sundering Blow")
	grantSkill(ch, skill.Identifier)
	ch.Stats.Mana = skill.Cost - 1

	ok, err := c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, skill.Cost-1, ch.Stats.Mana)
	assert.Empty(t, ch.Cooldowns)
	assert.Empty(t, ch.TemporalEffects)
}

func TestUseSkill_NotOwnedOrDisabled(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	skill := skillByName(t, "Sundering Blow")

	ok, err := c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	assert.False(t, ok, "unowned skill")

	grantSkill(ch, skill.Identifier)
	ch.Skills[0].Enabled = false
	ok, err = c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	assert.False(t, ok, "disabled skill")
}

func TestTick_CooldownFreesSkillAgain(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	skill := skillByName(t, "Sundering Blow")
	grantSkill(ch, skill.Identifier)

	ok, err := c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	require.True(t, ok)

	// Cooldown 2: free again after two ticks.
	require.NoError(t, c.Tick())
	require.NoError(t, c.Tick())
	require.Nil(t, ch.FindCooldown(skill.Identifier))

	ok, err = c.UseSkill(skill.Identifier)
	require.NoError(t, err)
	assert.True(t, ok)
}
