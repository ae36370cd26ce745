package progress

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/combat"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

// RewardPoolSize is how many candidates a reward pool offers.
const RewardPoolSize = 3

var (
	ErrNoPendingReward = errors.New("no pending reward")
	ErrNotInPool       = errors.New("candidate not in reward pool")
	ErrNoRefreshes     = errors.New("no reroll tokens left")
)

// GainExperience scales the base grant against the area level and levels
// the character up while the threshold (level × 100) is met. Experience
// resets to zero on each level-up.
func (c *Controller) GainExperience(baseExp, areaLevel int) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}

	ch.Experience += combat.ScaledExperience(baseExp, ch.Level, areaLevel)

	for ch.Experience >= ch.Level*c.expPerLevel {
		ch.Experience = 0
		ch.Level++
		c.applyClassBonus()
		c.applyLevelUpReward(ch.Level)
	}
	return nil
}

// applyClassBonus rolls the class-specific random stat bonus on level-up.
func (c *Controller) applyClassBonus() {
	ch := c.character()
	tmpl := data.GetClassTemplate(ch.Class)
	if tmpl == nil {
		return
	}
	ch.Stats.Fortitude += c.rollDie(tmpl.FortitudeDie)
	ch.Stats.Fortune += c.rollDie(tmpl.FortuneDie)
	ch.Stats.Wrath += c.rollDie(tmpl.WrathDie)
	ch.Stats.Affinity += c.rollDie(tmpl.AffinityDie)

	// Pools grow with fortitude/affinity.
	ch.Stats.MaxHealth += ch.Stats.Fortitude / 4
	ch.Stats.MaxMana += ch.Stats.Affinity / 4
}

func (c *Controller) rollDie(d data.BonusDie) int {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + c.rng.Intn(d.Max-d.Min+1)
}

// applyLevelUpReward selects exactly one reward outcome for the new level.
// Level 2 always grants a passive. Otherwise the skill and passive
// eligibility checks share one branch; when both could fire, the skill
// sub-grant wins.
func (c *Controller) applyLevelUpReward(level int) {
	ch := c.character()
	pr := &ch.PendingRewards

	// A pool reroll token lands every fifth level, on top of the branch
	// reward.
	if level%5 == 0 {
		ch.Refreshes++
	}

	skillEligible := level%4 == 1 && c.availableSkillCount() > pr.Skills
	passiveEligible := level%3 == 1 && level != 3 && c.availablePassiveCount() > pr.Passives

	switch {
	case level == 2:
		pr.Passives++
	case skillEligible || passiveEligible:
		if skillEligible {
			pr.Skills++
		} else {
			pr.Passives++
		}
	default:
		pr.StatPoints++
	}
}

// availableSkillCount counts catalog skills the character could still be
// offered: unowned and level/class eligible.
func (c *Controller) availableSkillCount() int {
	ch := c.character()
	n := 0
	for _, s := range data.AllSkills() {
		if !ch.HasSkill(s.Identifier) && s.AvailableTo(ch.Level, ch.Class) {
			n++
		}
	}
	return n
}

func (c *Controller) availablePassiveCount() int {
	ch := c.character()
	n := 0
	for _, p := range data.AllPassives() {
		if !ch.HasPassive(p.Identifier) && p.AvailableTo(ch.Level, ch.Class) {
			n++
		}
	}
	return n
}

// SkillRewardPool returns the cached 3-candidate skill offering, computing
// it lazily on first read. The pool survives until one trigger after a
// redemption.
func (c *Controller) SkillRewardPool() ([]*data.Skill, error) {
	ch := c.character()
	if ch == nil {
		return nil, ErrCharacterNotFound
	}
	if c.skillPool == nil {
		c.skillPool = c.rollSkillPool()
	}
	out := make([]*data.Skill, 0, len(c.skillPool))
	for _, id := range c.skillPool {
		if s := data.GetSkill(id); s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// PassiveRewardPool mirrors SkillRewardPool for passives.
func (c *Controller) PassiveRewardPool() ([]*data.Passive, error) {
	ch := c.character()
	if ch == nil {
		return nil, ErrCharacterNotFound
	}
	if c.passivePool == nil {
		c.passivePool = c.rollPassivePool()
	}
	out := make([]*data.Passive, 0, len(c.passivePool))
	for _, id := range c.passivePool {
		if p := data.GetPassive(id); p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Controller) rollSkillPool() []uuid.UUID {
	ch := c.character()
	var eligible []uuid.UUID
	for _, s := range data.AllSkills() {
		if !ch.HasSkill(s.Identifier) && s.AvailableTo(ch.Level, ch.Class) {
			eligible = append(eligible, s.Identifier)
		}
	}
	return c.samplePool(eligible)
}

func (c *Controller) rollPassivePool() []uuid.UUID {
	ch := c.character()
	var eligible []uuid.UUID
	for _, p := range data.AllPassives() {
		if !ch.HasPassive(p.Identifier) && p.AvailableTo(ch.Level, ch.Class) {
			eligible = append(eligible, p.Identifier)
		}
	}
	return c.samplePool(eligible)
}

// samplePool draws up to RewardPoolSize distinct candidates. The empty
// pool is non-nil so laziness doesn't recompute it every read.
func (c *Controller) samplePool(eligible []uuid.UUID) []uuid.UUID {
	pool := make([]uuid.UUID, 0, RewardPoolSize)
	c.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	for _, id := range eligible {
		if len(pool) == RewardPoolSize {
			break
		}
		pool = append(pool, id)
	}
	return pool
}

// RedeemSkillReward consumes one pending skill reward for a pool
// candidate. The pool stays readable for the rest of this trigger and is
// cleared when the next one begins.
func (c *Controller) RedeemSkillReward(id uuid.UUID) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	if ch.PendingRewards.Skills == 0 {
		return ErrNoPendingReward
	}
	if _, err := c.SkillRewardPool(); err != nil {
		return err
	}
	if !containsID(c.skillPool, id) {
		return ErrNotInPool
	}
	skill := data.GetSkill(id)
	if skill == nil {
		return fmt.Errorf("unknown skill %s", id)
	}

	trigger := data.TriggerManual
	if len(skill.Triggers) > 0 {
		trigger = skill.Triggers[0]
	}
	ch.Skills = append(ch.Skills, &model.CharacterSkill{
		Identifier: id,
		Enabled:    true,
		Trigger:    trigger,
	})
	ch.PendingRewards.Skills--
	c.pendingInvalidation = true
	return nil
}

// RedeemPassiveReward consumes one pending passive reward.
func (c *Controller) RedeemPassiveReward(id uuid.UUID) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	if ch.PendingRewards.Passives == 0 {
		return ErrNoPendingReward
	}
	if _, err := c.PassiveRewardPool(); err != nil {
		return err
	}
	if !containsID(c.passivePool, id) {
		return ErrNotInPool
	}
	if data.GetPassive(id) == nil {
		return fmt.Errorf("unknown passive %s", id)
	}

	ch.Passives = append(ch.Passives, id)
	ch.PendingRewards.Passives--
	c.pendingInvalidation = true
	return nil
}

// RedeemStatPoint spends one pending stat point on a core attribute.
func (c *Controller) RedeemStatPoint(attr data.SubCategory) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	if ch.PendingRewards.StatPoints == 0 {
		return ErrNoPendingReward
	}
	switch attr {
	case data.SubFortitude:
		ch.Stats.Fortitude++
	case data.SubFortune:
		ch.Stats.Fortune++
	case data.SubWrath:
		ch.Stats.Wrath++
	case data.SubAffinity:
		ch.Stats.Affinity++
	default:
		return fmt.Errorf("unknown attribute %q", attr)
	}
	ch.PendingRewards.StatPoints--
	return nil
}

// RefreshSkillPool spends a reroll token to redraw the skill offering
// immediately.
func (c *Controller) RefreshSkillPool() error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	if ch.Refreshes == 0 {
		return ErrNoRefreshes
	}
	ch.Refreshes--
	c.skillPool = c.rollSkillPool()
	return nil
}

// RefreshPassivePool spends a reroll token to redraw the passive offering.
func (c *Controller) RefreshPassivePool() error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	if ch.Refreshes == 0 {
		return ErrNoRefreshes
	}
	ch.Refreshes--
	c.passivePool = c.rollPassivePool()
	return nil
}

func containsID(list []uuid.UUID, id uuid.UUID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}
