// Package progress owns the character lifecycle: experience and leveling,
// reward allocation, loot and gold acquisition, equipment, ticks and
// persistence. It is the only writer of the game state; the stat resolver
// only ever reads it.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/loot"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/persist"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/stats"
)

// Sentinel results callers branch on instead of exceptions.
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrNoMatchingSlot    = errors.New("no matching equipment slot")
)

// ExperiencePerLevel is the default level-up divisor: a level-up fires
// when accumulated experience reaches level × this. Overridable through
// SetExperiencePerLevel.
const ExperiencePerLevel = 100

// Controller drives all mutation of one game state. Single-threaded by
// design: every public method is an external trigger, and each trigger
// first commits any deferred reward-pool invalidation from the previous
// one (two-phase invalidation).
type Controller struct {
	state *model.GameState
	gen   *loot.Generator
	store persist.Store
	rng   *rand.Rand

	expPerLevel int

	// Cached reward pools; cleared one trigger after redemption.
	skillPool           []uuid.UUID
	passivePool         []uuid.UUID
	pendingInvalidation bool
}

// New wires a controller around an explicitly owned state aggregate.
func New(state *model.GameState, gen *loot.Generator, store persist.Store, rng *rand.Rand) *Controller {
	if state == nil {
		state = persist.DefaultState()
	}
	return &Controller{state: state, gen: gen, store: store, rng: rng, expPerLevel: ExperiencePerLevel}
}

// State exposes the owned aggregate for read-only inspection.
func (c *Controller) State() *model.GameState {
	return c.state
}

// beginTrigger runs at the top of every external entry point. A pool
// invalidation deferred during the previous trigger commits here, so reads
// inside that trigger still saw the pre-clear selection while the next
// trigger starts clean.
func (c *Controller) beginTrigger() {
	if c.pendingInvalidation {
		c.skillPool = nil
		c.passivePool = nil
		c.pendingInvalidation = false
	}
}

func (c *Controller) character() *model.Character {
	return c.state.Character
}

// InitCharacter starts a fresh character of the given class, replacing any
// existing one. Reward pools are invalidated.
func (c *Controller) InitCharacter(class data.ClassID) *model.Character {
	c.beginTrigger()
	c.state.Character = model.NewCharacter(class)
	c.state.Dead = false
	c.pendingInvalidation = true
	slog.Info("character initialized", "class", class)
	return c.state.Character
}

// Snapshot resolves the character's derived combat stats. Recomputed on
// every call; never cached across mutations.
func (c *Controller) Snapshot() (stats.Snapshot, error) {
	if c.character() == nil {
		return stats.Snapshot{}, ErrCharacterNotFound
	}
	return stats.Resolve(c.character()), nil
}

// Gold returns the character's gold, or ErrCharacterNotFound.
func (c *Controller) Gold() (int64, error) {
	if c.character() == nil {
		return 0, ErrCharacterNotFound
	}
	return c.character().Gold, nil
}

// LootItems returns the unequipped inventory, or ErrCharacterNotFound.
func (c *Controller) LootItems() ([]*model.ItemInstance, error) {
	if c.character() == nil {
		return nil, ErrCharacterNotFound
	}
	return c.character().Loot, nil
}

// AddGold credits gold. Negative amounts are ignored.
func (c *Controller) AddGold(amount int64) error {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return ErrCharacterNotFound
	}
	if amount > 0 {
		ch.Gold += amount
	}
	return nil
}

// SpendGold debits gold if the balance covers the amount. Returns false
// with no deduction otherwise.
func (c *Controller) SpendGold(amount int64) (bool, error) {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return false, ErrCharacterNotFound
	}
	if amount <= 0 || ch.Gold < amount {
		return false, nil
	}
	ch.Gold -= amount
	return true, nil
}

// ApplyDamage subtracts incoming damage from the health pool. Death is
// latched in the state when the pool empties; the caller decides what a
// death means. Non-positive amounts are ignored.
func (c *Controller) ApplyDamage(amount int) (bool, error) {
	c.beginTrigger()
	ch := c.character()
	if ch == nil {
		return false, ErrCharacterNotFound
	}
	if amount > 0 {
		ch.Stats.Health -= amount
		if ch.Stats.Health <= 0 {
			ch.Stats.Health = 0
			c.state.Dead = true
		}
	}
	return c.state.Dead, nil
}

// SetExperiencePerLevel overrides the level-up divisor. Non-positive
// values keep the current one.
func (c *Controller) SetExperiencePerLevel(n int) {
	if n > 0 {
		c.expPerLevel = n
	}
}

// SetAutoSalvage updates the runtime auto-salvage policy. The threshold
// must name a known tier.
func (c *Controller) SetAutoSalvage(enabled bool, tierThreshold string) error {
	c.beginTrigger()
	if _, ok := data.TierFromName(tierThreshold); !ok {
		return fmt.Errorf("unknown salvage tier %q", tierThreshold)
	}
	c.state.AutoSalvage = model.AutoSalvageConfig{Enabled: enabled, TierThreshold: tierThreshold}
	return nil
}

// Load reads the stored snapshot through the gateway. A missing or empty
// read falls back to a default aggregate; a version mismatch runs the
// migration routine.
func (c *Controller) Load(ctx context.Context) error {
	raw, err := c.store.Get(ctx)
	if err != nil {
		if errors.Is(err, persist.ErrNoSave) {
			c.state = persist.DefaultState()
			return nil
		}
		return fmt.Errorf("reading saved state: %w", err)
	}

	state, err := persist.Decode(raw)
	if err != nil {
		return fmt.Errorf("loading saved state: %w", err)
	}
	if state == nil {
		c.state = persist.DefaultState()
		return nil
	}
	if state.Version != persist.Version {
		state = persist.Migrate(state)
	}
	c.state = state
	c.pendingInvalidation = true
	return nil
}

// Save writes the current aggregate through the gateway. Fire-and-forget:
// failures are logged, not retried.
func (c *Controller) Save(ctx context.Context) {
	c.state.Version = persist.Version
	if err := c.store.SetObject(ctx, c.state); err != nil {
		slog.Error("saving state failed", "err", err)
	}
}

// Restart wipes the aggregate and the stored snapshot.
func (c *Controller) Restart(ctx context.Context) {
	c.beginTrigger()
	c.state = persist.DefaultState()
	c.skillPool = nil
	c.passivePool = nil
	if err := c.store.Clear(ctx); err != nil {
		slog.Error("clearing saved state failed", "err", err)
	}
}
