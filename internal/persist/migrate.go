package persist

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

// Migrate upgrades a snapshot saved under an older version. It starts from
// a fresh default aggregate, copies forward the known-stable fields, and
// backfills anything the old character object predates. Certain fields are
// force-reset to current defaults regardless of what was saved (the
// auto-salvage configuration among them).
func Migrate(old *model.GameState) *model.GameState {
	fresh := DefaultState()
	if old == nil {
		return fresh
	}

	slog.Info("migrating saved state", "from", old.Version, "to", Version)

	fresh.Runs = old.Runs
	fresh.Character = old.Character
	fresh.Difficulty = old.Difficulty
	fresh.Dead = old.Dead
	if old.Stash != nil {
		fresh.Stash = old.Stash
	}
	if fresh.Difficulty == "" {
		fresh.Difficulty = DefaultDifficulty
	}

	if c := fresh.Character; c != nil {
		if c.Passives == nil {
			c.Passives = []uuid.UUID{}
		}
		if c.Skills == nil {
			c.Skills = []*model.CharacterSkill{}
		}
		if c.Cooldowns == nil {
			c.Cooldowns = []*model.Cooldown{}
		}
		if c.TemporalEffects == nil {
			c.TemporalEffects = []*model.TemporalEffect{}
		}
		if c.Equipment == nil {
			c.Equipment = map[data.EquipSlot]*model.ItemInstance{}
		}
		// PendingRewards and Refreshes are value fields; an old save
		// without them already decodes to zero counts.
	}

	// AutoSalvage intentionally keeps the fresh default: force-default on
	// upgrade.
	return fresh
}
