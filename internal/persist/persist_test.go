package persist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

func TestMemoryStore_Contract(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoSave, "fresh store reports no save")

	require.NoError(t, store.Set(ctx, `{"version":"x"}`))
	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":"x"}`, got)

	// Clear keeps the slot but empties it.
	require.NoError(t, store.Clear(ctx))
	got, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Remove deletes the slot entirely.
	require.NoError(t, store.Set(ctx, "payload"))
	require.NoError(t, store.Remove(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestMemoryStore_SetObject(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetObject(ctx, map[string]int{"gold": 7}))
	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gold":7}`, got)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	require.NoError(t, data.LoadAll())

	state := DefaultState()
	state.Runs = 3
	state.Character = model.NewCharacter(data.ClassWarden)
	state.Character.Gold = 120
	state.Character.Passives = []uuid.UUID{uuid.New()}
	state.Character.Loot = []*model.ItemInstance{{
		Identifier: uuid.New(),
		Identified: true,
		Name:       "Plated Enhanced Helmet",
		Type:       "helmet",
		ILvl:       12,
		Details: &model.ItemDetails{
			Tier: data.TierEnhanced,
			Base: &model.BaseDetail{ID: "base_armor_plate", Target: data.BaseTargetArmor, Value: 9},
			Prefix: []model.RolledAffix{{
				ID: "prefix_life_1", Category: data.CategoryLife,
				Value: model.AffixValue{Kind: data.ValueAdditive, Value: 18},
			}},
		},
	}}

	raw, err := Encode(state)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, decoded)

	assert.Equal(t, state.Runs, decoded.Runs)
	assert.Equal(t, state.Character.Gold, decoded.Character.Gold)
	assert.Equal(t, state.Character.Passives, decoded.Character.Passives)
	require.Len(t, decoded.Character.Loot, 1)
	it := decoded.Character.Loot[0]
	assert.Equal(t, data.TierEnhanced, it.Tier())
	require.NotNil(t, it.Details.Base)
	assert.Equal(t, 9.0, it.Details.Base.Value)
	assert.Equal(t, 18.0, it.Details.Prefix[0].Value.Scalar())
}

func TestDecode_EmptyBlobIsNilState(t *testing.T) {
	state, err := Decode("")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("{not json")
	assert.Error(t, err)
}

func TestDefaultState(t *testing.T) {
	state := DefaultState()
	assert.Equal(t, Version, state.Version)
	assert.Equal(t, DefaultDifficulty, state.Difficulty)
	assert.Nil(t, state.Character)
	assert.NotNil(t, state.Stash)
	assert.False(t, state.AutoSalvage.Enabled)
	assert.Equal(t, "basic", state.AutoSalvage.TierThreshold)
}

func TestMigrate_CopiesForwardAndBackfills(t *testing.T) {
	require.NoError(t, data.LoadAll())

	old := &model.GameState{
		Version:    "0.2.0",
		Runs:       5,
		Difficulty: "hard",
		Dead:       true,
		Character:  model.NewCharacter(data.ClassArcanist),
		AutoSalvage: model.AutoSalvageConfig{
			Enabled:       true,
			TierThreshold: "infused",
		},
	}
	// Simulate a save that predates these collections.
	old.Character.Passives = nil
	old.Character.Skills = nil
	old.Character.Cooldowns = nil
	old.Character.TemporalEffects = nil
	old.Character.Equipment = nil

	fresh := Migrate(old)

	assert.Equal(t, Version, fresh.Version)
	assert.Equal(t, 5, fresh.Runs)
	assert.Equal(t, "hard", fresh.Difficulty)
	assert.True(t, fresh.Dead)
	require.NotNil(t, fresh.Character)
	assert.NotNil(t, fresh.Character.Passives)
	assert.NotNil(t, fresh.Character.Skills)
	assert.NotNil(t, fresh.Character.Cooldowns)
	assert.NotNil(t, fresh.Character.TemporalEffects)
	assert.NotNil(t, fresh.Character.Equipment)

	// Force-defaulted regardless of what was stored.
	assert.False(t, fresh.AutoSalvage.Enabled)
	assert.Equal(t, "basic", fresh.AutoSalvage.TierThreshold)
}

func TestMigrate_NilState(t *testing.T) {
	fresh := Migrate(nil)
	require.NotNil(t, fresh)
	assert.Equal(t, Version, fresh.Version)
	assert.Nil(t, fresh.Character)
}

func TestMigrate_EmptyDifficultyDefaults(t *testing.T) {
	fresh := Migrate(&model.GameState{Version: "0.2.0"})
	assert.Equal(t, DefaultDifficulty, fresh.Difficulty)
}
