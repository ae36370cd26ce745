package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/loot"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/persist"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/testutil"
)

func newTestController(t *testing.T, class data.ClassID) *Controller {
	t.Helper()
	testutil.LoadCatalogs(t)
	rng := testutil.NewRand(1)
	c := New(nil, loot.NewGenerator(rng, 0), persist.NewMemoryStore(), rng)
	c.InitCharacter(class)
	return c
}

func TestNew_NilStateFallsBackToDefault(t *testing.T) {
	testutil.LoadCatalogs(t)
	rng := testutil.NewRand(1)
	c := New(nil, loot.NewGenerator(rng, 0), persist.NewMemoryStore(), rng)

	require.NotNil(t, c.State())
	assert.Equal(t, persist.Version, c.State().Version)
	assert.Nil(t, c.State().Character)
}

func TestQueries_WithoutCharacter(t *testing.T) {
	testutil.LoadCatalogs(t)
	rng := testutil.NewRand(1)
	c := New(nil, loot.NewGenerator(rng, 0), persist.NewMemoryStore(), rng)

	_, err := c.Gold()
	assert.ErrorIs(t, err, ErrCharacterNotFound)
	_, err = c.LootItems()
	assert.ErrorIs(t, err, ErrCharacterNotFound)
	_, err = c.Snapshot()
	assert.ErrorIs(t, err, ErrCharacterNotFound)
	assert.ErrorIs(t, c.GainExperience(10, 1), ErrCharacterNotFound)
	assert.ErrorIs(t, c.Tick(), ErrCharacterNotFound)
}

func TestInitCharacter(t *testing.T) {
	c := newTestController(t, data.ClassWarden)

	ch := c.State().Character
	require.NotNil(t, ch)
	assert.Equal(t, data.ClassWarden, ch.Class)
	assert.Equal(t, 1, ch.Level)
	assert.Equal(t, 70, ch.Stats.MaxHealth)
	assert.False(t, c.State().Dead)
}

func TestAddGold(t *testing.T) {
	c := newTestController(t, data.ClassReaver)

	require.NoError(t, c.AddGold(50))
	require.NoError(t, c.AddGold(-10)) // ignored
	gold, err := c.Gold()
	require.NoError(t, err)
	assert.Equal(t, int64(50), gold)
}

func TestSpendGold(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	require.NoError(t, c.AddGold(100))

	ok, err := c.SpendGold(60)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SpendGold(60) // only 40 left
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.SpendGold(-5)
	require.NoError(t, err)
	assert.False(t, ok)

	gold, err := c.Gold()
	require.NoError(t, err)
	assert.Equal(t, int64(40), gold)
}

func TestSetExperiencePerLevel(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	c.SetExperiencePerLevel(50)

	require.NoError(t, c.GainExperience(50, 1))
	assert.Equal(t, 2, c.State().Character.Level)

	c.SetExperiencePerLevel(0) // ignored, divisor stays 50
	require.NoError(t, c.GainExperience(100, 2))
	assert.Equal(t, 3, c.State().Character.Level)
}

func TestSetAutoSalvage(t *testing.T) {
	c := newTestController(t, data.ClassReaver)

	require.NoError(t, c.SetAutoSalvage(true, "enhanced"))
	assert.True(t, c.State().AutoSalvage.Enabled)
	assert.Equal(t, "enhanced", c.State().AutoSalvage.TierThreshold)

	assert.Error(t, c.SetAutoSalvage(true, "legendary"))
	assert.Equal(t, "enhanced", c.State().AutoSalvage.TierThreshold, "rejected update must not mutate")
}

func TestApplyDamage(t *testing.T) {
	c := newTestController(t, data.ClassReaver)
	ch := c.State().Character

	dead, err := c.ApplyDamage(15)
	require.NoError(t, err)
	assert.False(t, dead)
	assert.Equal(t, 45, ch.Stats.Health)

	dead, err = c.ApplyDamage(-5) // ignored
	require.NoError(t, err)
	assert.False(t, dead)
	assert.Equal(t, 45, ch.Stats.Health)

	dead, err = c.ApplyDamage(100)
	require.NoError(t, err)
	assert.True(t, dead)
	assert.Equal(t, 0, ch.Stats.Health)
	assert.True(t, c.State().Dead)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	testutil.LoadCatalogs(t)
	ctx := context.Background()
	store := persist.NewMemoryStore()

	rng := testutil.NewRand(2)
	c := New(nil, loot.NewGenerator(rng, 0), store, rng)
	c.InitCharacter(data.ClassArcanist)
	require.NoError(t, c.AddGold(77))
	c.Save(ctx)

	rng2 := testutil.NewRand(3)
	c2 := New(nil, loot.NewGenerator(rng2, 0), store, rng2)
	require.NoError(t, c2.Load(ctx))

	ch := c2.State().Character
	require.NotNil(t, ch)
	assert.Equal(t, data.ClassArcanist, ch.Class)
	assert.Equal(t, int64(77), ch.Gold)
	assert.Equal(t, persist.Version, c2.State().Version)
}

func TestLoad_EmptyStoreFallsBackToDefault(t *testing.T) {
	testutil.LoadCatalogs(t)
	rng := testutil.NewRand(4)
	c := New(nil, loot.NewGenerator(rng, 0), persist.NewMemoryStore(), rng)

	require.NoError(t, c.Load(context.Background()))
	assert.Nil(t, c.State().Character)
	assert.Equal(t, persist.Version, c.State().Version)
}

func TestLoad_OldVersionMigrates(t *testing.T) {
	testutil.LoadCatalogs(t)
	ctx := context.Background()
	store := persist.NewMemoryStore()

	old := persist.DefaultState()
	old.Version = "0.1.0"
	old.Character = model.NewCharacter(data.ClassReaver)
	old.Character.Passives = nil // predates the field
	old.AutoSalvage = model.AutoSalvageConfig{Enabled: true, TierThreshold: "infused"}
	raw, err := persist.Encode(old)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, raw))

	rng := testutil.NewRand(5)
	c := New(nil, loot.NewGenerator(rng, 0), store, rng)
	require.NoError(t, c.Load(ctx))

	st := c.State()
	assert.Equal(t, persist.Version, st.Version)
	require.NotNil(t, st.Character)
	assert.NotNil(t, st.Character.Passives)
	// Auto-salvage config is force-reset on migration.
	assert.False(t, st.AutoSalvage.Enabled)
	assert.Equal(t, "basic", st.AutoSalvage.TierThreshold)
}

func TestRestart_WipesStateAndStore(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, data.ClassReaver)
	c.Save(ctx)

	c.Restart(ctx)
	assert.Nil(t, c.State().Character)

	require.NoError(t, c.Load(ctx))
	assert.Nil(t, c.State().Character)
}
