// Package testutil carries shared fixtures for engine tests: catalog
// loading and deterministic characters/generators.
package testutil

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

var loadOnce sync.Once

// LoadCatalogs builds the static content tables exactly once per test
// binary.
func LoadCatalogs(t testing.TB) {
	t.Helper()
	loadOnce.Do(func() {
		if err := data.LoadAll(); err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
	})
}

// NewRand returns a deterministic RNG for generation tests.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTestCharacter creates a level-1 character of the given class with
// catalogs loaded.
func NewTestCharacter(t testing.TB, class data.ClassID) *model.Character {
	t.Helper()
	LoadCatalogs(t)
	return model.NewCharacter(class)
}
