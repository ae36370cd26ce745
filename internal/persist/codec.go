package persist

import (
	"encoding/json"
	"fmt"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/model"
)

// Version is the running save-format version. Loaded snapshots carrying a
// different version string go through Migrate.
const Version = "0.9.0"

// DefaultDifficulty is the difficulty a fresh aggregate starts on.
const DefaultDifficulty = "normal"

// DefaultState returns a fresh aggregate with current defaults and no
// character.
func DefaultState() *model.GameState {
	return &model.GameState{
		Version:    Version,
		Difficulty: DefaultDifficulty,
		Stash:      []*model.ItemInstance{},
		AutoSalvage: model.AutoSalvageConfig{
			Enabled:       false,
			TierThreshold: "basic",
		},
	}
}

// Encode serializes a game state for storage.
func Encode(state *model.GameState) (string, error) {
	return Marshal(state)
}

// Decode parses a stored snapshot. An empty blob decodes to nil state with
// no error, matching a cleared slot.
func Decode(raw string) (*model.GameState, error) {
	if raw == "" {
		return nil, nil
	}
	var state model.GameState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("parsing saved state: %w", err)
	}
	return &state, nil
}
