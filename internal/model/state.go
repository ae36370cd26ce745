package model

// AutoSalvageConfig controls automatic conversion of low-tier drops to gold.
// Force-reset to defaults on save migration regardless of the stored value.
type AutoSalvageConfig struct {
	Enabled       bool   `json:"enabled"`
	TierThreshold string `json:"tierThreshold"`
}

// GameState is the whole persisted aggregate. It is explicitly owned by the
// progression controller and threaded through every operation; there is no
// ambient singleton.
type GameState struct {
	Version     string          `json:"version"`
	Runs        int             `json:"runs"`
	Character   *Character      `json:"character,omitempty"`
	Stash       []*ItemInstance `json:"stash"`
	Difficulty  string          `json:"difficulty"`
	Dead        bool            `json:"dead"`
	AutoSalvage AutoSalvageConfig `json:"autoSalvage"`
}
