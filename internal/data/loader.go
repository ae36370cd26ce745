package data

import "fmt"

// LoadAll builds every catalog table. Called once at startup before any
// generation or aggregation runs.
func LoadAll() error {
	if err := LoadAffixes(); err != nil {
		return fmt.Errorf("loading affixes: %w", err)
	}
	if err := LoadAreas(); err != nil {
		return fmt.Errorf("loading areas: %w", err)
	}
	if err := LoadSkills(); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	if err := LoadPassives(); err != nil {
		return fmt.Errorf("loading passives: %w", err)
	}
	return nil
}
