package model

import (
	"github.com/google/uuid"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/data"
)

// TemporalEffect is a timed buff or debuff owned by the character.
// Remaining is decremented once per tick; the tick processor removes the
// effect when it reaches zero.
type TemporalEffect struct {
	Name      string      `json:"name"`
	Effect    data.Effect `json:"effect"`
	Remaining int         `json:"remaining"`
}

// Cooldown blocks a skill for Remaining ticks.
type Cooldown struct {
	SkillID   uuid.UUID `json:"skillId"`
	Remaining int       `json:"remaining"`
}
