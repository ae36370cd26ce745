// Package combat holds the stateless numeric formulas the simulation is
// built on: avoidance, critical strikes, damage rolls and experience
// scaling. All functions are pure; the randomized ones take an explicit
// *rand.Rand so tests can seed them.
package combat

import (
	"math"
	"math/rand"
)

const (
	dodgeBase = 0.05
	dodgeK    = 0.0001
	dodgeCap  = 0.80

	// Expected evasion/armor at level 1 and 100; actual values are
	// normalized against the linear interpolation between these.
	expectedEvasionMin = 40.0
	expectedEvasionMax = 1000.0
	expectedArmorMin   = 50.0
	expectedArmorMax   = 2000.0
)

func clampLevel(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > 100 {
		level = 100
	}
	return float64(level)
}

func expectedEvasion(level int) float64 {
	l := clampLevel(level)
	return expectedEvasionMin + (expectedEvasionMax-expectedEvasionMin)*(l-1)/99
}

func expectedArmor(level int) float64 {
	l := clampLevel(level)
	return expectedArmorMin + (expectedArmorMax-expectedArmorMin)*(l-1)/99
}

func dodgeFraction(evasion float64, level int) float64 {
	if evasion < 0 {
		evasion = 0
	}
	normalized := evasion / expectedEvasion(level)
	chance := dodgeBase + (1-dodgeBase)*(1-math.Exp(-dodgeK*normalized*1000))
	if chance > dodgeCap {
		chance = dodgeCap
	}
	return chance
}

// DodgeChance converts an evasion total into a 0-100 integer dodge percent.
// Saturating exponential over evasion normalized against the level's
// expected evasion; 5% base, hard cap at 80%.
func DodgeChance(evasion float64, level int) int {
	return int(math.Round(dodgeFraction(evasion, level) * 100))
}

// EvasionForDodge inverts DodgeChance: it returns the evasion total whose
// dodge contribution above the base equals percentDelta points. Used when a
// dodge-subtarget effect must be expressed as an evasion bonus.
func EvasionForDodge(percentDelta float64, level int) float64 {
	if percentDelta <= 0 {
		return 0
	}
	frac := percentDelta / 100
	// Keep the log argument away from zero; the cap makes larger
	// requests unreachable anyway.
	limit := (dodgeCap - dodgeBase) * 0.99
	if frac > limit {
		frac = limit
	}
	normalized := -math.Log(1-frac/(1-dodgeBase)) / (dodgeK * 1000)
	return normalized * expectedEvasion(level)
}

// DeflectionAttempts converts an armor total into a deflection re-roll
// count: floor(3·armor/(armor+expectedArmor(level))). Monotonically
// non-decreasing in armor for a fixed level, saturating at 2 attempts.
func DeflectionAttempts(armor float64, level int) int {
	if armor <= 0 {
		return 0
	}
	return int(math.Floor(3 * armor / (armor + expectedArmor(level))))
}

// ArmorForDeflection inverts the deflection curve: the armor total at which
// the (unfloored) attempt count reaches attempts. Used when a
// deflection-subtarget effect must be expressed as an armor bonus.
func ArmorForDeflection(attempts float64, level int) float64 {
	if attempts <= 0 {
		return 0
	}
	if attempts > 2.9 {
		attempts = 2.9
	}
	return expectedArmor(level) * attempts / (3 - attempts)
}

// CriticalChance returns the integer critical-strike percent for an affix
// bonus: base 5%, scaled by the bonus percent, hard cap 30%.
func CriticalChance(affixBonusPercent float64) int {
	chance := math.Round(5 * (1 + affixBonusPercent/100))
	if chance > 30 {
		chance = 30
	}
	return int(chance)
}

// BaseDamageRoll rolls 5-15 base damage scaled by the three independent
// multipliers: floor((5+U(0,10))·area·tier·difficulty).
func BaseDamageRoll(rng *rand.Rand, areaMult, tierMult, difficultyMult float64) int {
	roll := 5 + rng.Float64()*10
	return int(math.Floor(roll * areaMult * tierMult * difficultyMult))
}

// ScaledExperience scales a base experience grant by the level difference
// d = areaLevel - charLevel:
//
//	d <= 0:      max(0.1, 1 + 0.4d)   — aggressive falloff for easy content
//	0 < d <= 5:  1 + 0.2d             — linear bonus, peak 2.0
//	d > 5:       linear decay from 2.0 back to the 0.1 floor over 10 levels
func ScaledExperience(baseExp, charLevel, areaLevel int) int {
	d := float64(areaLevel - charLevel)

	var factor float64
	switch {
	case d <= 0:
		factor = math.Max(0.1, 1+0.4*d)
	case d <= 5:
		factor = 1 + 0.2*d
	default:
		factor = math.Max(0.1, 2.0-0.19*(d-5))
	}

	// Epsilon guards the floor against float artifacts (0.6*100 → 59.99…).
	return int(math.Floor(float64(baseExp)*factor + 1e-9))
}

// ItemLevel rolls an item level clustered tightly (σ≈1) around the area
// level: clamp(round(areaLevel+z), 1, 100) with z a standard-normal sample
// from the Box–Muller transform.
func ItemLevel(rng *rand.Rand, areaLevel int) int {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	lvl := int(math.Round(float64(areaLevel) + z))
	if lvl < 1 {
		lvl = 1
	}
	if lvl > 100 {
		lvl = 100
	}
	return lvl
}
