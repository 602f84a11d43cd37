package combat

const (
	// Damage variance added to the attacker's effective attack.
	damageSpreadMin = -2
	damageSpreadMax = 4

	// Capture chance = (1 - hpFraction) * captureScale + captureFloor.
	captureScale = 0.7
	captureFloor = 0.1

	// EscapeChance is the fixed probability that running away succeeds.
	EscapeChance = 0.7
)

// EffectiveAttack returns base attack adjusted by level: base + floor(level/2).
func EffectiveAttack(baseAttack, level int) int {
	if level < 0 {
		level = 0
	}
	return baseAttack + level/2
}

// DamageWithOffset applies a variance offset to an attack value, never
// dropping below 1.
func DamageWithOffset(attack, offset int) int {
	damage := attack + offset
	if damage < 1 {
		damage = 1
	}
	return damage
}

// RollDamage draws a uniform offset in [-2, 4] and returns the damage the
// attacker deals.
func RollDamage(rng Rand, attacker Combatant) int {
	offset := damageSpreadMin + rng.Intn(damageSpreadMax-damageSpreadMin+1)
	return DamageWithOffset(attacker.EffectiveAttack(), offset)
}

// CaptureChance returns the probability of capturing a target at hp/maxHP.
// The result lies in [0.1, 0.8]: 0.1 at full health, 0.8 at zero.
func CaptureChance(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return captureFloor
	}
	fraction := float64(hp) / float64(maxHP)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return (1-fraction)*captureScale + captureFloor
}

// RollCapture reports whether a capture attempt against target succeeds.
func RollCapture(rng Rand, target Combatant) bool {
	return rng.Float64() < CaptureChance(target.GetHP(), target.GetMaxHP())
}

// RollEscape reports whether a run attempt succeeds.
func RollEscape(rng Rand) bool {
	return rng.Float64() < EscapeChance
}

// ExperienceFor returns the experience awarded for defeating a combatant.
func ExperienceFor(defeated Combatant) int {
	return defeated.GetLevel() * 20
}
