package combat

import (
	"math"

	"draconis/internal/config"
)

// DamageSource is what deals damage: a skill or a ticking status.
type DamageSource interface {
	Dodgeable() bool
	DamageElement() ElementType
	IsMelee() bool
	FromSkill() bool
}

// ComputeEffectiveDamage returns the life loss of defender when attacker
// hits it with power. Dodge and critical share a single draw: a draw below
// the dodge chance is a dodge, the next critical chance wide slice is a
// critical hit. A dodge stops everything, on-hit passives included.
func ComputeEffectiveDamage(f *Fight, source DamageSource, attacker, defender Combatant, power float64) LifeChange {
	a := attacker.Base()
	d := defender.Base()

	r := f.Rand.Float64()
	if source.Dodgeable() && r < d.DodgeChance {
		return LifeChange{Efficiency: Dodge, Direction: Loss}
	}

	amount := a.Power * power
	efficiency := Normal
	if r >= d.DodgeChance && r < d.DodgeChance+a.CriticalChance {
		amount *= a.CriticalBonus
		efficiency = Critical
	}

	if d.HasStatus(Defend) {
		amount *= 1 - config.DefendReduction
	}
	if a.HasStatus(AttackBonus) {
		amount *= 1 + config.AttackModifier
	}
	if a.HasStatus(AttackMalus) {
		amount *= 1 - config.AttackModifier
	}
	if d.HasStatus(DefenseBonus) {
		amount *= 1 - config.DefenseModifier
	}
	if d.HasStatus(DefenseMalus) {
		amount *= 1 + config.DefenseModifier
	}

	if a.HasSpecialty(d.Type) {
		amount *= 1 + config.SpecialtyModifier
	}
	if d.HasSpecialty(a.Type) {
		amount *= 1 - config.SpecialtyModifier
	}

	amount *= 1 - resistanceOf(defender, source.DamageElement())

	if source.FromSkill() {
		triggerOnHit(source, attacker, defender, amount)
	}

	amount = randomize(f, amount)
	if amount < 0 {
		amount = 0
	}
	return LifeChange{Amount: int(amount), Efficiency: efficiency, Direction: Loss}
}

// ComputeEffectiveHeal returns the life gain produced by healer. Heals are
// never dodged and ignore every modifier; the critical check uses the
// healer's own critical chance.
func ComputeEffectiveHeal(f *Fight, healer Combatant, power float64) LifeChange {
	h := healer.Base()

	r := f.Rand.Float64()
	amount := h.Power * power
	efficiency := Normal
	if r < h.CriticalChance {
		amount *= h.CriticalBonus
		efficiency = Critical
	}

	amount = randomize(f, amount)
	if amount < 0 {
		amount = 0
	}
	return LifeChange{Amount: int(amount), Efficiency: efficiency, Direction: Gain}
}

// randomize spreads the amount over [1-range/2, 1+range/2] and rounds it.
// Without randomness the amount stays at the midpoint.
func randomize(f *Fight, amount float64) float64 {
	if f.UseRandom {
		amount *= 1 - config.RandomizeRange/2 + f.Rand.Float64()*config.RandomizeRange
	}
	return math.Round(amount)
}

// triggerOnHit runs the passives of defender that react to being hit.
func triggerOnHit(source DamageSource, attacker, defender Combatant, amount float64) {
	a := attacker.Base()
	d := defender.Base()
	if a == d || a.IsDead() {
		return
	}

	passives := make([]*StatusApplication, len(d.Statuses))
	copy(passives, d.Statuses)

	for _, app := range passives {
		t := app.Type
		if t.OnHit == NoOnHit || (t.MeleeOnly && !source.IsMelee()) {
			continue
		}
		switch t.OnHit {
		case ReflectOnHit:
			if reflected := int(math.Round(amount * config.ReflectRatio)); reflected > 0 {
				a.ChangeLife(loss(reflected))
			}
		case DotOnHit:
			dot := NewStatusApplication(t.OnHitStatus, app.Power, defender, 0)
			dot.Element = Poison
			a.ApplyStatus(dot)
		case StatusOnHit:
			a.ApplyStatus(NewStatusApplication(t.OnHitStatus, 1, defender, 0))
		}
		if a.IsDead() {
			return
		}
	}
}
