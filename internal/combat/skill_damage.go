package combat

import (
	"math"

	"draconis/internal/event"
)

type damageBehavior struct{ baseBehavior }

func (damageBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	lc := ComputeEffectiveDamage(f, s, active, target, s.PowerLevel(0))
	target.Base().ChangeLife(lc)
	f.Emit(event.DamageDealt, active, s, target, lc)
}

// lifeScaling selects whose life a variable damage skill reads.
type lifeScaling int

const (
	casterLowLife lifeScaling = iota
	targetHighLife
	targetLowLife
)

// variableDamageBehavior interpolates between the first two power levels
// according to a life percentage.
type variableDamageBehavior struct {
	baseBehavior
	scaling lifeScaling
}

func (b variableDamageBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	var ratio float64
	switch b.scaling {
	case casterLowLife:
		ratio = 1 - active.Base().LifePercent()/100
	case targetHighLife:
		ratio = target.Base().LifePercent() / 100
	case targetLowLife:
		ratio = 1 - target.Base().LifePercent()/100
	}
	power := s.PowerLevel(0) + (s.PowerLevel(1)-s.PowerLevel(0))*ratio

	lc := ComputeEffectiveDamage(f, s, active, target, power)
	target.Base().ChangeLife(lc)
	f.Emit(event.DamageDealt, active, s, target, lc)
}

// comboBehavior hits harder on each consecutive use on the same target.
// The step is tracked with a marker status from the user, replaced at
// every hit; a dodge drops the chain.
type comboBehavior struct{ baseBehavior }

func (comboBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	t := target.Base()
	origin := active.Base().ID

	step := 0
	if m := t.StatusFrom(Combo2, origin); m != nil {
		step = 2
		t.RemoveStatus(m)
	}
	if m := t.StatusFrom(Combo1, origin); m != nil {
		if step == 0 {
			step = 1
		}
		t.RemoveStatus(m)
	}

	lc := ComputeEffectiveDamage(f, s, active, target, s.PowerLevel(step))
	t.ChangeLife(lc)

	if lc.IsSuccess() && t.IsAlive() {
		switch step {
		case 0:
			t.ApplyStatus(NewStatusApplication(Combo1, 0, active, 0))
		case 1:
			t.ApplyStatus(NewStatusApplication(Combo2, 0, active, 0))
		}
	}
	f.Emit(event.DamageDealt, active, s, target, lc, step)
}

// drainBehavior heals the user for a share of the damage dealt.
type drainBehavior struct{ baseBehavior }

func (drainBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	lc := ComputeEffectiveDamage(f, s, active, target, s.PowerLevel(0))
	target.Base().ChangeLife(lc)

	var healed LifeChange
	if lc.IsSuccess() {
		healed = gain(int(math.Round(float64(lc.Amount) * s.PowerLevel(1))))
		active.Base().ChangeLife(healed)
	}
	f.Emit(event.DrainDone, active, s, target, lc, healed)
}

// damageAndStatusBehavior hits then applies the skill statuses, to the
// target or to the user. Statuses only follow a successful hit.
type damageAndStatusBehavior struct {
	baseBehavior
	self bool
}

func (b damageAndStatusBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	lc := ComputeEffectiveDamage(f, s, active, target, s.PowerLevel(0))
	target.Base().ChangeLife(lc)

	items := []any{active, s, target, lc}
	if lc.IsSuccess() {
		receiver := target
		if b.self {
			receiver = active
		}
		if receiver.Base().IsAlive() {
			for _, st := range s.Statuses {
				app := NewStatusApplication(st, s.PowerLevel(1), active, s.StatusDuration)
				app.Element = s.Element
				receiver.Base().ApplyStatus(app)
				items = append(items, app)
			}
		}
	}
	f.Emit(event.DamageDealt, items...)
}
