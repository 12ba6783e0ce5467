package combat

import (
	"math"

	"draconis/internal/config"
	"draconis/internal/event"
)

type healBehavior struct{ baseBehavior }

func (healBehavior) isHeal() bool { return true }

func (healBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	lc := ComputeEffectiveHeal(f, active, s.PowerLevel(0))
	target.Base().ChangeLife(lc)
	f.Emit(event.Healed, active, s, target, lc)
}

// dualHealBehavior heals the target with the first level and the user with
// the second.
type dualHealBehavior struct{ baseBehavior }

func (dualHealBehavior) isHeal() bool { return true }

func (dualHealBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	lc := ComputeEffectiveHeal(f, active, s.PowerLevel(0))
	target.Base().ChangeLife(lc)
	self := ComputeEffectiveHeal(f, active, s.PowerLevel(1))
	active.Base().ChangeLife(self)
	f.Emit(event.Healed, active, s, target, lc, self)
}

// statusBehavior applies the skill statuses to the target, or to the user
// for skills without target. Heal over time is one of them.
type statusBehavior struct {
	baseBehavior
	heal bool
}

func (b statusBehavior) isHeal() bool { return b.heal }

func (b statusBehavior) executeOnActive(s *Skill, f *Fight, active Combatant) {
	b.executeOnTarget(s, f, active, active)
}

func (statusBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	items := []any{active, s, target}
	for _, st := range s.Statuses {
		app := NewStatusApplication(st, s.PowerLevel(0), active, s.StatusDuration)
		app.Element = s.Element
		target.Base().ApplyStatus(app)
		items = append(items, app)
	}
	f.Emit(event.StatusApplied, items...)
}

type reviveBehavior struct{ baseBehavior }

func (reviveBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	t := target.Base()
	if t.IsAlive() {
		return
	}
	lc := gain(int(math.Round(float64(t.LifeMax()) * config.ReviveLifeRatio)))
	t.ChangeLife(lc)
	f.Emit(event.Revived, active, s, target, lc)
}

// alterTimeDelta lengthens the statuses of allies and shortens those of
// opponents.
func alterTimeDelta(active, target Combatant) int {
	if sameFaction(active, target) {
		return 1
	}
	return -1
}

type alterTimeBehavior struct{ baseBehavior }

func (alterTimeBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	delta := alterTimeDelta(active, target)
	target.Base().AlterStatusesDuration(delta)
	f.Emit(event.TimeAltered, active, s, target, delta)
}

// massAlterTimeBehavior alters every creature carrying a status. It is
// only worth using once minimum creatures are affected.
type massAlterTimeBehavior struct {
	baseBehavior
	minimum int
}

func (b massAlterTimeBehavior) usableByActive(_ *Skill, f *Fight, _ Combatant) bool {
	return len(affectedByTime(f)) >= b.minimum
}

func (massAlterTimeBehavior) executeOnActive(s *Skill, f *Fight, active Combatant) {
	affected := affectedByTime(f)
	for _, c := range affected {
		c.Base().AlterStatusesDuration(alterTimeDelta(active, c))
	}
	f.Emit(event.TimeAltered, active, s, len(affected))
}

func affectedByTime(f *Fight) []Combatant {
	var out []Combatant
	for _, c := range f.Creatures() {
		if b := c.Base(); b.IsAlive() && len(b.Statuses) > 0 {
			out = append(out, c)
		}
	}
	return out
}
