package combat

import "draconis/internal/event"

// advanceBehavior brings an enemy one row closer to the party.
type advanceBehavior struct{ baseBehavior }

func (advanceBehavior) usableByActive(_ *Skill, f *Fight, active Combatant) bool {
	e, ok := active.(*Enemy)
	return ok && e.Distance > 1 && f.Opposition.CanMoveForward(e)
}

func (advanceBehavior) executeOnActive(s *Skill, f *Fight, active Combatant) {
	e, ok := active.(*Enemy)
	if !ok {
		return
	}
	if err := f.Opposition.MoveForward(e); err != nil {
		logUnhandled("advance", err)
		return
	}
	f.Emit(event.Advanced, active, s)
}

// flavorBehavior only narrates: waiting, leaving, taunting.
type flavorBehavior struct {
	baseBehavior
	message event.EventType
}

func (b flavorBehavior) executeOnActive(s *Skill, f *Fight, active Combatant) {
	f.Emit(b.message, active, s)
}

func (b flavorBehavior) executeOnTarget(s *Skill, f *Fight, active, target Combatant) {
	f.Emit(b.message, active, s, target)
}
