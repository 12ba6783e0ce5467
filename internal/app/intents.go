package app

import "draconis/internal/combat"

// activeCharacter is the character waiting for orders, if any.
func (g *Game) activeCharacter() *combat.Character {
	if g.fight == nil {
		return nil
	}
	ch, _ := g.fight.ActiveCreature.(*combat.Character)
	return ch
}

func (g *Game) inState(states ...string) bool {
	for _, s := range states {
		if g.machine.Is(s) {
			return true
		}
	}
	return false
}

// SelectSkill picks a skill of the active character. Targetless skills run
// at once; the others wait for a target. Invalid picks are ignored.
func (g *Game) SelectSkill(s *combat.Skill) bool {
	ch := g.activeCharacter()
	if ch == nil || s == nil || !g.inState(selecting...) || !owns(ch, s) || !s.IsUsableByActiveCreature(g.fight) {
		g.ignored("skill selection")
		return false
	}
	f := g.fight
	f.SelectedSkill = s
	f.FocusedSkill = s
	f.Targets = nil

	if !s.NeedsTarget() {
		g.execute()
		return true
	}
	if s.TargetsAllies() {
		return g.fire(evPickCharacter)
	}
	return g.fire(evPickEnemy)
}

// Unselect goes back to the skill choice.
func (g *Game) Unselect() bool {
	if !g.inState(StateSelectEnemy, StateSelectCharacter) {
		g.ignored("unselect")
		return false
	}
	g.fight.SelectedSkill = nil
	g.fight.Targets = nil
	return g.fire(evUnselect)
}

// SelectEnemy aims the selected skill at an enemy and runs it.
func (g *Game) SelectEnemy(e *combat.Enemy) bool {
	if e == nil || !g.inState(StateSelectEnemy) {
		g.ignored("enemy selection")
		return false
	}
	return g.selectTarget(e)
}

// SelectCharacter aims the selected skill at a party member and runs it.
// Skills reaching both sides accept a character while enemies are offered.
func (g *Game) SelectCharacter(ch *combat.Character) bool {
	if ch == nil || !(g.inState(StateSelectCharacter) || g.inState(StateSelectEnemy) && g.reachesBothSides()) {
		g.ignored("character selection")
		return false
	}
	return g.selectTarget(ch)
}

func (g *Game) reachesBothSides() bool {
	s := g.fight.SelectedSkill
	return s != nil && s.TargetsBothSides()
}

func (g *Game) selectTarget(target combat.Combatant) bool {
	f := g.fight
	s := f.SelectedSkill
	if s == nil || !s.IsUsableOn(target, f) {
		g.ignored("target")
		return false
	}
	f.Targets = s.Targets(target, f)
	if len(f.Targets) == 0 {
		return false
	}
	g.execute()
	return true
}

// SelectFromKey maps a zero based shortcut to the current choice: a skill,
// an enemy counted row by row, or a party member counted the same way.
// Outside a fight it proceeds.
func (g *Game) SelectFromKey(i int) bool {
	switch g.State() {
	case StateSelectSkill:
		skills := combat.SkillsOf(g.fight.ActiveCreature)
		if i < 0 || i >= len(skills) {
			return false
		}
		return g.SelectSkill(skills[i])
	case StateSelectEnemy:
		enemies := g.fight.Opposition.Enemies()
		if i < 0 || i >= len(enemies) {
			return false
		}
		return g.SelectEnemy(enemies[i])
	case StateSelectCharacter:
		chars := g.fight.Party.Characters()
		if i < 0 || i >= len(chars) {
			return false
		}
		return g.SelectCharacter(chars[i])
	case StateStartNextEncounter, StateStartFight, StateDungeonEnd:
		return g.Proceed()
	default:
		return false
	}
}

// Hover intents only move the highlight.
func (g *Game) HoverSkill(s *combat.Skill) {
	if g.fight != nil {
		g.fight.HoveredSkill = s
	}
}

func (g *Game) HoverEnemy(e *combat.Enemy) {
	if g.fight != nil {
		g.fight.HoveredEnemy = e
	}
}

func (g *Game) HoverCharacter(ch *combat.Character) {
	if g.fight != nil {
		g.fight.HoveredCharacter = ch
	}
}

func (g *Game) UnhoverSkill()     { g.HoverSkill(nil) }
func (g *Game) UnhoverEnemy()     { g.HoverEnemy(nil) }
func (g *Game) UnhoverCharacter() { g.HoverCharacter(nil) }

func owns(ch *combat.Character, s *combat.Skill) bool {
	for _, own := range ch.Skills {
		if own == s {
			return true
		}
	}
	return false
}
