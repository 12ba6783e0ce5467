package app

import (
	"log"
	"math"

	"draconis/internal/combat"
	"draconis/internal/config"
	"draconis/internal/event"
	"draconis/internal/types"
)

// startTurn gives the turn to the head of the turn order.
func (g *Game) startTurn() {
	f := g.fight
	active := f.TurnOrder.Current()
	if active == nil {
		log.Printf("app: fight %s has an empty turn order", f.ID)
		return
	}
	f.ActiveCreature = active

	switch {
	case active.IsEndOfRound():
		g.endOfRound()
		return
	case active.IsCharacter(), active.IsEnemy():
	default:
		log.Printf("app: unknown creature kind %T in the turn order", active)
		g.nextTurn()
		return
	}

	id := active.Base().ID
	for _, c := range f.Creatures() {
		c.Base().DecreaseStatusesDuration(combat.OriginTurnStartExpiration, id)
		c.Base().ClearLifeChange()
	}

	if active.Base().IsDead() {
		g.nextTurn()
		return
	}

	if active.IsCharacter() {
		g.fire(evPlayerTurn)
		if !hasUsableSkill(f) {
			f.SelectedSkill = f.WaitSkill()
			g.execute()
		}
		return
	}

	g.fire(evEnemyTurn)
	enemy := active.(*combat.Enemy)
	skill, targets := enemy.ChooseAction(f)
	f.SelectedSkill = skill
	f.FocusedSkill = skill
	if len(targets) == 0 {
		g.execute()
		return
	}
	g.schedule(func() {
		f.Targets = targets
		g.schedule(g.execute)
	})
}

func hasUsableSkill(f *combat.Fight) bool {
	for _, s := range combat.SkillsOf(f.ActiveCreature) {
		if s.IsUsableByActiveCreature(f) {
			return true
		}
	}
	return false
}

// execute runs the selected skill of the active creature, then paces the
// outcome check and the next turn.
func (g *Game) execute() {
	f := g.fight
	active, skill := f.ActiveCreature, f.SelectedSkill
	if active == nil || skill == nil {
		return
	}
	g.fire(evExecute)
	skill.Execute(f)

	id := active.Base().ID
	for _, c := range f.Creatures() {
		c.Base().DecreaseStatusesDuration(combat.OriginTurnEndExpiration, id)
	}
	combat.TickCooldowns(active, skill)

	g.schedule(func() {
		if g.checkOutcome() {
			return
		}
		g.schedule(g.nextTurn)
	})
}

// nextTurn clears the turn and hands it to the next creature.
func (g *Game) nextTurn() {
	f := g.fight
	f.ClearTurnState()
	f.TurnOrder.NextCreature()
	g.fire(evEndTurn)
	g.startTurn()
}

// endOfRound ticks the round statuses, then after a pause removes the
// fallen enemies and starts the next round.
func (g *Game) endOfRound() {
	f := g.fight
	for _, c := range f.Creatures() {
		if c.Base().IsAlive() {
			f.ApplyDotsAndHots(c)
		}
	}
	for _, c := range f.Creatures() {
		c.Base().DecreaseStatusesDuration(combat.EndOfRoundExpiration, types.NoCreature)
	}

	g.schedule(func() {
		removed := f.Opposition.RemoveDeadEnemies()
		f.TurnOrder.RemoveDeadEnemies()
		f.Opposition.CompactRows()

		fallen := 0
		for _, e := range removed {
			fallen += e.LifeMax()
			f.Emit(event.CreatureDied, e)
		}
		g.restoreMana(fallen)

		if g.checkOutcome() {
			return
		}
		f.Round++
		f.Emit(event.NewRound, f.Round)
		g.nextTurn()
	})
}

// restoreMana gives mana users a share of the life of the fallen enemies.
func (g *Game) restoreMana(fallenLife int) {
	if fallenLife == 0 {
		return
	}
	amount := math.Round(float64(fallenLife) * config.ManaRestoreRatio)
	for _, ch := range g.party.Characters() {
		if ch.UseMana && ch.IsAlive() {
			ch.RestoreEnergy(amount)
		}
	}
}

// checkOutcome ends the encounter when a side is wiped. It reports whether
// the fight is over.
func (g *Game) checkOutcome() bool {
	f := g.fight
	switch {
	case f.Party.IsWiped():
		f.Emit(event.Defeat)
		g.finish()
		return true
	case f.Opposition.IsWiped():
		f.Emit(event.Victory, g.encounter+1)
		g.encounter++
		if g.encounter < g.scenario.EncounterCount() {
			g.fire(evVictory)
		} else {
			g.finish()
		}
		return true
	default:
		return false
	}
}

func (g *Game) finish() {
	g.fire(evFinish)
	g.fight.Emit(event.DungeonEnded, g.encounter)
}
