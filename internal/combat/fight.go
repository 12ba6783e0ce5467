package combat

import (
	"log"

	"github.com/google/uuid"

	"draconis/internal/event"
	"draconis/internal/types"
)

// Rand is the randomness a fight draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Message is the payload of every narration event: the items are
// combatants, skills, life changes, status applications or plain values,
// in the order the narrator reads them.
type Message struct {
	Type  event.EventType
	Items []any
}

// FightOptions configures NewFight.
type FightOptions struct {
	Rand       Rand
	UseRandom  bool
	Dispatcher *event.Dispatcher
	// SentinelID identifies the EndOfRound marker of the turn order.
	SentinelID types.CreatureID
}

// Fight is one encounter. It owns nothing but the selection state: the
// creatures belong to the party and the opposition.
type Fight struct {
	ID         uuid.UUID
	Party      *Party
	Opposition *Opposition
	Round      int
	TurnOrder  *TurnOrder

	ActiveCreature   Combatant
	HoveredSkill     *Skill
	SelectedSkill    *Skill
	FocusedSkill     *Skill
	HoveredEnemy     *Enemy
	HoveredCharacter *Character
	Targets          []Combatant

	Rand      Rand
	UseRandom bool

	dispatcher *event.Dispatcher
	waitSkill  *Skill
}

// NewFight builds the turn order and starts the first round.
func NewFight(party *Party, opposition *Opposition, opts FightOptions) *Fight {
	f := &Fight{
		ID:         uuid.New(),
		Party:      party,
		Opposition: opposition,
		Round:      1,
		Rand:       opts.Rand,
		UseRandom:  opts.UseRandom,
		dispatcher: opts.Dispatcher,
		waitSkill:  newWait(),
	}
	f.TurnOrder = NewTurnOrder(party.Characters(), opposition.Enemies(), NewEndOfRound(opts.SentinelID), f.Rand)
	return f
}

// Creatures returns the party then the opposition, in row order.
func (f *Fight) Creatures() []Combatant {
	all := f.Party.All()
	return append(all, f.Opposition.All()...)
}

// Creature resolves a weak reference. Removed creatures are not found.
func (f *Fight) Creature(id types.CreatureID) Combatant {
	if id == types.NoCreature {
		return nil
	}
	for _, c := range f.Creatures() {
		if c.Base().ID == id {
			return c
		}
	}
	return nil
}

// FormationOf returns the side c fights on.
func (f *Fight) FormationOf(c Combatant) *Formation {
	switch {
	case c.IsCharacter():
		return &f.Party.Formation
	case c.IsEnemy():
		return &f.Opposition.Formation
	default:
		return nil
	}
}

// OpposingFormation returns the side c fights against.
func (f *Fight) OpposingFormation(c Combatant) *Formation {
	switch {
	case c.IsCharacter():
		return &f.Opposition.Formation
	case c.IsEnemy():
		return &f.Party.Formation
	default:
		return nil
	}
}

// WaitSkill is the fallback action of a creature with nothing to do.
func (f *Fight) WaitSkill() *Skill { return f.waitSkill }

// Emit sends a narration message.
func (f *Fight) Emit(t event.EventType, items ...any) {
	if f.dispatcher == nil {
		return
	}
	f.dispatcher.Dispatch(event.Event{Type: t, Data: Message{Type: t, Items: items}})
}

// ClearTurnState forgets the per turn selection.
func (f *Fight) ClearTurnState() {
	f.ActiveCreature = nil
	f.SelectedSkill = nil
	f.FocusedSkill = nil
	f.Targets = nil
}

// ApplyDotsAndHots resolves every damage and heal over time on target as a
// single life change and a single message. Statuses whose origin is gone
// or dead do nothing.
func (f *Fight) ApplyDotsAndHots(target Combatant) {
	t := target.Base()
	if t.IsDead() {
		return
	}

	apps := make([]*StatusApplication, len(t.Statuses))
	copy(apps, t.Statuses)

	net, found := 0, false
	for _, app := range apps {
		if !app.Type.Dot && !app.Type.Hot {
			continue
		}
		origin := f.Creature(app.Origin)
		if origin == nil || origin.Base().IsDead() {
			continue
		}
		found = true
		if app.Type.Dot {
			net -= ComputeEffectiveDamage(f, app, origin, target, app.Power).Amount
		}
		if app.Type.Hot {
			net += ComputeEffectiveHeal(f, origin, app.Power).Amount
		}
	}
	if !found {
		return
	}

	lc := gain(net)
	if net < 0 {
		lc = loss(-net)
	}
	t.ChangeLife(lc)
	f.Emit(event.DotsAndHots, target, lc)
}

// logUnhandled reports an engineering error without stopping the fight.
func logUnhandled(what string, v any) {
	log.Printf("combat: unhandled %s %v", what, v)
}
