// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/looplab/fsm"

	"draconis/internal/combat"
	"draconis/internal/config"
	"draconis/internal/event"
	"draconis/internal/system"
	"draconis/internal/types"
	"draconis/internal/utils"
)

// Game states.
const (
	StateStartNextEncounter = "START_NEXT_ENCOUNTER"
	StateStartFight         = "START_FIGHT"
	StateEndOfTurn          = "END_OF_TURN"
	StateEnemyTurn          = "ENEMY_TURN"
	StateSelectSkill        = "SELECT_SKILL"
	StateSelectEnemy        = "SELECT_ENEMY"
	StateSelectCharacter    = "SELECT_CHARACTER"
	StateExecutingSkill     = "EXECUTING_SKILL"
	StateDungeonEnd         = "DUNGEON_END"
)

// Game events.
const (
	evStartEncounter = "start_encounter"
	evBegin          = "begin"
	evEnemyTurn      = "enemy_turn"
	evPlayerTurn     = "player_turn"
	evPickEnemy      = "pick_enemy"
	evPickCharacter  = "pick_character"
	evUnselect       = "unselect"
	evExecute        = "execute"
	evEndTurn        = "end_turn"
	evVictory        = "victory"
	evFinish         = "finish"
)

var selecting = []string{StateSelectSkill, StateSelectEnemy, StateSelectCharacter}

func newMachine(callbacks fsm.Callbacks) *fsm.FSM {
	return fsm.NewFSM(StateStartNextEncounter, fsm.Events{
		{Name: evStartEncounter, Src: []string{StateStartNextEncounter}, Dst: StateStartFight},
		{Name: evBegin, Src: []string{StateStartFight}, Dst: StateEndOfTurn},
		{Name: evEnemyTurn, Src: []string{StateEndOfTurn}, Dst: StateEnemyTurn},
		{Name: evPlayerTurn, Src: []string{StateEndOfTurn}, Dst: StateSelectSkill},
		{Name: evPickEnemy, Src: selecting, Dst: StateSelectEnemy},
		{Name: evPickCharacter, Src: selecting, Dst: StateSelectCharacter},
		{Name: evUnselect, Src: selecting, Dst: StateSelectSkill},
		{Name: evExecute, Src: append([]string{StateEnemyTurn}, selecting...), Dst: StateExecutingSkill},
		{Name: evEndTurn, Src: []string{StateExecutingSkill, StateEnemyTurn, StateEndOfTurn}, Dst: StateEndOfTurn},
		{Name: evVictory, Src: []string{StateExecutingSkill, StateEndOfTurn}, Dst: StateStartNextEncounter},
		{Name: evFinish, Src: []string{StateExecutingSkill, StateEndOfTurn, StateStartNextEncounter}, Dst: StateDungeonEnd},
	}, callbacks)
}

// Scenario supplies the party and the encounters of a dungeon.
type Scenario interface {
	NewParty(ids *types.IDAllocator) (*combat.Party, error)
	EncounterCount() int
	NewEncounter(i int, ids *types.IDAllocator) (*combat.Opposition, error)
}

// Options configures NewGame. A nil Rand uses a PRNG seeded from the
// settings.
type Options struct {
	Settings config.Settings
	Scenario Scenario
	Rand     combat.Rand
}

// Game is the fight controller. It owns the party, the current fight and
// the pacing, and turns player intents into state changes. Everything runs
// on the game loop goroutine.
type Game struct {
	settings   config.Settings
	scenario   Scenario
	rand       combat.Rand
	dispatcher *event.Dispatcher
	messages   *event.Log
	scheduler  *system.Scheduler
	machine    *fsm.FSM
	ids        types.IDAllocator

	party     *combat.Party
	fight     *combat.Fight
	encounter int
	pause     time.Duration
}

// NewGame creates the party and waits for Proceed to start the first
// encounter.
func NewGame(opts Options) (*Game, error) {
	if opts.Scenario == nil {
		return nil, errors.New("app: no scenario")
	}
	if opts.Settings.Fight >= opts.Scenario.EncounterCount() {
		return nil, fmt.Errorf("app: fight %d out of %d", opts.Settings.Fight, opts.Scenario.EncounterCount())
	}
	g := &Game{
		settings:   opts.Settings,
		scenario:   opts.Scenario,
		rand:       opts.Rand,
		dispatcher: event.NewDispatcher(),
		messages:   event.NewLog(config.MaxMessages),
		scheduler:  system.NewScheduler(),
		pause:      opts.Settings.Pause.Duration(),
	}
	if g.rand == nil {
		g.rand = utils.NewPRNGService(opts.Settings.Seed)
	}
	g.dispatcher.SubscribeAll(g.messages)
	event.On(g.dispatcher, g.logOutcome, event.EncounterStarted, event.Victory, event.Defeat, event.DungeonEnded)
	g.machine = newMachine(fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			if g.settings.Debug {
				log.Printf("app: %s -> %s (%s)", e.Src, e.Dst, e.Event)
			}
		},
	})
	if err := g.resetParty(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) resetParty() error {
	party, err := g.scenario.NewParty(&g.ids)
	if err != nil {
		return fmt.Errorf("app: build party: %w", err)
	}
	g.party = party
	g.fight = nil
	g.encounter = g.settings.Fight
	return nil
}

// State is the current controller state.
func (g *Game) State() string { return g.machine.Current() }

// Fight is the current encounter, nil before the first one.
func (g *Game) Fight() *combat.Fight { return g.fight }

// Party is the player's party.
func (g *Game) Party() *combat.Party { return g.party }

// Messages returns the narration, oldest first.
func (g *Game) Messages() []event.Event { return g.messages.Events() }

// Dispatcher lets views listen to narration events.
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }

// Encounter is the index of the current or next encounter.
func (g *Game) Encounter() int { return g.encounter }

// EncounterCount is the number of encounters of the dungeon.
func (g *Game) EncounterCount() int { return g.scenario.EncounterCount() }

// Update advances the pacing timers.
func (g *Game) Update(deltaTime float64) {
	g.scheduler.Update(deltaTime)
}

// Busy reports whether a paced continuation is pending.
func (g *Game) Busy() bool { return g.scheduler.Pending() > 0 }

// Restart drops the current dungeon run. Continuations scheduled before
// the restart are ignored when they come due.
func (g *Game) Restart() error {
	g.scheduler.Invalidate()
	if g.settings.Debug {
		log.Printf("app: restart, generation %d drops %d pending tasks", g.scheduler.Generation(), g.scheduler.Pending())
	}
	if err := g.resetParty(); err != nil {
		return err
	}
	g.messages.Clear()
	g.machine.SetState(StateStartNextEncounter)
	return nil
}

// Proceed moves past the screens waiting for the player: the encounter
// intro, the fight intro and the end of the dungeon.
func (g *Game) Proceed() bool {
	switch g.State() {
	case StateStartNextEncounter:
		if err := g.startEncounter(); err != nil {
			log.Printf("app: %v", err)
			return false
		}
		return true
	case StateStartFight:
		if !g.fire(evBegin) {
			return false
		}
		g.startTurn()
		return true
	case StateDungeonEnd:
		if err := g.Restart(); err != nil {
			log.Printf("app: %v", err)
			return false
		}
		return true
	default:
		g.ignored("proceed")
		return false
	}
}

func (g *Game) startEncounter() error {
	opposition, err := g.scenario.NewEncounter(g.encounter, &g.ids)
	if err != nil {
		return fmt.Errorf("build encounter %d: %w", g.encounter, err)
	}
	g.party.Restore()
	g.fight = combat.NewFight(g.party, opposition, combat.FightOptions{
		Rand:       g.rand,
		UseRandom:  g.settings.UseRandom,
		Dispatcher: g.dispatcher,
		SentinelID: g.ids.Next(),
	})
	if !g.fire(evStartEncounter) {
		return errors.New("cannot start an encounter now")
	}
	g.fight.Emit(event.EncounterStarted, g.encounter+1, g.scenario.EncounterCount())
	return nil
}

// schedule runs fn after the pacing delay.
func (g *Game) schedule(fn func()) {
	g.scheduler.After(g.pause, fn)
}

// fire triggers a transition. Staying in the same state is fine.
func (g *Game) fire(ev string) bool {
	err := g.machine.Event(context.Background(), ev)
	if err == nil {
		return true
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return true
	}
	log.Printf("app: event %s from %s: %v", ev, g.State(), err)
	return false
}

func (g *Game) ignored(intent string) {
	if g.settings.Debug {
		log.Printf("app: ignored %s in %s", intent, g.State())
	}
}

// logOutcome traces encounter boundaries with the fight ID.
func (g *Game) logOutcome(t event.EventType, m combat.Message) {
	f := g.fight
	if f == nil {
		return
	}
	log.Printf("app: fight %s: %s %v (round %d)", f.ID, t, m.Items, f.Round)
}
