package app

import (
	"testing"

	"draconis/internal/combat"
	"draconis/internal/config"
	"draconis/internal/event"
	"draconis/internal/types"
)

// fixedRand never dodges nor crits and keeps every shuffle in place.
type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.5 }
func (fixedRand) Intn(n int) int   { return n - 1 }

type ratSpec struct {
	life  int
	power float64
}

// fakeScenario pits a lone hero against one row of rats per encounter.
// The hero knows strike unless heroSkills says otherwise.
type fakeScenario struct {
	heroPower  float64
	heroSkills []string
	encounters [][]ratSpec
}

func (s *fakeScenario) NewParty(ids *types.IDAllocator) (*combat.Party, error) {
	keys := s.heroSkills
	if len(keys) == 0 {
		keys = []string{"strike"}
	}
	skills := make([]*combat.Skill, 0, len(keys))
	for _, key := range keys {
		skill, err := combat.NewSkill(key)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	hero := combat.NewCharacter(ids.Next(), combat.Stats{
		Type:      combat.Humanoid,
		Name:      "Hero",
		LifeMax:   100,
		EnergyMax: 100,
		Power:     s.heroPower,
	}, 1, true, skills...)
	party := combat.NewParty()
	if err := party.Add(0, hero); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *fakeScenario) EncounterCount() int { return len(s.encounters) }

func (s *fakeScenario) NewEncounter(i int, ids *types.IDAllocator) (*combat.Opposition, error) {
	o := combat.NewOpposition()
	for _, r := range s.encounters[i] {
		bite, err := combat.NewSkill("bite")
		if err != nil {
			return nil, err
		}
		rat := combat.NewEnemy(ids.Next(), combat.Stats{
			Type:    combat.Beast,
			Name:    "Rat",
			LifeMax: r.life,
			Power:   r.power,
		}, combat.EnemyTraits{Strategy: bite, Skills: []*combat.Skill{bite}})
		if err := o.Add(0, rat); err != nil {
			return nil, err
		}
	}
	o.ComputeEffectiveNames()
	return o, nil
}

func newTestGame(t *testing.T, s *fakeScenario) *Game {
	t.Helper()
	settings := config.DefaultSettings()
	settings.UseRandom = false
	settings.Pause = config.PauseShort
	g, err := NewGame(Options{Settings: settings, Scenario: s, Rand: fixedRand{}})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

// settle runs every paced continuation until the game waits for input.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; g.Busy(); i++ {
		if i > 1000 {
			t.Fatal("game never settles")
		}
		g.Update(10)
	}
}

// playUntil answers every player turn with the first skill on the first
// enemy until done holds.
func playUntil(t *testing.T, g *Game, done func() bool) {
	t.Helper()
	for i := 0; !done(); i++ {
		if i > 200 {
			t.Fatalf("stuck in %s", g.State())
		}
		settle(t, g)
		if done() {
			return
		}
		switch g.State() {
		case StateSelectSkill, StateSelectEnemy:
			g.SelectFromKey(0)
		default:
			if !g.Busy() {
				t.Fatalf("waiting in %s", g.State())
			}
		}
	}
}

func inState(g *Game, states ...string) func() bool {
	return func() bool {
		for _, s := range states {
			if g.State() == s {
				return true
			}
		}
		return false
	}
}

func countEvents(g *Game, et event.EventType) int {
	n := 0
	for _, e := range g.Messages() {
		if e.Type == et {
			n++
		}
	}
	return n
}

func TestVictoryMovesToNextEncounterThenDungeonEnd(t *testing.T) {
	g := newTestGame(t, &fakeScenario{
		heroPower:  50,
		encounters: [][]ratSpec{{{life: 10, power: 1}}, {{life: 10, power: 1}}},
	})
	if g.State() != StateStartNextEncounter {
		t.Fatalf("initial state = %s", g.State())
	}

	if !g.Proceed() || g.State() != StateStartFight {
		t.Fatalf("state after first proceed = %s", g.State())
	}
	g.Proceed()
	playUntil(t, g, inState(g, StateStartNextEncounter, StateDungeonEnd))
	if g.State() != StateStartNextEncounter {
		t.Fatalf("state after first encounter = %s", g.State())
	}
	if g.Encounter() != 1 {
		t.Fatalf("encounter = %d, want 1", g.Encounter())
	}

	g.Proceed()
	g.Proceed()
	playUntil(t, g, inState(g, StateStartNextEncounter, StateDungeonEnd))
	if g.State() != StateDungeonEnd {
		t.Fatalf("state after last encounter = %s", g.State())
	}
	if got := countEvents(g, event.Victory); got != 2 {
		t.Fatalf("victories = %d, want 2", got)
	}
	if got := countEvents(g, event.DungeonEnded); got != 1 {
		t.Fatalf("dungeon ends = %d, want 1", got)
	}

	g.Proceed()
	if g.State() != StateStartNextEncounter || g.Encounter() != 0 || g.Fight() != nil {
		t.Fatalf("restart left %s at encounter %d", g.State(), g.Encounter())
	}
}

func TestDefeatEndsDungeon(t *testing.T) {
	g := newTestGame(t, &fakeScenario{
		heroPower:  0,
		encounters: [][]ratSpec{{{life: 10, power: 500}}, {{life: 10, power: 1}}},
	})
	g.Proceed()
	g.Proceed()
	playUntil(t, g, inState(g, StateStartNextEncounter, StateDungeonEnd))

	if g.State() != StateDungeonEnd {
		t.Fatalf("state = %s, want %s", g.State(), StateDungeonEnd)
	}
	if countEvents(g, event.Defeat) != 1 || countEvents(g, event.Victory) != 0 {
		t.Fatal("expected a single defeat")
	}
	if !g.Party().IsWiped() {
		t.Fatal("party should be wiped")
	}
}

func TestIntentsOutOfSequenceAreIgnored(t *testing.T) {
	g := newTestGame(t, &fakeScenario{
		heroPower:  1,
		encounters: [][]ratSpec{{{life: 100, power: 1}}},
	})
	if g.SelectSkill(nil) || g.SelectEnemy(nil) || g.SelectCharacter(nil) || g.Unselect() {
		t.Fatal("intents before a fight should be ignored")
	}
	if g.State() != StateStartNextEncounter {
		t.Fatalf("state = %s", g.State())
	}

	g.Proceed()
	g.Proceed()
	playUntil(t, g, inState(g, StateSelectSkill))

	rat := g.Fight().Opposition.Enemies()[0]
	if g.SelectEnemy(rat) {
		t.Fatal("enemy selection without a skill should be ignored")
	}
	if g.Proceed() {
		t.Fatal("proceed during a turn should be ignored")
	}
	foreign, _ := combat.NewSkill("strike")
	if g.SelectSkill(foreign) {
		t.Fatal("a skill the hero does not own should be ignored")
	}
	if g.State() != StateSelectSkill {
		t.Fatalf("state = %s", g.State())
	}

	if !g.SelectFromKey(0) || g.State() != StateSelectEnemy {
		t.Fatalf("state after picking strike = %s", g.State())
	}
	if !g.Unselect() || g.State() != StateSelectSkill || g.Fight().SelectedSkill != nil {
		t.Fatal("unselect should go back to the skill choice")
	}
	if g.SelectFromKey(7) {
		t.Fatal("a missing shortcut should be ignored")
	}
}

func TestRestartDropsPendingContinuations(t *testing.T) {
	g := newTestGame(t, &fakeScenario{
		heroPower:  1,
		encounters: [][]ratSpec{{{life: 1000, power: 1}}},
	})
	g.Proceed()
	g.Proceed()
	if !g.Busy() {
		settle(t, g)
		g.SelectFromKey(0)
		g.SelectFromKey(0)
	}
	if !g.Busy() {
		t.Fatal("expected a pending continuation")
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	settle(t, g)

	if g.State() != StateStartNextEncounter {
		t.Fatalf("state = %s, want %s", g.State(), StateStartNextEncounter)
	}
	if g.scheduler.Stale() == 0 || g.scheduler.Generation() != 1 {
		t.Fatalf("stale %d generation %d", g.scheduler.Stale(), g.scheduler.Generation())
	}
	if g.Fight() != nil || len(g.Messages()) != 0 {
		t.Fatal("restart should drop the fight and the narration")
	}
}

func TestEndOfRoundRemovesDeadAndRestoresMana(t *testing.T) {
	g := newTestGame(t, &fakeScenario{
		heroPower:  50,
		heroSkills: []string{"cleave"},
		encounters: [][]ratSpec{{{life: 30, power: 1}, {life: 1000, power: 1}}},
	})
	g.Proceed()
	g.Proceed()
	playUntil(t, g, func() bool { return g.Fight().Round == 2 })

	f := g.Fight()
	if got := len(f.Opposition.Enemies()); got != 1 {
		t.Fatalf("enemies = %d, want 1", got)
	}
	for _, c := range f.TurnOrder.Creatures() {
		if c.IsEnemy() && c.Base().IsDead() {
			t.Fatalf("%s is still in the turn order", c.Base().Name)
		}
	}
	hero := f.Party.Characters()[0]
	// 100 - 20 for cleave + 3 from the 30 life rat.
	if hero.Energy() != 83 {
		t.Fatalf("hero energy = %d, want 83", hero.Energy())
	}
	if countEvents(g, event.NewRound) != 1 || countEvents(g, event.CreatureDied) != 1 {
		t.Fatal("expected one new round and one death")
	}
}

func TestSelectFromKeyProceedsOutsideFights(t *testing.T) {
	g := newTestGame(t, &fakeScenario{
		heroPower:  1,
		encounters: [][]ratSpec{{{life: 10, power: 1}}},
	})
	if !g.SelectFromKey(3) || g.State() != StateStartFight {
		t.Fatalf("state = %s, want %s", g.State(), StateStartFight)
	}
}

func TestNewGameRejectsOutOfRangeFight(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Fight = 2
	_, err := NewGame(Options{Settings: settings, Scenario: &fakeScenario{encounters: [][]ratSpec{{{life: 1}}}}})
	if err == nil {
		t.Fatal("expected an error")
	}
}
