package combat

import (
	"testing"

	"draconis/internal/event"
	"draconis/internal/types"
)

// scriptedRand replays queued values. Once empty, Float64 returns 0.5 and
// Intn returns n-1, which keeps a Fisher-Yates shuffle in place.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

var testIDs types.IDAllocator

func newTestCharacter(name string, power float64, skills ...*Skill) *Character {
	return NewCharacter(testIDs.Next(), Stats{
		Type:      Humanoid,
		Name:      name,
		LifeMax:   100,
		EnergyMax: 100,
		Power:     power,
	}, 1, false, skills...)
}

func newTestEnemy(name string, power float64, skills ...*Skill) *Enemy {
	return NewEnemy(testIDs.Next(), Stats{
		Type:      Beast,
		Name:      name,
		LifeMax:   100,
		EnergyMax: 100,
		Power:     power,
	}, EnemyTraits{Skills: skills})
}

func mustSkill(t *testing.T, key string) *Skill {
	t.Helper()
	s, err := NewSkill(key)
	if err != nil {
		t.Fatalf("new skill %q: %v", key, err)
	}
	return s
}

type testFight struct {
	*Fight
	log *event.Log
}

// newTestFight puts every character and enemy in the front rows. The fight
// is deterministic: randomization off and the given draws.
func newTestFight(t *testing.T, chars []*Character, enemies []*Enemy, r Rand) testFight {
	t.Helper()
	party := NewParty()
	for _, c := range chars {
		if err := party.Add(0, c); err != nil {
			t.Fatalf("add %s: %v", c.Name, err)
		}
	}
	opposition := NewOpposition()
	for _, e := range enemies {
		if err := opposition.Add(0, e); err != nil {
			t.Fatalf("add %s: %v", e.Name, err)
		}
	}
	if r == nil {
		r = &scriptedRand{}
	}
	d := event.NewDispatcher()
	l := event.NewLog(100)
	d.SubscribeAll(l)
	f := NewFight(party, opposition, FightOptions{Rand: r, Dispatcher: d, SentinelID: testIDs.Next()})
	return testFight{Fight: f, log: l}
}

// use runs skill for active on the given targets.
func (tf testFight) use(active Combatant, s *Skill, targets ...Combatant) {
	tf.ActiveCreature = active
	tf.Targets = targets
	s.Execute(tf.Fight)
}

func (tf testFight) count(t event.EventType) int {
	n := 0
	for _, e := range tf.log.Events() {
		if e.Type == t {
			n++
		}
	}
	return n
}
