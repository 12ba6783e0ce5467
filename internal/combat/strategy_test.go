package combat

import (
	"errors"
	"testing"
)

type strategyFixture struct {
	tf     testFight
	wolf   *Enemy
	knight *Character
	bite   *Skill
	spit   *Skill
	heal   *Skill
}

func newStrategyFixture(t *testing.T, r Rand) strategyFixture {
	t.Helper()
	bite := mustSkill(t, "bite")
	spit := mustSkill(t, "spit")
	heal := mustSkill(t, "heal")
	wolf := newTestEnemy("Wolf", 10, bite, spit, heal)
	knight := newTestCharacter("Knight", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, r)
	tf.ActiveCreature = wolf
	return strategyFixture{tf: tf, wolf: wolf, knight: knight, bite: bite, spit: spit, heal: heal}
}

func TestPriorityStrategy(t *testing.T) {
	fx := newStrategyFixture(t, nil)
	s := &PriorityStrategy{Strategies: []Strategy{fx.heal, fx.spit, fx.bite}}

	if got := s.ChooseSkill(fx.tf.Fight); got != fx.spit {
		t.Fatalf("got %v, want spit", got)
	}
	fx.spit.Cooldown = 1
	if got := s.ChooseSkill(fx.tf.Fight); got != fx.bite {
		t.Fatalf("got %v, want bite", got)
	}
	fx.wolf.ChangeLife(loss(10))
	if got := s.ChooseSkill(fx.tf.Fight); got != fx.heal {
		t.Fatalf("got %v, want heal on a wounded ally", got)
	}
}

func TestSequentialStrategy(t *testing.T) {
	fx := newStrategyFixture(t, nil)
	s := &SequentialStrategy{Strategies: []Strategy{fx.bite, fx.heal, fx.spit}}

	want := []*Skill{fx.bite, fx.spit, fx.bite, fx.spit}
	for i, w := range want {
		if got := s.ChooseSkill(fx.tf.Fight); got != w {
			t.Fatalf("call %d: got %s, want %s", i, got.Name, w.Name)
		}
	}

	fx.wolf.ChangeLife(loss(10))
	if got := s.ChooseSkill(fx.tf.Fight); got != fx.bite {
		t.Fatalf("got %s, want bite", got.Name)
	}
	if got := s.ChooseSkill(fx.tf.Fight); got != fx.heal {
		t.Fatalf("got %s, want heal", got.Name)
	}

	empty := &SequentialStrategy{}
	if empty.ChooseSkill(fx.tf.Fight) != nil {
		t.Fatal("empty sequence must return nil")
	}
}

func TestWeightedStrategy(t *testing.T) {
	tests := []struct {
		name    string
		draw    float64
		wounded bool
		want    string
	}{
		{"low draw", 0.1, false, "bite"},
		{"high draw", 0.6, false, "spit"},
		{"unusable weight is ignored", 0.99, false, "spit"},
		{"heal joins when an ally is wounded", 0.99, true, "heal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newStrategyFixture(t, &scriptedRand{floats: []float64{tt.draw}})
			if tt.wounded {
				fx.wolf.ChangeLife(loss(10))
			}
			s := &WeightedStrategy{Entries: []WeightedEntry{
				{Weight: 1, Strategy: fx.bite},
				{Weight: 3, Strategy: fx.spit},
				{Weight: 4, Strategy: fx.heal},
			}}
			if got := s.ChooseSkill(fx.tf.Fight); got == nil || got.Key != tt.want {
				t.Fatalf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestConditionalStrategy(t *testing.T) {
	fx := newStrategyFixture(t, nil)
	low, err := LookupPredicate("life_below_half")
	if err != nil {
		t.Fatal(err)
	}
	s := &ConditionalStrategy{Branches: []Branch{
		{When: low, Strategy: fx.heal},
		{When: low, Strategy: fx.spit},
		{Strategy: fx.bite},
	}}

	if got := s.ChooseSkill(fx.tf.Fight); got != fx.bite {
		t.Fatalf("got %s, want bite", got.Name)
	}
	fx.wolf.ChangeLife(loss(60))
	if got := s.ChooseSkill(fx.tf.Fight); got != fx.heal {
		t.Fatalf("got %s, want heal", got.Name)
	}
	fx.heal.Cooldown = 2
	if got := s.ChooseSkill(fx.tf.Fight); got != fx.spit {
		t.Fatalf("got %s, want spit when heal is cooling down", got.Name)
	}
}

func TestChooseActionFallsBackToWait(t *testing.T) {
	fx := newStrategyFixture(t, nil)
	fx.knight.ChangeLife(loss(100))

	skill, targets := ChooseAction(&PriorityStrategy{Strategies: []Strategy{fx.bite}}, fx.tf.Fight)
	if skill != fx.tf.WaitSkill() || targets != nil {
		t.Fatalf("got %s on %v, want wait", skill.Name, targets)
	}
	if skill, _ := ChooseAction(nil, fx.tf.Fight); skill.Key != "wait" {
		t.Fatalf("nil strategy chose %s", skill.Name)
	}
}

func TestPredicates(t *testing.T) {
	fx := newStrategyFixture(t, nil)
	tests := []struct {
		name  string
		setup func()
		want  bool
	}{
		{"always", func() {}, true},
		{"first_step", func() {}, true},
		{"even_step", func() { fx.wolf.Step = 2 }, true},
		{"odd_step", func() { fx.wolf.Step = 3 }, true},
		{"phase_one", func() {}, true},
		{"phase_two", func() { fx.wolf.Phase = 1 }, true},
		{"alone", func() {}, true},
		{"ally_damaged", func() {}, false},
		{"life_below_quarter", func() { fx.wolf.ChangeLife(loss(80)) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LookupPredicate(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			tt.setup()
			if got := p(fx.wolf, fx.tf.Fight); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := LookupPredicate("full_moon"); !errors.Is(err, ErrUnknownPredicate) {
		t.Fatalf("err = %v", err)
	}
}
