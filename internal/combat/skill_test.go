package combat

import (
	"errors"
	"testing"

	"draconis/internal/event"
	"draconis/internal/types"
)

func TestNewSkill(t *testing.T) {
	for _, key := range SkillKeys() {
		s, err := NewSkill(key)
		if err != nil {
			t.Fatalf("%s: %v", key, err)
		}
		if s.Key != key || s.Name == "" || s.behavior == nil {
			t.Fatalf("%s: incomplete skill %+v", key, s)
		}
	}
	if _, err := NewSkill("teleport"); !errors.Is(err, ErrUnknownSkill) {
		t.Fatalf("err = %v, want ErrUnknownSkill", err)
	}

	a, _ := NewSkill("smash")
	b, _ := NewSkill("smash")
	if a == b {
		t.Fatal("each owner needs its own instance")
	}
}

func TestComboEscalates(t *testing.T) {
	combo := mustSkill(t, "combo")
	knight := newTestCharacter("Knight", 10, combo)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, nil)

	want := []int{8, 12, 18, 8}
	for i, w := range want {
		tf.use(knight, combo, wolf)
		if got := wolf.LastLifeChange.Amount; got != w {
			t.Fatalf("use %d dealt %d, want %d", i+1, got, w)
		}
		wolf.ChangeLife(gain(100))
		for _, c := range tf.Creatures() {
			c.Base().DecreaseStatusesDuration(OriginTurnEndExpiration, knight.ID)
		}
	}
}

func TestComboDodgeBreaksChain(t *testing.T) {
	combo := mustSkill(t, "combo")
	knight := newTestCharacter("Knight", 10, combo)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, nil)

	tf.use(knight, combo, wolf)
	if !wolf.HasStatus(Combo1) {
		t.Fatal("expected the first marker")
	}
	wolf.DodgeChance = 1
	tf.use(knight, combo, wolf)
	if wolf.HasStatus(Combo1) || wolf.HasStatus(Combo2) {
		t.Fatal("a dodge must drop the chain")
	}
	wolf.DodgeChance = 0
	tf.use(knight, combo, wolf)
	if got := wolf.LastLifeChange.Amount; got != 8 {
		t.Fatalf("dealt %d after a dodge, want 8", got)
	}
}

func TestDrain(t *testing.T) {
	drain := mustSkill(t, "drain")
	mage := newTestCharacter("Mage", 10, drain)
	mage.ChangeLife(loss(50))
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{mage}, []*Enemy{wolf}, nil)

	tf.use(mage, drain, wolf)
	if wolf.Life() != 90 || mage.Life() != 55 {
		t.Fatalf("wolf %d mage %d, want 90 and 55", wolf.Life(), mage.Life())
	}
	if mage.Energy() != 85 {
		t.Fatalf("energy = %d, want 85", mage.Energy())
	}
	if tf.count(event.DrainDone) != 1 {
		t.Fatal("expected one drain message")
	}

	wolf.DodgeChance = 1
	tf.use(mage, drain, wolf)
	if mage.Life() != 55 {
		t.Fatalf("dodged drain healed: %d", mage.Life())
	}
}

func TestDamageAndStatus(t *testing.T) {
	fireball := mustSkill(t, "fireball")
	mage := newTestCharacter("Mage", 10, fireball)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{mage}, []*Enemy{wolf}, nil)

	tf.use(mage, fireball, wolf)
	burn := wolf.StatusFrom(Burn, mage.ID)
	if wolf.Life() != 88 || burn == nil || burn.RemainingTime != 2 || burn.Power != 0.4 {
		t.Fatalf("life %d burn %+v", wolf.Life(), burn)
	}
	if tf.count(event.DamageDealt) != 1 || tf.count(event.StatusApplied) != 0 {
		t.Fatal("expected exactly one message")
	}

	rat := newTestEnemy("Rat", 10)
	rat.DodgeChance = 1
	if err := tf.Opposition.Add(0, rat); err != nil {
		t.Fatal(err)
	}
	tf.use(mage, fireball, rat)
	if rat.HasStatus(Burn) {
		t.Fatal("status applied on a dodge")
	}

	rage := mustSkill(t, "rage")
	tf.use(mage, rage, wolf)
	if !mage.HasStatus(AttackBonus) || wolf.HasStatus(AttackBonus) {
		t.Fatal("rage must buff its user")
	}
}

func TestVariableDamage(t *testing.T) {
	tests := []struct {
		key        string
		casterLife int
		targetLife int
		want       int
	}{
		{"berserk", 100, 100, 8},
		{"berserk", 50, 100, 14},
		{"execute", 100, 100, 6},
		{"execute", 100, 50, 13},
		{"opportunity", 100, 100, 16},
		{"opportunity", 100, 20, 7},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := mustSkill(t, tt.key)
			knight := newTestCharacter("Knight", 10, s)
			knight.ChangeLife(loss(100 - tt.casterLife))
			wolf := newTestEnemy("Wolf", 10)
			wolf.ChangeLife(loss(100 - tt.targetLife))
			tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, nil)

			tf.use(knight, s, wolf)
			if got := wolf.LastLifeChange.Amount; got != tt.want {
				t.Fatalf("dealt %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHealsAndRevive(t *testing.T) {
	heal := mustSkill(t, "heal")
	dual := mustSkill(t, "dual-heal")
	regen := mustSkill(t, "regenerate")
	revive := mustSkill(t, "revive")
	priest := newTestCharacter("Priest", 10, heal, dual, regen, revive)
	knight := newTestCharacter("Knight", 10)
	archer := newTestCharacter("Archer", 10)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{priest, knight, archer}, []*Enemy{wolf}, nil)
	tf.ActiveCreature = priest

	if heal.IsUsableByActiveCreature(tf.Fight) {
		t.Fatal("heal usable without a wounded ally")
	}

	knight.ChangeLife(loss(50))
	priest.ChangeLife(loss(20))
	if !heal.IsUsableOn(knight, tf.Fight) || heal.IsUsableOn(wolf, tf.Fight) || heal.IsUsableOn(archer, tf.Fight) {
		t.Fatal("heal targets wounded allies only")
	}
	tf.use(priest, heal, knight)
	if knight.Life() != 65 {
		t.Fatalf("knight life = %d, want 65", knight.Life())
	}

	tf.use(priest, dual, knight)
	if knight.Life() != 77 || priest.Life() != 86 {
		t.Fatalf("knight %d priest %d, want 77 and 86", knight.Life(), priest.Life())
	}

	tf.use(priest, regen, knight)
	if knight.Life() != 77 || knight.StatusFrom(Regen, priest.ID) == nil {
		t.Fatal("regenerate must only apply a status")
	}

	if revive.IsUsableOn(archer, tf.Fight) {
		t.Fatal("revive on a living ally")
	}
	archer.ChangeLife(loss(100))
	if !revive.IsUsableOn(archer, tf.Fight) {
		t.Fatal("revive refused a dead ally")
	}
	tf.use(priest, revive, archer)
	if archer.Life() != 30 || revive.Cooldown != revive.CooldownMax {
		t.Fatalf("archer life %d cooldown %d", archer.Life(), revive.Cooldown)
	}
}

func TestAlterTime(t *testing.T) {
	alter := mustSkill(t, "alter-time")
	mass := mustSkill(t, "mass-alter-time")
	mage := newTestCharacter("Mage", 10, alter, mass)
	knight := newTestCharacter("Knight", 10)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{mage, knight}, []*Enemy{wolf}, nil)

	knight.ApplyStatus(NewStatusApplication(AttackBonus, 1, mage, 3))
	wolf.ApplyStatus(NewStatusApplication(Bleed, 1, knight, 3))

	tf.use(mage, alter, knight)
	tf.use(mage, alter, wolf)
	if knight.Statuses[0].RemainingTime != 4 || wolf.Statuses[0].RemainingTime != 2 {
		t.Fatalf("ally %d enemy %d, want 4 and 2", knight.Statuses[0].RemainingTime, wolf.Statuses[0].RemainingTime)
	}

	tf.ActiveCreature = mage
	if mass.IsUsableByActiveCreature(tf.Fight) {
		t.Fatal("mass alter time needs three creatures under a status")
	}
	mage.ApplyStatus(NewStatusApplication(Defend, 1, mage, 0))
	if !mass.IsUsableByActiveCreature(tf.Fight) {
		t.Fatal("mass alter time should be usable")
	}
	tf.use(mage, mass)
	if knight.Statuses[0].RemainingTime != 5 || wolf.Statuses[0].RemainingTime != 1 || mage.Statuses[0].RemainingTime != 2 {
		t.Fatal("mass alter time did not shift by faction")
	}
}

func TestRangeAndRows(t *testing.T) {
	strike := mustSkill(t, "strike")
	shot := mustSkill(t, "shot")
	knight := newTestCharacter("Knight", 10, strike)
	archer := newTestCharacter("Archer", 10, strike, shot)
	front := newTestEnemy("Wolf", 10)
	back := newTestEnemy("Shaman", 10)

	party := NewParty()
	opposition := NewOpposition()
	for _, step := range []error{
		party.Add(0, knight), party.Add(1, archer),
		opposition.Add(0, front), opposition.Add(2, back),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}
	f := NewFight(party, opposition, FightOptions{Rand: &scriptedRand{}, SentinelID: testIDs.Next()})

	tests := []struct {
		name   string
		active Combatant
		skill  *Skill
		target Combatant
		want   bool
	}{
		{"front strikes front", knight, strike, front, true},
		{"front cannot strike back", knight, strike, back, false},
		{"back cannot strike front", archer, strike, front, false},
		{"shot reaches front", archer, shot, front, true},
		{"shot reaches back", archer, shot, back, true},
		{"no friendly fire", archer, shot, knight, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.ActiveCreature = tt.active
			if got := tt.skill.IsUsableOn(tt.target, f); got != tt.want {
				t.Fatalf("usable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAreaTargets(t *testing.T) {
	cleave := mustSkill(t, "cleave")
	smash := mustSkill(t, "smash")
	knight := newTestCharacter("Knight", 10, cleave, smash)
	a := newTestEnemy("A", 10)
	b := newTestEnemy("B", 10)
	c := newTestEnemy("C", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{a, b, c}, nil)
	tf.ActiveCreature = knight

	names := func(cs []*Enemy) []string {
		var out []string
		for _, e := range cs {
			out = append(out, e.Name)
		}
		return out
	}
	tests := []struct {
		name  string
		skill *Skill
		aimed *Enemy
		want  []string
	}{
		{"double takes the right neighbor", cleave, a, []string{"A", "B"}},
		{"double falls back to the left", cleave, c, []string{"C", "B"}},
		{"triple in the middle", smash, b, []string{"A", "B", "C"}},
		{"triple on the edge", smash, a, []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(tt.skill.TargetEnemies(tt.aimed, tf.Fight))
			if len(got) != len(tt.want) {
				t.Fatalf("targets = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("targets = %v, want %v", got, tt.want)
				}
			}
		})
	}

	b.ChangeLife(loss(100))
	if got := names(smash.TargetEnemies(a, tf.Fight)); len(got) != 2 || got[1] != "C" {
		t.Fatalf("dead neighbors are skipped, got %v", got)
	}
}

func TestRoarHitsTheWholeFrontRow(t *testing.T) {
	roar := mustSkill(t, "roar")
	knight := newTestCharacter("Knight", 10)
	squire := newTestCharacter("Squire", 10)
	archer := newTestCharacter("Archer", 10)
	troll := newTestEnemy("Troll", 10, roar)

	party := NewParty()
	opposition := NewOpposition()
	for _, step := range []error{
		party.Add(0, knight), party.Add(0, squire), party.Add(1, archer),
		opposition.Add(0, troll),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}
	f := NewFight(party, opposition, FightOptions{Rand: &scriptedRand{}, SentinelID: testIDs.Next()})
	f.ActiveCreature = troll

	if roar.IsUsableOn(archer, f) {
		t.Fatal("the back row is out of reach")
	}
	got := roar.TargetCharacters(squire, f)
	if len(got) != 2 || got[0] != knight || got[1] != squire {
		t.Fatalf("targets = %v, want the front row", got)
	}

	f.Targets = ChooseTargets(roar, f)
	roar.Execute(f)
	if !knight.HasStatus(AttackMalus) || !squire.HasStatus(AttackMalus) || archer.HasStatus(AttackMalus) {
		t.Fatal("roar must weaken the front row only")
	}

	knight.ChangeLife(loss(100))
	squire.ChangeLife(loss(100))
	if got := roar.TargetCharacters(archer, f); len(got) != 1 || got[0] != archer {
		t.Fatalf("targets = %v, want the next row once the front falls", got)
	}
}

func TestAdvance(t *testing.T) {
	advance := mustSkill(t, "advance")
	knight := newTestCharacter("Knight", 10)
	guard := newTestEnemy("Guard", 10)
	left := newTestEnemy("Left", 10)
	right := newTestEnemy("Right", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{guard}, nil)
	if err := tf.Opposition.Add(1, left); err != nil {
		t.Fatal(err)
	}
	if err := tf.Opposition.Add(1, right); err != nil {
		t.Fatal(err)
	}

	tf.ActiveCreature = guard
	if advance.IsUsableByActiveCreature(tf.Fight) {
		t.Fatal("front row enemy cannot advance")
	}

	tf.use(right, advance)
	tf.use(left, advance)
	row := tf.Opposition.Row(0)
	if len(row) != 3 || row[0] != Combatant(left) || row[2] != Combatant(right) {
		t.Fatalf("front row = %v", row)
	}
	if left.Distance != 1 || right.Distance != 1 || len(tf.Opposition.Row(1)) != 0 {
		t.Fatal("distances not updated")
	}
	if tf.count(event.Advanced) != 2 {
		t.Fatal("expected one message per move")
	}
}

func TestCooldowns(t *testing.T) {
	smash := mustSkill(t, "smash")
	strike := mustSkill(t, "strike")
	knight := newTestCharacter("Knight", 10, smash, strike)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, nil)

	tf.use(knight, smash, wolf)
	if smash.IsSelectableBy(knight) || smash.Cooldown != 1 {
		t.Fatalf("cooldown = %d", smash.Cooldown)
	}
	TickCooldowns(knight, smash)
	if smash.Cooldown != 1 {
		t.Fatal("the skill just used must not tick")
	}
	TickCooldowns(knight, strike)
	if !smash.IsSelectableBy(knight) {
		t.Fatal("cooldown should be over")
	}
}

func TestInvalidTargetTypeIsUnusable(t *testing.T) {
	s := mustSkill(t, "strike")
	s.TargetType = TargetType(99)
	knight := newTestCharacter("Knight", 10, s)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, nil)
	tf.ActiveCreature = knight

	if s.IsUsableOn(wolf, tf.Fight) || s.IsUsableByActiveCreature(tf.Fight) {
		t.Fatal("unknown target type must be unusable")
	}
}

func TestDefendAndMeditate(t *testing.T) {
	defend := mustSkill(t, "defend")
	meditate := mustSkill(t, "meditate")
	knight := newTestCharacter("Knight", 10, defend, meditate)
	wolf := newTestEnemy("Wolf", 10)
	tf := newTestFight(t, []*Character{knight}, []*Enemy{wolf}, nil)

	knight.SpendEnergy(50)
	tf.use(knight, meditate)
	if knight.Energy() != 75 {
		t.Fatalf("energy = %d, want 75", knight.Energy())
	}

	tf.use(knight, defend)
	if !knight.HasStatus(Defend) {
		t.Fatal("expected defend")
	}
	knight.DecreaseStatusesDuration(OriginTurnStartExpiration, knight.ID)
	if knight.HasStatus(Defend) {
		t.Fatal("defend lasts until the next turn start")
	}
	knight.ApplyStatus(NewStatusApplication(Defend, 1, knight, 0))
	knight.DecreaseStatusesDuration(OriginTurnStartExpiration, types.NoCreature)
	if knight.HasStatus(Defend) {
		t.Fatal("unfiltered decrease must tick defend too")
	}
}
