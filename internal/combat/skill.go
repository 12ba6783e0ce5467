package combat

// TargetType is the targeting rule of a skill, relative to the creature
// using it.
type TargetType int

const (
	TargetNone TargetType = iota
	TargetSameAlive
	TargetSameAliveOther
	TargetSameDamaged
	TargetSameDead
	TargetSameAll
	TargetOtherAlive
	TargetOtherAliveDouble
	TargetOtherAliveTriple
	TargetOtherAll
	TargetOtherFront
	TargetAnyAlive
	TargetAllAlive
)

// Modifier alters how a skill resolves.
type Modifier int

const (
	CannotBeDodged Modifier = iota + 1
)

// Skill is an action a creature can take. The definition fields never
// change after construction; Cooldown is the only per owner state, so
// every owner gets its own instance.
type Skill struct {
	Key         string
	Name        string
	Description string
	TargetType  TargetType
	// Cost is spent on use; a negative cost restores energy.
	Cost float64
	Melee bool
	// Range 0 only reaches the own side; otherwise the sum of both
	// distances minus one must not exceed it.
	Range          int
	CooldownMax    int
	Cooldown       int
	Element        ElementType
	PowerLevels    []float64
	Statuses       []*StatusType
	StatusDuration int
	Modifiers      []Modifier

	behavior behavior
}

// behavior is the execution policy of a skill.
type behavior interface {
	executeOnActive(s *Skill, f *Fight, active Combatant)
	executeOnTarget(s *Skill, f *Fight, active, target Combatant)
	usableByActive(s *Skill, f *Fight, active Combatant) bool
	isHeal() bool
}

type baseBehavior struct{}

func (baseBehavior) executeOnActive(*Skill, *Fight, Combatant)            {}
func (baseBehavior) executeOnTarget(*Skill, *Fight, Combatant, Combatant) {}
func (baseBehavior) usableByActive(*Skill, *Fight, Combatant) bool        { return true }
func (baseBehavior) isHeal() bool                                         { return false }

// PowerLevel returns the i-th power level, 0 when missing.
func (s *Skill) PowerLevel(i int) float64 {
	if i < 0 || i >= len(s.PowerLevels) {
		return 0
	}
	return s.PowerLevels[i]
}

// HasModifier reports whether m is set.
func (s *Skill) HasModifier(m Modifier) bool {
	for _, mod := range s.Modifiers {
		if mod == m {
			return true
		}
	}
	return false
}

// IsHeal reports whether the skill restores life.
func (s *Skill) IsHeal() bool { return s.behavior.isHeal() }

// NeedsTarget is false for skills acting on their user only.
func (s *Skill) NeedsTarget() bool { return s.TargetType != TargetNone }

// TargetsAllies tells which side the player picks the target from.
func (s *Skill) TargetsAllies() bool {
	switch s.TargetType {
	case TargetSameAlive, TargetSameAliveOther, TargetSameDamaged, TargetSameDead, TargetSameAll:
		return true
	default:
		return false
	}
}

// TargetsBothSides is true for skills accepting a target on either side.
func (s *Skill) TargetsBothSides() bool {
	return s.TargetType == TargetAnyAlive || s.TargetType == TargetAllAlive
}

// DamageSource implementation.
func (s *Skill) Dodgeable() bool            { return !s.HasModifier(CannotBeDodged) }
func (s *Skill) DamageElement() ElementType { return s.Element }
func (s *Skill) IsMelee() bool              { return s.Melee }
func (s *Skill) FromSkill() bool            { return true }

// IsSelectableBy checks energy and cooldown.
func (s *Skill) IsSelectableBy(c Combatant) bool {
	return float64(c.Base().Energy()) >= s.Cost && s.Cooldown == 0
}

// IsUsableOn checks the target rule of the skill for the active creature.
func (s *Skill) IsUsableOn(target Combatant, f *Fight) bool {
	active := f.ActiveCreature
	if active == nil || target == nil || target.IsEndOfRound() {
		return false
	}
	a, t := active.Base(), target.Base()
	same := sameFaction(active, target)

	switch s.TargetType {
	case TargetNone:
		return false
	case TargetSameAlive, TargetSameAll:
		return same && t.IsAlive()
	case TargetSameAliveOther:
		return same && t.IsAlive() && t != a
	case TargetSameDamaged:
		return same && t.IsAlive() && t.IsDamaged()
	case TargetSameDead:
		return same && t.IsDead()
	case TargetOtherAlive, TargetOtherAliveDouble, TargetOtherAliveTriple, TargetOtherAll:
		return !same && t.IsAlive() && s.inRange(a, t)
	case TargetOtherFront:
		fm := f.FormationOf(target)
		return !same && t.IsAlive() && fm != nil && t.Distance == fm.FrontDistance()
	case TargetAnyAlive, TargetAllAlive:
		return t.IsAlive() && t != a && (same || s.inRange(a, t))
	default:
		logUnhandled("target type", s.TargetType)
		return false
	}
}

func (s *Skill) inRange(a, t *Creature) bool {
	return s.Range > 0 && s.Range >= a.Distance+t.Distance-1
}

// UsableTargets lists every creature IsUsableOn accepts.
func (s *Skill) UsableTargets(f *Fight) []Combatant {
	var out []Combatant
	for _, c := range f.Creatures() {
		if s.IsUsableOn(c, f) {
			out = append(out, c)
		}
	}
	return out
}

// IsUsableByActiveCreature is the full check made before a skill is
// offered or chosen.
func (s *Skill) IsUsableByActiveCreature(f *Fight) bool {
	active := f.ActiveCreature
	if active == nil || !s.IsSelectableBy(active) {
		return false
	}
	if !s.behavior.usableByActive(s, f, active) {
		return false
	}
	if !s.NeedsTarget() {
		return true
	}
	return len(s.UsableTargets(f)) > 0
}

// Targets expands the aimed creature into the area of the skill.
func (s *Skill) Targets(aimed Combatant, f *Fight) []Combatant {
	if aimed == nil {
		return nil
	}
	fm := f.FormationOf(aimed)
	if fm == nil {
		logUnhandled("target", aimed.Base().Name)
		return nil
	}

	switch s.TargetType {
	case TargetNone:
		return nil
	case TargetOtherAliveDouble:
		out := []Combatant{aimed}
		if n := fm.RightNeighbor(aimed); n != nil {
			return append(out, n)
		}
		if n := fm.LeftNeighbor(aimed); n != nil {
			return append(out, n)
		}
		return out
	case TargetOtherAliveTriple:
		var out []Combatant
		if n := fm.LeftNeighbor(aimed); n != nil {
			out = append(out, n)
		}
		out = append(out, aimed)
		if n := fm.RightNeighbor(aimed); n != nil {
			out = append(out, n)
		}
		return out
	case TargetOtherAll, TargetSameAll:
		return fm.Alive()
	case TargetOtherFront:
		var out []Combatant
		front := fm.FrontDistance()
		for _, c := range fm.Alive() {
			if c.Base().Distance == front {
				out = append(out, c)
			}
		}
		return out
	case TargetAllAlive:
		var out []Combatant
		for _, c := range f.Creatures() {
			if s.IsUsableOn(c, f) {
				out = append(out, c)
			}
		}
		return out
	default:
		return []Combatant{aimed}
	}
}

// TargetEnemies expands an aimed enemy.
func (s *Skill) TargetEnemies(aimed *Enemy, f *Fight) []*Enemy {
	var out []*Enemy
	for _, c := range s.Targets(aimed, f) {
		if e, ok := c.(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// TargetCharacters expands an aimed character.
func (s *Skill) TargetCharacters(aimed *Character, f *Fight) []*Character {
	var out []*Character
	for _, c := range s.Targets(aimed, f) {
		if ch, ok := c.(*Character); ok {
			out = append(out, ch)
		}
	}
	return out
}

// Execute pays the cost, arms the cooldown and runs the effect on the
// active creature or on every current target.
func (s *Skill) Execute(f *Fight) {
	active := f.ActiveCreature
	if active == nil {
		return
	}
	active.Base().SpendEnergy(s.Cost)
	s.Cooldown = s.CooldownMax

	if !s.NeedsTarget() {
		s.behavior.executeOnActive(s, f, active)
		return
	}
	for _, t := range f.Targets {
		s.behavior.executeOnTarget(s, f, active, t)
	}
}

// ChooseSkill makes a skill a leaf strategy: it picks itself when usable.
func (s *Skill) ChooseSkill(f *Fight) *Skill {
	if s.IsUsableByActiveCreature(f) {
		return s
	}
	return nil
}

// SkillsOf returns the skills a combatant owns.
func SkillsOf(c Combatant) []*Skill {
	switch v := c.(type) {
	case *Character:
		return v.Skills
	case *Enemy:
		return v.Skills
	default:
		return nil
	}
}

// TickCooldowns lowers the cooldowns of c at the end of its turn, except
// for the skill it just used.
func TickCooldowns(c Combatant, used *Skill) {
	for _, s := range SkillsOf(c) {
		if s != used && s.Cooldown > 0 {
			s.Cooldown--
		}
	}
}
