// Package combat holds the fight rules: creatures and their statuses, the
// damage formula, skills, enemy strategies and the turn order.
package combat

import (
	"fmt"
	"math"
	"strings"

	"draconis/internal/config"
	"draconis/internal/types"
)

// CreatureType is used by specialties: a creature is strong against the
// types listed in its specialties.
type CreatureType int

const (
	Humanoid CreatureType = iota
	Beast
	Undead
	Elemental
	Other
)

var creatureTypeNames = map[CreatureType]string{
	Humanoid:  "humanoid",
	Beast:     "beast",
	Undead:    "undead",
	Elemental: "elemental",
	Other:     "other",
}

func (t CreatureType) String() string {
	if name, ok := creatureTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CreatureType(%d)", int(t))
}

// ParseCreatureType maps a catalog name to a CreatureType.
func ParseCreatureType(name string) (CreatureType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range creatureTypeNames {
		if n == name {
			return t, nil
		}
	}
	return Other, fmt.Errorf("unknown creature type %q", name)
}

// Combatant is anything that can stand in the turn order: a Character, an
// Enemy or the EndOfRound sentinel.
type Combatant interface {
	Base() *Creature
	IsCharacter() bool
	IsEnemy() bool
	IsEndOfRound() bool
}

// Stats are the values a creature is built from.
type Stats struct {
	Type           CreatureType
	Name           string
	Class          string
	LifeMax        int
	EnergyMax      int
	Power          float64
	DodgeChance    float64
	CriticalChance float64
	CriticalBonus  float64
	Specialties    []CreatureType
}

// Creature holds the state shared by every combatant. Life and energy are
// only changed through ChangeLife and SpendEnergy, which keep the
// percentages in sync.
type Creature struct {
	ID             types.CreatureID
	Type           CreatureType
	Name           string
	Class          string
	Power          float64
	Specialties    []CreatureType
	Distance       int
	DodgeChance    float64
	CriticalChance float64
	CriticalBonus  float64
	Statuses       []*StatusApplication

	// LastLifeChange is shown as a popup and cleared at each turn.
	LastLifeChange *LifeChange

	lifeMax       int
	life          int
	lifePercent   float64
	energyMax     int
	energy        int
	energyPercent float64
}

func newCreature(id types.CreatureID, s Stats) Creature {
	c := Creature{
		ID:             id,
		Type:           s.Type,
		Name:           s.Name,
		Class:          s.Class,
		Power:          s.Power,
		Specialties:    s.Specialties,
		Distance:       1,
		DodgeChance:    s.DodgeChance,
		CriticalChance: s.CriticalChance,
		CriticalBonus:  s.CriticalBonus,
		lifeMax:        s.LifeMax,
		life:           s.LifeMax,
		energyMax:      s.EnergyMax,
		energy:         s.EnergyMax,
	}
	if c.CriticalBonus == 0 {
		c.CriticalBonus = config.CriticalBonus
	}
	if c.lifeMax < 1 {
		c.lifeMax = 1
		c.life = 1
	}
	c.updateLifePercent()
	c.updateEnergyPercent()
	return c
}

// Base returns the creature itself; variants get it through embedding.
func (c *Creature) Base() *Creature { return c }

func (c *Creature) Life() int              { return c.life }
func (c *Creature) LifeMax() int           { return c.lifeMax }
func (c *Creature) LifePercent() float64   { return c.lifePercent }
func (c *Creature) Energy() int            { return c.energy }
func (c *Creature) EnergyMax() int         { return c.energyMax }
func (c *Creature) EnergyPercent() float64 { return c.energyPercent }

func (c *Creature) IsAlive() bool   { return c.life > 0 }
func (c *Creature) IsDead() bool    { return c.life <= 0 }
func (c *Creature) IsDamaged() bool { return c.life < c.lifeMax }

// ChangeLife applies a signed life change, clamped to [0, lifeMax]. A
// creature reaching 0 life loses all its statuses.
func (c *Creature) ChangeLife(lc LifeChange) {
	c.life += lc.Signed()
	if c.life < 0 {
		c.life = 0
	}
	if c.life > c.lifeMax {
		c.life = c.lifeMax
	}
	c.updateLifePercent()
	c.LastLifeChange = &lc

	if c.life == 0 {
		c.ClearStatuses()
	}
}

// SpendEnergy removes the rounded amount of energy. A negative amount
// restores energy.
func (c *Creature) SpendEnergy(amount float64) {
	c.energy -= int(math.Round(amount))
	if c.energy < 0 {
		c.energy = 0
	}
	if c.energy > c.energyMax {
		c.energy = c.energyMax
	}
	c.updateEnergyPercent()
}

// RestoreEnergy is SpendEnergy with the sign flipped.
func (c *Creature) RestoreEnergy(amount float64) {
	c.SpendEnergy(-amount)
}

// Restore brings the creature back to full life and energy without any
// status, as at the start of an encounter.
func (c *Creature) Restore() {
	c.life = c.lifeMax
	c.energy = c.energyMax
	c.updateLifePercent()
	c.updateEnergyPercent()
	c.ClearStatuses()
	c.LastLifeChange = nil
}

// Scale multiplies max life and power, used for difficulty and champions.
func (c *Creature) Scale(multiplier float64) {
	c.lifeMax = int(math.Round(float64(c.lifeMax) * multiplier))
	if c.lifeMax < 1 {
		c.lifeMax = 1
	}
	c.life = c.lifeMax
	c.Power *= multiplier
	c.updateLifePercent()
}

// ClearLifeChange drops the popup value.
func (c *Creature) ClearLifeChange() { c.LastLifeChange = nil }

// HasSpecialty reports whether the creature is strong against t.
func (c *Creature) HasSpecialty(t CreatureType) bool {
	for _, s := range c.Specialties {
		if s == t {
			return true
		}
	}
	return false
}

func (c *Creature) updateLifePercent() {
	c.lifePercent = 100 * float64(c.life) / float64(c.lifeMax)
}

func (c *Creature) updateEnergyPercent() {
	if c.energyMax <= 0 {
		c.energyPercent = 0
		return
	}
	c.energyPercent = 100 * float64(c.energy) / float64(c.energyMax)
}

// Character is a party member controlled by the player.
type Character struct {
	Creature
	Level   int
	UseMana bool
	Skills  []*Skill
}

// NewCharacter builds a character at full life and energy.
func NewCharacter(id types.CreatureID, s Stats, level int, useMana bool, skills ...*Skill) *Character {
	return &Character{
		Creature: newCreature(id, s),
		Level:    level,
		UseMana:  useMana,
		Skills:   skills,
	}
}

func (c *Character) IsCharacter() bool  { return true }
func (c *Character) IsEnemy() bool      { return false }
func (c *Character) IsEndOfRound() bool { return false }

// Enemy is an AI controlled opponent.
type Enemy struct {
	Creature
	// BaseName is the name before duplicate lettering ("Wolf" for "Wolf B").
	BaseName       string
	Resistances    map[ElementType]float64
	Champion       bool
	ActionsPerTurn int
	Size           int
	Step           int
	Phase          int
	Strategy       Strategy
	// Skills lists every skill the strategy can pick, for cooldown ticking.
	Skills []*Skill
}

// EnemyTraits are the enemy specific construction values.
type EnemyTraits struct {
	Resistances    map[ElementType]float64
	Champion       bool
	ActionsPerTurn int
	Size           int
	Strategy       Strategy
	Skills         []*Skill
}

// NewEnemy builds an enemy at full life.
func NewEnemy(id types.CreatureID, s Stats, t EnemyTraits) *Enemy {
	e := &Enemy{
		Creature:       newCreature(id, s),
		BaseName:       s.Name,
		Resistances:    t.Resistances,
		Champion:       t.Champion,
		ActionsPerTurn: t.ActionsPerTurn,
		Size:           t.Size,
		Strategy:       t.Strategy,
		Skills:         t.Skills,
	}
	if e.ActionsPerTurn < 1 {
		e.ActionsPerTurn = 1
	}
	if e.Size < 1 {
		e.Size = 1
	}
	if e.Resistances == nil {
		e.Resistances = map[ElementType]float64{}
	}
	return e
}

func (e *Enemy) IsCharacter() bool  { return false }
func (e *Enemy) IsEnemy() bool      { return true }
func (e *Enemy) IsEndOfRound() bool { return false }

// Resistance returns the damage reduction ratio for an element.
func (e *Enemy) Resistance(el ElementType) float64 {
	return e.Resistances[el]
}

// ChooseAction asks the strategy for a skill and its targets. The enemy
// enters its second phase the first time it acts below half life.
func (e *Enemy) ChooseAction(f *Fight) (*Skill, []Combatant) {
	if e.Phase == 0 && e.lifePercent <= 50 {
		e.Phase = 1
	}
	skill, targets := ChooseAction(e.Strategy, f)
	e.Step++
	return skill, targets
}

// EndOfRound marks the round boundary in the turn order.
type EndOfRound struct {
	Creature
}

// NewEndOfRound builds the sentinel.
func NewEndOfRound(id types.CreatureID) *EndOfRound {
	return &EndOfRound{Creature: newCreature(id, Stats{Type: Other, Name: "End of round", LifeMax: 1})}
}

func (e *EndOfRound) IsCharacter() bool  { return false }
func (e *EndOfRound) IsEnemy() bool      { return false }
func (e *EndOfRound) IsEndOfRound() bool { return true }

// sameFaction reports whether both combatants fight on the same side.
func sameFaction(a, b Combatant) bool {
	return a.IsCharacter() == b.IsCharacter() && a.IsEnemy() == b.IsEnemy()
}

// resistanceOf returns the resistance of a combatant; only enemies have any.
func resistanceOf(c Combatant, el ElementType) float64 {
	if e, ok := c.(*Enemy); ok {
		return e.Resistance(el)
	}
	return 0
}

// sizeOf is the row weight of a combatant.
func sizeOf(c Combatant) int {
	if e, ok := c.(*Enemy); ok {
		return e.Size
	}
	return 1
}
