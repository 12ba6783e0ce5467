package combat

import (
	"fmt"
	"sort"
	"strings"

	"draconis/internal/event"
)

// skillFactories builds a fresh skill per owner, so cooldowns are not
// shared.
var skillFactories = map[string]func() *Skill{
	"strike": func() *Skill {
		return &Skill{Name: "Strike", Description: "Melee hit on a front enemy.", TargetType: TargetOtherAlive,
			Melee: true, Range: 1, PowerLevels: []float64{1.0}, behavior: damageBehavior{}}
	},
	"shot": func() *Skill {
		return &Skill{Name: "Shot", Description: "Ranged hit on any enemy.", TargetType: TargetOtherAlive,
			Range: 4, PowerLevels: []float64{0.8}, behavior: damageBehavior{}}
	},
	"cleave": func() *Skill {
		return &Skill{Name: "Cleave", Description: "Hits an enemy and its neighbor.", TargetType: TargetOtherAliveDouble,
			Cost: 20, Melee: true, Range: 1, PowerLevels: []float64{0.8}, behavior: damageBehavior{}}
	},
	"smash": func() *Skill {
		return &Skill{Name: "Smash", Description: "Hits an enemy and both neighbors.", TargetType: TargetOtherAliveTriple,
			Cost: 30, Melee: true, Range: 1, CooldownMax: 1, PowerLevels: []float64{0.6}, behavior: damageBehavior{}}
	},
	"blast": func() *Skill {
		return &Skill{Name: "Blast", Description: "Fire on every enemy, cannot be dodged.", TargetType: TargetOtherAll,
			Cost: 40, Range: 4, CooldownMax: 2, Element: Fire, PowerLevels: []float64{0.6},
			Modifiers: []Modifier{CannotBeDodged}, behavior: damageBehavior{}}
	},
	"berserk": func() *Skill {
		return &Skill{Name: "Berserk", Description: "Stronger when wounded.", TargetType: TargetOtherAlive,
			Cost: 10, Melee: true, Range: 1, PowerLevels: []float64{0.8, 2.0}, behavior: variableDamageBehavior{scaling: casterLowLife}}
	},
	"execute": func() *Skill {
		return &Skill{Name: "Execute", Description: "Stronger on wounded enemies.", TargetType: TargetOtherAlive,
			Cost: 15, Melee: true, Range: 1, PowerLevels: []float64{0.6, 2.0}, behavior: variableDamageBehavior{scaling: targetLowLife}}
	},
	"opportunity": func() *Skill {
		return &Skill{Name: "Opportunity", Description: "Stronger on healthy enemies.", TargetType: TargetOtherAlive,
			Cost: 10, Range: 4, PowerLevels: []float64{0.5, 1.6}, behavior: variableDamageBehavior{scaling: targetHighLife}}
	},
	"combo": func() *Skill {
		return &Skill{Name: "Combo", Description: "Grows stronger over three hits on the same enemy.", TargetType: TargetOtherAlive,
			Cost: 10, Melee: true, Range: 1, PowerLevels: []float64{0.8, 1.2, 1.8}, behavior: comboBehavior{}}
	},
	"drain": func() *Skill {
		return &Skill{Name: "Drain", Description: "Steals life from an enemy.", TargetType: TargetOtherAlive,
			Cost: 15, Range: 4, Element: Dark, PowerLevels: []float64{1.0, 0.5}, behavior: drainBehavior{}}
	},
	"bleed": func() *Skill {
		return &Skill{Name: "Bleed", Description: "Wounds an enemy, which keeps bleeding.", TargetType: TargetOtherAlive,
			Cost: 10, Melee: true, Range: 1, PowerLevels: []float64{0.6, 0.3}, Statuses: []*StatusType{Bleed},
			StatusDuration: 3, behavior: damageAndStatusBehavior{}}
	},
	"fireball": func() *Skill {
		return &Skill{Name: "Fireball", Description: "Burns an enemy.", TargetType: TargetOtherAlive,
			Cost: 25, Range: 4, Element: Fire, PowerLevels: []float64{1.2, 0.4}, Statuses: []*StatusType{Burn},
			StatusDuration: 2, behavior: damageAndStatusBehavior{}}
	},
	"weaken": func() *Skill {
		return &Skill{Name: "Weaken", Description: "Lowers the attack and defense of an enemy.", TargetType: TargetOtherAlive,
			Cost: 20, Range: 4, Element: Dark, PowerLevels: []float64{0.4, 1},
			Statuses: []*StatusType{AttackMalus, DefenseMalus}, behavior: damageAndStatusBehavior{}}
	},
	"rage": func() *Skill {
		return &Skill{Name: "Rage", Description: "Hits and raises the user's attack.", TargetType: TargetOtherAlive,
			Cost: 15, Melee: true, Range: 1, PowerLevels: []float64{0.7, 1}, Statuses: []*StatusType{AttackBonus},
			behavior: damageAndStatusBehavior{self: true}}
	},
	"heal": func() *Skill {
		return &Skill{Name: "Heal", Description: "Heals a wounded ally.", TargetType: TargetSameDamaged,
			Cost: 20, PowerLevels: []float64{1.5}, Element: Light, behavior: healBehavior{}}
	},
	"dual-heal": func() *Skill {
		return &Skill{Name: "Dual heal", Description: "Heals an ally and the user.", TargetType: TargetSameDamaged,
			Cost: 25, PowerLevels: []float64{1.2, 0.6}, Element: Light, behavior: dualHealBehavior{}}
	},
	"regenerate": func() *Skill {
		return &Skill{Name: "Regenerate", Description: "Heals an ally over time.", TargetType: TargetSameDamaged,
			Cost: 15, PowerLevels: []float64{0.5}, Statuses: []*StatusType{Regen}, Element: Light,
			behavior: statusBehavior{heal: true}}
	},
	"protect": func() *Skill {
		return &Skill{Name: "Protect", Description: "Raises the defense of another ally.", TargetType: TargetSameAliveOther,
			Cost: 15, PowerLevels: []float64{1}, Statuses: []*StatusType{DefenseBonus}, behavior: statusBehavior{}}
	},
	"revive": func() *Skill {
		return &Skill{Name: "Revive", Description: "Brings a fallen ally back.", TargetType: TargetSameDead,
			Cost: 40, CooldownMax: 3, Element: Light, behavior: reviveBehavior{}}
	},
	"alter-time": func() *Skill {
		return &Skill{Name: "Alter time", Description: "Extends an ally's statuses or shortens an enemy's.", TargetType: TargetAnyAlive,
			Cost: 15, Range: 4, behavior: alterTimeBehavior{}}
	},
	"mass-alter-time": func() *Skill {
		return &Skill{Name: "Mass alter time", Description: "Alter time on everyone under a status.", TargetType: TargetNone,
			Cost: 35, CooldownMax: 2, behavior: massAlterTimeBehavior{minimum: 3}}
	},
	"defend": func() *Skill {
		return &Skill{Name: "Defend", Description: "Takes less damage until the next turn.", TargetType: TargetNone,
			Statuses: []*StatusType{Defend}, PowerLevels: []float64{1}, behavior: statusBehavior{}}
	},
	"meditate": func() *Skill {
		return &Skill{Name: "Meditate", Description: "Recovers energy.", TargetType: TargetNone,
			Cost: -25, behavior: flavorBehavior{message: event.SkillUsed}}
	},
	"wait":    newWait,
	"leave":   func() *Skill { return &Skill{Name: "Leave", Description: "Tries to run away.", behavior: flavorBehavior{message: event.Left}} },
	"message": func() *Skill { return &Skill{Name: "Message", behavior: flavorBehavior{message: event.Flavor}} },
	"advance": func() *Skill {
		return &Skill{Name: "Advance", Description: "Moves one row closer.", TargetType: TargetNone, behavior: advanceBehavior{}}
	},

	"bite": func() *Skill {
		return &Skill{Name: "Bite", TargetType: TargetOtherAlive, Melee: true, Range: 1,
			PowerLevels: []float64{1.0}, behavior: damageBehavior{}}
	},
	"claw": func() *Skill {
		return &Skill{Name: "Claw", TargetType: TargetOtherAliveDouble, Melee: true, Range: 1, CooldownMax: 1,
			PowerLevels: []float64{0.7}, behavior: damageBehavior{}}
	},
	"spit": func() *Skill {
		return &Skill{Name: "Spit", TargetType: TargetOtherAlive, Range: 3, Element: Poison,
			PowerLevels: []float64{0.5, 0.3}, Statuses: []*StatusType{Venom}, StatusDuration: 3,
			behavior: damageAndStatusBehavior{}}
	},
	"roar": func() *Skill {
		return &Skill{Name: "Roar", TargetType: TargetOtherFront, Range: 3, CooldownMax: 2,
			PowerLevels: []float64{1}, Statuses: []*StatusType{AttackMalus}, behavior: statusBehavior{}}
	},
	"frost-breath": func() *Skill {
		return &Skill{Name: "Frost breath", TargetType: TargetOtherAliveTriple, Range: 3, CooldownMax: 2, Element: Ice,
			PowerLevels: []float64{0.8}, behavior: damageBehavior{}}
	},
	"quake": func() *Skill {
		return &Skill{Name: "Quake", TargetType: TargetAllAlive, Range: 4, CooldownMax: 3,
			PowerLevels: []float64{0.5}, Modifiers: []Modifier{CannotBeDodged}, behavior: damageBehavior{}}
	},
	"dark-pact": func() *Skill {
		return &Skill{Name: "Dark pact", TargetType: TargetSameAlive, CooldownMax: 3,
			PowerLevels: []float64{1}, Statuses: []*StatusType{AttackBonus, DefenseBonus}, behavior: statusBehavior{}}
	},
}

func newWait() *Skill {
	return &Skill{Key: "wait", Name: "Wait", Description: "Does nothing.", behavior: flavorBehavior{message: event.Waited}}
}

// NewSkill builds the catalog skill registered under key.
func NewSkill(key string) (*Skill, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	factory, ok := skillFactories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, key)
	}
	s := factory()
	s.Key = key
	return s, nil
}

// NewMessage builds a flavor skill saying text.
func NewMessage(text string) *Skill {
	s, _ := NewSkill("message")
	s.Description = text
	return s
}

// SkillKeys lists the catalog, sorted.
func SkillKeys() []string {
	keys := make([]string, 0, len(skillFactories))
	for k := range skillFactories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
