package defs

import (
	"errors"
	"fmt"
	"strings"

	"draconis/internal/combat"
	"draconis/internal/config"
	"draconis/internal/types"
)

func parseStats(s Stats) (combat.Stats, error) {
	ct, err := combat.ParseCreatureType(s.Type)
	if err != nil {
		return combat.Stats{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	out := combat.Stats{
		Type:           ct,
		Name:           s.Name,
		Class:          s.Class,
		LifeMax:        s.Life,
		EnergyMax:      s.Energy,
		Power:          s.Power,
		DodgeChance:    s.Dodge,
		CriticalChance: s.Critical,
		CriticalBonus:  s.CritBonus,
	}
	for _, name := range s.Specialties {
		st, err := combat.ParseCreatureType(name)
		if err != nil {
			return combat.Stats{}, fmt.Errorf("%s specialty: %w", s.Name, err)
		}
		out.Specialties = append(out.Specialties, st)
	}
	return out, nil
}

func buildCharacter(def CharacterDefinition, id types.CreatureID) (*combat.Character, error) {
	stats, err := parseStats(def.Stats)
	if err != nil {
		return nil, err
	}
	skills := make([]*combat.Skill, 0, len(def.Skills))
	for _, key := range def.Skills {
		s, err := combat.NewSkill(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
		skills = append(skills, s)
	}
	return combat.NewCharacter(id, stats, def.Level, def.Mana, skills...), nil
}

// BuildParty creates the party at full life, in its rows.
func (c *Catalog) BuildParty(ids *types.IDAllocator) (*combat.Party, error) {
	party := combat.NewParty()
	for _, def := range c.Party {
		ch, err := buildCharacter(def, ids.Next())
		if err != nil {
			return nil, err
		}
		if err := party.Add(def.Row, ch); err != nil {
			return nil, err
		}
	}
	return party, nil
}

// BuildEnemy creates one enemy with its own skills and strategy. The
// multiplier scales life and power; champions are scaled once more.
func (c *Catalog) BuildEnemy(key string, champion bool, multiplier float64, id types.CreatureID) (*combat.Enemy, error) {
	def, ok := c.Enemies[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, key)
	}
	stats, err := parseStats(def.Stats)
	if err != nil {
		return nil, err
	}

	resistances := make(map[combat.ElementType]float64, len(def.Resistances))
	for name, r := range def.Resistances {
		el, err := combat.ParseElementType(name)
		if err != nil {
			return nil, fmt.Errorf("%s resistance: %w", key, err)
		}
		resistances[el] = r
	}

	b := strategyBuilder{skills: make(map[string]*combat.Skill)}
	strategy, err := b.build(def.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%s strategy: %w", key, err)
	}

	e := combat.NewEnemy(id, stats, combat.EnemyTraits{
		Resistances:    resistances,
		Champion:       champion,
		ActionsPerTurn: def.Actions,
		Size:           def.Size,
		Strategy:       strategy,
		Skills:         b.order,
	})
	for _, name := range def.Passives {
		st, err := combat.LookupStatusType(name)
		if err != nil {
			return nil, fmt.Errorf("%s passive: %w", key, err)
		}
		e.ApplyStatus(combat.NewPassive(st, e))
	}

	if multiplier > 0 && multiplier != 1 {
		e.Scale(multiplier)
	}
	if champion {
		e.Scale(config.ChampionMultiplier)
	}
	return e, nil
}

// strategyBuilder turns a strategy tree into combat strategies. A skill
// named twice in one tree is the same instance, so it shares its cooldown.
type strategyBuilder struct {
	skills map[string]*combat.Skill
	order  []*combat.Skill
}

func (b *strategyBuilder) skill(key string) (*combat.Skill, error) {
	if s, ok := b.skills[key]; ok {
		return s, nil
	}
	s, err := combat.NewSkill(key)
	if err != nil {
		return nil, err
	}
	b.skills[key] = s
	b.order = append(b.order, s)
	return s, nil
}

func (b *strategyBuilder) build(def StrategyDefinition) (combat.Strategy, error) {
	switch {
	case def.Skill != "":
		s, err := b.skill(def.Skill)
		if err != nil {
			return nil, err
		}
		return s, nil
	case def.Say != "":
		return combat.NewMessage(def.Say), nil
	case len(def.Priority) > 0:
		children, err := b.children(def.Priority)
		if err != nil {
			return nil, err
		}
		return &combat.PriorityStrategy{Strategies: children}, nil
	case len(def.Sequential) > 0:
		children, err := b.children(def.Sequential)
		if err != nil {
			return nil, err
		}
		return &combat.SequentialStrategy{Strategies: children}, nil
	case len(def.Weighted) > 0:
		entries := make([]combat.WeightedEntry, 0, len(def.Weighted))
		for _, child := range def.Weighted {
			s, err := b.build(child)
			if err != nil {
				return nil, err
			}
			weight := child.Weight
			if weight == 0 {
				weight = 1
			}
			entries = append(entries, combat.WeightedEntry{Weight: weight, Strategy: s})
		}
		return &combat.WeightedStrategy{Entries: entries}, nil
	case len(def.Conditional) > 0:
		branches := make([]combat.Branch, 0, len(def.Conditional))
		for _, child := range def.Conditional {
			s, err := b.build(child)
			if err != nil {
				return nil, err
			}
			branch := combat.Branch{Strategy: s}
			if child.When != "" {
				if branch.When, err = combat.LookupPredicate(child.When); err != nil {
					return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(combat.PredicateNames(), ", "))
				}
			}
			branches = append(branches, branch)
		}
		return &combat.ConditionalStrategy{Branches: branches}, nil
	default:
		return nil, errors.New("empty strategy")
	}
}

func (b *strategyBuilder) children(defs []StrategyDefinition) ([]combat.Strategy, error) {
	out := make([]combat.Strategy, 0, len(defs))
	for _, def := range defs {
		s, err := b.build(def)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// BuildEncounter creates the opposition of one fight, with duplicate names
// lettered.
func (c *Catalog) BuildEncounter(dungeon, fight int, multiplier float64, ids *types.IDAllocator) (*combat.Opposition, error) {
	if dungeon < 0 || dungeon >= len(c.Dungeons) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDungeon, dungeon)
	}
	d := c.Dungeons[dungeon]
	if fight < 0 || fight >= len(d.Encounters) {
		return nil, fmt.Errorf("%w: %d in %s", ErrUnknownFight, fight, d.Name)
	}

	o := combat.NewOpposition()
	for row, slots := range d.Encounters[fight].Rows {
		for _, slot := range slots {
			e, err := c.BuildEnemy(slot.Enemy, slot.Champion, multiplier, ids.Next())
			if err != nil {
				return nil, err
			}
			if err := o.Add(row, e); err != nil {
				return nil, fmt.Errorf("%s fight %d: %w", d.Name, fight, err)
			}
		}
	}
	o.ComputeEffectiveNames()
	return o, nil
}

// Scenario is one dungeon at a given difficulty.
type Scenario struct {
	Name       string
	catalog    *Catalog
	dungeon    int
	multiplier float64
}

// Scenario selects a dungeon.
func (c *Catalog) Scenario(dungeon int, multiplier float64) (*Scenario, error) {
	if dungeon < 0 || dungeon >= len(c.Dungeons) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDungeon, dungeon)
	}
	return &Scenario{Name: c.Dungeons[dungeon].Name, catalog: c, dungeon: dungeon, multiplier: multiplier}, nil
}

func (s *Scenario) NewParty(ids *types.IDAllocator) (*combat.Party, error) {
	return s.catalog.BuildParty(ids)
}

func (s *Scenario) EncounterCount() int {
	return len(s.catalog.Dungeons[s.dungeon].Encounters)
}

func (s *Scenario) NewEncounter(i int, ids *types.IDAllocator) (*combat.Opposition, error) {
	return s.catalog.BuildEncounter(s.dungeon, i, s.multiplier, ids)
}
