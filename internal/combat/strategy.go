package combat

import "draconis/internal/utils"

// Strategy picks the skill an enemy uses this turn, or nil.
type Strategy interface {
	ChooseSkill(f *Fight) *Skill
}

// ChooseAction resolves a strategy into a skill and its targets. Without a
// usable skill the creature waits.
func ChooseAction(strategy Strategy, f *Fight) (*Skill, []Combatant) {
	var skill *Skill
	if strategy != nil {
		skill = strategy.ChooseSkill(f)
	}
	if skill == nil {
		return f.WaitSkill(), nil
	}
	return skill, ChooseTargets(skill, f)
}

// ChooseTargets aims at a random usable creature and expands it into the
// skill area. Skills without target return nil.
func ChooseTargets(skill *Skill, f *Fight) []Combatant {
	if !skill.NeedsTarget() {
		return nil
	}
	candidates := skill.UsableTargets(f)
	if len(candidates) == 0 {
		return nil
	}
	aimed := candidates[0]
	switch skill.TargetType {
	case TargetOtherAll, TargetSameAll, TargetAllAlive, TargetOtherFront:
	default:
		aimed = candidates[f.Rand.Intn(len(candidates))]
	}
	return skill.Targets(aimed, f)
}

// PriorityStrategy returns the first skill its strategies offer.
type PriorityStrategy struct {
	Strategies []Strategy
}

func (p *PriorityStrategy) ChooseSkill(f *Fight) *Skill {
	for _, s := range p.Strategies {
		if skill := s.ChooseSkill(f); skill != nil {
			return skill
		}
	}
	return nil
}

// SequentialStrategy cycles through its strategies, skipping those with
// nothing to offer. The next call starts after the last one used.
type SequentialStrategy struct {
	Strategies []Strategy
	cursor     int
}

func (s *SequentialStrategy) ChooseSkill(f *Fight) *Skill {
	n := len(s.Strategies)
	for i := 0; i < n; i++ {
		idx := (s.cursor + i) % n
		if skill := s.Strategies[idx].ChooseSkill(f); skill != nil {
			s.cursor = (idx + 1) % n
			return skill
		}
	}
	return nil
}

// WeightedEntry is one choice of a WeightedStrategy.
type WeightedEntry struct {
	Weight   float64
	Strategy Strategy
}

// WeightedStrategy draws among the strategies that currently offer a
// skill, proportionally to their weights. Strategies with nothing to offer
// leave the draw along with their weight.
type WeightedStrategy struct {
	Entries []WeightedEntry
}

func (w *WeightedStrategy) ChooseSkill(f *Fight) *Skill {
	var skills []*Skill
	var weights []float64
	for _, e := range w.Entries {
		if skill := e.Strategy.ChooseSkill(f); skill != nil {
			skills = append(skills, skill)
			weights = append(weights, e.Weight)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills[utils.ChooseWeighted(f.Rand, weights)]
}

// Branch pairs a predicate with the strategy used when it holds. A nil
// predicate always holds.
type Branch struct {
	When     Predicate
	Strategy Strategy
}

// ConditionalStrategy uses the first branch whose predicate holds and
// whose strategy offers a skill.
type ConditionalStrategy struct {
	Branches []Branch
}

func (c *ConditionalStrategy) ChooseSkill(f *Fight) *Skill {
	for _, b := range c.Branches {
		if b.When != nil && !b.When(f.ActiveCreature, f) {
			continue
		}
		if skill := b.Strategy.ChooseSkill(f); skill != nil {
			return skill
		}
	}
	return nil
}
