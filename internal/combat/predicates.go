package combat

import (
	"fmt"
	"sort"
)

// Predicate is a condition on the acting creature and the fight.
type Predicate func(c Combatant, f *Fight) bool

var predicates = map[string]Predicate{
	"always": func(Combatant, *Fight) bool { return true },
	"life_below_half": func(c Combatant, _ *Fight) bool {
		return c != nil && c.Base().LifePercent() < 50
	},
	"life_below_quarter": func(c Combatant, _ *Fight) bool {
		return c != nil && c.Base().LifePercent() < 25
	},
	"ally_damaged": func(c Combatant, f *Fight) bool {
		if c == nil {
			return false
		}
		fm := f.FormationOf(c)
		if fm == nil {
			return false
		}
		for _, ally := range fm.Alive() {
			if ally.Base().IsDamaged() {
				return true
			}
		}
		return false
	},
	"first_step": stepIs(func(step int) bool { return step == 0 }),
	"even_step":  stepIs(func(step int) bool { return step%2 == 0 }),
	"odd_step":   stepIs(func(step int) bool { return step%2 == 1 }),
	"phase_one":  phaseIs(0),
	"phase_two":  phaseIs(1),
	"alone": func(c Combatant, f *Fight) bool {
		if c == nil {
			return false
		}
		fm := f.FormationOf(c)
		return fm != nil && len(fm.Alive()) == 1
	},
}

func stepIs(check func(int) bool) Predicate {
	return func(c Combatant, _ *Fight) bool {
		e, ok := c.(*Enemy)
		return ok && check(e.Step)
	}
}

func phaseIs(phase int) Predicate {
	return func(c Combatant, _ *Fight) bool {
		e, ok := c.(*Enemy)
		return ok && e.Phase == phase
	}
}

// LookupPredicate returns the predicate registered under name.
func LookupPredicate(name string) (Predicate, error) {
	p, ok := predicates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return p, nil
}

// PredicateNames lists the registered predicates, sorted.
func PredicateNames() []string {
	names := make([]string, 0, len(predicates))
	for n := range predicates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
