package combat

import "draconis/internal/types"

// ExpirationType selects when a status loses one point of duration.
type ExpirationType int

const (
	// EndOfRoundExpiration ticks once per round.
	EndOfRoundExpiration ExpirationType = iota
	// OriginTurnStartExpiration ticks when the creature that applied the
	// status starts its turn.
	OriginTurnStartExpiration
	// OriginTurnEndExpiration ticks when the creature that applied the
	// status ends its turn.
	OriginTurnEndExpiration
)

// OnHitEffect is what a passive status does to whoever hits its bearer.
type OnHitEffect int

const (
	NoOnHit OnHitEffect = iota
	ReflectOnHit
	DotOnHit
	StatusOnHit
)

// StatusType describes a buff or debuff. Values are shared and never mutated.
type StatusType struct {
	Name        string
	Improvement bool
	Expiration  ExpirationType
	Duration    int
	Dot         bool
	Hot         bool
	// Cumulative statuses from different origins stack as separate
	// applications.
	Cumulative bool

	OnHit       OnHitEffect
	OnHitStatus *StatusType
	OnHitPower  float64
	MeleeOnly   bool
}

// StatusApplication is a live status on a creature. Origin is looked up by
// ID and may no longer exist.
type StatusApplication struct {
	Type          *StatusType
	Power         float64
	Origin        types.CreatureID
	Element       ElementType
	RemainingTime int
}

// NewStatusApplication creates an application of t coming from origin. A
// zero duration uses the type duration.
func NewStatusApplication(t *StatusType, power float64, origin Combatant, duration int) *StatusApplication {
	if duration <= 0 {
		duration = t.Duration
	}
	app := &StatusApplication{Type: t, Power: power, RemainingTime: duration}
	if origin != nil {
		app.Origin = origin.Base().ID
	}
	return app
}

// DamageSource implementation: a status ticking is never dodged.
func (a *StatusApplication) Dodgeable() bool            { return false }
func (a *StatusApplication) DamageElement() ElementType { return a.Element }
func (a *StatusApplication) IsMelee() bool              { return false }
func (a *StatusApplication) FromSkill() bool            { return false }

// ApplyStatus adds app in front of the statuses. It first removes the
// application it replaces: any one of the same non-cumulative type, or the
// one of the same cumulative type from the same origin.
func (c *Creature) ApplyStatus(app *StatusApplication) {
	for i, existing := range c.Statuses {
		if existing.Type != app.Type {
			continue
		}
		if !app.Type.Cumulative || existing.Origin == app.Origin {
			c.Statuses = append(c.Statuses[:i], c.Statuses[i+1:]...)
			break
		}
	}
	c.Statuses = append([]*StatusApplication{app}, c.Statuses...)
}

// DecreaseStatusesDuration decrements the statuses expiring on trigger and
// removes the expired ones. A non zero origin restricts it to the statuses
// applied by that creature.
func (c *Creature) DecreaseStatusesDuration(trigger ExpirationType, origin types.CreatureID) {
	kept := c.Statuses[:0]
	for _, app := range c.Statuses {
		if app.Type.Expiration == trigger && (origin == types.NoCreature || app.Origin == origin) {
			app.RemainingTime--
			if app.RemainingTime <= 0 {
				continue
			}
		}
		kept = append(kept, app)
	}
	for i := len(kept); i < len(c.Statuses); i++ {
		c.Statuses[i] = nil
	}
	c.Statuses = kept
}

// AlterStatusesDuration shifts every status by delta and drops the expired.
func (c *Creature) AlterStatusesDuration(delta int) {
	kept := c.Statuses[:0]
	for _, app := range c.Statuses {
		app.RemainingTime += delta
		if app.RemainingTime > 0 {
			kept = append(kept, app)
		}
	}
	for i := len(kept); i < len(c.Statuses); i++ {
		c.Statuses[i] = nil
	}
	c.Statuses = kept
}

// HasStatus reports whether any application of t is active.
func (c *Creature) HasStatus(t *StatusType) bool {
	for _, app := range c.Statuses {
		if app.Type == t {
			return true
		}
	}
	return false
}

// StatusFrom returns the application of t applied by origin, if any.
func (c *Creature) StatusFrom(t *StatusType, origin types.CreatureID) *StatusApplication {
	for _, app := range c.Statuses {
		if app.Type == t && app.Origin == origin {
			return app
		}
	}
	return nil
}

// RemoveStatus drops one application.
func (c *Creature) RemoveStatus(target *StatusApplication) {
	for i, app := range c.Statuses {
		if app == target {
			c.Statuses = append(c.Statuses[:i], c.Statuses[i+1:]...)
			return
		}
	}
}

// ClearStatuses drops every application.
func (c *Creature) ClearStatuses() {
	c.Statuses = nil
}

// Improvements and Deteriorations split the statuses for display.
func (c *Creature) Improvements() []*StatusApplication {
	return c.filterStatuses(true)
}

func (c *Creature) Deteriorations() []*StatusApplication {
	return c.filterStatuses(false)
}

func (c *Creature) filterStatuses(improvement bool) []*StatusApplication {
	var out []*StatusApplication
	for _, app := range c.Statuses {
		if app.Type.Improvement == improvement {
			out = append(out, app)
		}
	}
	return out
}
