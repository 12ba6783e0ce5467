package ui

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"draconis/internal/combat"
	"draconis/internal/event"
)

// Narration keys.
const (
	keyHit         = "hit"
	keyCritical    = "hit.critical"
	keyDodge       = "hit.dodge"
	keyCombo       = "hit.combo"
	keyStatus      = "status"
	keyHeal        = "heal"
	keyHealCrit    = "heal.critical"
	keyDrain       = "drain"
	keyDotLoss     = "dot.loss"
	keyDotGain     = "dot.gain"
	keyRevive      = "revive"
	keyAlterTime   = "time.alter"
	keyMassTime    = "time.mass"
	keyAdvance     = "advance"
	keyWait        = "wait"
	keyLeave       = "leave"
	keyFlavor      = "flavor"
	keyDied        = "died"
	keyRound       = "round"
	keyEncounter   = "encounter"
	keyVictory     = "victory"
	keyDefeat      = "defeat"
	keyDungeonEnd  = "dungeon.end"
	keyFallbackMsg = "fallback"
)

func init() {
	en := language.English
	for key, format := range map[string]string{
		keyHit:         "%s uses %s on %s: %d damage.",
		keyCritical:    "%s uses %s on %s: critical, %d damage!",
		keyDodge:       "%s dodges %s from %s.",
		keyCombo:       "%s lands combo step %d on %s: %d damage.",
		keyStatus:      "%s gets %s.",
		keyHeal:        "%s heals %s for %d.",
		keyHealCrit:    "%s heals %s for %d, critical!",
		keyDrain:       "%s drains %s: %d damage, %d healed.",
		keyDotLoss:     "%s suffers %d from its afflictions.",
		keyDotGain:     "%s recovers %d over time.",
		keyRevive:      "%s brings %s back with %d life.",
		keyAdvance:     "%s moves forward.",
		keyWait:        "%s waits.",
		keyLeave:       "%s looks for a way out, but there is none.",
		keyFlavor:      "%s: %s",
		keyDied:        "%s dies.",
		keyRound:       "Round %d begins.",
		keyEncounter:   "Encounter %d of %d.",
		keyVictory:     "Victory in encounter %d!",
		keyDefeat:      "The party has fallen.",
		keyFallbackMsg: "%s happened.",
	} {
		if err := message.SetString(en, key, format); err != nil {
			panic(err)
		}
	}
	mustSet(en, keyAlterTime, plural.Selectf(3, "%d",
		"=1", "%s shifts the statuses of %s by %d turn.",
		"other", "%s shifts the statuses of %s by %d turns."))
	mustSet(en, keyMassTime, plural.Selectf(2, "%d",
		"=1", "%s bends time around %d creature.",
		"other", "%s bends time around %d creatures."))
	mustSet(en, keyDungeonEnd, plural.Selectf(1, "%d",
		"=1", "The dungeon run is over after %d encounter.",
		"other", "The dungeon run is over after %d encounters."))
}

func mustSet(tag language.Tag, key string, msg ...catalog.Message) {
	if err := message.Set(tag, key, msg...); err != nil {
		panic(err)
	}
}

// Narrator turns fight events into log lines.
type Narrator struct {
	printer *message.Printer
}

// NewNarrator creates an English narrator.
func NewNarrator() *Narrator {
	return &Narrator{printer: message.NewPrinter(language.English)}
}

// Narrate returns the lines describing e. Events without a combat.Message
// payload are described by their type.
func (n *Narrator) Narrate(e event.Event) []string {
	msg, ok := event.Payload[combat.Message](e)
	if !ok {
		return []string{n.printer.Sprintf(keyFallbackMsg, string(e.Type))}
	}
	it := items(msg.Items)
	p := n.printer

	switch e.Type {
	case event.DamageDealt:
		lines := []string{n.hit(it)}
		if step, ok := it.int(4); ok && it.change(3).IsSuccess() {
			lines[0] = p.Sprintf(keyCombo, it.name(0), step+1, it.name(2), it.change(3).Amount)
		}
		if apps := it.statuses(4); len(apps) > 0 && it.change(3).IsSuccess() {
			lines = append(lines, p.Sprintf(keyStatus, it.name(2), statusNames(apps)))
		}
		return lines
	case event.StatusApplied:
		return []string{p.Sprintf(keyStatus, it.name(2), statusNames(it.statuses(3)))}
	case event.Healed:
		lines := []string{n.heal(it.name(0), it.name(2), it.change(3))}
		if self, ok := it.get(4).(combat.LifeChange); ok {
			lines = append(lines, n.heal(it.name(0), it.name(0), self))
		}
		return lines
	case event.DrainDone:
		return []string{p.Sprintf(keyDrain, it.name(0), it.name(2), it.change(3).Amount, it.change(4).Amount)}
	case event.DotsAndHots:
		lc := it.change(1)
		if lc.Direction == combat.Gain {
			return []string{p.Sprintf(keyDotGain, it.name(0), lc.Amount)}
		}
		return []string{p.Sprintf(keyDotLoss, it.name(0), lc.Amount)}
	case event.Revived:
		return []string{p.Sprintf(keyRevive, it.name(0), it.name(2), it.change(3).Amount)}
	case event.TimeAltered:
		if delta, ok := it.int(3); ok {
			return []string{p.Sprintf(keyAlterTime, it.name(0), it.name(2), delta)}
		}
		count, _ := it.int(2)
		return []string{p.Sprintf(keyMassTime, it.name(0), count)}
	case event.Advanced:
		return []string{p.Sprintf(keyAdvance, it.name(0))}
	case event.Waited:
		return []string{p.Sprintf(keyWait, it.name(0))}
	case event.Left:
		return []string{p.Sprintf(keyLeave, it.name(0))}
	case event.Flavor:
		text := ""
		if s, ok := it.get(1).(*combat.Skill); ok {
			text = s.Description
		}
		return []string{p.Sprintf(keyFlavor, it.name(0), text)}
	case event.CreatureDied:
		return []string{p.Sprintf(keyDied, it.name(0))}
	case event.NewRound:
		round, _ := it.int(0)
		return []string{p.Sprintf(keyRound, round)}
	case event.EncounterStarted:
		i, _ := it.int(0)
		count, _ := it.int(1)
		return []string{p.Sprintf(keyEncounter, i, count)}
	case event.Victory:
		i, _ := it.int(0)
		return []string{p.Sprintf(keyVictory, i)}
	case event.Defeat:
		return []string{p.Sprintf(keyDefeat)}
	case event.DungeonEnded:
		cleared, _ := it.int(0)
		return []string{p.Sprintf(keyDungeonEnd, cleared)}
	default:
		return []string{p.Sprintf(keyFallbackMsg, string(e.Type))}
	}
}

func (n *Narrator) hit(it items) string {
	lc := it.change(3)
	switch lc.Efficiency {
	case combat.Dodge:
		return n.printer.Sprintf(keyDodge, it.name(2), it.name(1), it.name(0))
	case combat.Critical:
		return n.printer.Sprintf(keyCritical, it.name(0), it.name(1), it.name(2), lc.Amount)
	default:
		return n.printer.Sprintf(keyHit, it.name(0), it.name(1), it.name(2), lc.Amount)
	}
}

func (n *Narrator) heal(healer, target string, lc combat.LifeChange) string {
	if lc.IsCritical() {
		return n.printer.Sprintf(keyHealCrit, healer, target, lc.Amount)
	}
	return n.printer.Sprintf(keyHeal, healer, target, lc.Amount)
}

// items reads message items by position, tolerating missing ones.
type items []any

func (it items) get(i int) any {
	if i < 0 || i >= len(it) {
		return nil
	}
	return it[i]
}

func (it items) name(i int) string {
	switch v := it.get(i).(type) {
	case combat.Combatant:
		return v.Base().Name
	case *combat.Skill:
		return v.Name
	default:
		return "?"
	}
}

func (it items) change(i int) combat.LifeChange {
	lc, _ := it.get(i).(combat.LifeChange)
	return lc
}

func (it items) int(i int) (int, bool) {
	v, ok := it.get(i).(int)
	return v, ok
}

func (it items) statuses(from int) []*combat.StatusApplication {
	var out []*combat.StatusApplication
	for i := from; i < len(it); i++ {
		if app, ok := it[i].(*combat.StatusApplication); ok {
			out = append(out, app)
		}
	}
	return out
}

func statusNames(apps []*combat.StatusApplication) string {
	names := make([]string, 0, len(apps))
	for _, app := range apps {
		names = append(names, strings.ToLower(app.Type.Name))
	}
	return strings.Join(names, ", ")
}
