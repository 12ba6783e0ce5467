package combat

import (
	"fmt"
	"strings"
)

// passiveDuration keeps a passive status for the whole encounter.
const passiveDuration = 999

var (
	Defend = &StatusType{Name: "Defend", Improvement: true, Expiration: OriginTurnStartExpiration, Duration: 1}

	AttackBonus  = &StatusType{Name: "Attack bonus", Improvement: true, Expiration: EndOfRoundExpiration, Duration: 3}
	AttackMalus  = &StatusType{Name: "Attack malus", Expiration: EndOfRoundExpiration, Duration: 3}
	DefenseBonus = &StatusType{Name: "Defense bonus", Improvement: true, Expiration: EndOfRoundExpiration, Duration: 3}
	DefenseMalus = &StatusType{Name: "Defense malus", Expiration: EndOfRoundExpiration, Duration: 3}

	Bleed = &StatusType{Name: "Bleed", Expiration: EndOfRoundExpiration, Duration: 3, Dot: true, Cumulative: true}
	Venom = &StatusType{Name: "Venom", Expiration: EndOfRoundExpiration, Duration: 3, Dot: true, Cumulative: true}
	Burn  = &StatusType{Name: "Burn", Expiration: EndOfRoundExpiration, Duration: 2, Dot: true}
	Regen = &StatusType{Name: "Regen", Improvement: true, Expiration: EndOfRoundExpiration, Duration: 3, Hot: true, Cumulative: true}

	// Combo markers survive until the end of the origin's next turn.
	Combo1 = &StatusType{Name: "Combo 1", Expiration: OriginTurnEndExpiration, Duration: 2, Cumulative: true}
	Combo2 = &StatusType{Name: "Combo 2", Expiration: OriginTurnEndExpiration, Duration: 2, Cumulative: true}

	Thorns = &StatusType{Name: "Thorns", Improvement: true, Expiration: EndOfRoundExpiration, Duration: passiveDuration,
		OnHit: ReflectOnHit, MeleeOnly: true}
	Venomous = &StatusType{Name: "Venomous", Improvement: true, Expiration: EndOfRoundExpiration, Duration: passiveDuration,
		OnHit: DotOnHit, OnHitStatus: Venom, OnHitPower: 0.2, MeleeOnly: true}
	Chill = &StatusType{Name: "Chill", Improvement: true, Expiration: EndOfRoundExpiration, Duration: passiveDuration,
		OnHit: StatusOnHit, OnHitStatus: AttackMalus}
)

var statusTypesByKey = map[string]*StatusType{
	"defend":        Defend,
	"attack-bonus":  AttackBonus,
	"attack-malus":  AttackMalus,
	"defense-bonus": DefenseBonus,
	"defense-malus": DefenseMalus,
	"bleed":         Bleed,
	"venom":         Venom,
	"burn":          Burn,
	"regen":         Regen,
	"thorns":        Thorns,
	"venomous":      Venomous,
	"chill":         Chill,
}

// LookupStatusType finds a status type by catalog key.
func LookupStatusType(key string) (*StatusType, error) {
	if t, ok := statusTypesByKey[strings.ToLower(strings.TrimSpace(key))]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, key)
}

// NewPassive returns an encounter long application of a passive status.
func NewPassive(t *StatusType, bearer Combatant) *StatusApplication {
	return NewStatusApplication(t, t.OnHitPower, bearer, passiveDuration)
}
