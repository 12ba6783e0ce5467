package combat

// Efficiency tells how a hit or heal landed.
type Efficiency int

const (
	Normal Efficiency = iota
	Critical
	Dodge
)

func (e Efficiency) String() string {
	switch e {
	case Critical:
		return "critical"
	case Dodge:
		return "dodge"
	default:
		return "normal"
	}
}

// Direction is the sign of a life change.
type Direction int

const (
	Loss Direction = iota
	Gain
)

// LifeChange is the result of the damage or heal formula. Amount is never
// negative, Direction carries the sign.
type LifeChange struct {
	Amount     int
	Efficiency Efficiency
	Direction  Direction
}

// Signed returns the amount with the direction applied.
func (lc LifeChange) Signed() int {
	if lc.Direction == Loss {
		return -lc.Amount
	}
	return lc.Amount
}

// IsSuccess is false for a dodged attack.
func (lc LifeChange) IsSuccess() bool { return lc.Efficiency != Dodge }

// IsCritical reports a critical hit or heal.
func (lc LifeChange) IsCritical() bool { return lc.Efficiency == Critical }

func loss(amount int) LifeChange { return LifeChange{Amount: amount, Direction: Loss} }
func gain(amount int) LifeChange { return LifeChange{Amount: amount, Direction: Gain} }
