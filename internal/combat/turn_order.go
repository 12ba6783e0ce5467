package combat

// TurnOrder is the initiative queue. Its head is the creature whose turn
// it is; the EndOfRound sentinel marks where a round ends. The queue only
// references creatures, the party and the opposition own them.
type TurnOrder struct {
	queue []Combatant
}

// NewTurnOrder shuffles both sides and spreads the smaller one evenly over
// the larger. An enemy appears once per action it gets each round. Without
// enemies the order stays empty.
func NewTurnOrder(characters []*Character, enemies []*Enemy, sentinel *EndOfRound, r Rand) *TurnOrder {
	to := &TurnOrder{}
	if len(enemies) == 0 {
		return to
	}

	party := make([]Combatant, 0, len(characters))
	for _, c := range characters {
		party = append(party, c)
	}
	var opposition []Combatant
	for _, e := range enemies {
		for i := 0; i < e.ActionsPerTurn; i++ {
			opposition = append(opposition, e)
		}
	}
	shuffle(party, r)
	shuffle(opposition, r)

	big, small := opposition, party
	if len(party) > len(opposition) {
		big, small = party, opposition
	}
	to.queue = interleave(big, small)
	if sentinel != nil {
		to.queue = append(to.queue, sentinel)
	}
	return to
}

// interleave walks big and inserts the next element of small each time
// its proportional slot is reached.
func interleave(big, small []Combatant) []Combatant {
	out := make([]Combatant, 0, len(big)+len(small))
	bl, sl := float64(len(big)), float64(len(small))
	sp := 0
	for bp, c := range big {
		out = append(out, c)
		for sp < len(small) && float64(sp+1)/sl-1/(2*sl) <= float64(bp+1)/bl {
			out = append(out, small[sp])
			sp++
		}
	}
	return append(out, small[sp:]...)
}

// shuffle is a Fisher-Yates shuffle.
func shuffle(cs []Combatant, r Rand) {
	for i := len(cs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cs[i], cs[j] = cs[j], cs[i]
	}
}

// Current is the head of the queue, nil when empty.
func (to *TurnOrder) Current() Combatant {
	if len(to.queue) == 0 {
		return nil
	}
	return to.queue[0]
}

// NextCreature moves the head to the back and returns the new head.
func (to *TurnOrder) NextCreature() Combatant {
	if len(to.queue) == 0 {
		return nil
	}
	head := to.queue[0]
	copy(to.queue, to.queue[1:])
	to.queue[len(to.queue)-1] = head
	return to.queue[0]
}

// RemoveDeadEnemies drops every entry of a dead enemy. Characters stay:
// they can be revived.
func (to *TurnOrder) RemoveDeadEnemies() {
	kept := to.queue[:0]
	for _, c := range to.queue {
		if c.IsEnemy() && c.Base().IsDead() {
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(to.queue); i++ {
		to.queue[i] = nil
	}
	to.queue = kept
}

// Len is the number of entries, the sentinel included.
func (to *TurnOrder) Len() int { return len(to.queue) }

// Creatures returns a copy of the queue, head first.
func (to *TurnOrder) Creatures() []Combatant {
	out := make([]Combatant, len(to.queue))
	copy(out, to.queue)
	return out
}
