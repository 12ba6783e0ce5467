package combat

import (
	"fmt"

	"draconis/internal/config"
)

// Formation places combatants in rows, front first. A creature's Distance
// is its row index plus one.
type Formation struct {
	rows [][]Combatant
}

func newFormation(rows int) Formation {
	return Formation{rows: make([][]Combatant, rows)}
}

// RowCount is the number of rows, empty ones included.
func (fm *Formation) RowCount() int { return len(fm.rows) }

// Row returns the combatants of row i, left to right.
func (fm *Formation) Row(i int) []Combatant {
	if i < 0 || i >= len(fm.rows) {
		return nil
	}
	return fm.rows[i]
}

// Add appends c at the right end of row.
func (fm *Formation) Add(row int, c Combatant) error {
	if row < 0 || row >= len(fm.rows) {
		return fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	if !fm.fits(row, c) {
		return fmt.Errorf("%w: row %d cannot hold %s", ErrRowFull, row, c.Base().Name)
	}
	fm.rows[row] = append(fm.rows[row], c)
	c.Base().Distance = row + 1
	return nil
}

// All returns every combatant, row by row.
func (fm *Formation) All() []Combatant {
	var all []Combatant
	for _, row := range fm.rows {
		all = append(all, row...)
	}
	return all
}

// Alive returns the living combatants, row by row.
func (fm *Formation) Alive() []Combatant {
	var alive []Combatant
	for _, row := range fm.rows {
		for _, c := range row {
			if c.Base().IsAlive() {
				alive = append(alive, c)
			}
		}
	}
	return alive
}

// IsWiped is true when no combatant is alive.
func (fm *Formation) IsWiped() bool {
	for _, row := range fm.rows {
		for _, c := range row {
			if c.Base().IsAlive() {
				return false
			}
		}
	}
	return true
}

// Contains reports whether c stands in the formation.
func (fm *Formation) Contains(c Combatant) bool {
	_, _, ok := fm.position(c)
	return ok
}

// FrontDistance is the distance of the first row holding a living
// combatant, 0 when everyone is dead.
func (fm *Formation) FrontDistance() int {
	for i, row := range fm.rows {
		for _, c := range row {
			if c.Base().IsAlive() {
				return i + 1
			}
		}
	}
	return 0
}

// LeftNeighbor is the closest living combatant on the left of c in its row.
func (fm *Formation) LeftNeighbor(c Combatant) Combatant {
	row, idx, ok := fm.position(c)
	if !ok {
		return nil
	}
	for i := idx - 1; i >= 0; i-- {
		if n := fm.rows[row][i]; n.Base().IsAlive() {
			return n
		}
	}
	return nil
}

// RightNeighbor is the closest living combatant on the right of c in its row.
func (fm *Formation) RightNeighbor(c Combatant) Combatant {
	row, idx, ok := fm.position(c)
	if !ok {
		return nil
	}
	for i := idx + 1; i < len(fm.rows[row]); i++ {
		if n := fm.rows[row][i]; n.Base().IsAlive() {
			return n
		}
	}
	return nil
}

// MoveToRow takes c out of its row and puts it at the left or right end
// of another one.
func (fm *Formation) MoveToRow(c Combatant, row int, left bool) error {
	if row < 0 || row >= len(fm.rows) {
		return fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	from, _, ok := fm.position(c)
	if !ok {
		return fmt.Errorf("%s is not in the formation", c.Base().Name)
	}
	if from == row {
		return nil
	}
	if !fm.fits(row, c) {
		return fmt.Errorf("%w: row %d cannot hold %s", ErrRowFull, row, c.Base().Name)
	}
	fm.remove(c)
	if left {
		fm.rows[row] = append([]Combatant{c}, fm.rows[row]...)
	} else {
		fm.rows[row] = append(fm.rows[row], c)
	}
	c.Base().Distance = row + 1
	return nil
}

func (fm *Formation) fits(row int, c Combatant) bool {
	used := 0
	for _, other := range fm.rows[row] {
		used += sizeOf(other)
	}
	return used+sizeOf(c) <= config.RowCapacity
}

func (fm *Formation) position(c Combatant) (row, idx int, ok bool) {
	target := c.Base()
	for r, cs := range fm.rows {
		for i, other := range cs {
			if other.Base() == target {
				return r, i, true
			}
		}
	}
	return 0, 0, false
}

func (fm *Formation) remove(c Combatant) bool {
	row, idx, ok := fm.position(c)
	if !ok {
		return false
	}
	fm.rows[row] = append(fm.rows[row][:idx], fm.rows[row][idx+1:]...)
	return true
}

// Party is the player's side: a front and a back row.
type Party struct {
	Formation
}

// NewParty creates an empty party.
func NewParty() *Party {
	return &Party{Formation: newFormation(config.PartyRows)}
}

// Characters returns the party members in row order.
func (p *Party) Characters() []*Character {
	var out []*Character
	for _, c := range p.All() {
		if ch, ok := c.(*Character); ok {
			out = append(out, ch)
		}
	}
	return out
}

// Restore heals every member and clears their statuses and cooldowns.
func (p *Party) Restore() {
	for _, ch := range p.Characters() {
		ch.Restore()
		for _, s := range ch.Skills {
			s.Cooldown = 0
		}
	}
}

// Opposition is the enemy side: front, middle and back rows.
type Opposition struct {
	Formation
}

// NewOpposition creates an empty opposition.
func NewOpposition() *Opposition {
	return &Opposition{Formation: newFormation(config.OppositionRows)}
}

// Enemies returns every enemy in row order, dead ones included.
func (o *Opposition) Enemies() []*Enemy {
	var out []*Enemy
	for _, c := range o.All() {
		if e, ok := c.(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// AliveEnemies returns the living enemies in row order.
func (o *Opposition) AliveEnemies() []*Enemy {
	var out []*Enemy
	for _, e := range o.Enemies() {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// ComputeEffectiveNames letters enemies sharing a base name: "Wolf A",
// "Wolf B" in row then position order. Unique names are left bare.
func (o *Opposition) ComputeEffectiveNames() {
	enemies := o.Enemies()
	counts := make(map[string]int)
	for _, e := range enemies {
		counts[e.BaseName]++
	}
	seen := make(map[string]int)
	for _, e := range enemies {
		if counts[e.BaseName] < 2 {
			e.Name = e.BaseName
			continue
		}
		e.Name = fmt.Sprintf("%s %c", e.BaseName, 'A'+rune(seen[e.BaseName]))
		seen[e.BaseName]++
	}
}

// RemoveDeadEnemies takes the dead enemies out of their rows and returns
// them.
func (o *Opposition) RemoveDeadEnemies() []*Enemy {
	var removed []*Enemy
	for _, e := range o.Enemies() {
		if e.IsDead() {
			o.remove(e)
			removed = append(removed, e)
		}
	}
	return removed
}

// CompactRows closes the empty rows in front of occupied ones, bringing
// the enemies behind closer.
func (o *Opposition) CompactRows() {
	compacted := make([][]Combatant, 0, len(o.rows))
	for _, row := range o.rows {
		if len(row) > 0 {
			compacted = append(compacted, row)
		}
	}
	for len(compacted) < len(o.rows) {
		compacted = append(compacted, nil)
	}
	o.rows = compacted
	for i, row := range o.rows {
		for _, c := range row {
			c.Base().Distance = i + 1
		}
	}
}

// CanMoveForward reports whether e can step one row closer.
func (o *Opposition) CanMoveForward(e *Enemy) bool {
	row, _, ok := o.position(e)
	return ok && row > 0 && o.fits(row-1, e)
}

// MoveForward moves e one row closer. Enemies from an even slot join the
// new row on the left, the others on the right.
func (o *Opposition) MoveForward(e *Enemy) error {
	row, idx, ok := o.position(e)
	if !ok || row == 0 {
		return fmt.Errorf("%w: %s cannot move forward", ErrInvalidRow, e.Name)
	}
	return o.MoveToRow(e, row-1, idx%2 == 0)
}
