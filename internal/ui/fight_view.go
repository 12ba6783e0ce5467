// internal/ui/fight_view.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"draconis/internal/app"
	"draconis/internal/combat"
	"draconis/internal/config"
	"draconis/pkg/render"
)

const (
	margin       = 20
	formationW   = 780
	sideX        = margin + formationW + margin
	skillRowH    = 24
	statusLineH  = 14
	oppositionY  = 40
	partyGap     = 30
	skillColumns = 3
)

// FightView draws the fight screen and remembers where each creature and
// skill was drawn, for mouse picking.
type FightView struct {
	face     font.Face
	palette  render.Palette
	narrator *Narrator

	enemies    map[*combat.Enemy]render.Rect
	characters map[*combat.Character]render.Rect
	skills     map[*combat.Skill]render.Rect
}

// NewFightView creates the view.
func NewFightView(face font.Face, palette render.Palette) *FightView {
	return &FightView{
		face:       face,
		palette:    palette,
		narrator:   NewNarrator(),
		enemies:    map[*combat.Enemy]render.Rect{},
		characters: map[*combat.Character]render.Rect{},
		skills:     map[*combat.Skill]render.Rect{},
	}
}

// EnemyAt returns the enemy drawn under the cursor, if any.
func (v *FightView) EnemyAt(x, y int) *combat.Enemy {
	for e, r := range v.enemies {
		if r.Contains(x, y) {
			return e
		}
	}
	return nil
}

// CharacterAt returns the character drawn under the cursor, if any.
func (v *FightView) CharacterAt(x, y int) *combat.Character {
	for c, r := range v.characters {
		if r.Contains(x, y) {
			return c
		}
	}
	return nil
}

// SkillAt returns the skill button under the cursor, if any.
func (v *FightView) SkillAt(x, y int) *combat.Skill {
	for s, r := range v.skills {
		if r.Contains(x, y) {
			return s
		}
	}
	return nil
}

// Draw renders the whole screen for the current game state.
func (v *FightView) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(v.palette.Background)
	clear(v.enemies)
	clear(v.characters)
	clear(v.skills)

	f := g.Fight()
	if f != nil {
		v.drawOpposition(screen, f)
		v.drawParty(screen, f)
		v.drawSkills(screen, f)
		v.drawTurnOrder(screen, f)
	}
	v.drawMessages(screen, g)
	v.drawBanner(screen, g)
}

func (v *FightView) drawOpposition(screen *ebiten.Image, f *combat.Fight) {
	rows := f.Opposition.RowCount()
	for r := 0; r < rows; r++ {
		// Front row is drawn closest to the party.
		y := float32(oppositionY + (rows-1-r)*config.RowHeight)
		x := float32(margin)
		for _, c := range f.Opposition.Row(r) {
			e := c.(*combat.Enemy)
			w := float32(e.Size*config.CreatureWidth + (e.Size-1)*config.CreatureSpacing)
			rect := render.Rect{X: x, Y: y, W: w, H: config.RowHeight - config.CreatureSpacing}
			v.enemies[e] = rect
			v.drawCreature(screen, f, e, rect, e == f.HoveredEnemy)
			x += w + config.CreatureSpacing
		}
	}
}

func (v *FightView) drawParty(screen *ebiten.Image, f *combat.Fight) {
	top := oppositionY + f.Opposition.RowCount()*config.RowHeight + partyGap
	for r := 0; r < f.Party.RowCount(); r++ {
		y := float32(top + r*config.RowHeight)
		x := float32(margin)
		for _, c := range f.Party.Row(r) {
			ch := c.(*combat.Character)
			rect := render.Rect{X: x, Y: y, W: config.CreatureWidth, H: config.RowHeight - config.CreatureSpacing}
			v.characters[ch] = rect
			v.drawCreature(screen, f, ch, rect, ch == f.HoveredCharacter)
			x += config.CreatureWidth + config.CreatureSpacing
		}
	}
}

func (v *FightView) drawCreature(screen *ebiten.Image, f *combat.Fight, c combat.Combatant, r render.Rect, hovered bool) {
	base := c.Base()
	border := v.palette.TextDim
	switch {
	case c == f.ActiveCreature:
		border = v.palette.Active
	case isTarget(f, c):
		border = v.palette.Target
	case hovered:
		border = v.palette.Hover
	}
	fill := render.DarkenColor(v.palette.BarBack)
	textColor := v.palette.Text
	if base.IsDead() {
		border = render.DarkenColor(border)
		textColor = v.palette.TextDim
	}
	render.DrawFrame(screen, r, fill, border, 2)

	x, y := int(r.X)+6, int(r.Y)+config.TextLineHeight
	text.Draw(screen, base.Name, v.face, x, y, textColor)
	if base.LastLifeChange != nil {
		text.Draw(screen, lifeChangeLabel(*base.LastLifeChange), v.face, int(r.X+r.W)-48, y, v.changeColor(*base.LastLifeChange))
	}

	bar := render.Rect{X: r.X + 6, Y: float32(y + 4), W: r.W - 12, H: config.LifeBarHeight}
	render.DrawBar(screen, bar, base.LifePercent(), render.LifeColor(v.palette.Life, base.LifePercent()), v.palette.BarBack)
	if base.EnergyMax() > 0 {
		bar.Y += config.LifeBarHeight + 3
		energy := v.palette.Energy
		if ch, ok := c.(*combat.Character); ok && ch.UseMana {
			energy = v.palette.Mana
		}
		render.DrawBar(screen, bar, base.EnergyPercent(), energy, v.palette.BarBack)
	}

	y = int(bar.Y) + config.LifeBarHeight + statusLineH
	text.Draw(screen, fmt.Sprintf("%d/%d", base.Life(), base.LifeMax()), v.face, x, y, v.palette.TextDim)
	if s := statusLabel(base.Improvements()); s != "" {
		y += statusLineH
		text.Draw(screen, s, v.face, x, y, v.palette.Buff)
	}
	if s := statusLabel(base.Deteriorations()); s != "" {
		y += statusLineH
		text.Draw(screen, s, v.face, x, y, v.palette.Debuff)
	}
}

func (v *FightView) changeColor(lc combat.LifeChange) color.Color {
	if lc.Direction == combat.Gain {
		return v.palette.Life
	}
	return v.palette.Target
}

func (v *FightView) drawSkills(screen *ebiten.Image, f *combat.Fight) {
	ch, ok := f.ActiveCreature.(*combat.Character)
	if !ok {
		return
	}
	top := oppositionY + (f.Opposition.RowCount()+f.Party.RowCount())*config.RowHeight + partyGap + 10
	w := float32(formationW-(skillColumns-1)*config.CreatureSpacing) / skillColumns
	for i, s := range ch.Skills {
		col, row := i%skillColumns, i/skillColumns
		r := render.Rect{
			X: margin + float32(col)*(w+config.CreatureSpacing),
			Y: float32(top + row*(skillRowH+4)),
			W: w,
			H: skillRowH,
		}
		v.skills[s] = r

		usable := s.IsUsableByActiveCreature(f)
		border, textColor := v.palette.TextDim, v.palette.Text
		switch {
		case s == f.SelectedSkill:
			border = v.palette.Active
		case s == f.HoveredSkill:
			border = v.palette.Hover
		}
		if !usable {
			textColor = v.palette.TextDim
		}
		render.DrawFrame(screen, r, v.palette.BarBack, border, 1)
		text.Draw(screen, skillLabel(i, s), v.face, int(r.X)+6, int(r.Y)+16, textColor)
	}
	if s := f.HoveredSkill; s != nil && s.Description != "" {
		y := top + ((len(ch.Skills)+skillColumns-1)/skillColumns)*(skillRowH+4) + config.TextLineHeight
		text.Draw(screen, s.Description, v.face, margin, y, v.palette.TextDim)
	}
}

func (v *FightView) drawTurnOrder(screen *ebiten.Image, f *combat.Fight) {
	y := oppositionY
	text.Draw(screen, fmt.Sprintf("Round %d", f.Round), v.face, sideX, y, v.palette.Text)
	for _, c := range f.TurnOrder.Creatures() {
		y += config.TextLineHeight
		clr := v.palette.TextDim
		switch {
		case c == f.ActiveCreature:
			clr = v.palette.Active
		case c.IsCharacter():
			clr = v.palette.Text
		}
		if c.Base().IsDead() {
			continue
		}
		text.Draw(screen, c.Base().Name, v.face, sideX, y, clr)
	}
}

func (v *FightView) drawMessages(screen *ebiten.Image, g *app.Game) {
	var lines []string
	for _, e := range g.Messages() {
		lines = append(lines, v.narrator.Narrate(e)...)
	}
	if len(lines) > config.MessageLines {
		lines = lines[len(lines)-config.MessageLines:]
	}
	y := config.ScreenHeight - margin - (len(lines)-1)*config.TextLineHeight
	for _, line := range lines {
		text.Draw(screen, line, v.face, sideX, y, v.palette.Text)
		y += config.TextLineHeight
	}
}

func (v *FightView) drawBanner(screen *ebiten.Image, g *app.Game) {
	var msg string
	switch g.State() {
	case app.StateStartNextEncounter:
		msg = fmt.Sprintf("Encounter %d of %d. Press Space.", g.Encounter()+1, g.EncounterCount())
	case app.StateStartFight:
		msg = "Press Space to fight."
	case app.StateSelectSkill:
		msg = "Choose a skill (1-9)."
	case app.StateSelectEnemy:
		msg = "Choose an enemy, Esc to go back."
	case app.StateSelectCharacter:
		msg = "Choose an ally, Esc to go back."
	case app.StateDungeonEnd:
		msg = "The run is over. Space to restart."
	default:
		return
	}
	text.Draw(screen, msg, v.face, margin, config.ScreenHeight-margin, v.palette.Active)
}

func isTarget(f *combat.Fight, c combat.Combatant) bool {
	for _, t := range f.Targets {
		if t == c {
			return true
		}
	}
	return false
}

func lifeChangeLabel(lc combat.LifeChange) string {
	switch {
	case !lc.IsSuccess():
		return "dodge"
	case lc.Direction == combat.Gain:
		return fmt.Sprintf("+%d", lc.Amount)
	default:
		return fmt.Sprintf("-%d", lc.Amount)
	}
}

func statusLabel(apps []*combat.StatusApplication) string {
	parts := make([]string, 0, len(apps))
	for _, a := range apps {
		if a.RemainingTime >= 100 {
			parts = append(parts, a.Type.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", a.Type.Name, a.RemainingTime))
	}
	return strings.Join(parts, ", ")
}

func skillLabel(i int, s *combat.Skill) string {
	label := fmt.Sprintf("%d %s", i+1, s.Name)
	if s.Cost != 0 {
		label += fmt.Sprintf(" (%g)", s.Cost)
	}
	if s.Cooldown > 0 {
		label += fmt.Sprintf(" [%d]", s.Cooldown)
	}
	return label
}
