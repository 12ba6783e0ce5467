// internal/state/fight_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"draconis/internal/app"
	"draconis/internal/config"
	"draconis/internal/ui"
	"draconis/pkg/render"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// FightState forwards input to the game controller and draws the fight.
type FightState struct {
	sm     *StateMachine
	game   *app.Game
	view   *ui.FightView
	paused bool
}

// NewFightState wraps a game with its view.
func NewFightState(sm *StateMachine, game *app.Game, face font.Face) *FightState {
	palette := render.Palette{
		Background: config.BackgroundColor,
		Text:       config.TextLightColor,
		TextDim:    config.TextDimColor,
		Active:     config.ActiveColor,
		Target:     config.TargetColor,
		Hover:      config.HoverColor,
		Life:       config.LifeColor,
		Energy:     config.EnergyColor,
		Mana:       config.ManaColor,
		BarBack:    config.BarBackColor,
		Buff:       config.BuffColor,
		Debuff:     config.DebuffColor,
	}
	return &FightState{sm: sm, game: game, view: ui.NewFightView(face, palette)}
}

func (s *FightState) Enter() {}

func (s *FightState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.paused = !s.paused
		s.sm.RefreshTitle()
	}
	if s.paused {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := s.game.Restart(); err != nil {
			log.Printf("state: restart: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.game.Proceed()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		s.game.Unselect()
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.game.SelectFromKey(i)
		}
	}
	s.handleMouse()

	s.game.Update(deltaTime)
}

func (s *FightState) handleMouse() {
	x, y := ebiten.CursorPosition()
	skill := s.view.SkillAt(x, y)
	enemy := s.view.EnemyAt(x, y)
	character := s.view.CharacterAt(x, y)

	if skill != nil {
		s.game.HoverSkill(skill)
	} else {
		s.game.UnhoverSkill()
	}
	if enemy != nil {
		s.game.HoverEnemy(enemy)
	} else {
		s.game.UnhoverEnemy()
	}
	if character != nil {
		s.game.HoverCharacter(character)
	} else {
		s.game.UnhoverCharacter()
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	switch {
	case skill != nil:
		s.game.SelectSkill(skill)
	case enemy != nil:
		s.game.SelectEnemy(enemy)
	case character != nil:
		s.game.SelectCharacter(character)
	}
}

func (s *FightState) Draw(screen *ebiten.Image) {
	s.view.Draw(screen, s.game)
}

func (s *FightState) Exit() {}

func (s *FightState) Title() string {
	if s.paused {
		return "paused"
	}
	return "fight"
}
