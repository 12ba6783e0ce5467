// internal/state/title_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"draconis/internal/config"
)

// TitleState shows the dungeon name until the player presses Space.
type TitleState struct {
	sm      *StateMachine
	next    func() State
	face    font.Face
	dungeon string
}

// NewTitleState creates the title screen; next builds the state to enter.
func NewTitleState(sm *StateMachine, face font.Face, dungeon string, next func() State) *TitleState {
	return &TitleState{sm: sm, next: next, face: face, dungeon: dungeon}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		t.sm.SetState(t.next())
	}
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := config.ScreenWidth/2-120, config.ScreenHeight/2
	text.Draw(screen, "DRACONIS", t.face, x, y-2*config.TextLineHeight, config.ActiveColor)
	text.Draw(screen, fmt.Sprintf("Dungeon: %s", t.dungeon), t.face, x, y, config.TextLightColor)
	text.Draw(screen, "Press Space to enter", t.face, x, y+2*config.TextLineHeight, config.TextDimColor)
}

func (t *TitleState) Exit() {}

func (t *TitleState) Title() string { return t.dungeon }
